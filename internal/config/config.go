package config

import (
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
)

// DefaultReplyDelay is the simulated assistant latency.
const DefaultReplyDelay = 1200 * time.Millisecond

// DefaultTimeSlotHeading titles the calendar's slot column.
const DefaultTimeSlotHeading = "Available Times"

// Tab names accepted by DefaultTab.
const (
	TabChat     = "chat"
	TabButton   = "button"
	TabTeam     = "team"
	TabCalendar = "calendar"
)

// Tabs lists the playground tabs in display order.
var Tabs = []string{TabChat, TabButton, TabTeam, TabCalendar}

// DefaultTimeSlots are offered by the calendar when the config names none.
var DefaultTimeSlots = []string{
	"09:00 AM",
	"09:30 AM",
	"10:00 AM",
	"10:30 AM",
	"11:00 AM",
	"01:00 PM",
	"01:30 PM",
	"02:00 PM",
	"02:30 PM",
	"03:00 PM",
}

// Config holds the application configuration
type Config struct {
	Theme                string        `yaml:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	ReplyDelay           time.Duration `yaml:"reply_delay,omitempty"`           // Simulated assistant latency
	NotificationsEnabled bool          `yaml:"notifications_enabled,omitempty"` // Desktop notification when a reply lands while blurred
	AssistantName        string        `yaml:"assistant_name,omitempty"`        // Label for assistant turns
	DefaultTab           string        `yaml:"default_tab,omitempty"`           // Tab shown on startup
	TimeSlots            []string      `yaml:"time_slots,omitempty"`            // Calendar slots
	TimeSlotHeading      string        `yaml:"time_slot_heading,omitempty"`
	DisableConfetti      bool          `yaml:"disable_confetti,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// Default returns a config populated with built-in defaults and no backing file.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".componentcn"), nil
}

// DefaultPath returns the path of the user config file.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config from the default location, or returns defaults if the
// file doesn't exist yet.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.componentcn", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{filePath: path}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	// Validate before defaults so an explicit bad value is reported rather
	// than silently replaced.
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills zero values. Not thread-safe; only called while the
// config is still private to Load.
func (c *Config) applyDefaults() {
	if c.ReplyDelay == 0 {
		c.ReplyDelay = DefaultReplyDelay
	}
	if c.AssistantName == "" {
		c.AssistantName = "Assistant"
	}
	if c.DefaultTab == "" {
		c.DefaultTab = TabChat
	}
	if c.TimeSlots == nil {
		c.TimeSlots = slices.Clone(DefaultTimeSlots)
	}
	if c.TimeSlotHeading == "" {
		c.TimeSlotHeading = DefaultTimeSlotHeading
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.ReplyDelay < 0 {
		return perrors.ConfigInvalid("reply_delay must not be negative")
	}
	if c.DefaultTab != "" && !slices.Contains(Tabs, c.DefaultTab) {
		return perrors.ConfigInvalid("unknown default_tab " + c.DefaultTab)
	}

	seen := make(map[string]bool, len(c.TimeSlots))
	for _, slot := range c.TimeSlots {
		if slot == "" {
			return perrors.ConfigInvalid("empty time slot")
		}
		if seen[slot] {
			return perrors.ConfigInvalid("duplicate time slot " + slot)
		}
		seen[slot] = true
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.Lock() // may set filePath
	defer c.mu.Unlock()

	if c.filePath == "" {
		path, err := DefaultPath()
		if err != nil {
			return perrors.ConfigSaveFailed("~/.componentcn", err)
		}
		c.filePath = path
	}

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(c.filePath, err)
	}
	return nil
}

// Path returns the file backing this config ("" for Default()).
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// GetTheme returns the configured theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the UI theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetReplyDelay returns the simulated assistant latency
func (c *Config) GetReplyDelay() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ReplyDelay
}

// SetReplyDelay overrides the simulated assistant latency
func (c *Config) SetReplyDelay(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ReplyDelay = d
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// GetTimeSlots returns a copy of the calendar time slots
func (c *Config) GetTimeSlots() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.TimeSlots)
}

// ConfettiEnabled reports whether button clicks fire confetti
func (c *Config) ConfettiEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return !c.DisableConfetti
}

// SetNotificationsEnabled toggles the reply notification
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// SetConfettiEnabled toggles the confetti burst on button clicks
func (c *Config) SetConfettiEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.DisableConfetti = !enabled
}

// GetAssistantName returns the label shown on assistant turns
func (c *Config) GetAssistantName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.AssistantName
}

// SetAssistantName sets the label shown on assistant turns
func (c *Config) SetAssistantName(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.AssistantName = name
}

// GetDefaultTab returns the tab shown on startup
func (c *Config) GetDefaultTab() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.DefaultTab
}

// GetTimeSlotHeading returns the title of the calendar's slot column
func (c *Config) GetTimeSlotHeading() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.TimeSlotHeading
}
