package cmd

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Sefyu24/Componentcn/internal/app"
	"github.com/Sefyu24/Componentcn/internal/config"
	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	themeFlag             string
	replyDelayFlag        time.Duration
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "componentcn",
	Short: "Terminal playground for chat, button, team and calendar components",
	Long: `Componentcn is a terminal playground for a handful of UI components.
The chat tab hosts a composer that stages images from the clipboard, from
dropped files and from a file picker, and sends them with your message to a
simulated assistant.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "Theme for this run (does not change the saved setting)")
	rootCmd.Flags().DurationVar(&replyDelayFlag, "reply-delay", 0, "Simulated assistant latency for this run")
}

func initConfig() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("componentcn %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("componentcn %s\n", version)
}

// applyFlags layers command line overrides on top of the loaded config.
func applyFlags(cfg *config.Config) error {
	if themeFlag != "" {
		if !ui.IsThemeName(themeFlag) {
			return perrors.E(perrors.Op("cmd.applyFlags"), perrors.KindInvalid,
				fmt.Sprintf("unknown theme %q", themeFlag))
		}
		cfg.SetTheme(themeFlag)
	}
	if replyDelayFlag < 0 {
		return perrors.E(perrors.Op("cmd.applyFlags"), perrors.KindInvalid,
			fmt.Sprintf("reply delay must not be negative, got %s", replyDelayFlag))
	}
	if replyDelayFlag > 0 {
		cfg.SetReplyDelay(replyDelayFlag)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := applyFlags(cfg); err != nil {
		return err
	}

	// Ensure logger is closed on exit
	defer logger.Close()
	logger.Info("Starting componentcn %s", version)

	var opts []app.Option
	if path := cfg.Path(); path != "" {
		w, err := config.Watch(path, config.DefaultWatchDebounce)
		if err != nil {
			logger.Warn("config reload disabled: %v", err)
		} else {
			defer w.Close()
			opts = append(opts, app.WithConfigUpdates(w.Changes()))
		}
	}

	m := app.New(cfg, version, opts...)
	defer m.Close()
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
