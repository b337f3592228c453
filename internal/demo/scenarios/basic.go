// Package scenarios contains built-in demo scenarios for the playground.
package scenarios

import (
	"time"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/demo"
	"github.com/Sefyu24/Componentcn/internal/keys"
	"github.com/Sefyu24/Componentcn/internal/ui"
)

// Compose demonstrates the chat composer end to end:
// - Pasting a screenshot from the clipboard
// - Dropping two more images onto the input
// - Removing one staged image again
// - Sending text with the images and reading the reply
var Compose = &demo.Scenario{
	Name:        "compose",
	Description: "Attach images by paste and drop, then send them",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Tab:           config.TabChat,
		AssistantName: "Assistant",
		Replies: []string{
			"Thanks! I can see **two** images. The login form overflows on narrow " +
				"screens; try `flex-wrap: wrap` on the button row.",
			"Glad that helped.",
		},
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Paste a screenshot
		demo.Annotate("Paste an image from the clipboard"),
		demo.PasteImage("screenshot.png"),
		demo.Wait(500 * time.Millisecond),

		// Drop two files from the file manager
		demo.Annotate("Drop files onto the input"),
		demo.Drop("login-mobile.png", "login-desktop.png"),
		demo.Wait(800 * time.Millisecond),

		// The last staged image is selected; remove it
		demo.Annotate("Remove a staged image"),
		demo.KeyWithDesc(keys.CtrlX, "remove selected image"),
		demo.Wait(500 * time.Millisecond),
		demo.Capture(),

		// Write the message and send it
		demo.TypeWithDesc("Why does the login form break on phones?", "type the question"),
		demo.Wait(300 * time.Millisecond),
		demo.Capture(),
		demo.KeyWithDesc(keys.Enter, "send"),
		demo.Wait(300 * time.Millisecond),

		demo.Annotate("The reply arrives"),
		demo.Reply(),
		demo.Wait(1500 * time.Millisecond),

		// A text-only follow-up
		demo.Type("thanks"),
		demo.Key(keys.Enter),
		demo.Reply(),
		demo.Wait(2 * time.Second),
	},
}

// Tour walks through every tab of the playground.
var Tour = &demo.Scenario{
	Name:        "tour",
	Description: "Visit the chat, button, team and calendar tabs",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Tab:           config.TabChat,
		AssistantName: "Assistant",
		Theme:         "tokyo-night",
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		// Chat: a quick exchange using the canned replies
		demo.Annotate("Chat with a simulated assistant"),
		demo.Type("hello"),
		demo.Key(keys.Enter),
		demo.Reply(),
		demo.Wait(1 * time.Second),

		// Button: click it, then cycle variant and size
		demo.Annotate("Buttons in every variant and size"),
		demo.KeyWithDesc(keys.Tab, "button tab"),
		demo.Wait(500 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Key("v"),
		demo.Wait(400 * time.Millisecond),
		demo.Key("v"),
		demo.Key("s"),
		demo.Wait(600 * time.Millisecond),

		// Team: expand a group and move through it
		demo.Annotate("A collapsible team roster"),
		demo.KeyWithDesc(keys.Tab, "team tab"),
		demo.Wait(500 * time.Millisecond),
		demo.Key(keys.Enter),
		demo.Wait(400 * time.Millisecond),
		demo.Key(keys.Down),
		demo.Key(keys.Down),
		demo.Key(keys.Enter),
		demo.Wait(600 * time.Millisecond),

		// Calendar: pick a day, then a time slot
		demo.Annotate("Book a time slot"),
		demo.KeyWithDesc(keys.Tab, "calendar tab"),
		demo.Wait(500 * time.Millisecond),
		demo.Key(keys.Right),
		demo.Key(keys.Right),
		demo.Key(keys.Enter),
		demo.Wait(400 * time.Millisecond),
		demo.Key("s"),
		demo.Key(keys.Down),
		demo.Key(keys.Enter),
		demo.Wait(600 * time.Millisecond),

		demo.Flash("Booked!", ui.FlashSuccess),
		demo.Wait(2 * time.Second),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Compose,
		Tour,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
