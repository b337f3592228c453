package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/Sefyu24/Componentcn/internal/demo"
	"github.com/Sefyu24/Componentcn/internal/demo/scenarios"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

var (
	demoOutput     string
	demoWidth      int
	demoHeight     int
	demoCaptureAll bool
	demoPlain      bool
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run scripted demos of the playground",
	Long: `Run scripted demos of the playground without a terminal.

Available subcommands:
  list      - List available demo scenarios
  run       - Run a scenario and print the captured frames`,
}

var demoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available demo scenarios",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Available demo scenarios:")
		fmt.Fprintln(out)
		for _, s := range scenarios.All() {
			fmt.Fprintf(out, "  %-15s %s\n", s.Name, s.Description)
		}
	},
}

var demoRunCmd = &cobra.Command{
	Use:   "run <scenario>",
	Short: "Run a scenario and print the captured frames",
	Args:  cobra.ExactArgs(1),
	RunE:  runDemoRun,
}

func init() {
	demoRunCmd.Flags().StringVarP(&demoOutput, "output", "o", "", "Write frames to a file instead of stdout")
	demoRunCmd.Flags().IntVarP(&demoWidth, "width", "w", 120, "Terminal width")
	demoRunCmd.Flags().IntVarP(&demoHeight, "height", "H", 40, "Terminal height")
	demoRunCmd.Flags().BoolVar(&demoCaptureAll, "capture-all", false, "Capture frame after every step (for debugging)")
	demoRunCmd.Flags().BoolVar(&demoPlain, "plain", false, "Strip colors from the frames")

	demoCmd.AddCommand(demoListCmd)
	demoCmd.AddCommand(demoRunCmd)
	rootCmd.AddCommand(demoCmd)
}

func getScenario(name string) (*demo.Scenario, error) {
	scenario := scenarios.Get(name)
	if scenario == nil {
		return nil, fmt.Errorf("unknown scenario %q\nRun 'componentcn demo list' to see available scenarios", name)
	}

	// Work on a copy so flag overrides don't leak into the shared scenario
	s := *scenario
	if demoWidth > 0 {
		s.Width = demoWidth
	}
	if demoHeight > 0 {
		s.Height = demoHeight
	}
	return &s, nil
}

func executeScenario(scenario *demo.Scenario) ([]demo.Frame, error) {
	execCfg := demo.DefaultExecutorConfig()
	execCfg.CaptureEveryStep = demoCaptureAll

	executor := demo.NewExecutor(execCfg)
	return executor.Run(scenario)
}

func runDemoRun(cmd *cobra.Command, args []string) error {
	scenario, err := getScenario(args[0])
	if err != nil {
		return err
	}

	// Headless runs must not write into the shared debug log
	logger.Discard()

	frames, err := executeScenario(scenario)
	if err != nil {
		return fmt.Errorf("error running scenario: %w", err)
	}

	out := cmd.OutOrStdout()
	if demoOutput != "" {
		f, err := os.Create(demoOutput)
		if err != nil {
			return fmt.Errorf("error creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeFrames(out, frames, demoPlain); err != nil {
		return fmt.Errorf("error writing frames: %w", err)
	}
	if demoOutput != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames to %s\n", len(frames), demoOutput)
	}
	return nil
}

func writeFrames(w io.Writer, frames []demo.Frame, plain bool) error {
	if _, err := fmt.Fprintf(w, "Captured %d frames\n", len(frames)); err != nil {
		return err
	}
	for i, f := range frames {
		fmt.Fprintf(w, "\n=== Frame %d (delay: %v) ===\n", i, f.Delay)
		if f.Annotation != "" {
			fmt.Fprintf(w, "Annotation: %s\n", f.Annotation)
		}
		content := f.Content
		if plain {
			content = ansi.Strip(content)
		}
		if _, err := fmt.Fprintln(w, content); err != nil {
			return err
		}
	}
	return nil
}
