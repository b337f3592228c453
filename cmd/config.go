package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sefyu24/Componentcn/internal/config"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config and log file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("error resolving config path: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config: %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "log:    %s\n", logger.DefaultLogPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
