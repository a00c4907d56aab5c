package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/strand/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect strand configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.File()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
