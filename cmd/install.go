package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/samhoang/strand/internal/install"
	"github.com/samhoang/strand/internal/plugin"
)

var installCmd = &cobra.Command{
	Use:   "install SPEC...",
	Short: "Install specific plugins without adding them to the config file",
	Long: `Install one or more plugins given as specs, into the configured
plugin directory. Unlike a full sync, the directory is not wiped first.

Examples:
  strand install alice/tool
  strand install gitlab@bob/lib:main bitbucket@carol/thing
  strand install https://example.com/bundle.tar.gz`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInstall,
}

func init() {
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	// Parse every spec up front so a typo aborts before any download starts.
	plugins := make([]plugin.Plugin, 0, len(args))
	for _, spec := range args {
		p, err := plugin.Parse(spec)
		if err != nil {
			return err
		}
		plugins = append(plugins, p)
	}

	cfg, settings, log, err := loadEnvironment()
	if err != nil {
		return err
	}

	log.Info(fmt.Sprintf("installing %d plugins into %s", len(plugins), cfg.PluginDir))
	opts := install.Options{Fetch: settings.FetchOptions(), Logger: log}
	return install.All(cmd.Context(), plugins, cfg.PluginDir, opts, newRenderer())
}
