// Package cmd implements strand's command-line surface. It is a thin layer:
// it loads configuration, wires the installer to a renderer, and turns the
// aggregate result into an exit code. All real work lives in internal.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/samhoang/strand/internal/config"
	"github.com/samhoang/strand/internal/install"
	"github.com/samhoang/strand/internal/logger"
	"github.com/samhoang/strand/internal/tui"
)

var Version = "dev"

var (
	verbose     bool
	plainOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "strand",
	Short: "A fast, simple shell plugin manager",
	Long: `strand installs plugins — directories of files fetched from GitHub,
GitLab, Bitbucket or any archive URL — into a local plugin directory.

Plugins are listed in config.yaml as compact specs:

  user/repo                   GitHub, default branch "master"
  gitlab@user/repo:v1.2       explicit provider and Git ref
  https://example.com/p.tar.gz  direct archive URL

Running strand with no arguments wipes the plugin directory and installs
everything the config file lists.`,
	Version:      Version,
	SilenceUsage: true,
	RunE:         runRoot,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
	rootCmd.PersistentFlags().BoolVar(&plainOutput, "plain", false, "Print plain progress lines instead of the animated display")
	rootCmd.CompletionOptions.HiddenDefaultCmd = true
}

func runRoot(cmd *cobra.Command, args []string) error {
	cfg, settings, log, err := loadEnvironment()
	if err != nil {
		return err
	}

	if len(cfg.Plugins) == 0 {
		fmt.Println("No plugins configured.")
		return nil
	}

	// A full sync starts from a clean plugin directory.
	if err := config.EnsureEmptyDir(cfg.PluginDir); err != nil {
		return err
	}

	log.Info(fmt.Sprintf("installing %d plugins into %s", len(cfg.Plugins), cfg.PluginDir))
	opts := install.Options{Fetch: settings.FetchOptions(), Logger: log}
	return install.All(cmd.Context(), cfg.Plugins, cfg.PluginDir, opts, newRenderer())
}

// loadEnvironment resolves and loads the config file, settings and logger.
func loadEnvironment() (*config.Config, *config.Settings, *logger.Logger, error) {
	log := logger.New(logger.Options{Verbose: verbose})

	configPath, err := config.File()
	if err != nil {
		return nil, nil, nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	settingsPath, err := config.SettingsFile()
	if err != nil {
		return nil, nil, nil, err
	}
	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, settings, log, nil
}

// newRenderer picks the animated display on a terminal, plain lines otherwise.
func newRenderer() install.Renderer {
	if plainOutput || !term.IsTerminal(int(os.Stdout.Fd())) {
		return tui.NewPlain(os.Stdout)
	}
	return tui.New()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
