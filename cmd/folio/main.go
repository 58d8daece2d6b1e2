package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/studiowebux/folio/internal/config"
	"github.com/studiowebux/folio/internal/content"
	"github.com/studiowebux/folio/internal/keybinds"
	"github.com/studiowebux/folio/internal/logging"
	"github.com/studiowebux/folio/internal/tui"
	"github.com/studiowebux/folio/internal/version"
)

var (
	appVersion = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - a terminal portfolio styled as a code editor",
	Long: `Folio renders a portfolio as an editor workspace: an activity bar of
sections, a sidebar of entries, tabs of open panels and code previews.

Content comes from a YAML file (--content or content_path in config.yaml).
Without one, the built-in sample portfolio is shown.

Examples:
  folio                              # Start with ~/.folio/config.yaml
  folio --content me.yaml            # Show your own portfolio
  folio init                         # Write default config.yaml and keybinds.json
  folio check me.yaml                # Validate content and keybindings
  folio keybinds                     # List effective keybindings
  folio keybinds --export            # Print defaults as keybinds.json
  folio version --check              # Look for a newer release`,
	Version: appVersion,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		return runTUI()
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [content.yaml]",
	Short: "Validate portfolio content and keybindings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		path := flagContent
		if len(args) > 0 {
			path = args[0]
		}
		return runCheck(path)
	},
}

var keybindsCmd = &cobra.Command{
	Use:   "keybinds",
	Short: "List effective keybindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		if flagExport {
			return exportKeybinds()
		}
		return listKeybinds()
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config.yaml and keybinds.json to ~/.folio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Initialize(); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}
		written, err := writeDefaults(flagForce)
		if err != nil {
			return err
		}
		if len(written) == 0 {
			fmt.Printf("Nothing to do: %s already has config.yaml and keybinds.json (use --force to overwrite)\n", config.ConfigDir)
		}
		for _, path := range written {
			fmt.Printf("Wrote %s\n", path)
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and optionally check for a newer release",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("folio %s\n", appVersion)
		if !flagCheck {
			return nil
		}
		return runUpdateCheck(cmd.Context())
	},
}

// Flags for root command
var (
	flagConfig   string
	flagContent  string
	flagLogLevel string
	flagNoMouse  bool
)

// Flags for keybinds
var (
	flagExport bool
)

// Flags for version
var (
	flagCheck bool
)

// Flags for init
var (
	flagForce bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Settings file (default ~/.folio/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "Portfolio content file")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug/info/warn/error)")
	rootCmd.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "Disable mouse support")

	keybindsCmd.Flags().BoolVar(&flagExport, "export", false, "Print the default keybindings as keybinds.json")

	rootCmd.AddCommand(checkCmd)
	versionCmd.Flags().BoolVar(&flagCheck, "check", false, "Check for a newer release")

	initCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite existing files")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(keybindsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadSettings reads the settings file and applies flag overrides
func loadSettings() (*config.Settings, error) {
	path := flagConfig
	if path == "" {
		path = config.ConfigFile
	}
	settings, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if flagLogLevel != "" {
		settings.LogLevel = flagLogLevel
	}
	if flagNoMouse {
		settings.Mouse = false
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// loadPortfolio loads the content file, or the sample portfolio when path is empty
func loadPortfolio(path string) (*content.Portfolio, error) {
	resolved, err := config.ResolvePath(path, "")
	if err != nil {
		return nil, err
	}
	if resolved == "" {
		return content.Default()
	}
	return content.Load(resolved)
}

// runTUI starts the interactive TUI
func runTUI() error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	logger, closer, err := logging.Open(config.LogFile, logging.ParseLevel(settings.LogLevel))
	if err != nil {
		return err
	}
	defer closer.Close()

	contentPath := flagContent
	if contentPath == "" && settings.ContentPath != "" {
		contentPath, err = config.ResolvePath(settings.ContentPath, filepath.Dir(config.ConfigFile))
		if err != nil {
			return err
		}
	}
	portfolio, err := loadPortfolio(contentPath)
	if err != nil {
		logger.Error("load content", "path", contentPath, "error", err)
		return err
	}
	if result := portfolio.Validate(); result.HasErrors() {
		return fmt.Errorf("content is invalid:\n%s", result)
	}

	registry, result, err := keybinds.LoadAndValidate(config.KeybindsFile)
	if err != nil {
		logger.Error("load keybinds", "path", config.KeybindsFile, "error", err)
		return err
	}
	if result.HasWarnings() {
		logger.Warn("keybinds", "issues", result.String())
	}

	return tui.Run(tui.Options{
		Portfolio: portfolio,
		Settings:  settings,
		Keybinds:  registry,
		Logger:    logger,
		Version:   appVersion,
	})
}

// runCheck validates content and keybindings and reports every issue
func runCheck(path string) error {
	failed := false

	portfolio, err := loadPortfolio(path)
	if err != nil {
		return err
	}
	contentResult := portfolio.Validate()
	name := path
	if name == "" {
		name = "built-in content"
	}
	fmt.Printf("%s:\n%s\n", name, contentResult)
	failed = failed || contentResult.HasErrors()

	_, kbResult, err := keybinds.LoadAndValidate(config.KeybindsFile)
	if err != nil {
		fmt.Printf("%s:\n%v\n", config.KeybindsFile, err)
		failed = true
	}
	if kbResult != nil {
		fmt.Printf("%s:\n%s\n", config.KeybindsFile, kbResult)
		failed = failed || kbResult.HasErrors()
	}

	if failed {
		os.Exit(1)
	}
	return nil
}

// listKeybinds prints the effective bindings grouped by context
func listKeybinds() error {
	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}
	for _, context := range keybinds.Contexts {
		bindings := registry.ListBindings(context)
		if len(bindings) == 0 {
			continue
		}
		fmt.Printf("[%s]\n", context)
		for _, b := range bindings {
			fmt.Printf("  %-12s %-20s %s\n", b.Key, b.Action, keybinds.GetActionInfo(b.Action).Description)
		}
		fmt.Println()
	}
	return nil
}

// exportKeybinds prints the defaults in keybinds.json form
func exportKeybinds() error {
	data, err := defaultKeybindsJSON()
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

func defaultKeybindsJSON() ([]byte, error) {
	data, err := json.MarshalIndent(keybinds.ExportDefaults(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode keybindings: %w", err)
	}
	return append(data, '\n'), nil
}

// writeDefaults writes the default config.yaml and keybinds.json. Existing
// files are left alone unless force is set. Returns the paths written.
func writeDefaults(force bool) ([]string, error) {
	var written []string

	if force || !exists(config.ConfigFile) {
		if err := config.DefaultSettings().Save(config.ConfigFile); err != nil {
			return written, err
		}
		written = append(written, config.ConfigFile)
	}

	if force || !exists(config.KeybindsFile) {
		data, err := defaultKeybindsJSON()
		if err != nil {
			return written, err
		}
		if err := os.WriteFile(config.KeybindsFile, data, config.FilePermissions); err != nil {
			return written, fmt.Errorf("writing keybinds to %s: %w", config.KeybindsFile, err)
		}
		written = append(written, config.KeybindsFile)
	}

	return written, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// runUpdateCheck reports whether a newer release is published
func runUpdateCheck(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	update, err := version.NewChecker().Check(ctx, appVersion)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	if update.Available {
		fmt.Printf("A newer version is available: %s\n%s\n", update.Latest, update.URL)
	} else {
		fmt.Println("You are on the latest version")
	}
	return nil
}
