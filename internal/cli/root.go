// Package cli implements the wardrobe command-line interface: the
// demonstration driver plus list, ready, types and version commands.
package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/wardrobe/internal/paths"
	"github.com/mesh-intelligence/wardrobe/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	itemsFile string
	jsonMode  bool
	color     bool
	verbose   bool
}

// settings is the effective configuration after merging flags, environment
// and config.yaml.
type settings struct {
	backend   string
	itemsFile string
	color     bool
}

// app carries state shared by the commands of one root command instance.
type app struct {
	flags    rootFlags
	settings settings
	logger   *slog.Logger
}

// NewRootCmd creates the top-level "wardrobe" command with global flags
// and all subcommands registered. Running it without a subcommand runs
// the demonstration.
func NewRootCmd() *cobra.Command {
	a := &app{logger: discardLogger()}

	root := &cobra.Command{
		Use:   "wardrobe",
		Short: "A small personal wardrobe",
		Long: `Wardrobe models clothing items and a wardrobe that can list them,
sort them by size and check whether you are ready to go out.

Without a subcommand it runs the demonstration: list the contents,
check readiness, sort by size and list again.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDemo,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $WARDROBE_CONFIG_DIR or the platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.backend, "backend", "", "wardrobe backend: memory or sqlite (default: memory)")
	root.PersistentFlags().StringVar(&a.flags.itemsFile, "items", "", "inventory file (.yaml, .yml or .jsonl) instead of the built-in items")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVar(&a.flags.color, "color", false, "style section headers")
	root.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "log debug events to stderr")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return userError(err)
	})

	root.AddCommand(a.newDemoCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newReadyCmd())
	root.AddCommand(a.newTypesCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		return exitCode(err)
	}
	return exitSuccess
}

// setup configures logging and resolves settings before any command runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.flags.verbose)

	// version needs no configuration.
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	v, err := loadConfig(configDir, cmd)
	if err != nil {
		return userError(err)
	}

	backend := v.GetString(cfgKeyBackend)
	if err := (types.Config{Backend: backend}).Validate(); err != nil {
		return userError(fmt.Errorf("backend %q: %w (valid: %s, %s)", backend, err, types.BackendMemory, types.BackendSQLite))
	}

	itemsFile, err := paths.ResolveItemsFile(a.flags.itemsFile, v.GetString(cfgKeyItemsFile), configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve items file: %w", err))
	}

	a.settings = settings{
		backend:   backend,
		itemsFile: itemsFile,
		color:     v.GetBool(cfgKeyColor),
	}
	a.logger.Debug("settings resolved",
		"config_dir", configDir,
		"config_file", v.ConfigFileUsed(),
		"backend", a.settings.backend,
		"items_file", a.settings.itemsFile,
	)
	return nil
}

// exitError attaches an exit code to an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by bad input: flags, config or inventory.
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks err as an environment or backend failure.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps an error to a process exit code. Errors without a code,
// such as cobra's unknown-command errors, are user errors.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

