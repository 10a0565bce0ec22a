package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/herfiles/herfiles/pkg/config"
	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/logging"
	"github.com/herfiles/herfiles/pkg/modules"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/prompt"
	"github.com/herfiles/herfiles/pkg/system"
	"github.com/herfiles/herfiles/pkg/template"
	"github.com/herfiles/herfiles/pkg/ui"
)

var (
	verbosity int

	rootCmd = &cobra.Command{
		Use:   "herfiles",
		Short: "A personal dotfiles manager",
		Long: `herfiles copies your configuration files (shell profile, prompt theme,
editor settings, extensions, assets and fonts) between their live system
locations and a portable snapshot directory you can keep under version
control. Absolute home paths are rewritten through a placeholder so a
snapshot gathered on one machine installs cleanly on another.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if !ui.Colorized() {
				pterm.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(gatherCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(topicsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("herfiles version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built:  %s\n", date)
	},
}

// runtime bundles everything a gather/install run needs.
type runtime struct {
	env          *paths.Env
	orchestrator *core.Orchestrator
	renderer     *ui.Renderer
}

// newRuntime resolves the environment, loads configuration and wires
// the module registry with its live collaborators.
func newRuntime() (*runtime, error) {
	env, err := paths.NewEnv()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	fs := filesystem.NewOS()
	registry := modules.Registry(modules.Deps{
		Env:       env,
		FS:        fs,
		Templater: template.New(env.Home, env.ManagedDir),
		Resolver:  prompt.New(),
		Detector:  system.NewDetector(),
		Installer: system.NewInstaller(cfg.PackageManager),
		Editor:    system.NewEditorCLI(cfg.EditorBinary),
		Fonts:     system.NewFontRegistry(fs, env),
		Config:    cfg,
	})

	return &runtime{
		env:          env,
		orchestrator: core.New(fs, registry),
		renderer:     ui.NewRenderer(),
	}, nil
}
