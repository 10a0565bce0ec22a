package main

import (
	"github.com/spf13/cobra"

	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
)

var installModules []string

var installCmd = &cobra.Command{
	Use:   "install [source]",
	Short: "Restore configuration from a snapshot to this system",
	Long: `Install copies configuration from a snapshot directory back into its
live system locations, restoring absolute home paths. Existing files
that differ are only overwritten after confirmation; declining marks
the module as skipped.

Without --module, every module with a populated snapshot subfolder is
installed. The default source is the configured snapshot root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.install")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		src := rt.env.SnapshotDefault
		if len(args) == 1 {
			src = args[0]
		}

		logger.Info().Str("source", src).Strs("modules", installModules).Msg("Starting install")
		rt.renderer.Banner(core.ModeInstall, src)

		result, err := rt.orchestrator.Install(core.InstallOptions{
			Source:  src,
			Modules: installModules,
		})
		if err != nil {
			return err
		}

		rt.renderer.Summary(result)
		if result.HasFailures() {
			return errors.New(errors.ErrModuleFailed, "one or more modules failed to install")
		}
		return nil
	},
}

func init() {
	installCmd.Flags().StringSliceVarP(&installModules, "module", "m", nil,
		"Restrict the run to the named modules (repeatable)")
}
