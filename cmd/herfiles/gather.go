package main

import (
	"github.com/spf13/cobra"

	"github.com/herfiles/herfiles/pkg/core"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/logging"
)

var gatherModules []string

var gatherCmd = &cobra.Command{
	Use:   "gather [destination]",
	Short: "Copy live configuration into a portable snapshot",
	Long: `Gather copies configuration from its live system locations into a
snapshot directory, rewriting absolute home paths into a placeholder.
The snapshot is safe to keep under version control.

Without --module, every module with discoverable live configuration is
gathered. The default destination is the configured snapshot root.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.GetLogger("cmd.gather")

		rt, err := newRuntime()
		if err != nil {
			return err
		}

		dest := rt.env.SnapshotDefault
		if len(args) == 1 {
			dest = args[0]
		}

		logger.Info().Str("destination", dest).Strs("modules", gatherModules).Msg("Starting gather")
		rt.renderer.Banner(core.ModeGather, dest)

		result, err := rt.orchestrator.Gather(core.GatherOptions{
			Destination: dest,
			Modules:     gatherModules,
		})
		if err != nil {
			return err
		}

		rt.renderer.Summary(result)
		if result.HasFailures() {
			return errors.New(errors.ErrModuleFailed, "one or more modules failed to gather")
		}
		return nil
	},
}

func init() {
	gatherCmd.Flags().StringSliceVarP(&gatherModules, "module", "m", nil,
		"Restrict the run to the named modules (repeatable)")
}
