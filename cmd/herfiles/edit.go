package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/herfiles/herfiles/pkg/config"
	"github.com/herfiles/herfiles/pkg/errors"
	"github.com/herfiles/herfiles/pkg/filesystem"
	"github.com/herfiles/herfiles/pkg/modules/editor"
	"github.com/herfiles/herfiles/pkg/paths"
	"github.com/herfiles/herfiles/pkg/system"
)

var editCmd = &cobra.Command{
	Use:   "edit [snapshot-root]",
	Short: "Open the gathered editor settings in your editor",
	Long: `Edit opens the snapshot's settings.json so you can tweak it before
installing it elsewhere. The default root is the configured snapshot
directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := paths.NewEnv()
		if err != nil {
			return err
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		root := env.SnapshotDefault
		if len(args) == 1 {
			root = args[0]
		}

		target := filepath.Join(root, editor.FolderName, editor.SettingsFileName)
		if !filesystem.Exists(filesystem.NewOS(), target) {
			return errors.Newf(errors.ErrNotFound,
				"no gathered settings at %s; run gather first", target)
		}

		return system.NewEditorCLI(cfg.EditorBinary).OpenAt(target, 1)
	},
}
