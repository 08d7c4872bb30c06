package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/ems-solar/release-tools/contextutils"
	"github.com/ems-solar/release-tools/internal"
)

// Configure the CLI, including possible commands and input args.
func RootCommand(ctx context.Context) *cobra.Command {
	globalFlags := &internal.GlobalFlags{}

	cmd := &cobra.Command{
		Use:   "relctl [command]",
		Short: "CLI for bumping manifest versions and publishing tagged releases",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if globalFlags.Verbose {
				contextutils.SetLogLevel(zapcore.DebugLevel)
			} else {
				contextutils.SetLogLevelFromString(globalFlags.LogLevel)
			}
		},
		SilenceErrors: true,
	}

	// set global CLI flags
	globalFlags.AddToFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		BumpCommand(ctx, globalFlags),
		ReleaseCommand(ctx, globalFlags))

	return cmd
}
