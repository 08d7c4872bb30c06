package commands

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ems-solar/release-tools/internal"
	"github.com/ems-solar/release-tools/releaseutils"
)

func BumpCommand(ctx context.Context, globalFlags *internal.GlobalFlags) *cobra.Command {
	opts := &bumpOptions{
		GlobalFlags: globalFlags,
	}

	cmd := &cobra.Command{
		Use:   "bump",
		Short: "Increment the patch component of the manifest's version and rewrite the manifest",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doBump(ctx, opts)
		},
	}

	opts.addToFlags(cmd.Flags())

	return cmd
}

type bumpOptions struct {
	*internal.GlobalFlags

	printCommitMessage bool
}

func (o *bumpOptions) addToFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&o.printCommitMessage, "commit-message", false, "print the commit message for the bump instead of the bare version")
}

func doBump(ctx context.Context, opts *bumpOptions) error {
	bumper := releaseutils.NewVersionBumper(afero.NewOsFs())
	newVersion, err := bumper.Bump(ctx, opts.ManifestPath)
	if err != nil {
		return err
	}

	if opts.printCommitMessage {
		fmt.Println(releaseutils.BumpCommitMessage(newVersion))
	} else {
		fmt.Println(newVersion.String())
	}
	return nil
}
