package commands

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ems-solar/release-tools/cliutils"
	"github.com/ems-solar/release-tools/githubutils"
	"github.com/ems-solar/release-tools/internal"
	"github.com/ems-solar/release-tools/releaseutils"
)

func ReleaseCommand(ctx context.Context, globalFlags *internal.GlobalFlags) *cobra.Command {
	opts := &releaseOptions{
		GlobalFlags: globalFlags,
	}

	cmd := &cobra.Command{
		Use:   "release",
		Short: "Create the tagged release for the manifest's current version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doRelease(ctx, opts)
		},
	}

	opts.addToFlags(cmd.Flags())

	return cmd
}

type releaseOptions struct {
	*internal.GlobalFlags

	repoOwner string
	repoName  string
	dryRun    bool
}

func (o *releaseOptions) addToFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&o.repoOwner, "owner", "o", "", "owner of the repo to release")
	flags.StringVarP(&o.repoName, "repo", "r", "", "name of the repo to release")
	flags.BoolVar(&o.dryRun, "dry-run", false, "derive and print the release tag and title without creating the release")

	cliutils.MustMarkFlagRequired(flags, "owner")
	cliutils.MustMarkFlagRequired(flags, "repo")
}

func doRelease(ctx context.Context, opts *releaseOptions) error {
	fs := afero.NewOsFs()

	if opts.dryRun {
		descriptor, err := releaseutils.NewReleasePublisher(fs, nil).DeriveRelease(opts.ManifestPath)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%s\n", descriptor.Tag, descriptor.Title)
		return nil
	}

	client, err := githubutils.GetClient(ctx)
	if err != nil {
		return err
	}
	repoClient := githubutils.NewRepoClient(client, opts.repoOwner, opts.repoName)

	publisher := releaseutils.NewReleasePublisher(fs, repoClient)
	descriptor, err := publisher.PublishRelease(ctx, opts.ManifestPath)
	if err != nil {
		return err
	}
	fmt.Println(descriptor.Tag)
	return nil
}
