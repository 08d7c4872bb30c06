package releaseutils

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ems-solar/release-tools/contextutils"
	"github.com/ems-solar/release-tools/githubutils"
	"github.com/ems-solar/release-tools/manifestutils"
	"github.com/ems-solar/release-tools/versionutils"
)

// ReleaseDescriptor is the tag/title pair used to publish a versioned
// release.
type ReleaseDescriptor struct {
	Tag   string
	Title string
}

// NewReleaseDescriptor derives the release descriptor for a version. Same
// version in, same descriptor out, every time.
func NewReleaseDescriptor(version *versionutils.Version) *ReleaseDescriptor {
	return &ReleaseDescriptor{
		Tag:   version.TagName(),
		Title: "Release " + version.TagName(),
	}
}

// ReleasePublisher derives release descriptors from a manifest and publishes
// them through a repo client. Release notes are generated by the release
// host, not here.
type ReleasePublisher struct {
	fs     afero.Fs
	client githubutils.RepoClient
}

func NewReleasePublisher(fs afero.Fs, client githubutils.RepoClient) *ReleasePublisher {
	return &ReleasePublisher{
		fs:     fs,
		client: client,
	}
}

func (p *ReleasePublisher) DeriveRelease(manifestPath string) (*ReleaseDescriptor, error) {
	manifest, err := manifestutils.NewManifestFile(p.fs, manifestPath).Read()
	if err != nil {
		return nil, err
	}
	return NewReleaseDescriptor(manifest.Version()), nil
}

// PublishRelease derives the descriptor for the manifest's current version
// and creates the release. Re-running against an already released version is
// a no-op, matching how rebuilt pushes behave in CI.
func (p *ReleasePublisher) PublishRelease(ctx context.Context, manifestPath string) (*ReleaseDescriptor, error) {
	descriptor, err := p.DeriveRelease(manifestPath)
	if err != nil {
		return nil, err
	}

	// best effort, the previous tag is only logged for context
	if latestTag, err := p.client.FindLatestReleaseTag(ctx); err != nil {
		contextutils.LoggerFrom(ctx).Warnw("could not determine the latest release tag",
			zap.Error(err))
	} else if latestTag != "" {
		contextutils.LoggerFrom(ctx).Infow("publishing release",
			zap.String("tag", descriptor.Tag),
			zap.String("previousTag", latestTag))
	}

	exists, err := p.client.ReleaseExists(ctx, descriptor.Tag)
	if err != nil {
		return nil, err
	}
	if exists {
		contextutils.LoggerFrom(ctx).Infow("release already exists, skipping",
			zap.String("tag", descriptor.Tag))
		return descriptor, nil
	}

	if _, err := p.client.CreateRelease(ctx, githubutils.ReleaseSpec{
		Tag:   descriptor.Tag,
		Title: descriptor.Title,
	}); err != nil {
		return nil, err
	}
	return descriptor, nil
}
