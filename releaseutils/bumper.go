package releaseutils

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/ems-solar/release-tools/contextutils"
	"github.com/ems-solar/release-tools/manifestutils"
	"github.com/ems-solar/release-tools/versionutils"
)

// VersionBumper increments the patch component of a manifest's version and
// rewrites the manifest in place. The returned version is the sole source of
// truth for the new version; callers must not recompute it from the manifest.
type VersionBumper struct {
	fs afero.Fs
}

func NewVersionBumper(fs afero.Fs) *VersionBumper {
	return &VersionBumper{
		fs: fs,
	}
}

func (b *VersionBumper) Bump(ctx context.Context, manifestPath string) (*versionutils.Version, error) {
	file := manifestutils.NewManifestFile(b.fs, manifestPath)
	manifest, err := file.Read()
	if err != nil {
		return nil, err
	}

	oldVersion := manifest.Version()
	newVersion := oldVersion.BumpPatch()
	manifest.SetVersion(newVersion)
	if err := file.Write(manifest); err != nil {
		return nil, err
	}

	contextutils.LoggerFrom(ctx).Infow("bumped manifest version",
		zap.String("manifest", manifestPath),
		zap.String("oldVersion", oldVersion.String()),
		zap.String("newVersion", newVersion.String()))
	return newVersion, nil
}

// BumpCommitMessage builds the commit message for a bump from the bump's own
// result.
func BumpCommitMessage(version *versionutils.Version) string {
	return fmt.Sprintf("Bump version to %s", version.String())
}
