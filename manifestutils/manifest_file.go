package manifestutils

import (
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

var (
	ManifestReadError = func(err error, path string) error {
		return eris.Wrapf(err, "error reading manifest %s", path)
	}
	ManifestWriteError = func(err error, path string) error {
		return eris.Wrapf(err, "error writing manifest %s", path)
	}
)

// ManifestFile reads and rewrites a single manifest on disk. Writes go to a
// temp file in the manifest's directory and are renamed over the original, so
// a half-written manifest is never observable.
type ManifestFile struct {
	fs   afero.Fs
	path string
}

func NewManifestFile(fs afero.Fs, path string) *ManifestFile {
	return &ManifestFile{
		fs:   fs,
		path: path,
	}
}

func (f *ManifestFile) Path() string {
	return f.path
}

func (f *ManifestFile) Read() (*Manifest, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, ManifestReadError(err, f.path)
	}
	return Parse(data)
}

func (f *ManifestFile) Write(manifest *Manifest) error {
	data, err := manifest.Bytes()
	if err != nil {
		return ManifestWriteError(err, f.path)
	}

	tmp, err := afero.TempFile(f.fs, filepath.Dir(f.path), filepath.Base(f.path))
	if err != nil {
		return ManifestWriteError(err, f.path)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		f.fs.Remove(tmpPath)
		return ManifestWriteError(err, f.path)
	}
	if err := tmp.Close(); err != nil {
		f.fs.Remove(tmpPath)
		return ManifestWriteError(err, f.path)
	}
	if err := f.fs.Rename(tmpPath, f.path); err != nil {
		f.fs.Remove(tmpPath)
		return ManifestWriteError(err, f.path)
	}
	if err := f.fs.Chmod(f.path, 0644); err != nil {
		return ManifestWriteError(err, f.path)
	}
	return nil
}
