package manifestutils

import (
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/ems-solar/release-tools/versionutils"
)

// VersionField is the one manifest field this package understands. Every
// other field is carried through a parse/serialize round trip untouched.
const VersionField = "version"

var (
	ManifestParseError = func(err error) error {
		return eris.Wrapf(err, "error parsing manifest")
	}
)

// Manifest is a typed view over a JSON manifest record. The version field is
// parsed and validated once at construction; all remaining fields are kept as
// raw JSON so a rewrite cannot corrupt content this package does not own.
type Manifest struct {
	fields  map[string]json.RawMessage
	version *versionutils.Version
}

func Parse(data []byte) (*Manifest, error) {
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, ManifestParseError(err)
	}

	rawVersion, found := fields[VersionField]
	if !found {
		return nil, versionutils.MissingVersionError()
	}
	var versionString string
	if err := json.Unmarshal(rawVersion, &versionString); err != nil {
		return nil, versionutils.MalformedVersionError(string(rawVersion))
	}
	version, err := versionutils.ParseVersion(versionString)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		fields:  fields,
		version: version,
	}, nil
}

func (m *Manifest) Version() *versionutils.Version {
	return m.version
}

func (m *Manifest) SetVersion(version *versionutils.Version) {
	m.version = version
}

// Field returns the raw JSON value of an opaque manifest field.
func (m *Manifest) Field(name string) (json.RawMessage, bool) {
	value, found := m.fields[name]
	return value, found
}

func (m *Manifest) Bytes() ([]byte, error) {
	versionValue, err := json.Marshal(m.version.String())
	if err != nil {
		return nil, err
	}
	m.fields[VersionField] = versionValue

	data, err := json.MarshalIndent(m.fields, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
