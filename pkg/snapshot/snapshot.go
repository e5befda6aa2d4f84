// Package snapshot loads serialized accessibility-tree dumps into
// in-memory element trees the engine can query. Formats are pluggable:
// each decoder registers itself by name and claims file extensions;
// Load picks the decoder from the file extension.
package snapshot

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
	"github.com/e-sung/AxQuery/pkg/registry"
)

// Decoder turns serialized snapshot bytes into an element tree.
type Decoder interface {
	// Name is the format name the decoder registers under.
	Name() string

	// Extensions lists the file extensions (with dot) this decoder claims.
	Extensions() []string

	// Decode parses a whole snapshot document.
	Decode(data []byte) (*axnode.Element, error)
}

var decoders = registry.New[Decoder]()

// RegisterDecoder adds a snapshot format. Built-in formats register
// through init(); hosts may add their own.
func RegisterDecoder(d Decoder) error {
	return decoders.Register(d.Name(), d)
}

// Formats lists the registered format names.
func Formats() []string {
	return decoders.List()
}

// DecoderFor resolves a decoder by format name.
func DecoderFor(format string) (Decoder, error) {
	d, err := decoders.Get(strings.ToLower(format))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotFormat,
			"no decoder for format %q", format)
	}
	return d, nil
}

// DecoderForPath resolves a decoder from a file extension.
func DecoderForPath(path string) (Decoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, name := range decoders.List() {
		d, err := decoders.Get(name)
		if err != nil {
			continue
		}
		for _, candidate := range d.Extensions() {
			if candidate == ext {
				return d, nil
			}
		}
	}
	return nil, errors.Newf(errors.ErrSnapshotFormat,
		"no decoder claims extension %q", ext)
}

// Load reads a snapshot file and decodes it by extension.
func Load(path string) (*axnode.Element, error) {
	d, err := DecoderForPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound,
			"failed to read snapshot %s", path)
	}

	root, err := d.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSnapshotParse,
			"failed to decode snapshot %s as %s", path, d.Name())
	}
	return root, nil
}

// nodeSpec is the wire shape shared by the structured decoders. The XML
// decoder maps attributes and child elements onto the same fields.
type nodeSpec struct {
	Kind       string            `yaml:"kind" json:"kind" toml:"kind"`
	Traits     []string          `yaml:"traits" json:"traits" toml:"traits"`
	Label      *string           `yaml:"label" json:"label" toml:"label"`
	Value      *string           `yaml:"value" json:"value" toml:"value"`
	Hint       *string           `yaml:"hint" json:"hint" toml:"hint"`
	ID         *string           `yaml:"id" json:"id" toml:"id"`
	Actions    []string          `yaml:"actions" json:"actions" toml:"actions"`
	Accessible bool              `yaml:"accessible" json:"accessible" toml:"accessible"`
	Fields     map[string]string `yaml:"fields" json:"fields" toml:"fields"`
	Children   []nodeSpec        `yaml:"children" json:"children" toml:"children"`
}

func (s nodeSpec) build() (*axnode.Element, error) {
	kind := axnode.KindView
	if s.Kind != "" {
		kind = axnode.Kind(s.Kind)
	}
	el := axnode.NewElement(kind)

	traits, err := axnode.ParseTraits(s.Traits)
	if err != nil {
		return nil, err
	}
	el.SetTraits(traits)

	if s.Label != nil {
		el.SetLabel(*s.Label)
	}
	if s.Value != nil {
		el.SetValue(*s.Value)
	}
	if s.Hint != nil {
		el.SetHint(*s.Hint)
	}
	if s.ID != nil {
		el.SetIdentifier(*s.ID)
	}
	for _, action := range s.Actions {
		el.AddAction(action)
	}
	el.SetAccessible(s.Accessible)
	for name, value := range s.Fields {
		el.SetField(name, value)
	}

	for _, childSpec := range s.Children {
		child, err := childSpec.build()
		if err != nil {
			return nil, err
		}
		el.AddChild(child)
	}
	return el, nil
}
