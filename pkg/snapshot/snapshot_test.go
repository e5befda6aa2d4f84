package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-sung/AxQuery/pkg/axnode"
	"github.com/e-sung/AxQuery/pkg/errors"
)

const yamlFixture = `
kind: view
children:
  - kind: button
    traits: [button]
    label: Submit
    id: submit-button
    hint: Sends the form
    actions: [long-press]
    accessible: true
    fields:
      title: Submit
  - kind: text-field
    accessible: true
    fields:
      placeholder: Email
      text: user@example.com
`

const jsonFixture = `{
  "kind": "view",
  "children": [
    {
      "kind": "button",
      "traits": ["button"],
      "label": "Submit",
      "id": "submit-button",
      "hint": "Sends the form",
      "actions": ["long-press"],
      "accessible": true,
      "fields": {"title": "Submit"}
    },
    {
      "kind": "text-field",
      "accessible": true,
      "fields": {"placeholder": "Email", "text": "user@example.com"}
    }
  ]
}`

const tomlFixture = `
kind = "view"

[[children]]
kind = "button"
traits = ["button"]
label = "Submit"
id = "submit-button"
hint = "Sends the form"
actions = ["long-press"]
accessible = true

[children.fields]
title = "Submit"

[[children]]
kind = "text-field"
accessible = true

[children.fields]
placeholder = "Email"
text = "user@example.com"
`

const xmlFixture = `
<node kind="view">
  <node kind="button" traits="button" label="Submit" id="submit-button"
        hint="Sends the form" accessible="true">
    <action>long-press</action>
    <field name="title">Submit</field>
  </node>
  <node kind="text-field" accessible="true">
    <field name="placeholder">Email</field>
    <field name="text">user@example.com</field>
  </node>
</node>`

// Every structured format must produce the same tree from the same
// logical document.
func TestDecoders_EquivalentFixtures(t *testing.T) {
	fixtures := map[string]string{
		"yaml": yamlFixture,
		"json": jsonFixture,
		"toml": tomlFixture,
		"xml":  xmlFixture,
	}

	for format, fixture := range fixtures {
		t.Run(format, func(t *testing.T) {
			d, err := DecoderFor(format)
			require.NoError(t, err)

			root, err := d.Decode([]byte(fixture))
			require.NoError(t, err)

			assert.Equal(t, axnode.KindView, root.Kind())
			children := root.Children()
			require.Len(t, children, 2)

			button := children[0]
			assert.Equal(t, axnode.KindButton, button.Kind())
			assert.True(t, button.Traits().Has(axnode.TraitButton))
			require.NotNil(t, button.Label())
			assert.Equal(t, "Submit", *button.Label())
			require.NotNil(t, button.Identifier())
			assert.Equal(t, "submit-button", *button.Identifier())
			require.NotNil(t, button.Hint())
			assert.Equal(t, "Sends the form", *button.Hint())
			assert.Equal(t, []string{"long-press"}, button.ActionNames())
			assert.True(t, button.IsAccessibilityElement())
			require.NotNil(t, button.Field(axnode.FieldTitle))
			assert.Equal(t, "Submit", *button.Field(axnode.FieldTitle))

			field := children[1]
			assert.Equal(t, axnode.KindTextField, field.Kind())
			assert.Nil(t, field.Label())
			require.NotNil(t, field.Field(axnode.FieldPlaceholder))
			assert.Equal(t, "Email", *field.Field(axnode.FieldPlaceholder))

			// Parent links must be wired for exposure resolution.
			chain := children[0].ContainerChain()
			require.Len(t, chain, 1)
		})
	}
}

func TestDecode_UnknownTrait(t *testing.T) {
	d, err := DecoderFor("yaml")
	require.NoError(t, err)

	_, err = d.Decode([]byte("kind: button\ntraits: [bogus]\n"))
	assert.Error(t, err)
}

func TestDecode_KindDefaultsToView(t *testing.T) {
	d, err := DecoderFor("yaml")
	require.NoError(t, err)

	root, err := d.Decode([]byte("label: anonymous\n"))
	require.NoError(t, err)
	assert.Equal(t, axnode.KindView, root.Kind())
}

func TestDecoderFor_UnknownFormat(t *testing.T) {
	_, err := DecoderFor("protobuf")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSnapshotFormat))
}

func TestDecoderForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "ui.yaml", want: "yaml"},
		{path: "ui.yml", want: "yaml"},
		{path: "/tmp/dump.JSON", want: "json"},
		{path: "fixtures/screen.toml", want: "toml"},
		{path: "screen.xml", want: "xml"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			d, err := DecoderForPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Name())
		})
	}

	_, err := DecoderForPath("ui.bin")
	assert.True(t, errors.IsErrorCode(err, errors.ErrSnapshotFormat))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "screen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlFixture), 0644))

	root, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, root.Children(), 2)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoad_MalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.True(t, errors.IsErrorCode(err, errors.ErrSnapshotParse))
}

func TestXML_ExplicitEmptyLabelIsPreserved(t *testing.T) {
	d, err := DecoderFor("xml")
	require.NoError(t, err)

	root, err := d.Decode([]byte(`<node kind="label" label="" accessible="true"/>`))
	require.NoError(t, err)

	// Present-but-empty is distinct from absent.
	require.NotNil(t, root.Label())
	assert.Equal(t, "", *root.Label())
}

func TestXML_RejectsUnknownElements(t *testing.T) {
	d, err := DecoderFor("xml")
	require.NoError(t, err)

	_, err = d.Decode([]byte(`<node kind="view"><bogus/></node>`))
	assert.Error(t, err)

	_, err = d.Decode([]byte(`<tree/>`))
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	assert.Equal(t, []string{"json", "toml", "xml", "yaml"}, Formats())
}
