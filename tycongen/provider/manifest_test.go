package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestParseBasic(t *testing.T) {
	src := `
version: "1"
package: colors
enums:
  - name: Color
    type: int32
    doc: Palette used by the renderer.
    members:
      - Red
      - Green = 5
      - Blue
`
	var p ManifestProvider
	schema, err := p.Parse([]byte(src), "colors.yaml")
	require.NoError(t, err)

	assert.Equal(t, "colors", schema.Package.Name)
	require.Len(t, schema.Enums, 1)

	def := schema.Enums[0]
	assert.Equal(t, "Color", def.Name)
	assert.Equal(t, "int32", def.Underlying.Name)
	assert.Equal(t, "Palette used by the renderer.", def.Documentation.Summary)
	assert.Equal(t, []int64{0, 5, 6}, memberValues(t, def))
	require.Empty(t, def.Validate())
}

func TestManifestVersionDefaults(t *testing.T) {
	src := `
package: p
enums:
  - name: E
    type: int
    members: [A, B]
`
	var p ManifestProvider
	schema, err := p.Parse([]byte(src), "m.yaml")
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1}, memberValues(t, schema.Enums[0]))
}

func TestManifestErrors(t *testing.T) {
	var p ManifestProvider
	for name, src := range map[string]string{
		"bad yaml":       "enums: [unclosed",
		"bad version":    "version: \"7\"\npackage: p\n",
		"bad underlying": "package: p\nenums:\n  - name: E\n    type: string\n    members: [A]\n",
		"bad expression": "package: p\nenums:\n  - name: E\n    type: int\n    members: [\"A = 1 +\"]\n",
	} {
		_, err := p.Parse([]byte(src), "bad.yaml")
		assert.Error(t, err, name)
	}
}
