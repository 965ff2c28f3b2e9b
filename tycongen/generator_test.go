package tycongen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyconlabs/tycon/tycongen/sink"
)

const colorsDSL = `
package colors

enum Color int32 {
    Red
    Green = 5
    Blue
}
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateFromFiles(t *testing.T) {
	input := writeTemp(t, "colors.tycon", colorsDSL)

	out := sink.NewMemorySink()
	result, err := FromFiles(input).Generate(context.Background(), out)
	require.NoError(t, err)

	require.Equal(t, []string{"colors_tycon.go"}, result.Files)
	assert.Empty(t, result.Warnings)

	src := string(out.Get("colors_tycon.go"))
	assert.Contains(t, src, "package colors")
	assert.Contains(t, src, "func ParseColor(s string) (Color, error)")
}

func TestGenerateFromManifest(t *testing.T) {
	input := writeTemp(t, "colors.yaml", `
package: colors
enums:
  - name: Color
    type: int32
    members: [Red, "Green = 5", Blue]
`)

	out := sink.NewMemorySink()
	result, err := FromManifest(input).Generate(context.Background(), out)
	require.NoError(t, err)
	require.Equal(t, []string{"colors_tycon.go"}, result.Files)
	assert.Contains(t, string(out.Get("colors_tycon.go")), "[]int32{0, 5, 6}")
}

func TestGenerateToDir(t *testing.T) {
	input := writeTemp(t, "colors.tycon", colorsDSL)
	dir := t.TempDir()

	result, err := FromFiles(input).
		WithHeader("Source: colors.tycon").
		ToDir(dir)
	require.NoError(t, err)
	require.Len(t, result.Files, 1)

	src, err := os.ReadFile(filepath.Join(dir, "colors_tycon.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "// Source: colors.tycon")
}

func TestGeneratePackageOverride(t *testing.T) {
	input := writeTemp(t, "colors.tycon", colorsDSL)

	out := sink.NewMemorySink()
	result, err := FromFiles(input).WithPackage("palette").Generate(context.Background(), out)
	require.NoError(t, err)
	require.Equal(t, []string{"palette_tycon.go"}, result.Files)
	assert.Contains(t, string(out.Get("palette_tycon.go")), "package palette")
}

func TestGenerateWithoutOverwrite(t *testing.T) {
	input := writeTemp(t, "colors.tycon", colorsDSL)
	dir := t.TempDir()

	_, err := FromFiles(input).ToDir(dir)
	require.NoError(t, err)

	_, err = FromFiles(input).WithoutOverwrite().ToDir(dir)
	require.ErrorContains(t, err, "already exists")
}

func TestGenerateInvalidInput(t *testing.T) {
	input := writeTemp(t, "bad.tycon", "enum Color int32 {\n}\n")

	out := sink.NewMemorySink()
	_, err := FromFiles(input).Generate(context.Background(), out)
	require.ErrorContains(t, err, "no constants declared")
	assert.Empty(t, out.Files())
}

func TestGenerateMemberCollisionAcrossEnums(t *testing.T) {
	input := writeTemp(t, "clash.tycon", `
package p

enum Color int32 {
    Red
}

enum Paint int {
    Red
}
`)

	// The two Red instances would redeclare one package-level var, so
	// generation must fail instead of writing non-compiling output.
	out := sink.NewMemorySink()
	_, err := FromFiles(input).Generate(context.Background(), out)
	require.ErrorContains(t, err, "Red")
	require.ErrorContains(t, err, "already declared")
	assert.Empty(t, out.Files())
}

func TestGenerateEmptySchema(t *testing.T) {
	input := writeTemp(t, "empty.tycon", "package colors\n")

	out := sink.NewMemorySink()
	_, err := FromFiles(input).Generate(context.Background(), out)
	require.ErrorContains(t, err, "no definitions")
}

func TestCheck(t *testing.T) {
	good := writeTemp(t, "colors.tycon", colorsDSL)
	warnings, err := FromFiles(good).Check(context.Background())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	bad := writeTemp(t, "bad.tycon", "enum C int {\n    A = B\n}\n")
	_, err = FromFiles(bad).Check(context.Background())
	require.Error(t, err)
}

func TestToDirValidatesConfig(t *testing.T) {
	input := writeTemp(t, "colors.tycon", colorsDSL)

	_, err := FromFiles(input).ToDir("")
	require.ErrorContains(t, err, "OutDir")

	_, err = FromFiles(input).WithPackage("9bad").ToDir(t.TempDir())
	require.ErrorContains(t, err, "identifier")
}

func TestGenerateFromPackages(t *testing.T) {
	// The provider package carries the loader tests; here only the
	// plumbing for the source mode is exercised.
	_, err := FromPackages().Generate(context.Background(), sink.NewMemorySink())
	require.ErrorContains(t, err, "no packages")
}
