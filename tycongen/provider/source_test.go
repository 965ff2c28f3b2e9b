package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceBuildSchema(t *testing.T) {
	var p SourceProvider
	schema, err := p.BuildSchema(context.Background(), SourceOptions{
		Packages: []string{"./testdata/palette"},
	})
	require.NoError(t, err)

	assert.Equal(t, "palette", schema.Package.Name)
	require.Len(t, schema.Enums, 2)

	color := schema.FindEnum("Color")
	require.NotNil(t, color)
	assert.Equal(t, "int32", color.Underlying.Name)
	assert.Equal(t, "Color identifies a render channel.", color.Documentation.Summary)
	require.Len(t, color.Members, 3)
	assert.Equal(t, []int64{0, 1, 2}, memberValues(t, color))
	assert.Equal(t, "Red", color.Members[0].Name)
	assert.Equal(t, "Red is the default channel.", color.Members[0].Documentation.Summary)

	mode := schema.FindEnum("Mode")
	require.NotNil(t, mode)
	// Declaration order, not value or alphabetical order.
	assert.Equal(t, "ModeOff", mode.Members[0].Name)
	assert.Equal(t, "ModeOn", mode.Members[1].Name)
	assert.Equal(t, "ModeAuto", mode.Members[2].Name)
	assert.Equal(t, []int64{4, 1, 2}, memberValues(t, mode))

	assert.Nil(t, schema.FindEnum("Label"))
	assert.Nil(t, schema.FindEnum("hidden"))
}

func TestSourceTypeFilter(t *testing.T) {
	var p SourceProvider
	schema, err := p.BuildSchema(context.Background(), SourceOptions{
		Packages: []string{"./testdata/palette"},
		Types:    []string{"Mode"},
	})
	require.NoError(t, err)
	require.Len(t, schema.Enums, 1)
	assert.Equal(t, "Mode", schema.Enums[0].Name)

	_, err = p.BuildSchema(context.Background(), SourceOptions{
		Packages: []string{"./testdata/palette"},
		Types:    []string{"Missing"},
	})
	assert.ErrorContains(t, err, "Missing")
}

func TestSourceNoPackages(t *testing.T) {
	var p SourceProvider
	_, err := p.BuildSchema(context.Background(), SourceOptions{})
	assert.ErrorContains(t, err, "no packages")
}
