package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Negativity-MC/apt-mc/internal/domain/registry"
)

func TestCompatible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		loaders []string
		want    bool
	}{
		{"paper", []string{"paper"}, true},
		{"spigot", []string{"spigot"}, true},
		{"purpur", []string{"purpur"}, true},
		{"bukkit", []string{"bukkit"}, true},
		{"mixed mod and plugin", []string{"fabric", "paper"}, true},
		{"uppercase tag", []string{"Paper"}, true},
		{"fabric only", []string{"fabric"}, false},
		{"forge only", []string{"forge", "neoforge"}, false},
		{"empty", nil, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Compatible(tt.loaders))
		})
	}
}

func TestAcceptedLoaders(t *testing.T) {
	t.Parallel()

	loaders := AcceptedLoaders()
	assert.Equal(t, []string{"spigot", "paper", "purpur", "bukkit"}, loaders)

	for _, loader := range loaders {
		assert.True(t, Compatible([]string{loader}))
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	input := []registry.Version{
		{ID: "a", VersionNumber: "3.0.0", Loaders: []string{"fabric"}},
		{ID: "b", VersionNumber: "2.0.0", Loaders: []string{"paper", "fabric"}},
		{ID: "c", VersionNumber: "1.5.0", Loaders: []string{"quilt"}},
		{ID: "d", VersionNumber: "1.0.0", Loaders: []string{"bukkit"}},
	}

	got := Filter(input)

	// Output is a subset of the input, relative order preserved.
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "d", got[1].ID)

	for _, v := range got {
		assert.True(t, Compatible(v.Loaders))
	}
}

func TestFilter_AllIncompatible(t *testing.T) {
	t.Parallel()

	input := []registry.Version{
		{ID: "a", Loaders: []string{"fabric"}},
		{ID: "b", Loaders: []string{"forge"}},
	}

	assert.Empty(t, Filter(input))
}

func TestFilter_Deterministic(t *testing.T) {
	t.Parallel()

	input := []registry.Version{
		{ID: "a", Loaders: []string{"paper"}},
		{ID: "b", Loaders: []string{"spigot"}},
	}

	first := Filter(input)
	second := Filter(input)
	assert.Equal(t, first, second)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := []registry.Version{
		{ID: "a", Loaders: []string{"fabric"}},
		{ID: "b", Loaders: []string{"paper"}},
	}

	_ = Filter(input)

	assert.Equal(t, "a", input[0].ID)
	assert.Equal(t, "b", input[1].ID)
}
