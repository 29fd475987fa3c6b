package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func indexOf(names ...string) *Index {
	return NewIndex(namedBeers(names...))
}

func TestSearchEmptyQueryReturnsEverything(t *testing.T) {
	ix := indexOf("Arcade Nation", "Buzz", "Punk IPA")
	got := ix.Search("")
	require.Len(t, got, 3)
	assert.Equal(t, "Arcade Nation", got[0].Name)
	assert.Equal(t, "Punk IPA", got[2].Name)
}

func TestSearchMatchesApproximately(t *testing.T) {
	ix := indexOf("Arcade Nation", "Buzz", "Libertine Porter", "Punk IPA", "Trashy Blonde")

	got := ix.Search("punk")
	require.NotEmpty(t, got)
	assert.Equal(t, "Punk IPA", got[0].Name)

	// Subsequence matching tolerates dropped characters.
	got = ix.Search("pnk")
	require.NotEmpty(t, got)
	assert.Equal(t, "Punk IPA", got[0].Name)

	got = ix.Search("blonde")
	require.NotEmpty(t, got)
	assert.Equal(t, "Trashy Blonde", got[0].Name)
}

func TestSearchNoMatch(t *testing.T) {
	ix := indexOf("Buzz", "Punk IPA")
	assert.Empty(t, ix.Search("xyzzy"))
}

func TestSearchIsDeterministic(t *testing.T) {
	ix := indexOf("Pale Ale A", "Pale Ale B", "Pale Ale C", "Punk IPA")
	first := ix.Search("pale")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ix.Search("pale"))
	}
	// Equal-distance matches keep name order.
	require.True(t, len(first) >= 3)
	assert.Equal(t, "Pale Ale A", first[0].Name)
	assert.Equal(t, "Pale Ale B", first[1].Name)
	assert.Equal(t, "Pale Ale C", first[2].Name)
}
