package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func titles(songs []Song) []string {
	out := make([]string, 0, len(songs))
	for _, song := range songs {
		out = append(out, song.Title)
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Equal(t, 5, c.Len())

	for _, song := range c.Songs() {
		assert.Contains(t, song.Artist, "Alan Walker")
		assert.NotEmpty(t, song.ArtworkURL)
	}

	faded, ok := c.Lookup("1")
	require.True(t, ok)
	assert.Equal(t, "Faded", faded.Title)
	assert.True(t, faded.Liked)

	_, ok = c.Lookup("missing")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	c := Default()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace", "   \t", nil},
		{"title", "spectre", []string{"The Spectre"}},
		{"case insensitive", "SPECTRE", []string{"The Spectre"}},
		{"no match", "zzz", nil},
		{"artist", "sabrina", []string{"On My Way"}},
		{"album matches all", "different world", []string{"Faded", "Alone", "The Spectre", "Darkside", "On My Way"}},
		{"substring in title", "on", []string{"Alone", "On My Way"}},
		{"leading space kept for matching", " spectre", []string{"The Spectre"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.query)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, titles(got))
		})
	}
}

func TestSongsReturnsCopy(t *testing.T) {
	c := Default()
	songs := c.Songs()
	songs[0].Title = "changed"

	again, _ := c.Lookup(songs[0].ID)
	assert.Equal(t, "Faded", again.Title)
}

func TestNewDropsDuplicateIDs(t *testing.T) {
	c := New([]Song{{ID: "a", Title: "first"}, {ID: "a", Title: "second"}, {ID: "b"}})
	require.Equal(t, 2, c.Len())
	song, _ := c.Lookup("a")
	assert.Equal(t, "first", song.Title)
}
