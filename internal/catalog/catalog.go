package catalog

import "strings"

const artworkBase = "https://images.pexels.com/photos/"

// Catalog is a fixed, ordered list of songs with unique ids.
type Catalog struct {
	songs []Song
	index map[string]int
}

// New builds a catalog from songs. Later duplicates of an id are dropped
// so ids stay unique.
func New(songs []Song) *Catalog {
	c := &Catalog{index: make(map[string]int, len(songs))}
	for _, song := range songs {
		if _, dup := c.index[song.ID]; dup {
			continue
		}
		c.index[song.ID] = len(c.songs)
		c.songs = append(c.songs, song)
	}
	return c
}

// Default returns the built-in five-song catalog.
func Default() *Catalog {
	return New([]Song{
		{
			ID:         "1",
			Title:      "Faded",
			Artist:     "Alan Walker",
			Album:      "Different World",
			Duration:   "3:33",
			ArtworkURL: artwork("210922"),
			Liked:      true,
		},
		{
			ID:         "2",
			Title:      "Alone",
			Artist:     "Alan Walker",
			Album:      "Different World",
			Duration:   "2:41",
			ArtworkURL: artwork("1190297"),
		},
		{
			ID:         "3",
			Title:      "The Spectre",
			Artist:     "Alan Walker",
			Album:      "Different World",
			Duration:   "3:13",
			ArtworkURL: artwork("2034851"),
		},
		{
			ID:         "4",
			Title:      "Darkside",
			Artist:     "Alan Walker",
			Album:      "Different World",
			Duration:   "3:27",
			ArtworkURL: artwork("1105666"),
		},
		{
			ID:         "5",
			Title:      "On My Way",
			Artist:     "Alan Walker, Sabrina Carpenter & Farruko",
			Album:      "Different World",
			Duration:   "3:21",
			ArtworkURL: artwork("3721941"),
		},
	})
}

func artwork(photoID string) string {
	return artworkBase + photoID + "/pexels-photo-" + photoID + ".jpeg?auto=compress&cs=tinysrgb&w=300"
}

// Len returns the number of songs.
func (c *Catalog) Len() int {
	return len(c.songs)
}

// Songs returns a copy of the catalog in order.
func (c *Catalog) Songs() []Song {
	out := make([]Song, len(c.songs))
	copy(out, c.songs)
	return out
}

// Lookup returns the song with the given id.
func (c *Catalog) Lookup(id string) (Song, bool) {
	idx, ok := c.index[id]
	if !ok {
		return Song{}, false
	}
	return c.songs[idx], true
}

// Search returns, in catalog order, the songs whose title, artist, or
// album contains query case-insensitively. A query that is empty after
// trimming matches nothing. Matching itself uses the untrimmed query.
func (c *Catalog) Search(query string) []Song {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	needle := strings.ToLower(query)

	var out []Song
	for _, song := range c.songs {
		if matches(song, needle) {
			out = append(out, song)
		}
	}
	return out
}

func matches(song Song, needle string) bool {
	return strings.Contains(strings.ToLower(song.Title), needle) ||
		strings.Contains(strings.ToLower(song.Artist), needle) ||
		strings.Contains(strings.ToLower(song.Album), needle)
}
