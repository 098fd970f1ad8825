package catalog

import "playdeck/internal/playlist"

// Status is a snapshot of the catalog for the status screen
type Status struct {
	Volume         int
	ActivePlaylist string // empty when HasActive is false
	HasActive      bool
	Track          playlist.Track
	HasTrack       bool
	Shuffle        bool
	Position       int // 1-based, 0 when no track is selected
	Length         int
	LibrarySize    int
	PlaylistCount  int
}

// Status collects the current state of the catalog
func (c *Catalog) Status() Status {
	s := Status{
		Volume:        c.volume,
		LibrarySize:   c.library.Len(),
		PlaylistCount: len(c.playlists),
	}

	p, ok := c.activePlaylist()
	if !ok {
		return s
	}
	s.ActivePlaylist, s.HasActive = c.active, true
	s.Track, s.HasTrack = p.Current()
	s.Shuffle = p.Shuffle()
	s.Length = p.Len()
	if pos, ok := p.Position(); ok {
		s.Position = pos + 1
	}
	return s
}
