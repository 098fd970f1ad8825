package adapters

import (
	"go.uber.org/zap"

	"playdeck/internal/playlist"
)

var demoTracks = []playlist.Track{
	{Title: "Bohemian Rhapsody", Artist: "Queen", Duration: 354, Genre: "Rock", Year: 1975, Path: "queen_bohemian.mp3"},
	{Title: "Stairway to Heaven", Artist: "Led Zeppelin", Duration: 482, Genre: "Rock", Year: 1971, Path: "lz_stairway.mp3"},
	{Title: "Hotel California", Artist: "Eagles", Duration: 391, Genre: "Rock", Year: 1976, Path: "eagles_hotel.mp3"},
	{Title: "Imagine", Artist: "John Lennon", Duration: 183, Genre: "Pop", Year: 1971, Path: "lennon_imagine.mp3"},
	{Title: "Sweet Child O' Mine", Artist: "Guns N' Roses", Duration: 356, Genre: "Rock", Year: 1987, Path: "gnr_sweet_child.mp3"},
	{Title: "Billie Jean", Artist: "Michael Jackson", Duration: 294, Genre: "Pop", Year: 1982, Path: "mj_billie_jean.mp3"},
	{Title: "Smells Like Teen Spirit", Artist: "Nirvana", Duration: 301, Genre: "Grunge", Year: 1991, Path: "nirvana_teen_spirit.mp3"},
	{Title: "Yesterday", Artist: "The Beatles", Duration: 125, Genre: "Pop", Year: 1965, Path: "beatles_yesterday.mp3"},
}

// DemoAdapter serves the built-in demonstration tracks
type DemoAdapter struct {
	BaseAdapter
}

// NewDemoAdapter creates a new DemoAdapter
func NewDemoAdapter(logger *zap.Logger) *DemoAdapter {
	return &DemoAdapter{BaseAdapter: NewBaseAdapter("Demo", logger)}
}

// LoadTracks returns a fresh copy of the demo tracks
func (a *DemoAdapter) LoadTracks() ([]playlist.Track, error) {
	a.ResetStats()
	tracks := make([]playlist.Track, len(demoTracks))
	copy(tracks, demoTracks)
	a.RecordLoaded(len(tracks))
	return tracks, nil
}
