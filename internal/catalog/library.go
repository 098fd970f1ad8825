package catalog

import (
	"strings"

	"playdeck/internal/converter"
	"playdeck/internal/playlist"
)

// Library is the append-only master list of known tracks
type Library struct {
	tracks []playlist.Track
	folder converter.TextFolder
}

// NewLibrary creates a library holding copies of tracks.
// folder normalises text for Search; nil selects plain case folding.
func NewLibrary(tracks []playlist.Track, folder converter.TextFolder) *Library {
	if folder == nil {
		folder = converter.NewCaseFolder()
	}
	l := &Library{
		tracks: make([]playlist.Track, len(tracks)),
		folder: folder,
	}
	copy(l.tracks, tracks)
	return l
}

// Add appends a track
func (l *Library) Add(track playlist.Track) {
	l.tracks = append(l.tracks, track)
}

// Track returns the track at index, or false if index is out of range
func (l *Library) Track(index int) (playlist.Track, bool) {
	if index < 0 || index >= len(l.tracks) {
		return playlist.Track{}, false
	}
	return l.tracks[index], true
}

// Tracks returns a copy of all tracks in library order
func (l *Library) Tracks() []playlist.Track {
	result := make([]playlist.Track, len(l.tracks))
	copy(result, l.tracks)
	return result
}

// Len returns the number of tracks
func (l *Library) Len() int {
	return len(l.tracks)
}

// Search returns every track whose title, artist or genre contains query,
// ignoring case, in library order. An empty query matches every track.
func (l *Library) Search(query string) []playlist.Track {
	needle := l.folder.Fold(query)
	var results []playlist.Track
	for _, t := range l.tracks {
		if strings.Contains(l.folder.Fold(t.Title), needle) ||
			strings.Contains(l.folder.Fold(t.Artist), needle) ||
			strings.Contains(l.folder.Fold(t.Genre), needle) {
			results = append(results, t)
		}
	}
	return results
}
