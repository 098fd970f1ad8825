package playlist

import (
	"time"

	"github.com/google/uuid"

	"playdeck/internal/utils"
)

// Rand is the source of randomness used by shuffle mode.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
}

// Playlist represents a named, ordered collection of tracks with a playback cursor
type Playlist struct {
	ID        string
	Name      string
	CreatedAt time.Time

	tracks  []Track
	cursor  int // -1 when no track is selected
	playing bool
	shuffle bool
	rng     Rand
}

// New creates an empty playlist. rng drives shuffle mode; nil selects a
// seeded generator.
func New(name string, rng Rand) *Playlist {
	if rng == nil {
		rng = utils.NewRand()
	}
	return &Playlist{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
		tracks:    make([]Track, 0),
		cursor:    -1,
		rng:       rng,
	}
}

// Add appends a copy of the track to the end of the playlist
func (p *Playlist) Add(track Track) {
	p.tracks = append(p.tracks, track)
}

// Remove deletes the track at index and returns it.
// Returns false if index is out of bounds.
//
// Cursor policy: removing a track before the cursor shifts the cursor left so
// it keeps pointing at the same track; removing the selected track clears the
// selection.
func (p *Playlist) Remove(index int) (Track, bool) {
	if index < 0 || index >= len(p.tracks) {
		return Track{}, false
	}
	removed := p.tracks[index]
	p.tracks = append(p.tracks[:index], p.tracks[index+1:]...)

	switch {
	case p.cursor < 0:
	case index < p.cursor:
		p.cursor--
	case index == p.cursor:
		p.cursor = -1
	}
	if len(p.tracks) == 0 {
		p.cursor = -1
	}
	return removed, true
}

// Current returns the selected track, or false if nothing is selected
func (p *Playlist) Current() (Track, bool) {
	if p.cursor < 0 || p.cursor >= len(p.tracks) {
		return Track{}, false
	}
	return p.tracks[p.cursor], true
}

// Next moves the cursor forward and returns the newly selected track.
// In shuffle mode any index may be picked, including the current one.
func (p *Playlist) Next() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}

	switch {
	case p.shuffle:
		p.cursor = p.rng.IntN(len(p.tracks))
	case p.cursor < 0:
		p.cursor = 0
	default:
		p.cursor = (p.cursor + 1) % len(p.tracks)
	}
	return p.Current()
}

// Previous moves the cursor back one track, wrapping to the end.
// It always walks sequentially, even in shuffle mode.
func (p *Playlist) Previous() (Track, bool) {
	if len(p.tracks) == 0 {
		return Track{}, false
	}

	switch {
	case p.cursor < 0:
		p.cursor = 0
	case p.cursor == 0:
		p.cursor = len(p.tracks) - 1
	default:
		p.cursor--
	}
	return p.Current()
}

// Play marks the playlist as playing and selects the first track if nothing
// is selected yet. It does not advance.
func (p *Playlist) Play() {
	p.playing = true
	if p.cursor < 0 && len(p.tracks) > 0 {
		p.cursor = 0
	}
}

// Stop clears the playing flag; the cursor is kept
func (p *Playlist) Stop() {
	p.playing = false
}

// ToggleShuffle flips shuffle mode and returns the new value
func (p *Playlist) ToggleShuffle() bool {
	p.shuffle = !p.shuffle
	return p.shuffle
}

// Shuffle reports whether shuffle mode is on
func (p *Playlist) Shuffle() bool {
	return p.shuffle
}

// Playing reports whether the playlist is marked as playing
func (p *Playlist) Playing() bool {
	return p.playing
}

// Position returns the cursor index, or false if nothing is selected
func (p *Playlist) Position() (int, bool) {
	if p.cursor < 0 {
		return 0, false
	}
	return p.cursor, true
}

// TotalDuration returns the sum of all track durations in seconds
func (p *Playlist) TotalDuration() int {
	total := 0
	for _, t := range p.tracks {
		total += t.Duration
	}
	return total
}

// Len returns the number of tracks
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// Tracks returns a copy of all tracks
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}
