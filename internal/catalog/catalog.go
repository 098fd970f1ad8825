package catalog

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"go.uber.org/zap"

	"playdeck/internal/playlist"
	"playdeck/internal/utils"
)

const (
	// DefaultVolume is the volume a new catalog starts with
	DefaultVolume = 50
	// MaxVolume is the upper bound SetVolume clamps to
	MaxVolume = 100
	// RecommendationLimit caps the number of tracks Recommend returns
	RecommendationLimit = 5
)

// Rand is the randomness used for shuffle playback and random recommendations.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	playlist.Rand
	Uint32() uint32
}

// Catalog owns the library, the named playlists, the active playlist
// reference and the volume
type Catalog struct {
	library   *Library
	playlists map[string]*playlist.Playlist
	active    string // looked up by name on every use
	hasActive bool
	volume    int
	rng       Rand
	logger    *zap.Logger
}

// New creates a catalog around library with no playlists.
// A nil rng selects a seeded generator.
func New(library *Library, rng Rand, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	if rng == nil {
		rng = utils.NewRand()
	}
	return &Catalog{
		library:   library,
		playlists: make(map[string]*playlist.Playlist),
		volume:    DefaultVolume,
		rng:       rng,
		logger:    logger,
	}
}

// Library returns the master track list
func (c *Catalog) Library() *Library {
	return c.library
}

// Search delegates to the library search
func (c *Catalog) Search(query string) []playlist.Track {
	return c.library.Search(query)
}

// CreatePlaylist adds an empty playlist under name.
// Names are compared exactly; an existing playlist is left untouched.
func (c *Catalog) CreatePlaylist(name string) error {
	if _, ok := c.playlists[name]; ok {
		return fmt.Errorf("%w: playlist %q", ErrAlreadyExists, name)
	}
	c.playlists[name] = playlist.New(name, c.rng)
	c.logger.Debug("playlist created", zap.String("playlist", name))
	return nil
}

// RemovePlaylist deletes a playlist. If it was active, no playlist is active
// afterwards.
func (c *Catalog) RemovePlaylist(name string) error {
	if _, ok := c.playlists[name]; !ok {
		return fmt.Errorf("%w: playlist %q", ErrNotFound, name)
	}
	delete(c.playlists, name)
	if c.hasActive && c.active == name {
		c.active, c.hasActive = "", false
	}
	c.logger.Debug("playlist removed", zap.String("playlist", name))
	return nil
}

// Playlist looks up a playlist by name
func (c *Catalog) Playlist(name string) (*playlist.Playlist, bool) {
	p, ok := c.playlists[name]
	return p, ok
}

// Playlists returns the name to playlist mapping.
// The map is a copy; the playlists are shared.
func (c *Catalog) Playlists() map[string]*playlist.Playlist {
	return maps.Clone(c.playlists)
}

// PlaylistNames returns all playlist names in sorted order
func (c *Catalog) PlaylistNames() []string {
	return slices.Sorted(maps.Keys(c.playlists))
}

// AddLibraryTrack appends a copy of the library track at index to the named
// playlist. Nothing changes if either lookup fails.
func (c *Catalog) AddLibraryTrack(playlistName string, index int) error {
	track, ok := c.library.Track(index)
	if !ok {
		return fmt.Errorf("%w: library track %d", ErrNotFound, index)
	}
	p, ok := c.playlists[playlistName]
	if !ok {
		return fmt.Errorf("%w: playlist %q", ErrNotFound, playlistName)
	}
	p.Add(track)
	c.logger.Debug("track added to playlist",
		zap.String("playlist", playlistName),
		zap.String("title", track.Title),
		zap.Int("index", index))
	return nil
}

// RemoveTrack deletes the track at index from the named playlist and returns it
func (c *Catalog) RemoveTrack(playlistName string, index int) (playlist.Track, error) {
	p, ok := c.playlists[playlistName]
	if !ok {
		return playlist.Track{}, fmt.Errorf("%w: playlist %q", ErrNotFound, playlistName)
	}
	track, ok := p.Remove(index)
	if !ok {
		return playlist.Track{}, fmt.Errorf("%w: track %d in playlist %q", ErrNotFound, index, playlistName)
	}
	c.logger.Debug("track removed from playlist",
		zap.String("playlist", playlistName),
		zap.String("title", track.Title))
	return track, nil
}

// Activate makes the named playlist the target of transport controls and
// marks it playing. A playlist without a selection starts at its first track;
// the caller decides whether to advance.
func (c *Catalog) Activate(name string) error {
	p, ok := c.playlists[name]
	if !ok {
		return fmt.Errorf("%w: playlist %q", ErrNotFound, name)
	}
	if prev, ok := c.activePlaylist(); ok && prev != p {
		prev.Stop()
	}
	c.active, c.hasActive = name, true
	p.Play()
	c.logger.Debug("playlist activated", zap.String("playlist", name))
	return nil
}

// ActiveName returns the name of the active playlist, or false if there is
// none
func (c *Catalog) ActiveName() (string, bool) {
	if _, ok := c.activePlaylist(); !ok {
		return "", false
	}
	return c.active, true
}

func (c *Catalog) activePlaylist() (*playlist.Playlist, bool) {
	if !c.hasActive {
		return nil, false
	}
	p, ok := c.playlists[c.active]
	return p, ok
}

// CurrentTrack returns the selected track of the active playlist
func (c *Catalog) CurrentTrack() (playlist.Track, bool) {
	p, ok := c.activePlaylist()
	if !ok {
		return playlist.Track{}, false
	}
	return p.Current()
}

// Next advances the active playlist and returns a now-playing announcement.
// Returns false if there is no active playlist or it is empty.
func (c *Catalog) Next() (string, bool) {
	p, ok := c.activePlaylist()
	if !ok {
		return "", false
	}
	track, ok := p.Next()
	if !ok {
		return "", false
	}
	return NowPlaying(track), true
}

// Previous steps the active playlist back and returns a now-playing
// announcement. Returns false if there is no active playlist or it is empty.
func (c *Catalog) Previous() (string, bool) {
	p, ok := c.activePlaylist()
	if !ok {
		return "", false
	}
	track, ok := p.Previous()
	if !ok {
		return "", false
	}
	return NowPlaying(track), true
}

// ToggleShuffle flips shuffle on the active playlist and returns the new
// value. Returns false if no playlist is active.
func (c *Catalog) ToggleShuffle() bool {
	p, ok := c.activePlaylist()
	if !ok {
		return false
	}
	return p.ToggleShuffle()
}

// SetVolume stores v clamped into 0..MaxVolume
func (c *Catalog) SetVolume(v int) {
	c.volume = min(max(v, 0), MaxVolume)
	c.logger.Debug("volume set", zap.Int("requested", v), zap.Int("volume", c.volume))
}

// Volume returns the current volume
func (c *Catalog) Volume() int {
	return c.volume
}

// Recommend suggests up to RecommendationLimit library tracks.
//
// With a track selected in the active playlist, it returns library tracks
// sharing that track's genre or artist, in library order. The selected track
// itself is not excluded. Without a selection it returns a random sample.
func (c *Catalog) Recommend() []playlist.Track {
	current, ok := c.CurrentTrack()
	if !ok {
		return c.randomSample(RecommendationLimit)
	}

	var result []playlist.Track
	for _, t := range c.library.tracks {
		if len(result) == RecommendationLimit {
			break
		}
		if t.Genre == current.Genre || t.Artist == current.Artist {
			result = append(result, t)
		}
	}
	return result
}

// randomSample gives every library track an independent random key and
// returns the first n tracks of the resulting permutation
func (c *Catalog) randomSample(n int) []playlist.Track {
	type keyed struct {
		key   uint32
		track playlist.Track
	}
	items := make([]keyed, len(c.library.tracks))
	for i, t := range c.library.tracks {
		items[i] = keyed{key: c.rng.Uint32(), track: t}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key < items[j].key
	})

	n = min(n, len(items))
	result := make([]playlist.Track, n)
	for i := range result {
		result[i] = items[i].track
	}
	return result
}

// NowPlaying formats the announcement for a newly selected track
func NowPlaying(track playlist.Track) string {
	return "Now playing: " + track.Display()
}
