package catalog

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
)

// SeedRule describes a playlist built from library tracks of the given genres
type SeedRule struct {
	Name   string
	Genres []string
}

// DemoPlaylists are the playlists created at startup
var DemoPlaylists = []SeedRule{
	{Name: "Rock Classics", Genres: []string{"Rock", "Grunge"}},
	{Name: "Pop Hits", Genres: []string{"Pop"}},
}

// SeedPlaylists creates one playlist per rule and fills them in a single pass
// over the library. A track goes to the first rule listing its genre; genre
// comparison is exact. Nothing is created if any rule name is taken or
// repeated.
func (c *Catalog) SeedPlaylists(rules []SeedRule) error {
	names := make(map[string]bool, len(rules))
	for _, rule := range rules {
		if _, ok := c.playlists[rule.Name]; ok || names[rule.Name] {
			return fmt.Errorf("%w: playlist %q", ErrAlreadyExists, rule.Name)
		}
		names[rule.Name] = true
	}

	for _, rule := range rules {
		if err := c.CreatePlaylist(rule.Name); err != nil {
			return err
		}
	}

	for _, t := range c.library.tracks {
		for _, rule := range rules {
			if slices.Contains(rule.Genres, t.Genre) {
				c.playlists[rule.Name].Add(t)
				break
			}
		}
	}

	for _, rule := range rules {
		c.logger.Debug("seed playlist built",
			zap.String("playlist", rule.Name),
			zap.Int("tracks", c.playlists[rule.Name].Len()))
	}
	return nil
}
