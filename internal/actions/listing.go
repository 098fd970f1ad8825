package actions

import (
	"fmt"
	"io"

	"playdeck/internal/catalog"
	"playdeck/internal/display"
)

// PrintLibrary writes the numbered library listing
func PrintLibrary(out io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(out, display.Header("Music Library"))
	fmt.Fprintln(out, display.TrackList(c.Library().Tracks(), "The library is empty"))
}

// PrintSearch writes the tracks matching query
func PrintSearch(out io.Writer, c *catalog.Catalog, query string) {
	results := c.Search(query)
	fmt.Fprintln(out, display.Header(fmt.Sprintf("Search results for %q (%d)", query, len(results))))
	fmt.Fprintln(out, display.TrackList(results, "No tracks found"))
}

// PrintPlaylists writes a summary line per playlist in name order
func PrintPlaylists(out io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(out, display.Header("Playlists"))
	names := c.PlaylistNames()
	if len(names) == 0 {
		fmt.Fprintln(out, "No playlists")
		return
	}
	for _, name := range names {
		p, _ := c.Playlist(name)
		marker := " "
		if active, ok := c.ActiveName(); ok && active == name {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, display.PlaylistInfo(p))
	}
}

// PrintPlaylist writes the numbered tracks of one playlist
func PrintPlaylist(out io.Writer, c *catalog.Catalog, name string) error {
	p, ok := c.Playlist(name)
	if !ok {
		return fmt.Errorf("%w: playlist %q", catalog.ErrNotFound, name)
	}
	fmt.Fprintln(out, display.Header(display.PlaylistInfo(p)))
	fmt.Fprintln(out, display.TrackList(p.Tracks(), "The playlist is empty"))
	return nil
}
