package playlist

import "fmt"

// Track represents a single catalogued piece of audio metadata
type Track struct {
	Title    string `csv:"title"`
	Artist   string `csv:"artist"`
	Duration int    `csv:"duration"` // seconds
	Genre    string `csv:"genre"`
	Year     int    `csv:"year"`
	Path     string `csv:"path"`
}

// FormatDuration returns the track length as MM:SS
func (t Track) FormatDuration() string {
	return FormatDuration(t.Duration)
}

// Display returns a one-line description of the track
func (t Track) Display() string {
	return fmt.Sprintf("%s - %s [%s] (%s)", t.Artist, t.Title, t.FormatDuration(), t.Genre)
}

// FormatDuration converts a number of seconds to MM:SS.
// Minutes are not wrapped into hours, so long playlists render as e.g. "125:07".
// Negative values render as "00:00".
func FormatDuration(seconds int) string {
	seconds = max(seconds, 0)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
