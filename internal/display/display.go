package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"playdeck/internal/catalog"
	"playdeck/internal/playlist"
)

const headerWidth = 50

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	playingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// Header renders a section title underlined with '='
func Header(title string) string {
	return titleStyle.Render(title) + "\n" + strings.Repeat("=", headerWidth)
}

// TrackLine renders a track with its 1-based position
func TrackLine(i int, t playlist.Track) string {
	return indexStyle.Render(fmt.Sprintf("%3d.", i+1)) + " " + t.Display()
}

// TrackList renders one line per track, or a placeholder when there are none
func TrackList(tracks []playlist.Track, empty string) string {
	if len(tracks) == 0 {
		return mutedStyle.Render(empty)
	}
	lines := make([]string, len(tracks))
	for i, t := range tracks {
		lines[i] = TrackLine(i, t)
	}
	return strings.Join(lines, "\n")
}

// PlaylistInfo renders a playlist summary like "Name (3 tracks, 12:04)"
func PlaylistInfo(p *playlist.Playlist) string {
	noun := "tracks"
	if p.Len() == 1 {
		noun = "track"
	}
	return fmt.Sprintf("%s (%d %s, %s)", p.Name, p.Len(), noun, playlist.FormatDuration(p.TotalDuration()))
}

// Status renders the status screen
func Status(s catalog.Status) string {
	var b strings.Builder
	b.WriteString(Header("Status") + "\n")
	fmt.Fprintf(&b, "Volume:    %d%%\n", s.Volume)
	fmt.Fprintf(&b, "Library:   %d tracks\n", s.LibrarySize)
	fmt.Fprintf(&b, "Playlists: %d\n", s.PlaylistCount)

	if !s.HasActive {
		b.WriteString(mutedStyle.Render("No active playlist"))
		return b.String()
	}
	fmt.Fprintf(&b, "Active:    %s\n", s.ActivePlaylist)
	shuffle := "off"
	if s.Shuffle {
		shuffle = "on"
	}
	fmt.Fprintf(&b, "Shuffle:   %s\n", shuffle)
	if !s.HasTrack {
		b.WriteString(mutedStyle.Render("No track selected"))
		return b.String()
	}
	fmt.Fprintf(&b, "Track %d/%d: %s", s.Position, s.Length, TruncateString(s.Track.Display(), 60))
	return b.String()
}

// Announcement renders a now-playing line
func Announcement(msg string) string {
	return playingStyle.Render("♪ " + msg)
}

// Error renders an error message
func Error(msg string) string {
	return errorStyle.Render("Error: " + msg)
}

// Success renders a confirmation message
func Success(msg string) string {
	return successStyle.Render(msg)
}

// TruncateString truncates a string to maxLen runes and adds "..." if needed
func TruncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
