package actions

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

var errNoPlaylist = errors.New("playlist name is required")

// ExportPlaylist writes a playlist to CSV, asking for the playlist and file
// when the --playlist or --file flags are missing
func ExportPlaylist(c *cli.Context, s *Session) error {
	name := strings.TrimSpace(c.String("playlist"))
	destFile := strings.TrimSpace(c.String("file"))

	if name == "" {
		var err error
		if name, err = s.choosePlaylist("Choose a playlist to export"); err != nil {
			return err
		}
	}
	if name == "" {
		return errNoPlaylist
	}

	if destFile == "" {
		var err error
		destFile, err = s.prompt.Input("Enter the file path to save the exported playlist", name+".csv")
		if err != nil {
			return err
		}
		if strings.TrimSpace(destFile) == "" {
			destFile = name
		}
	}

	if err := s.exportPlaylist(name, destFile); err != nil {
		return fmt.Errorf("failed to export playlist %s: %w", name, err)
	}
	return nil
}
