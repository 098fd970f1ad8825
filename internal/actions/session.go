package actions

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"playdeck/internal/catalog"
	"playdeck/internal/display"
	"playdeck/internal/porter"
)

const (
	menuLibrary   = "library"
	menuPlaylists = "playlists"
	menuSearch    = "search"
	menuCreate    = "create"
	menuAdd       = "add"
	menuRemove    = "remove"
	menuDelete    = "delete"
	menuPlay      = "play"
	menuControls  = "controls"
	menuVolume    = "volume"
	menuRecommend = "recommend"
	menuStatus    = "status"
	menuExport    = "export"
	menuQuit      = "quit"

	controlNext     = "next"
	controlPrevious = "previous"
	controlShuffle  = "shuffle"
	controlBack     = "back"
)

var mainMenu = []Option{
	{"View library", menuLibrary},
	{"View playlists", menuPlaylists},
	{"Search tracks", menuSearch},
	{"Create playlist", menuCreate},
	{"Add track to playlist", menuAdd},
	{"Remove track from playlist", menuRemove},
	{"Delete playlist", menuDelete},
	{"Play playlist", menuPlay},
	{"Playback controls", menuControls},
	{"Set volume", menuVolume},
	{"Recommendations", menuRecommend},
	{"Status", menuStatus},
	{"Export playlist", menuExport},
	{"Quit", menuQuit},
}

var controlsMenu = []Option{
	{"Next track", controlNext},
	{"Previous track", controlPrevious},
	{"Toggle shuffle", controlShuffle},
	{"Back", controlBack},
}

// Session is the interactive menu loop over a catalog
type Session struct {
	catalog *catalog.Catalog
	porter  *porter.Porter
	prompt  Prompter
	out     io.Writer
	logger  *zap.Logger
}

// NewSession creates a session writing its output to out
func NewSession(c *catalog.Catalog, p *porter.Porter, prompt Prompter, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		catalog: c,
		porter:  p,
		prompt:  prompt,
		out:     out,
		logger:  logger,
	}
}

// Run shows the main menu until the user quits or closes a prompt.
// Failed actions are reported and the loop continues.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, display.Header("playdeck"))
	for {
		choice, err := s.prompt.Select("What would you like to do?", mainMenu)
		if err != nil {
			if IsAborted(err) {
				return nil
			}
			return err
		}
		if choice == menuQuit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		if err := s.dispatch(choice); err != nil {
			if IsAborted(err) {
				return nil
			}
			s.logger.Debug("action failed", zap.String("action", choice), zap.Error(err))
			fmt.Fprintln(s.out, display.Error(err.Error()))
		}
	}
}

func (s *Session) dispatch(choice string) error {
	switch choice {
	case menuLibrary:
		PrintLibrary(s.out, s.catalog)
	case menuPlaylists:
		return s.viewPlaylists()
	case menuSearch:
		return s.search()
	case menuCreate:
		return s.createPlaylist()
	case menuAdd:
		return s.addTrack()
	case menuRemove:
		return s.removeTrack()
	case menuDelete:
		return s.deletePlaylist()
	case menuPlay:
		return s.play()
	case menuControls:
		return s.controls()
	case menuVolume:
		return s.setVolume()
	case menuRecommend:
		s.recommend()
	case menuStatus:
		fmt.Fprintln(s.out, display.Status(s.catalog.Status()))
	case menuExport:
		return s.export()
	default:
		return fmt.Errorf("%w: unknown menu choice %q", catalog.ErrInvalidInput, choice)
	}
	return nil
}

func (s *Session) viewPlaylists() error {
	PrintPlaylists(s.out, s.catalog)
	if len(s.catalog.PlaylistNames()) == 0 {
		return nil
	}
	name, err := s.choosePlaylist("Show tracks of")
	if err != nil {
		return err
	}
	return PrintPlaylist(s.out, s.catalog, name)
}

func (s *Session) search() error {
	query, err := s.prompt.Input("Search for", "title, artist or genre")
	if err != nil {
		return err
	}
	PrintSearch(s.out, s.catalog, query)
	return nil
}

func (s *Session) createPlaylist() error {
	name, err := s.prompt.Input("Playlist name", "")
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: playlist name is empty", catalog.ErrInvalidInput)
	}
	if err := s.catalog.CreatePlaylist(name); err != nil {
		return err
	}
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Created playlist %q", name)))
	return nil
}

func (s *Session) addTrack() error {
	name, err := s.choosePlaylist("Add to playlist")
	if err != nil {
		return err
	}
	PrintLibrary(s.out, s.catalog)
	index, err := s.askIndex("Library track number")
	if err != nil {
		return err
	}
	if err := s.catalog.AddLibraryTrack(name, index); err != nil {
		return err
	}
	track, _ := s.catalog.Library().Track(index)
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Added %s to %s", track.Title, name)))
	return nil
}

func (s *Session) removeTrack() error {
	name, err := s.choosePlaylist("Remove from playlist")
	if err != nil {
		return err
	}
	if err := PrintPlaylist(s.out, s.catalog, name); err != nil {
		return err
	}
	index, err := s.askIndex("Track number to remove")
	if err != nil {
		return err
	}
	track, err := s.catalog.RemoveTrack(name, index)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Removed %s from %s", track.Title, name)))
	return nil
}

func (s *Session) deletePlaylist() error {
	name, err := s.choosePlaylist("Delete playlist")
	if err != nil {
		return err
	}
	if err := s.catalog.RemovePlaylist(name); err != nil {
		return err
	}
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Deleted playlist %q", name)))
	return nil
}

func (s *Session) play() error {
	name, err := s.choosePlaylist("Play playlist")
	if err != nil {
		return err
	}
	if err := s.catalog.Activate(name); err != nil {
		return err
	}
	track, ok := s.catalog.CurrentTrack()
	if !ok {
		fmt.Fprintln(s.out, display.Error(fmt.Sprintf("playlist %q is empty", name)))
		return nil
	}
	fmt.Fprintln(s.out, display.Announcement(catalog.NowPlaying(track)))
	return nil
}

func (s *Session) controls() error {
	if _, ok := s.catalog.ActiveName(); !ok {
		return fmt.Errorf("%w: no active playlist, play one first", catalog.ErrNotFound)
	}
	for {
		choice, err := s.prompt.Select("Playback controls", controlsMenu)
		if err != nil {
			return err
		}

		switch choice {
		case controlNext:
			s.announce(s.catalog.Next())
		case controlPrevious:
			s.announce(s.catalog.Previous())
		case controlShuffle:
			state := "off"
			if s.catalog.ToggleShuffle() {
				state = "on"
			}
			fmt.Fprintln(s.out, display.Success("Shuffle "+state))
		case controlBack:
			return nil
		default:
			return fmt.Errorf("%w: unknown control %q", catalog.ErrInvalidInput, choice)
		}
	}
}

func (s *Session) announce(msg string, ok bool) {
	if !ok {
		fmt.Fprintln(s.out, display.Error("nothing to play"))
		return
	}
	fmt.Fprintln(s.out, display.Announcement(msg))
}

func (s *Session) setVolume() error {
	input, err := s.prompt.Input(fmt.Sprintf("Volume (0-%d)", catalog.MaxVolume), strconv.Itoa(s.catalog.Volume()))
	if err != nil {
		return err
	}
	v, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return fmt.Errorf("%w: volume %q is not a number", catalog.ErrInvalidInput, input)
	}
	s.catalog.SetVolume(v)
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Volume set to %d%%", s.catalog.Volume())))
	return nil
}

func (s *Session) recommend() {
	fmt.Fprintln(s.out, display.Header("Recommended for you"))
	fmt.Fprintln(s.out, display.TrackList(s.catalog.Recommend(), "No recommendations"))
}

func (s *Session) export() error {
	name, err := s.choosePlaylist("Export playlist")
	if err != nil {
		return err
	}
	file, err := s.prompt.Input("Enter the file path to save the exported playlist", name+".csv")
	if err != nil {
		return err
	}
	if strings.TrimSpace(file) == "" {
		file = name
	}
	return s.exportPlaylist(name, file)
}

func (s *Session) exportPlaylist(name, file string) error {
	p, ok := s.catalog.Playlist(name)
	if !ok {
		return fmt.Errorf("%w: playlist %q", catalog.ErrNotFound, name)
	}

	var dest string
	err := s.prompt.Progress("Exporting...", func() error {
		var err error
		dest, err = s.porter.ExportPlaylistToCSV(p, file)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, display.Success(fmt.Sprintf("Exported %d tracks to %s", p.Len(), dest)))
	return nil
}

// choosePlaylist asks for one of the existing playlists
func (s *Session) choosePlaylist(title string) (string, error) {
	names := s.catalog.PlaylistNames()
	if len(names) == 0 {
		return "", fmt.Errorf("%w: no playlists, create one first", catalog.ErrNotFound)
	}
	options := make([]Option, len(names))
	for i, name := range names {
		p, _ := s.catalog.Playlist(name)
		options[i] = Option{Label: display.PlaylistInfo(p), Value: name}
	}
	return s.prompt.Select(title, options)
}

// askIndex reads a 1-based number and returns the 0-based index
func (s *Session) askIndex(title string) (int, error) {
	input, err := s.prompt.Input(title, "")
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", catalog.ErrInvalidInput, input)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %d is out of range", catalog.ErrNotFound, n)
	}
	return n - 1, nil
}
