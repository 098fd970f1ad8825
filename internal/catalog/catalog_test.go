package catalog_test

import (
	"errors"
	"reflect"
	"testing"

	"playdeck/internal/adapters"
	"playdeck/internal/catalog"
	"playdeck/internal/playlist"
)

// scriptedRand replays fixed values so shuffle and sampling are deterministic
type scriptedRand struct {
	ints []int
	keys []uint32
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

func (r *scriptedRand) Uint32() uint32 {
	if len(r.keys) == 0 {
		return 0
	}
	v := r.keys[0]
	r.keys = r.keys[1:]
	return v
}

func demoCatalog(t *testing.T, rng catalog.Rand) *catalog.Catalog {
	t.Helper()
	tracks, err := adapters.NewDemoAdapter(nil).LoadTracks()
	if err != nil {
		t.Fatalf("LoadTracks() error = %v", err)
	}
	if rng == nil {
		rng = &scriptedRand{}
	}
	c := catalog.New(catalog.NewLibrary(tracks, nil), rng, nil)
	if err := c.SeedPlaylists(catalog.DemoPlaylists); err != nil {
		t.Fatalf("SeedPlaylists() error = %v", err)
	}
	return c
}

func titles(tracks []playlist.Track) []string {
	result := make([]string, len(tracks))
	for i, tr := range tracks {
		result[i] = tr.Title
	}
	return result
}

func TestSeed_DemoPlaylists(t *testing.T) {
	c := demoCatalog(t, nil)

	if c.Library().Len() != 8 {
		t.Errorf("Library().Len() = %d, expected 8", c.Library().Len())
	}

	tests := []struct {
		name     string
		expected []string
	}{
		{"Rock Classics", []string{"Bohemian Rhapsody", "Stairway to Heaven", "Hotel California", "Sweet Child O' Mine", "Smells Like Teen Spirit"}},
		{"Pop Hits", []string{"Imagine", "Billie Jean", "Yesterday"}},
	}
	for _, test := range tests {
		p, ok := c.Playlist(test.name)
		if !ok {
			t.Errorf("playlist %q missing", test.name)
			continue
		}
		if result := titles(p.Tracks()); !reflect.DeepEqual(result, test.expected) {
			t.Errorf("%s tracks = %v, expected %v", test.name, result, test.expected)
		}
	}

	if names := c.PlaylistNames(); !reflect.DeepEqual(names, []string{"Pop Hits", "Rock Classics"}) {
		t.Errorf("PlaylistNames() = %v", names)
	}
}

func TestSeed_DuplicateRuleFails(t *testing.T) {
	c := catalog.New(catalog.NewLibrary(nil, nil), &scriptedRand{}, nil)
	rules := []catalog.SeedRule{{Name: "A", Genres: []string{"Rock"}}, {Name: "A", Genres: []string{"Pop"}}}
	if err := c.SeedPlaylists(rules); !errors.Is(err, catalog.ErrAlreadyExists) {
		t.Errorf("SeedPlaylists() error = %v, expected ErrAlreadyExists", err)
	}
	if names := c.PlaylistNames(); len(names) != 0 {
		t.Errorf("PlaylistNames() after failed seed = %v, expected none", names)
	}
}

func TestSeed_ExistingNameCreatesNothing(t *testing.T) {
	c := catalog.New(catalog.NewLibrary(nil, nil), &scriptedRand{}, nil)
	if err := c.CreatePlaylist("Pop Hits"); err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	if err := c.SeedPlaylists(catalog.DemoPlaylists); !errors.Is(err, catalog.ErrAlreadyExists) {
		t.Errorf("SeedPlaylists() error = %v, expected ErrAlreadyExists", err)
	}
	if names := c.PlaylistNames(); !reflect.DeepEqual(names, []string{"Pop Hits"}) {
		t.Errorf("PlaylistNames() = %v, expected [Pop Hits]", names)
	}
}

func TestNew_NilRandDefaults(t *testing.T) {
	library := catalog.NewLibrary([]playlist.Track{{Title: "a"}, {Title: "b"}}, nil)
	c := catalog.New(library, nil, nil)

	if got := c.Recommend(); len(got) != 2 {
		t.Errorf("Recommend() returned %d tracks, expected 2", len(got))
	}

	if err := c.CreatePlaylist("mix"); err != nil {
		t.Fatalf("CreatePlaylist() error = %v", err)
	}
	for i := 0; i < library.Len(); i++ {
		if err := c.AddLibraryTrack("mix", i); err != nil {
			t.Fatalf("AddLibraryTrack(%d) error = %v", i, err)
		}
	}
	if err := c.Activate("mix"); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !c.ToggleShuffle() {
		t.Fatal("ToggleShuffle() = false, expected true")
	}
	if _, ok := c.Next(); !ok {
		t.Error("shuffle Next() returned no announcement")
	}
}

func TestCreatePlaylist(t *testing.T) {
	c := demoCatalog(t, nil)

	if err := c.CreatePlaylist("Rock Classics"); !errors.Is(err, catalog.ErrAlreadyExists) {
		t.Errorf("CreatePlaylist(existing) error = %v, expected ErrAlreadyExists", err)
	}
	rock, _ := c.Playlist("Rock Classics")
	if rock.Len() != 5 {
		t.Errorf("existing playlist modified, Len() = %d, expected 5", rock.Len())
	}

	if err := c.CreatePlaylist("rock classics"); err != nil {
		t.Errorf("CreatePlaylist() is case-insensitive: %v", err)
	}
	p, ok := c.Playlist("rock classics")
	if !ok || p.Len() != 0 {
		t.Error("expected a new empty playlist")
	}
}

func TestAddLibraryTrack(t *testing.T) {
	c := demoCatalog(t, nil)
	c.CreatePlaylist("Mix")

	if err := c.AddLibraryTrack("Mix", 3); err != nil {
		t.Fatalf("AddLibraryTrack() error = %v", err)
	}
	p, _ := c.Playlist("Mix")
	if got := titles(p.Tracks()); !reflect.DeepEqual(got, []string{"Imagine"}) {
		t.Errorf("Mix tracks = %v, expected [Imagine]", got)
	}

	tests := []struct {
		playlist string
		index    int
	}{
		{"Mix", 8},
		{"Mix", -1},
		{"Missing", 0},
		{"Missing", 99},
	}
	for _, test := range tests {
		if err := c.AddLibraryTrack(test.playlist, test.index); !errors.Is(err, catalog.ErrNotFound) {
			t.Errorf("AddLibraryTrack(%q, %d) error = %v, expected ErrNotFound", test.playlist, test.index, err)
		}
	}
	if p.Len() != 1 {
		t.Errorf("failed adds mutated playlist, Len() = %d", p.Len())
	}
}

func TestAddLibraryTrack_CopiesTrack(t *testing.T) {
	c := demoCatalog(t, nil)
	c.CreatePlaylist("Mix")
	c.AddLibraryTrack("Mix", 0)
	c.Library().Add(playlist.Track{Title: "Later"})

	p, _ := c.Playlist("Mix")
	if p.Len() != 1 {
		t.Errorf("library growth leaked into playlist, Len() = %d", p.Len())
	}
}

func TestActivateThenNext(t *testing.T) {
	c := demoCatalog(t, nil)

	if err := c.Activate("Rock Classics"); err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	current, ok := c.CurrentTrack()
	if !ok || current.Title != "Bohemian Rhapsody" {
		t.Errorf("CurrentTrack() after Activate = %s, expected Bohemian Rhapsody", current.Title)
	}

	msg, ok := c.Next()
	if !ok {
		t.Fatal("Next() returned no announcement")
	}
	expected := "Now playing: Led Zeppelin - Stairway to Heaven [08:02] (Rock)"
	if msg != expected {
		t.Errorf("Next() = %q, expected %q", msg, expected)
	}

	msg, _ = c.Previous()
	if msg != "Now playing: Queen - Bohemian Rhapsody [05:54] (Rock)" {
		t.Errorf("Previous() = %q", msg)
	}
}

func TestActivate_Missing(t *testing.T) {
	c := demoCatalog(t, nil)
	if err := c.Activate("Jazz"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("Activate(missing) error = %v, expected ErrNotFound", err)
	}
	if _, ok := c.ActiveName(); ok {
		t.Error("failed Activate set an active playlist")
	}
}

func TestActivate_KeepsExistingPosition(t *testing.T) {
	c := demoCatalog(t, nil)
	c.Activate("Pop Hits")
	c.Next()
	c.Activate("Rock Classics")
	c.Activate("Pop Hits")

	current, _ := c.CurrentTrack()
	if current.Title != "Billie Jean" {
		t.Errorf("CurrentTrack() = %s, expected Billie Jean", current.Title)
	}
	rock, _ := c.Playlist("Rock Classics")
	if rock.Playing() {
		t.Error("previously active playlist still marked playing")
	}
}

func TestTransport_NoActivePlaylist(t *testing.T) {
	c := demoCatalog(t, nil)

	if _, ok := c.CurrentTrack(); ok {
		t.Error("CurrentTrack() without active playlist returned a track")
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() without active playlist returned an announcement")
	}
	if _, ok := c.Previous(); ok {
		t.Error("Previous() without active playlist returned an announcement")
	}
	if c.ToggleShuffle() {
		t.Error("ToggleShuffle() without active playlist returned true")
	}
}

func TestTransport_EmptyActivePlaylist(t *testing.T) {
	c := demoCatalog(t, nil)
	c.CreatePlaylist("Empty")
	c.Activate("Empty")

	if _, ok := c.Next(); ok {
		t.Error("Next() on empty playlist returned an announcement")
	}
	if _, ok := c.CurrentTrack(); ok {
		t.Error("CurrentTrack() on empty playlist returned a track")
	}
	if !c.ToggleShuffle() {
		t.Error("ToggleShuffle() on empty active playlist = false, expected true")
	}
}

func TestShuffleNext(t *testing.T) {
	c := demoCatalog(t, &scriptedRand{ints: []int{4, 4, 2}})
	c.Activate("Rock Classics")
	if !c.ToggleShuffle() {
		t.Fatal("ToggleShuffle() = false, expected true")
	}

	expected := []string{"Smells Like Teen Spirit", "Smells Like Teen Spirit", "Hotel California"}
	for i, title := range expected {
		c.Next()
		current, _ := c.CurrentTrack()
		if current.Title != title {
			t.Errorf("shuffle step %d: CurrentTrack() = %s, expected %s", i, current.Title, title)
		}
	}
}

func TestRemovePlaylist_ClearsActive(t *testing.T) {
	c := demoCatalog(t, nil)
	c.Activate("Rock Classics")

	if err := c.RemovePlaylist("Rock Classics"); err != nil {
		t.Fatalf("RemovePlaylist() error = %v", err)
	}
	if name, ok := c.ActiveName(); ok {
		t.Errorf("ActiveName() = %s after removal, expected none", name)
	}
	if _, ok := c.CurrentTrack(); ok {
		t.Error("CurrentTrack() resolved a removed playlist")
	}

	// Re-creating the name must not revive the old reference.
	c.CreatePlaylist("Rock Classics")
	if _, ok := c.ActiveName(); ok {
		t.Error("re-created playlist became active")
	}

	if err := c.RemovePlaylist("Rock Classics-missing"); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("RemovePlaylist(missing) error = %v, expected ErrNotFound", err)
	}
}

func TestRemovePlaylist_OtherKeepsActive(t *testing.T) {
	c := demoCatalog(t, nil)
	c.Activate("Rock Classics")
	c.RemovePlaylist("Pop Hits")
	if name, ok := c.ActiveName(); !ok || name != "Rock Classics" {
		t.Errorf("ActiveName() = %s, %v, expected Rock Classics", name, ok)
	}
}

func TestRemoveTrack(t *testing.T) {
	c := demoCatalog(t, nil)

	removed, err := c.RemoveTrack("Pop Hits", 1)
	if err != nil || removed.Title != "Billie Jean" {
		t.Errorf("RemoveTrack() = %s, %v, expected Billie Jean", removed.Title, err)
	}
	if _, err := c.RemoveTrack("Pop Hits", 5); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("RemoveTrack(out of range) error = %v, expected ErrNotFound", err)
	}
	if _, err := c.RemoveTrack("Missing", 0); !errors.Is(err, catalog.ErrNotFound) {
		t.Errorf("RemoveTrack(missing playlist) error = %v, expected ErrNotFound", err)
	}
}

func TestSetVolume(t *testing.T) {
	c := demoCatalog(t, nil)
	if c.Volume() != catalog.DefaultVolume {
		t.Errorf("Volume() = %d, expected %d", c.Volume(), catalog.DefaultVolume)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{150, 100},
		{100, 100},
		{0, 0},
		{42, 42},
		{-10, 0},
	}
	for _, test := range tests {
		c.SetVolume(test.input)
		if c.Volume() != test.expected {
			t.Errorf("SetVolume(%d) stored %d, expected %d", test.input, c.Volume(), test.expected)
		}
	}
}

func TestSearch(t *testing.T) {
	c := demoCatalog(t, nil)

	lower := titles(c.Search("rock"))
	upper := titles(c.Search("ROCK"))
	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("Search(rock) = %v, Search(ROCK) = %v, expected equal", lower, upper)
	}
	if len(lower) != 4 {
		t.Errorf("Search(rock) returned %d tracks, expected 4", len(lower))
	}

	all := titles(c.Search(""))
	if !reflect.DeepEqual(all, titles(c.Library().Tracks())) {
		t.Errorf("Search(\"\") = %v, expected the whole library", all)
	}

	tests := []struct {
		query    string
		expected []string
	}{
		{"queen", []string{"Bohemian Rhapsody"}},
		{"GRUNGE", []string{"Smells Like Teen Spirit"}},
		{"the", []string{"Yesterday"}},
		{"jazz", nil},
	}
	for _, test := range tests {
		result := titles(c.Search(test.query))
		if len(result) == 0 && len(test.expected) == 0 {
			continue
		}
		if !reflect.DeepEqual(result, test.expected) {
			t.Errorf("Search(%q) = %v, expected %v", test.query, result, test.expected)
		}
	}
}

func TestRecommend_FromCurrentTrack(t *testing.T) {
	c := demoCatalog(t, nil)
	c.Activate("Rock Classics")

	result := titles(c.Recommend())
	expected := []string{"Bohemian Rhapsody", "Stairway to Heaven", "Hotel California", "Sweet Child O' Mine"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Recommend() = %v, expected %v", result, expected)
	}
}

func TestRecommend_MatchesArtist(t *testing.T) {
	tracks := []playlist.Track{
		{Title: "One", Artist: "A", Genre: "Jazz"},
		{Title: "Two", Artist: "B", Genre: "Pop"},
		{Title: "Three", Artist: "A", Genre: "Rock"},
		{Title: "Four", Artist: "C", Genre: "Jazz"},
	}
	c := catalog.New(catalog.NewLibrary(tracks, nil), &scriptedRand{}, nil)
	c.CreatePlaylist("p")
	c.AddLibraryTrack("p", 0)
	c.Activate("p")

	result := titles(c.Recommend())
	expected := []string{"One", "Three", "Four"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Recommend() = %v, expected %v", result, expected)
	}
}

func TestRecommend_CappedAtLimit(t *testing.T) {
	var tracks []playlist.Track
	for i := 0; i < 9; i++ {
		tracks = append(tracks, playlist.Track{Title: string(rune('a' + i)), Genre: "Rock"})
	}
	c := catalog.New(catalog.NewLibrary(tracks, nil), &scriptedRand{}, nil)
	c.CreatePlaylist("p")
	c.AddLibraryTrack("p", 8)
	c.Activate("p")

	result := titles(c.Recommend())
	if !reflect.DeepEqual(result, []string{"a", "b", "c", "d", "e"}) {
		t.Errorf("Recommend() = %v, expected first 5 in library order", result)
	}
}

func TestRecommend_RandomWithoutCurrentTrack(t *testing.T) {
	keys := []uint32{70, 10, 60, 30, 80, 20, 50, 40}
	c := demoCatalog(t, &scriptedRand{keys: keys})

	result := titles(c.Recommend())
	expected := []string{"Stairway to Heaven", "Billie Jean", "Imagine", "Yesterday", "Smells Like Teen Spirit"}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf("Recommend() = %v, expected %v", result, expected)
	}
}

func TestRecommend_RandomSmallLibrary(t *testing.T) {
	tracks := []playlist.Track{{Title: "x"}, {Title: "y"}}
	c := catalog.New(catalog.NewLibrary(tracks, nil), &scriptedRand{keys: []uint32{2, 1}}, nil)

	result := titles(c.Recommend())
	if !reflect.DeepEqual(result, []string{"y", "x"}) {
		t.Errorf("Recommend() = %v, expected [y x]", result)
	}
}

func TestStatus(t *testing.T) {
	c := demoCatalog(t, nil)

	s := c.Status()
	if s.HasActive || s.HasTrack || s.LibrarySize != 8 || s.PlaylistCount != 2 || s.Volume != 50 {
		t.Errorf("Status() before activation = %+v", s)
	}

	c.Activate("Pop Hits")
	c.Next()
	c.ToggleShuffle()
	s = c.Status()
	if !s.HasActive || s.ActivePlaylist != "Pop Hits" {
		t.Errorf("Status().ActivePlaylist = %q, %v", s.ActivePlaylist, s.HasActive)
	}
	if s.Track.Title != "Billie Jean" || s.Position != 2 || s.Length != 3 || !s.Shuffle {
		t.Errorf("Status() = %+v", s)
	}
}
