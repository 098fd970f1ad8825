package porter

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"playdeck/internal/adapters"
	"playdeck/internal/catalog"
	"playdeck/internal/playlist"
)

func TestNewPorterWithSource(t *testing.T) {
	if _, err := NewPorterWithSource("demo", "", "", nil); err != nil {
		t.Errorf("NewPorterWithSource(demo) error = %v", err)
	}
	if _, err := NewPorterWithSource("spotify", "", "", nil); err == nil {
		t.Error("expected an error for an unsupported source")
	}
}

func TestLoadLibrary(t *testing.T) {
	p := NewPorter(adapters.NewDemoAdapter(nil), "", nil)
	library, err := p.LoadLibrary(nil)
	if err != nil {
		t.Fatalf("LoadLibrary() error = %v", err)
	}
	if library.Len() != 8 {
		t.Errorf("Len() = %d, expected 8", library.Len())
	}
	if p.SourceName() != "Demo" {
		t.Errorf("SourceName() = %s, expected Demo", p.SourceName())
	}
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()
	p := NewPorter(adapters.NewDemoAdapter(nil), dir, nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"mix", filepath.Join(dir, "mix.csv")},
		{"mix.csv", filepath.Join(dir, "mix.csv")},
		{"MIX.CSV", filepath.Join(dir, "MIX.CSV")},
		{"sub/mix", filepath.Join(dir, "sub", "mix.csv")},
		{"/abs/mix.csv", "/abs/mix.csv"},
	}
	for _, test := range tests {
		if result := p.ExportPath(test.input); result != test.expected {
			t.Errorf("ExportPath(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestExportPlaylistToCSV(t *testing.T) {
	dir := t.TempDir()
	p := NewPorter(adapters.NewDemoAdapter(nil), dir, nil)

	pl := playlist.New("Favourites", nil)
	pl.Add(playlist.Track{Title: "Imagine", Artist: "John Lennon", Duration: 183, Genre: "Pop", Year: 1971})
	pl.Add(playlist.Track{Title: "Hello, Goodbye", Artist: "The Beatles", Duration: 208, Genre: "Pop", Year: 1967})

	dest, err := p.ExportPlaylistToCSV(pl, "favourites")
	if err != nil {
		t.Fatalf("ExportPlaylistToCSV() error = %v", err)
	}
	if dest != filepath.Join(dir, "favourites.csv") {
		t.Errorf("ExportPlaylistToCSV() path = %s", dest)
	}

	file, err := os.Open(dest)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer file.Close()
	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}

	expected := [][]string{
		{"title", "artist", "duration", "genre", "year", "path"},
		{"Imagine", "John Lennon", "183", "Pop", "1971", ""},
		{"Hello, Goodbye", "The Beatles", "208", "Pop", "1967", ""},
	}
	if len(records) != len(expected) {
		t.Fatalf("export has %d rows, expected %d", len(records), len(expected))
	}
	for i := range expected {
		for j := range expected[i] {
			if records[i][j] != expected[i][j] {
				t.Errorf("row %d col %d = %q, expected %q", i, j, records[i][j], expected[i][j])
			}
		}
	}
}

func TestExportPlaylistToCSV_RoundTripsThroughCSVAdapter(t *testing.T) {
	dir := t.TempDir()
	p := NewPorter(adapters.NewDemoAdapter(nil), dir, nil)

	pl := playlist.New("Mixed", nil)
	pl.Add(playlist.Track{Title: "Yesterday", Artist: "The Beatles", Duration: 125, Genre: "Pop", Year: 1965, Path: "/music/yesterday.mp3"})
	dest, err := p.ExportPlaylistToCSV(pl, "mixed.csv")
	if err != nil {
		t.Fatalf("ExportPlaylistToCSV() error = %v", err)
	}

	reimport, err := NewPorterWithSource("csv", dest, dir, nil)
	if err != nil {
		t.Fatalf("NewPorterWithSource(csv) error = %v", err)
	}
	library, err := reimport.LoadLibrary(nil)
	if err != nil {
		t.Fatalf("LoadLibrary() error = %v", err)
	}
	track, ok := library.Track(0)
	if !ok || track != pl.Tracks()[0] {
		t.Errorf("re-imported track = %+v, expected %+v", track, pl.Tracks()[0])
	}
}

func TestExportPlaylistToCSV_EmptyPath(t *testing.T) {
	p := NewPorter(adapters.NewDemoAdapter(nil), t.TempDir(), nil)
	_, err := p.ExportPlaylistToCSV(playlist.New("x", nil), "  ")
	if !errors.Is(err, catalog.ErrInvalidInput) {
		t.Errorf("ExportPlaylistToCSV() error = %v, expected ErrInvalidInput", err)
	}
}
