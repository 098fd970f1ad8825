package adapters

import (
	"fmt"

	"go.uber.org/zap"

	"playdeck/internal/playlist"
)

// SourceAdapter provides the tracks a library is populated with at startup
type SourceAdapter interface {
	// LoadTracks returns the tracks in library order
	LoadTracks() ([]playlist.Track, error)

	SourceName() string
	Stats() LoadStats
}

// SourceType represents the supported library sources
type SourceType string

const (
	DemoSource SourceType = "demo"
	CSVSource  SourceType = "csv"
)

// NewSourceAdapter is a factory function that creates an adapter for the
// specified source. path is only used by file-backed sources.
func NewSourceAdapter(source string, path string, logger *zap.Logger) (SourceAdapter, error) {
	switch SourceType(source) {
	case DemoSource:
		return NewDemoAdapter(logger), nil
	case CSVSource:
		adapter, err := NewCSVAdapter(path, logger)
		if err != nil {
			return nil, err
		}
		return adapter, nil
	default:
		return nil, fmt.Errorf("unsupported library source: %s", source)
	}
}
