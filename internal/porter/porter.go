package porter

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"playdeck/internal/adapters"
	"playdeck/internal/catalog"
	"playdeck/internal/converter"
	"playdeck/internal/playlist"
	"playdeck/internal/utils"
)

// Porter moves tracks between files and the catalog
// using an adapter to read a specific library source
type Porter struct {
	adapter   adapters.SourceAdapter
	exportDir string
	logger    *zap.Logger
}

// NewPorter creates a new porter using the specified adapter.
// Relative export paths are resolved against exportDir.
func NewPorter(adapter adapters.SourceAdapter, exportDir string, logger *zap.Logger) *Porter {
	if logger == nil {
		logger = zap.NewNop()
	}
	if exportDir == "" {
		exportDir = "."
	}
	return &Porter{
		adapter:   adapter,
		exportDir: exportDir,
		logger:    logger,
	}
}

// NewPorterWithSource creates a new Porter instance with the specified source type
func NewPorterWithSource(source, path, exportDir string, logger *zap.Logger) (*Porter, error) {
	adapter, err := adapters.NewSourceAdapter(source, path, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter for source %s: %w", source, err)
	}
	return NewPorter(adapter, exportDir, logger), nil
}

// SourceName returns the name of the underlying library source
func (p *Porter) SourceName() string {
	return p.adapter.SourceName()
}

// LoadLibrary reads every track from the source into a new library
func (p *Porter) LoadLibrary(folder converter.TextFolder) (*catalog.Library, error) {
	tracks, err := p.adapter.LoadTracks()
	if err != nil {
		return nil, fmt.Errorf("failed to load library from %s: %w", p.adapter.SourceName(), err)
	}
	stats := p.adapter.Stats()
	p.logger.Info("library loaded",
		zap.String("source", p.adapter.SourceName()),
		zap.Int("loaded", stats.Loaded),
		zap.Int("skipped", stats.Skipped))
	return catalog.NewLibrary(tracks, folder), nil
}

// ExportPath resolves the file a playlist export is written to
func (p *Porter) ExportPath(path string) string {
	// Ensure path has .csv extension
	if !strings.HasSuffix(strings.ToLower(path), ".csv") {
		path += ".csv"
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(p.exportDir, path)
	}
	return path
}

// ExportPlaylistToCSV writes a playlist's tracks to a CSV file in playlist
// order and returns the path written
func (p *Porter) ExportPlaylistToCSV(pl *playlist.Playlist, path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: export path is empty", catalog.ErrInvalidInput)
	}
	dest := p.ExportPath(path)

	headers := utils.StructToCsvHeader(reflect.TypeOf(playlist.Track{}))
	if err := utils.WriteToCsvFile(dest, headers, pl.Tracks()); err != nil {
		return "", fmt.Errorf("error writing CSV file %s: %w", dest, err)
	}
	p.logger.Info("playlist exported",
		zap.String("playlist", pl.Name),
		zap.String("file", dest),
		zap.Int("tracks", pl.Len()))
	return dest, nil
}
