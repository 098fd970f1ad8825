package adapters

import (
	"encoding/csv"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"playdeck/internal/playlist"
	"playdeck/internal/utils"
)

// requiredColumns must be present in a library CSV header
var requiredColumns = []string{"title", "artist", "duration"}

// CSVAdapter reads library tracks from a CSV file whose header uses the
// playlist.Track csv tags
type CSVAdapter struct {
	BaseAdapter
	path string
}

// NewCSVAdapter creates a new CSVAdapter for path
func NewCSVAdapter(path string, logger *zap.Logger) (*CSVAdapter, error) {
	if path == "" {
		return nil, fmt.Errorf("csv library source requires a file path")
	}
	return &CSVAdapter{
		BaseAdapter: NewBaseAdapter("CSV", logger),
		path:        path,
	}, nil
}

// LoadTracks reads every valid row. Rows with a malformed or negative
// duration or year are skipped and counted in Stats.
func (a *CSVAdapter) LoadTracks() ([]playlist.Track, error) {
	a.ResetStats()

	content, err := utils.ReadTextFileContent(a.path)
	if err != nil {
		return nil, fmt.Errorf("error reading CSV file: %w", err)
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error parsing CSV file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("CSV file is empty")
	}

	headers := utils.StructToCsvHeader(reflect.TypeOf(playlist.Track{}))
	columns := utils.ColumnIndex(records[0], headers)
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%s column not found in CSV", name)
		}
	}

	tracks := make([]playlist.Track, 0, len(records)-1)
	for i, record := range records[1:] {
		line := i + 2
		field := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		track := playlist.Track{
			Title:  field("title"),
			Artist: field("artist"),
			Genre:  field("genre"),
			Path:   field("path"),
		}
		if track.Title == "" {
			a.RecordSkipped("missing title", zap.Int("line", line))
			continue
		}
		if track.Duration, err = parseNonNegative(field("duration")); err != nil {
			a.RecordSkipped("bad duration", zap.Int("line", line), zap.Error(err))
			continue
		}
		if year := field("year"); year != "" {
			if track.Year, err = parseNonNegative(year); err != nil {
				a.RecordSkipped("bad year", zap.Int("line", line), zap.Error(err))
				continue
			}
		}
		tracks = append(tracks, track)
	}

	a.RecordLoaded(len(tracks))
	a.logger.Debug("library CSV loaded",
		zap.String("path", a.path),
		zap.Int("loaded", a.stats.Loaded),
		zap.Int("skipped", a.stats.Skipped))
	return tracks, nil
}

func parseNonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
