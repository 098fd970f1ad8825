package adapters

import (
	"go.uber.org/zap"
)

// LoadStats counts what a source produced on its last load
type LoadStats struct {
	Loaded  int
	Skipped int
}

// BaseAdapter provides common bookkeeping for source adapters
type BaseAdapter struct {
	sourceName string
	stats      LoadStats
	logger     *zap.Logger
}

// NewBaseAdapter creates a new BaseAdapter
func NewBaseAdapter(sourceName string, logger *zap.Logger) BaseAdapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return BaseAdapter{
		sourceName: sourceName,
		logger:     logger.With(zap.String("source", sourceName)),
	}
}

// ResetStats clears the counters before a new load
func (b *BaseAdapter) ResetStats() {
	b.stats = LoadStats{}
}

// RecordLoaded counts n accepted tracks
func (b *BaseAdapter) RecordLoaded(n int) {
	b.stats.Loaded += n
}

// RecordSkipped counts a rejected record and logs why
func (b *BaseAdapter) RecordSkipped(reason string, fields ...zap.Field) {
	b.stats.Skipped++
	b.logger.Warn("skipping track record: "+reason, fields...)
}

// Stats returns the counters of the last load
func (b *BaseAdapter) Stats() LoadStats {
	return b.stats
}

// SourceName returns the name of the source
func (b *BaseAdapter) SourceName() string {
	return b.sourceName
}
