package converter

import (
	"fmt"

	"github.com/liuzl/gocc"
	"go.uber.org/zap"
)

// openCCFolder converts Traditional Chinese to Simplified before case folding,
// so "周杰倫" and "周杰伦" match each other
type openCCFolder struct {
	converter *gocc.OpenCC
	next      TextFolder
	logger    *zap.Logger
}

// NewOpenCCFolder initialises the OpenCC t2s dictionary and chains it in front
// of case folding
func NewOpenCCFolder(logger *zap.Logger) (TextFolder, error) {
	converter, err := gocc.New("t2s")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenCC converter: %w", err)
	}
	logger.Debug("OpenCC converter (t2s) initialized")
	return &openCCFolder{converter: converter, next: NewCaseFolder(), logger: logger}, nil
}

// Fold converts text to Simplified Chinese, then case-folds it.
// A conversion failure falls back to case folding the original text.
func (f *openCCFolder) Fold(text string) string {
	out, err := f.converter.Convert(text)
	if err != nil {
		f.logger.Warn("OpenCC conversion failed, using original text", zap.String("text", text), zap.Error(err))
		out = text
	}
	return f.next.Fold(out)
}
