package converter

// TextFolder normalises text so that searches match regardless of case or
// script variant
type TextFolder interface {
	Fold(text string) string
}
