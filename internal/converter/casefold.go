package converter

import (
	"golang.org/x/text/cases"
)

// caseFolder folds text with full Unicode case folding
type caseFolder struct {
	caser cases.Caser
}

// NewCaseFolder returns a TextFolder that ignores letter case
func NewCaseFolder() TextFolder {
	return &caseFolder{caser: cases.Fold()}
}

// Fold returns the case-folded form of text
func (f *caseFolder) Fold(text string) string {
	return f.caser.String(text)
}
