package actions

import (
	"context"
	"errors"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// Option is a labelled choice in a select prompt
type Option struct {
	Label string
	Value string
}

// Prompter asks the user for input
type Prompter interface {
	// Select returns the value of the chosen option
	Select(title string, options []Option) (string, error)
	Input(title, placeholder string) (string, error)
	// Progress runs action while showing title
	Progress(title string, action func() error) error
}

// HuhPrompter prompts in the terminal with huh forms
type HuhPrompter struct {
	height int
}

// NewHuhPrompter creates a prompter whose selects show up to height options
func NewHuhPrompter(height int) *HuhPrompter {
	return &HuhPrompter{height: height}
}

func (h *HuhPrompter) Select(title string, options []Option) (string, error) {
	var value string
	huhOptions := make([]huh.Option[string], len(options))
	for i, o := range options {
		huhOptions[i] = huh.NewOption(o.Label, o.Value)
	}
	err := huh.NewSelect[string]().
		Height(h.height).
		Title(title).
		Options(huhOptions...).
		Value(&value).
		Run()
	return value, err
}

func (h *HuhPrompter) Input(title, placeholder string) (string, error) {
	var value string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value).
		Run()
	return value, err
}

func (h *HuhPrompter) Progress(title string, action func() error) error {
	ctx := context.Background()
	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(func(context.Context) error { return action() }).
		Run()
}

// IsAborted reports whether err means the user closed a prompt
func IsAborted(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
