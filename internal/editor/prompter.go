package editor

import (
	"context"
	"runtime"

	"github.com/charmbracelet/huh"
	"github.com/genricoloni/resswitch/internal/domain"
)

// Prompter asks the user for the two wizard answers.
// This abstraction allows us to drive the editor without a terminal in tests.
type Prompter interface {
	// PickProgram returns the path of the chosen executable, or "" if none
	PickProgram(ctx context.Context) (string, error)

	// PickResolution returns the chosen option rendered as "W x H"
	PickResolution(ctx context.Context, program string, options []domain.Resolution) (string, error)
}

// HuhPrompter is the real implementation using huh forms
type HuhPrompter struct{}

// NewHuhPrompter creates a terminal prompter
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{}
}

// PickProgram shows a file picker rooted at the working directory
func (p *HuhPrompter) PickProgram(ctx context.Context) (string, error) {
	var path string

	picker := huh.NewFilePicker().
		Key("program").
		Title("Select program").
		Description("Executable to watch for").
		CurrentDirectory(".").
		FileAllowed(true).
		DirAllowed(false).
		Picking(true).
		Height(15).
		Value(&path)
	if runtime.GOOS == "windows" {
		picker = picker.AllowedTypes([]string{".exe"})
	}

	form := huh.NewForm(huh.NewGroup(picker)).WithShowHelp(true)
	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return path, nil
}

// PickResolution shows one option per candidate resolution
func (p *HuhPrompter) PickResolution(ctx context.Context, program string, options []domain.Resolution) (string, error) {
	var choice string

	opts := make([]huh.Option[string], 0, len(options))
	for _, r := range options {
		opts = append(opts, huh.NewOption(r.String(), r.String()))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("resolution").
				Title("Select resolution").
				Description("Applied while " + program + " is running").
				Options(opts...).
				Value(&choice),
		),
	).WithShowHelp(true).WithShowErrors(true)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}
	return choice, nil
}
