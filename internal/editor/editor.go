package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/genricoloni/resswitch/internal/domain"
	"go.uber.org/zap"
)

// Editor is the two-step wizard that adds or replaces one program entry
type Editor struct {
	logger   *zap.Logger
	store    domain.SettingsStore
	display  domain.DisplayController
	prompter Prompter
}

// New creates an editor backed by huh forms
func New(logger *zap.Logger, store domain.SettingsStore, display domain.DisplayController) *Editor {
	return NewWithPrompter(logger, store, display, NewHuhPrompter())
}

// NewWithPrompter creates an editor with a custom prompter
func NewWithPrompter(logger *zap.Logger, store domain.SettingsStore, display domain.DisplayController, prompter Prompter) *Editor {
	return &Editor{
		logger:   logger,
		store:    store,
		display:  display,
		prompter: prompter,
	}
}

// Run walks the user through picking a program and a resolution, then saves.
// Aborting either step returns nil without writing.
func (e *Editor) Run(ctx context.Context) error {
	path, err := e.prompter.PickProgram(ctx)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			e.logger.Debug("Program selection aborted")
			return nil
		}
		return fmt.Errorf("program selection failed: %w", err)
	}
	if path == "" {
		return nil
	}

	candidates, err := e.display.CandidateSubResolutions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resolutions: %w", err)
	}

	choice, err := e.prompter.PickResolution(ctx, programName(path), candidates)
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			e.logger.Debug("Resolution selection aborted")
			return nil
		}
		return fmt.Errorf("resolution selection failed: %w", err)
	}

	_, err = e.Save(ctx, path, choice)
	return err
}

// Save records program -> resolution. An empty program or resolution is
// skipped and reported as (false, nil). program may be a full path; only its
// base name is stored.
func (e *Editor) Save(ctx context.Context, program, resolution string) (bool, error) {
	name := programName(program)
	if name == "" || strings.TrimSpace(resolution) == "" {
		return false, nil
	}

	res, err := domain.ParseResolution(resolution)
	if err != nil {
		return false, err
	}

	table, err := e.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load settings: %w", err)
	}
	table, err = e.store.EnsureDefault(ctx, table)
	if err != nil {
		return false, fmt.Errorf("failed to ensure default entry: %w", err)
	}

	table.Set(domain.ProgramEntry{Name: name, Resolution: res})
	if err := e.store.Save(ctx, table); err != nil {
		return false, fmt.Errorf("failed to save settings: %w", err)
	}

	e.logger.Info("Program saved",
		zap.String("program", name),
		zap.String("resolution", res.String()))
	return true, nil
}

// programName strips any directory part, accepting both separators so that
// Windows paths behave the same everywhere
func programName(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	return path
}
