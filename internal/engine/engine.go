package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/genricoloni/resswitch/internal/domain"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const restoreTimeout = 5 * time.Second

// Engine is the monitor loop. It polls the process table for every
// configured program and switches the display mode on start and stop
// transitions. All state is owned by the goroutine calling Run.
type Engine struct {
	logger   *zap.Logger
	cfg      domain.Config
	store    domain.SettingsStore
	oracle   domain.ProcessOracle
	display  domain.DisplayController
	notifier domain.Notifier

	table    *domain.SettingsTable
	programs []domain.ProgramEntry
	def      domain.DefaultEntry

	// active maps a running program to its start sequence number
	active map[string]uint64
	seq    uint64
}

// NewEngine creates a new monitor loop
func NewEngine(
	logger *zap.Logger,
	cfg domain.Config,
	store domain.SettingsStore,
	oracle domain.ProcessOracle,
	display domain.DisplayController,
	notifier domain.Notifier,
) *Engine {
	return &Engine{
		logger:   logger,
		cfg:      cfg,
		store:    store,
		oracle:   oracle,
		display:  display,
		notifier: notifier,
		active:   make(map[string]uint64),
	}
}

// Init loads the settings table, guaranteeing the default entry, and resets
// the active set. Run calls it; tests call it before driving Cycle directly.
func (e *Engine) Init(ctx context.Context) error {
	table, err := e.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	table, err = e.store.EnsureDefault(ctx, table)
	if err != nil {
		return fmt.Errorf("failed to ensure default entry: %w", err)
	}

	e.table = table
	e.programs = table.SortedPrograms()
	e.def = *table.Default
	e.active = make(map[string]uint64)
	e.seq = 0

	e.logger.Info("Monitoring programs",
		zap.Strings("programs", table.Names()),
		zap.String("default", e.def.Resolution.String()),
		zap.Int("defaultFps", e.def.FPS),
		zap.String("precedence", string(e.cfg.GetPrecedence())))
	return nil
}

// Run initializes the engine and polls until ctx is cancelled. On exit the
// default mode is restored if a monitored program was still active.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.Init(ctx); err != nil {
		return err
	}

	interval := e.cfg.GetPollInterval()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	e.logger.Info("Monitor loop started", zap.Duration("interval", interval))

	for {
		e.Cycle(ctx)

		select {
		case <-ctx.Done():
			e.logger.Info("Monitor loop stopped")
			restoreCtx, cancel := context.WithTimeout(context.Background(), restoreTimeout)
			defer cancel()
			return e.Restore(restoreCtx)
		case <-ticker.C:
		}
	}
}

// Cycle runs one poll pass over every configured program
func (e *Engine) Cycle(ctx context.Context) {
	for _, entry := range e.programs {
		if ctx.Err() != nil {
			return
		}

		running, err := e.oracle.IsRunning(ctx, entry.Name)
		if err != nil {
			e.logger.Warn("Presence query failed, skipping program this cycle",
				zap.String("program", entry.Name),
				zap.Error(err))
			continue
		}

		_, isActive := e.active[entry.Name]
		switch {
		case running && !isActive:
			e.handleStart(ctx, entry)
		case !running && isActive:
			e.handleStop(ctx, entry)
		}
	}
}

// handleStart switches to the program's resolution at the highest refresh rate
func (e *Engine) handleStart(ctx context.Context, entry domain.ProgramEntry) {
	e.seq++
	e.active[entry.Name] = e.seq

	hz, err := e.display.MaxRefreshRate(ctx)
	if err != nil {
		e.logger.Warn("Could not read max refresh rate, letting the controller choose",
			zap.Error(err))
		hz = 0
	}

	mode := domain.Mode{Resolution: entry.Resolution, RefreshRate: hz, Depth: domain.DefaultDepth}
	e.logger.Info("Program started, switching resolution",
		zap.String("program", entry.Name),
		zap.String("resolution", entry.Resolution.String()),
		zap.Int("refresh", hz))

	e.apply(ctx, mode, fmt.Sprintf("%s started", entry.Name))
}

// handleStop restores the default, or under stack precedence the most recent
// program still running
func (e *Engine) handleStop(ctx context.Context, entry domain.ProgramEntry) {
	delete(e.active, entry.Name)

	mode := domain.Mode{Resolution: e.def.Resolution, RefreshRate: e.def.FPS, Depth: domain.DefaultDepth}
	if e.cfg.GetPrecedence() == domain.PrecedenceStack {
		if top, ok := e.mostRecentActive(); ok {
			mode = domain.Mode{Resolution: top.Resolution, Depth: domain.DefaultDepth}
			if hz, err := e.display.MaxRefreshRate(ctx); err == nil {
				mode.RefreshRate = hz
			}
			e.logger.Info("Program stopped, returning to still-running program",
				zap.String("program", entry.Name),
				zap.String("resumed", top.Name),
				zap.String("resolution", top.Resolution.String()))
			e.apply(ctx, mode, fmt.Sprintf("%s stopped", entry.Name))
			return
		}
	}

	e.logger.Info("Program stopped, restoring default resolution",
		zap.String("program", entry.Name),
		zap.String("resolution", e.def.Resolution.String()),
		zap.Int("fps", e.def.FPS))
	e.apply(ctx, mode, fmt.Sprintf("%s stopped", entry.Name))
}

// apply calls the controller. Failures are logged only: the transition has
// already been recorded in the active set.
func (e *Engine) apply(ctx context.Context, mode domain.Mode, summary string) {
	if err := e.display.SetMode(ctx, mode); err != nil {
		e.logger.Error("Failed to change display mode",
			zap.String("resolution", mode.Resolution.String()),
			zap.Int("refresh", mode.RefreshRate),
			zap.Error(err))
		return
	}

	body := fmt.Sprintf("Display set to %s", mode.Resolution)
	if mode.RefreshRate > 0 {
		body = fmt.Sprintf("%s @ %d Hz", body, mode.RefreshRate)
	}
	if err := e.notifier.Notify(ctx, summary, body); err != nil {
		e.logger.Debug("Notification failed", zap.Error(err))
	}
}

// mostRecentActive returns the active program with the highest start sequence
func (e *Engine) mostRecentActive() (domain.ProgramEntry, bool) {
	var (
		best    domain.ProgramEntry
		bestSeq uint64
		found   bool
	)
	for name, seq := range e.active {
		if !found || seq > bestSeq {
			entry, ok := e.table.Lookup(name)
			if !ok {
				continue
			}
			best, bestSeq, found = entry, seq, true
		}
	}
	return best, found
}

// Restore returns the display to the default entry if any monitored program
// is still active, falling back to the OS default mode
func (e *Engine) Restore(ctx context.Context) error {
	if len(e.active) == 0 {
		return nil
	}

	e.logger.Info("Restoring default resolution on shutdown",
		zap.String("active", strings.Join(e.ActivePrograms(), ",")),
		zap.String("resolution", e.def.Resolution.String()))

	mode := domain.Mode{Resolution: e.def.Resolution, RefreshRate: e.def.FPS, Depth: domain.DefaultDepth}
	err := e.display.SetMode(ctx, mode)
	if err == nil {
		e.active = make(map[string]uint64)
		return nil
	}

	e.logger.Error("Failed to restore default resolution, resetting to OS default", zap.Error(err))
	if fallbackErr := e.display.SetMode(ctx, domain.Mode{Resolution: domain.NoResolution}); fallbackErr != nil {
		return multierr.Append(err, fallbackErr)
	}
	e.active = make(map[string]uint64)
	return nil
}

// ActivePrograms lists the programs currently considered running, sorted
func (e *Engine) ActivePrograms() []string {
	names := make([]string, 0, len(e.active))
	for _, p := range e.programs {
		if _, ok := e.active[p.Name]; ok {
			names = append(names, p.Name)
		}
	}
	return names
}

// Close releases the display connection and the notifier
func (e *Engine) Close() error {
	return multierr.Combine(e.display.Close(), e.notifier.Close())
}
