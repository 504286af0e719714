package settings

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/resswitch/internal/domain"
	"go.uber.org/zap"
)

const indent = "    "

// record is the on-disk shape of one settings entry
type record struct {
	Resolution [2]int `json:"resolution"`
	FPS        *int   `json:"fps,omitempty"`
}

// FileStore persists the SettingsTable as a JSON object keyed by program name
type FileStore struct {
	logger  *zap.Logger
	path    string
	display domain.DisplayController
}

// NewFileStore creates a store for the configured settings path. The display
// controller is only used to synthesise a missing default entry.
func NewFileStore(logger *zap.Logger, cfg domain.Config, display domain.DisplayController) *FileStore {
	return &FileStore{
		logger:  logger,
		path:    cfg.GetSettingsPath(),
		display: display,
	}
}

// Path returns the backing file location
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the settings file. A missing or corrupt file is not an error:
// it yields an empty table so the caller bootstraps a default entry.
func (s *FileStore) Load(ctx context.Context) (*domain.SettingsTable, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Info("Settings file not found, starting empty", zap.String("path", s.path))
		} else {
			s.logger.Warn("Settings file unreadable, starting empty",
				zap.String("path", s.path),
				zap.Error(err))
		}
		return domain.NewSettingsTable(), nil
	}

	table, err := decode(data)
	if err != nil {
		s.logger.Warn("Settings file is corrupt, starting empty",
			zap.String("path", s.path),
			zap.Error(err))
		return domain.NewSettingsTable(), nil
	}

	s.logger.Debug("Settings loaded",
		zap.String("path", s.path),
		zap.Int("programs", len(table.Programs)),
		zap.Bool("hasDefault", table.HasDefault()))
	return table, nil
}

// decode converts the JSON document into a typed table, skipping records
// whose dimensions are not positive
func decode(data []byte) (*domain.SettingsTable, error) {
	var raw map[string]record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("failed to parse settings: top-level value is not an object")
	}

	table := domain.NewSettingsTable()
	for key, rec := range raw {
		res := domain.Resolution{Width: rec.Resolution[0], Height: rec.Resolution[1]}
		if !res.Valid() {
			continue
		}
		if key == domain.DefaultKey {
			fps := 0
			if rec.FPS != nil {
				fps = *rec.FPS
			}
			table.Default = &domain.DefaultEntry{Resolution: res, FPS: fps}
			continue
		}
		table.Programs[key] = domain.ProgramEntry{Name: key, Resolution: res}
	}
	return table, nil
}

// encode renders the table with sorted keys and 4-space indentation
func encode(table *domain.SettingsTable) ([]byte, error) {
	raw := make(map[string]record, len(table.Programs)+1)
	for key, e := range table.Programs {
		raw[key] = record{Resolution: [2]int{e.Resolution.Width, e.Resolution.Height}}
	}
	if table.Default != nil {
		fps := table.Default.FPS
		raw[domain.DefaultKey] = record{
			Resolution: [2]int{table.Default.Resolution.Width, table.Default.Resolution.Height},
			FPS:        &fps,
		}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", indent)
	if err := enc.Encode(raw); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Save overwrites the settings file with the full table
func (s *FileStore) Save(ctx context.Context, table *domain.SettingsTable) error {
	data, err := encode(table)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	s.logger.Info("Settings saved",
		zap.String("path", s.path),
		zap.Int("programs", len(table.Programs)))
	return nil
}

// EnsureDefault synthesises the default entry from the live display mode when
// it is missing and persists the table immediately
func (s *FileStore) EnsureDefault(ctx context.Context, table *domain.SettingsTable) (*domain.SettingsTable, error) {
	if table == nil {
		table = domain.NewSettingsTable()
	}
	if table.HasDefault() {
		return table, nil
	}

	res, err := s.display.CurrentMode(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current display mode: %w", err)
	}

	fps, err := s.display.MaxRefreshRate(ctx)
	if err != nil {
		s.logger.Warn("Could not read refresh rate, recording 0", zap.Error(err))
		fps = 0
	}

	table.Default = &domain.DefaultEntry{Resolution: res, FPS: fps}
	s.logger.Info("Recorded default display mode",
		zap.String("resolution", res.String()),
		zap.Int("fps", fps))

	if err := s.Save(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}
