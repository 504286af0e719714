// Package display implements domain.DisplayController for the primary
// monitor. The platform controller is selected at build time; the helpers in
// this file are shared by all of them.
package display

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/genricoloni/resswitch/internal/domain"
)

const (
	minCandidateWidth  = 800
	minCandidateHeight = 600
)

var (
	// ErrUnsupported is returned by controllers that cannot change modes on this platform
	ErrUnsupported = errors.New("display mode switching is not supported on this platform")

	// ErrNoOutput is returned when no connected output drives a display
	ErrNoOutput = errors.New("no active display output found")

	// legacyResolutions are always offered when they fit the size filter
	legacyResolutions = []domain.Resolution{
		{Width: 1920, Height: 1440},
		{Width: 1600, Height: 1200},
		{Width: 1280, Height: 1024},
		{Width: 1024, Height: 768},
	}
)

// ModeChangeError carries the status code returned by the OS when it rejects a mode
type ModeChangeError struct {
	Mode domain.Mode
	Code int
}

func (e *ModeChangeError) Error() string {
	return fmt.Sprintf("display mode %s @ %d Hz rejected (status %d)", e.Mode.Resolution, e.Mode.RefreshRate, e.Code)
}

// SubResolutions derives the editor's candidate list from the native resolution
func SubResolutions(native domain.Resolution) []domain.Resolution {
	w, h := native.Width, native.Height
	all := []domain.Resolution{
		{Width: w, Height: h},
		{Width: w / 2, Height: h / 2},
		{Width: w / 2, Height: h},
		{Width: w, Height: h / 2},
		{Width: w / 4 * 3, Height: h / 4 * 3},
		{Width: w / 4, Height: h / 4},
	}
	all = append(all, legacyResolutions...)

	seen := make(map[domain.Resolution]bool, len(all))
	out := make([]domain.Resolution, 0, len(all))
	for _, r := range all {
		if r.Width < minCandidateWidth || r.Height < minCandidateHeight || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width > out[j].Width
		}
		return out[i].Height > out[j].Height
	})
	return out
}

// candidatesFrom implements CandidateSubResolutions on top of CurrentMode
func candidatesFrom(ctx context.Context, current func(context.Context) (domain.Resolution, error)) ([]domain.Resolution, error) {
	native, err := current(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read current mode: %w", err)
	}
	return SubResolutions(native), nil
}

// modeCandidate is one mode the display hardware advertises
type modeCandidate struct {
	id      uint32
	res     domain.Resolution
	refresh int
}

// mode flag bits as defined by the RandR protocol
const (
	modeFlagInterlace  = 1 << 4
	modeFlagDoubleScan = 1 << 5
)

// refreshRate computes the vertical refresh in Hz from mode timings
func refreshRate(dotClock uint32, hTotal, vTotal uint16, flags uint32) int {
	v := float64(vTotal)
	if flags&modeFlagDoubleScan != 0 {
		v *= 2
	}
	if flags&modeFlagInterlace != 0 {
		v /= 2
	}
	if hTotal == 0 || v == 0 {
		return 0
	}
	return int(math.Round(float64(dotClock) / (float64(hTotal) * v)))
}

// selectMode picks the mode of the given size whose refresh rate is closest
// to want. A zero want selects the highest refresh rate.
func selectMode(modes []modeCandidate, res domain.Resolution, want int) (modeCandidate, bool) {
	var best modeCandidate
	found := false
	for _, m := range modes {
		if m.res != res {
			continue
		}
		if !found {
			best, found = m, true
			continue
		}
		if want <= 0 {
			if m.refresh > best.refresh {
				best = m
			}
			continue
		}
		dm, db := absInt(m.refresh-want), absInt(best.refresh-want)
		if dm < db || (dm == db && m.refresh > best.refresh) {
			best = m
		}
	}
	return best, found
}

// maxRefreshAt returns the highest refresh rate advertised for res, or 0
func maxRefreshAt(modes []modeCandidate, res domain.Resolution) int {
	m, ok := selectMode(modes, res, 0)
	if !ok {
		return 0
	}
	return m.refresh
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
