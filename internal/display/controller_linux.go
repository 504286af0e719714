//go:build linux
// +build linux

package display

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
	"go.uber.org/zap"
)

// X11Controller switches the primary output's mode through XRandR
type X11Controller struct {
	logger *zap.Logger
	mu     sync.Mutex // serializes randr requests that read-then-write
	conn   *xgb.Conn
	root   xproto.Window
	screen *xproto.ScreenInfo
}

// outputState is a snapshot of the primary output taken before each operation
type outputState struct {
	resources *randr.GetScreenResourcesReply
	info      *randr.GetOutputInfoReply
	crtc      *randr.GetCrtcInfoReply
	modes     []modeCandidate
	preferred *modeCandidate
}

// NewController connects to the X server and initializes RandR (Linux implementation)
func NewController(logger *zap.Logger) (*X11Controller, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X server: %w", err)
	}

	if err := randr.Init(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)

	logger.Info("XRandR display controller initialized",
		zap.Int("screenWidth", int(screen.WidthInPixels)),
		zap.Int("screenHeight", int(screen.HeightInPixels)))

	return &X11Controller{
		logger: logger,
		conn:   conn,
		root:   screen.Root,
		screen: screen,
	}, nil
}

// primary locates the primary output, falling back to the first connected
// output that drives a CRTC
func (c *X11Controller) primary() (*outputState, error) {
	resources, err := randr.GetScreenResources(c.conn, c.root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var outputs []randr.Output
	if reply, err := randr.GetOutputPrimary(c.conn, c.root).Reply(); err == nil && reply.Output != 0 {
		outputs = append(outputs, reply.Output)
	}
	outputs = append(outputs, resources.Outputs...)

	for _, out := range outputs {
		info, err := randr.GetOutputInfo(c.conn, out, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disconnected outputs and outputs without a CRTC
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}

		crtc, err := randr.GetCrtcInfo(c.conn, info.Crtc, resources.ConfigTimestamp).Reply()
		if err != nil || crtc.Width == 0 || crtc.Height == 0 {
			continue
		}

		state := &outputState{
			resources: resources,
			info:      info,
			crtc:      crtc,
			modes:     outputModes(resources.Modes, info.Modes),
		}
		if info.NumPreferred > 0 && len(info.Modes) > 0 {
			for i := range state.modes {
				if state.modes[i].id == uint32(info.Modes[0]) {
					state.preferred = &state.modes[i]
					break
				}
			}
		}

		c.logger.Debug("Primary output resolved",
			zap.String("output", string(info.Name)),
			zap.Int("modes", len(state.modes)))
		return state, nil
	}

	return nil, ErrNoOutput
}

// outputModes keeps the screen modes an output advertises, in its own order
func outputModes(all []randr.ModeInfo, ids []randr.Mode) []modeCandidate {
	byID := make(map[uint32]randr.ModeInfo, len(all))
	for _, mi := range all {
		byID[mi.Id] = mi
	}

	modes := make([]modeCandidate, 0, len(ids))
	for _, id := range ids {
		mi, ok := byID[uint32(id)]
		if !ok {
			continue
		}
		modes = append(modes, modeCandidate{
			id:      mi.Id,
			res:     domain.Resolution{Width: int(mi.Width), Height: int(mi.Height)},
			refresh: refreshRate(mi.DotClock, mi.Htotal, mi.Vtotal, mi.ModeFlags),
		})
	}
	return modes
}

// CurrentMode returns the size of the primary output's CRTC
func (c *X11Controller) CurrentMode(ctx context.Context) (domain.Resolution, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.primary()
	if err != nil {
		return domain.Resolution{}, err
	}
	return domain.Resolution{Width: int(st.crtc.Width), Height: int(st.crtc.Height)}, nil
}

// MaxRefreshRate returns the highest refresh advertised at the current size
func (c *X11Controller) MaxRefreshRate(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.primary()
	if err != nil {
		return 0, err
	}
	current := domain.Resolution{Width: int(st.crtc.Width), Height: int(st.crtc.Height)}
	return maxRefreshAt(st.modes, current), nil
}

// SetMode reconfigures the primary CRTC. NoResolution selects the output's preferred mode.
func (c *X11Controller) SetMode(ctx context.Context, mode domain.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, err := c.primary()
	if err != nil {
		return err
	}

	var target modeCandidate
	if mode.Resolution.IsZero() {
		if st.preferred == nil {
			return fmt.Errorf("output %s has no preferred mode", string(st.info.Name))
		}
		target = *st.preferred
		c.logger.Info("Restoring preferred display mode",
			zap.String("resolution", target.res.String()),
			zap.Int("refresh", target.refresh))
	} else {
		var ok bool
		target, ok = selectMode(st.modes, mode.Resolution, mode.RefreshRate)
		if !ok {
			return fmt.Errorf("output %s does not support %s", string(st.info.Name), mode.Resolution)
		}
		c.logger.Info("Setting display mode",
			zap.String("resolution", target.res.String()),
			zap.Int("refresh", target.refresh),
			zap.Int("requestedRefresh", mode.RefreshRate))
	}

	if mode.Depth != 0 && mode.Depth != int(c.screen.RootDepth) {
		c.logger.Debug("Color depth is fixed by the X server, ignoring request",
			zap.Int("requested", mode.Depth),
			zap.Int("rootDepth", int(c.screen.RootDepth)))
	}

	geom, err := xproto.GetGeometry(c.conn, xproto.Drawable(c.root)).Reply()
	if err != nil {
		return fmt.Errorf("failed to read root geometry: %w", err)
	}
	needW := int(st.crtc.X) + target.res.Width
	needH := int(st.crtc.Y) + target.res.Height
	grow := needW > int(geom.Width) || needH > int(geom.Height)

	// The screen must contain the CRTC before and after the change
	if grow {
		if err := c.resizeScreen(max(needW, int(geom.Width)), max(needH, int(geom.Height))); err != nil {
			return err
		}
	}

	reply, err := randr.SetCrtcConfig(c.conn, st.info.Crtc, xproto.TimeCurrentTime, st.resources.ConfigTimestamp,
		st.crtc.X, st.crtc.Y, randr.Mode(target.id), st.crtc.Rotation, st.crtc.Outputs).Reply()
	if err != nil {
		return fmt.Errorf("failed to set crtc config: %w", err)
	}
	if reply.Status != randr.SetConfigSuccess {
		return &ModeChangeError{Mode: mode, Code: int(reply.Status)}
	}

	if needW != int(geom.Width) || needH != int(geom.Height) {
		if err := c.resizeScreen(needW, needH); err != nil {
			c.logger.Warn("Mode applied but screen size could not be adjusted", zap.Error(err))
		}
	}

	return nil
}

// resizeScreen sets the root window size, keeping the physical DPI of the default screen
func (c *X11Controller) resizeScreen(width, height int) error {
	mmW := uint32(width) * uint32(c.screen.WidthInMillimeters) / uint32(max(int(c.screen.WidthInPixels), 1))
	mmH := uint32(height) * uint32(c.screen.HeightInMillimeters) / uint32(max(int(c.screen.HeightInPixels), 1))

	if err := randr.SetScreenSizeChecked(c.conn, c.root, uint16(width), uint16(height), mmW, mmH).Check(); err != nil {
		return fmt.Errorf("failed to resize screen to %dx%d: %w", width, height, err)
	}
	return nil
}

// CandidateSubResolutions lists the editor choices derived from the current mode
func (c *X11Controller) CandidateSubResolutions(ctx context.Context) ([]domain.Resolution, error) {
	return candidatesFrom(ctx, c.CurrentMode)
}

// Close disconnects from the X server
func (c *X11Controller) Close() error {
	c.conn.Close()
	return nil
}
