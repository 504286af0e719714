package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

// recordingDBusClient captures calls and hands out increasing notification ids
type recordingDBusClient struct {
	calls  [][]interface{}
	nextID uint32
	err    error
	closed bool
}

func (r *recordingDBusClient) Close() error {
	r.closed = true
	return nil
}

func (r *recordingDBusClient) Call(dest string, path dbus.ObjectPath, method string, ret []interface{}, args ...interface{}) error {
	if dest != notificationsDest || path != notificationsPath || method != notificationsMethod {
		return fmt.Errorf("unexpected call %s %s %s", dest, path, method)
	}
	r.calls = append(r.calls, args)
	if r.err != nil {
		return r.err
	}
	r.nextID++
	if len(ret) == 1 {
		if p, ok := ret[0].(*uint32); ok {
			*p = r.nextID
		}
	}
	return nil
}

func TestDesktopNotifier_Notify(t *testing.T) {
	client := &recordingDBusClient{}
	n := NewDesktopNotifier(zap.NewNop(), client)

	if err := n.Notify(context.Background(), "game.exe started", "Switched to 1920 x 1080"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := n.Notify(context.Background(), "game.exe stopped", "Restored 2560 x 1440"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(client.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(client.calls))
	}

	first := client.calls[0]
	if len(first) != 8 {
		t.Fatalf("Notify takes 8 arguments, got %d", len(first))
	}
	if first[0] != appName {
		t.Errorf("app name: expected %s, got %v", appName, first[0])
	}
	if first[1] != uint32(0) {
		t.Errorf("first notification should not replace anything, got replaces_id %v", first[1])
	}
	if first[3] != "game.exe started" {
		t.Errorf("summary mismatch: %v", first[3])
	}

	// Second notification replaces the first
	if client.calls[1][1] != uint32(1) {
		t.Errorf("expected replaces_id 1, got %v", client.calls[1][1])
	}
}

func TestDesktopNotifier_Error(t *testing.T) {
	client := &recordingDBusClient{err: fmt.Errorf("service unknown")}
	n := NewDesktopNotifier(zap.NewNop(), client)

	if err := n.Notify(context.Background(), "s", "b"); err == nil {
		t.Fatal("expected error, got nil")
	}
	if n.lastID != 0 {
		t.Errorf("failed call must not update lastID, got %d", n.lastID)
	}

	if err := n.Close(); err != nil {
		t.Errorf("close failed: %v", err)
	}
	if !client.closed {
		t.Error("expected connection to be closed")
	}
}

type notifyConfig struct{ enabled bool }

func (c notifyConfig) GetSettingsPath() string          { return "" }
func (c notifyConfig) GetPollInterval() time.Duration   { return time.Second }
func (c notifyConfig) GetPrecedence() domain.Precedence { return domain.PrecedenceIndependent }
func (c notifyConfig) NotificationsEnabled() bool       { return c.enabled }

func TestNewNotifier_Disabled(t *testing.T) {
	n := NewNotifier(zap.NewNop(), notifyConfig{enabled: false})
	if _, ok := n.(NoopNotifier); !ok {
		t.Fatalf("expected NoopNotifier, got %T", n)
	}
	if err := n.Notify(context.Background(), "a", "b"); err != nil {
		t.Errorf("noop notify failed: %v", err)
	}
}
