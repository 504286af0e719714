package notify

import (
	"context"
	"fmt"
	"sync"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/godbus/dbus/v5"
	"go.uber.org/zap"
)

const (
	notificationsDest   = "org.freedesktop.Notifications"
	notificationsPath   = dbus.ObjectPath("/org/freedesktop/Notifications")
	notificationsMethod = "org.freedesktop.Notifications.Notify"

	appName         = "resswitch"
	expireTimeoutMs = int32(4000)
)

// DesktopNotifier sends freedesktop notifications over the session bus.
// Consecutive notifications replace each other instead of stacking.
type DesktopNotifier struct {
	logger *zap.Logger
	mu     sync.Mutex
	conn   DBusClient
	lastID uint32
}

// NewDesktopNotifier wraps an existing D-Bus client
func NewDesktopNotifier(logger *zap.Logger, conn DBusClient) *DesktopNotifier {
	return &DesktopNotifier{logger: logger, conn: conn}
}

// Notify shows a notification, replacing the previous one
func (n *DesktopNotifier) Notify(ctx context.Context, summary, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	var id uint32
	err := n.conn.Call(notificationsDest, notificationsPath, notificationsMethod,
		[]interface{}{&id},
		appName, n.lastID, "", summary, body, []string{}, map[string]dbus.Variant{}, expireTimeoutMs)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	n.lastID = id
	n.logger.Debug("Notification sent", zap.String("summary", summary), zap.Uint32("id", id))
	return nil
}

// Close closes the D-Bus connection
func (n *DesktopNotifier) Close() error {
	return n.conn.Close()
}

// NoopNotifier drops every notification
type NoopNotifier struct{}

// Notify does nothing
func (NoopNotifier) Notify(context.Context, string, string) error { return nil }

// Close does nothing
func (NoopNotifier) Close() error { return nil }

// NewNotifier returns a desktop notifier when notifications are enabled and the
// session bus is reachable, otherwise a NoopNotifier
func NewNotifier(logger *zap.Logger, cfg domain.Config) domain.Notifier {
	if !cfg.NotificationsEnabled() {
		return NoopNotifier{}
	}

	conn, err := NewStdDBusClient()
	if err != nil {
		logger.Warn("Session bus unavailable, desktop notifications disabled", zap.Error(err))
		return NoopNotifier{}
	}

	logger.Info("Desktop notifications enabled")
	return NewDesktopNotifier(logger, conn)
}
