package notify

import (
	"github.com/godbus/dbus/v5"
)

// DBusClient defines the interface for the D-Bus calls the notifier makes.
// This abstraction allows us to fake D-Bus interactions in tests.
type DBusClient interface {
	// Close closes the D-Bus connection
	Close() error

	// Call invokes a method on an object and stores the reply body into ret
	Call(dest string, path dbus.ObjectPath, method string, ret []interface{}, args ...interface{}) error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// Call invokes a method on an object and stores the reply body into ret
func (c *StdDBusClient) Call(dest string, path dbus.ObjectPath, method string, ret []interface{}, args ...interface{}) error {
	call := c.conn.Object(dest, path).Call(method, 0, args...)
	if call.Err != nil {
		return call.Err
	}
	if len(ret) == 0 {
		return nil
	}
	return call.Store(ret...)
}
