package gnome

import (
	"errors"
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"

	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

// Well-known names of the services this package talks to.
const (
	ColorDest      = "org.gnome.SettingsDaemon.Color"
	ColorPath      = dbus.ObjectPath("/org/gnome/SettingsDaemon/Color")
	ColorInterface = "org.gnome.SettingsDaemon.Color"

	ShellDest      = "org.gnome.Shell"
	ShellPath      = dbus.ObjectPath("/org/gnome/Shell")
	ShellInterface = "org.gnome.Shell"
)

// BusObject is the subset of dbus.BusObject used by the clients.
type BusObject interface {
	Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call
	GetProperty(p string) (dbus.Variant, error)
	SetProperty(p string, v interface{}) error
}

// Session holds the shared session bus connection.
// The connection is owned by godbus and is not closed here.
type Session struct {
	conn *dbus.Conn
	log  *logging.Logger
}

// Connect attaches to the user's session bus.
func Connect(log *logging.Logger) (*Session, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("session bus: %w: %w", domain.ErrRemoteUnavailable, err)
	}
	log.Debugf("connected to session bus")
	return &Session{conn: conn, log: log}, nil
}

// Color returns a client for the settings daemon colour plugin.
func (s *Session) Color() *ColorClient {
	return NewColorClient(s.conn.Object(ColorDest, ColorPath), s.log)
}

// Shell returns a client for the GNOME Shell OSD.
func (s *Session) Shell() *ShellClient {
	return NewShellClient(s.conn.Object(ShellDest, ShellPath), s.log)
}

var unavailableNames = map[string]bool{
	"org.freedesktop.DBus.Error.ServiceUnknown": true,
	"org.freedesktop.DBus.Error.NameHasNoOwner": true,
	"org.freedesktop.DBus.Error.NoReply":        true,
	"org.freedesktop.DBus.Error.Disconnected":   true,
	"org.freedesktop.DBus.Error.NoServer":       true,
	"org.freedesktop.DBus.Error.Timeout":        true,
}

// classify maps a bus failure onto the domain error taxonomy.
// Errors carrying a D-Bus error name were answered by someone on the bus;
// anything else is a transport failure.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	name := ""
	var dErr dbus.Error
	var dErrPtr *dbus.Error
	switch {
	case errors.As(err, &dErr):
		name = dErr.Name
	case errors.As(err, &dErrPtr):
		name = dErrPtr.Name
	default:
		return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteUnavailable, err)
	}
	if unavailableNames[name] || strings.HasPrefix(name, "org.freedesktop.DBus.Error.Spawn.") {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteUnavailable, err)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrRemoteError, err)
}
