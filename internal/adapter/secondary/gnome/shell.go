package gnome

import (
	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

const showOSDMethod = ShellInterface + ".ShowOSD"

// ShellClient implements domain.Notifier with org.gnome.Shell.ShowOSD.
type ShellClient struct {
	obj BusObject
	log *logging.Logger
}

// NewShellClient wraps a bus object exporting org.gnome.Shell.
func NewShellClient(obj BusObject, log *logging.Logger) *ShellClient {
	return &ShellClient{obj: obj, log: log}
}

// ShowOSD displays icon, a level bar and label.
func (c *ShellClient) ShowOSD(icon domain.IconKind, level domain.LevelDescriptor, label string) error {
	if level.Mid == level.Min {
		return domain.ErrDegenerateLevel
	}
	params := map[string]interface{}{
		"icon":      icon.String(),
		"level":     level.LevelFraction(),
		"max_level": level.MaxFraction(),
		"label":     label,
	}
	payload, err := wrapVariants(params)
	if err != nil {
		return err
	}
	c.log.Infof("Sending notify: %v", params)
	c.log.Tracef("%s payload: %v", showOSDMethod, payload)
	return classify("ShowOSD", c.obj.Call(showOSDMethod, 0, payload).Err)
}
