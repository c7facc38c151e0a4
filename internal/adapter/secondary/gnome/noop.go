package gnome

import (
	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

// NoopNotifier implements domain.Notifier by logging the overlay it would show.
// Used by `loop --no-osd` and in tests.
type NoopNotifier struct {
	log *logging.Logger
}

// NewNoopNotifier creates a notifier that never touches the bus.
func NewNoopNotifier(log *logging.Logger) domain.Notifier {
	return &NoopNotifier{log: log}
}

// ShowOSD only logs.
func (n *NoopNotifier) ShowOSD(icon domain.IconKind, level domain.LevelDescriptor, label string) error {
	n.log.Infof("OSD suppressed: icon=%s level=%d label=%s", icon, level.Level, label)
	return nil
}
