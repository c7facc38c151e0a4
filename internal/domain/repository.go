package domain

// ColorService is a secondary port over the colour-management service.
// This interface is defined in the domain layer and implemented by adapters.
type ColorService interface {
	Temperature() (int, error)
	SetTemperature(value int) error
}

// Notifier is a secondary port that shows an on-screen overlay.
type Notifier interface {
	ShowOSD(icon IconKind, level LevelDescriptor, label string) error
}
