package gnome

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"

	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

const temperatureProperty = ColorInterface + ".Temperature"

// ColorClient implements domain.ColorService over the Temperature property.
// This is a secondary adapter.
type ColorClient struct {
	obj BusObject
	log *logging.Logger
}

// NewColorClient wraps a bus object exporting org.gnome.SettingsDaemon.Color.
func NewColorClient(obj BusObject, log *logging.Logger) *ColorClient {
	return &ColorClient{obj: obj, log: log}
}

// Temperature reads the current colour temperature.
func (c *ColorClient) Temperature() (int, error) {
	v, err := c.obj.GetProperty(temperatureProperty)
	if err != nil {
		return 0, classify("get Temperature", err)
	}
	t, ok := toInt(v.Value())
	if !ok {
		return 0, fmt.Errorf("get Temperature: %w: unexpected signature %s", domain.ErrRemoteError, v.Signature())
	}
	c.log.Debugf("Temperature = %d", t)
	return t, nil
}

// SetTemperature writes value as-is; the daemon clamps to its own range.
// Values that do not fit the property's uint32 are refused here.
func (c *ColorClient) SetTemperature(value int) error {
	if value < 0 || uint64(value) > math.MaxUint32 {
		return fmt.Errorf("set Temperature: %w: %d does not fit uint32", domain.ErrOutOfRange, value)
	}
	c.log.Infof("Setting Temperature to %d", value)
	if err := c.obj.SetProperty(temperatureProperty, dbus.MakeVariant(uint32(value))); err != nil {
		return classify("set Temperature", err)
	}
	return nil
}

func toInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case uint32:
		return int(t), true
	case int32:
		return int(t), true
	case uint64:
		return int(t), true
	case int64:
		return int(t), true
	case uint16:
		return int(t), true
	case int16:
		return int(t), true
	case byte:
		return int(t), true
	case int:
		return t, true
	default:
		return 0, false
	}
}
