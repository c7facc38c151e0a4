package gnome

import (
	"fmt"
	"math"

	"github.com/godbus/dbus/v5"

	"nightlight/internal/domain"
)

// wrapVariants tags every OSD field with its wire type:
// strings as "s", integers as "u" and floats as "d".
func wrapVariants(fields map[string]interface{}) (map[string]dbus.Variant, error) {
	out := make(map[string]dbus.Variant, len(fields))
	for k, v := range fields {
		wrapped, err := wrapOne(v)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", k, err)
		}
		out[k] = wrapped
	}
	return out, nil
}

func wrapOne(v interface{}) (dbus.Variant, error) {
	switch x := v.(type) {
	case string:
		return dbus.MakeVariant(x), nil
	case int:
		return signedVariant(int64(x))
	case int8:
		return signedVariant(int64(x))
	case int16:
		return signedVariant(int64(x))
	case int32:
		return signedVariant(int64(x))
	case int64:
		return signedVariant(x)
	case uint:
		return unsignedVariant(uint64(x))
	case uint8:
		return unsignedVariant(uint64(x))
	case uint16:
		return unsignedVariant(uint64(x))
	case uint32:
		return dbus.MakeVariant(x), nil
	case uint64:
		return unsignedVariant(x)
	case float32:
		return dbus.MakeVariant(float64(x)), nil
	case float64:
		return dbus.MakeVariant(x), nil
	default:
		return dbus.Variant{}, fmt.Errorf("%w: %T", domain.ErrUnsupportedValueType, v)
	}
}

func signedVariant(x int64) (dbus.Variant, error) {
	if x < 0 {
		return dbus.Variant{}, fmt.Errorf("%w: %d does not fit uint32", domain.ErrUnsupportedValueType, x)
	}
	return unsignedVariant(uint64(x))
}

func unsignedVariant(x uint64) (dbus.Variant, error) {
	if x > math.MaxUint32 {
		return dbus.Variant{}, fmt.Errorf("%w: %d does not fit uint32", domain.ErrUnsupportedValueType, x)
	}
	return dbus.MakeVariant(uint32(x)), nil
}
