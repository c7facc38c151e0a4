package gnome

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"

	"nightlight/internal/domain"
	"nightlight/internal/logging"
)

type fakeCall struct {
	method string
	args   []interface{}
}

type fakeBusObject struct {
	props   map[string]dbus.Variant
	getErr  error
	setErr  error
	callErr error

	sets  map[string]interface{}
	calls []fakeCall
}

func newFakeBusObject() *fakeBusObject {
	return &fakeBusObject{
		props: map[string]dbus.Variant{},
		sets:  map[string]interface{}{},
	}
}

func (f *fakeBusObject) Call(method string, flags dbus.Flags, args ...interface{}) *dbus.Call {
	f.calls = append(f.calls, fakeCall{method: method, args: args})
	return &dbus.Call{Method: method, Args: args, Err: f.callErr}
}

func (f *fakeBusObject) GetProperty(p string) (dbus.Variant, error) {
	if f.getErr != nil {
		return dbus.Variant{}, f.getErr
	}
	v, ok := f.props[p]
	if !ok {
		return dbus.Variant{}, dbus.Error{Name: "org.freedesktop.DBus.Error.UnknownProperty"}
	}
	return v, nil
}

func (f *fakeBusObject) SetProperty(p string, v interface{}) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.sets[p] = v
	return nil
}

func TestColorClientTemperature(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	obj.props["org.gnome.SettingsDaemon.Color.Temperature"] = dbus.MakeVariant(uint32(4156))
	c := NewColorClient(obj, logging.Nop())

	temp, err := c.Temperature()
	require.NoError(err)
	require.Equal(4156, temp)
}

func TestColorClientTemperatureBadSignature(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	obj.props["org.gnome.SettingsDaemon.Color.Temperature"] = dbus.MakeVariant("warm")
	c := NewColorClient(obj, logging.Nop())

	_, err := c.Temperature()
	require.ErrorIs(err, domain.ErrRemoteError)
}

func TestColorClientSetTemperature(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	c := NewColorClient(obj, logging.Nop())

	require.NoError(c.SetTemperature(12000))
	v, ok := obj.sets["org.gnome.SettingsDaemon.Color.Temperature"].(dbus.Variant)
	require.True(ok)
	require.Equal("u", v.Signature().String())
	require.Equal(uint32(12000), v.Value())
}

func TestColorClientUnavailable(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	obj.getErr = dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}
	c := NewColorClient(obj, logging.Nop())

	_, err := c.Temperature()
	require.ErrorIs(err, domain.ErrRemoteUnavailable)
	require.NotErrorIs(err, domain.ErrRemoteError)
}

func TestColorClientRejected(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	obj.setErr = dbus.Error{Name: "org.freedesktop.DBus.Error.AccessDenied"}
	c := NewColorClient(obj, logging.Nop())

	err := c.SetTemperature(5000)
	require.ErrorIs(err, domain.ErrRemoteError)
	require.NotErrorIs(err, domain.ErrRemoteUnavailable)
}

func TestClassify(t *testing.T) {
	require := require.New(t)

	require.NoError(classify("op", nil))
	require.ErrorIs(classify("op", errors.New("connection closed")), domain.ErrRemoteUnavailable)
	require.ErrorIs(classify("op", &dbus.Error{Name: "org.freedesktop.DBus.Error.NameHasNoOwner"}), domain.ErrRemoteUnavailable)
	require.ErrorIs(classify("op", dbus.Error{Name: "org.freedesktop.DBus.Error.Spawn.ChildExited"}), domain.ErrRemoteUnavailable)
	require.ErrorIs(classify("op", dbus.Error{Name: "org.freedesktop.DBus.Error.InvalidArgs"}), domain.ErrRemoteError)
}

func TestShellClientShowOSD(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	s := NewShellClient(obj, logging.Nop())
	level, err := domain.NewLevelDescriptor(domain.OSDMin, domain.OSDMid, domain.OSDMax, 5196)
	require.NoError(err)

	require.NoError(s.ShowOSD(domain.IconSunset, level, "5196K"))
	require.Len(obj.calls, 1)
	require.Equal("org.gnome.Shell.ShowOSD", obj.calls[0].method)
	require.Len(obj.calls[0].args, 1)

	payload, ok := obj.calls[0].args[0].(map[string]dbus.Variant)
	require.True(ok)
	require.Len(payload, 4)
	require.Equal("daytime-sunset-symbolic", payload["icon"].Value())
	require.Equal("s", payload["icon"].Signature().String())
	require.Equal("5196K", payload["label"].Value())
	require.Equal("d", payload["level"].Signature().String())
	require.InDelta(0.8, payload["level"].Value().(float64), 1e-9)
	require.InDelta(1.2318, payload["max_level"].Value().(float64), 1e-4)
}

func TestShellClientShowOSDFailure(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	obj.callErr = dbus.Error{Name: "org.freedesktop.DBus.Error.ServiceUnknown"}
	s := NewShellClient(obj, logging.Nop())
	level, err := domain.NewLevelDescriptor(0, 6495, 8000, 6495)
	require.NoError(err)

	err = s.ShowOSD(domain.IconSunrise, level, "6495K")
	require.ErrorIs(err, domain.ErrRemoteUnavailable)
}

func TestShellClientRejectsDegenerateLevel(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	s := NewShellClient(obj, logging.Nop())

	err := s.ShowOSD(domain.IconSunrise, domain.LevelDescriptor{Min: 10, Mid: 10, Max: 20, Level: 15}, "15K")
	require.ErrorIs(err, domain.ErrDegenerateLevel)
	require.Empty(obj.calls)
}

func TestWrapVariants(t *testing.T) {
	require := require.New(t)

	out, err := wrapVariants(map[string]interface{}{
		"s":   "text",
		"i":   7,
		"u8":  uint8(3),
		"f32": float32(0.5),
		"f64": 1.25,
	})
	require.NoError(err)
	require.Equal("s", out["s"].Signature().String())
	require.Equal("u", out["i"].Signature().String())
	require.Equal(uint32(7), out["i"].Value())
	require.Equal("u", out["u8"].Signature().String())
	require.Equal("d", out["f32"].Signature().String())
	require.Equal(0.5, out["f32"].Value())
	require.Equal(1.25, out["f64"].Value())
}

func TestWrapVariantsUnsupported(t *testing.T) {
	require := require.New(t)

	_, err := wrapVariants(map[string]interface{}{"flag": true})
	require.ErrorIs(err, domain.ErrUnsupportedValueType)
	require.True(domain.IsInternal(err))

	_, err = wrapOne([]string{"a"})
	require.ErrorIs(err, domain.ErrUnsupportedValueType)
}

func TestNoopNotifier(t *testing.T) {
	require := require.New(t)

	n := NewNoopNotifier(logging.Nop())
	require.NoError(n.ShowOSD(domain.IconSunrise, domain.LevelDescriptor{Mid: 1}, "1K"))
}

func TestColorClientSetTemperatureOutOfRange(t *testing.T) {
	require := require.New(t)

	obj := newFakeBusObject()
	c := NewColorClient(obj, logging.Nop())

	for _, value := range []int{-1, math.MaxUint32 + 1, 4294971296} {
		err := c.SetTemperature(value)
		require.ErrorIs(err, domain.ErrOutOfRange, "value=%d", value)
		require.False(domain.IsInternal(err))
	}
	require.Empty(obj.sets)

	require.NoError(c.SetTemperature(math.MaxUint32))
	v := obj.sets["org.gnome.SettingsDaemon.Color.Temperature"].(dbus.Variant)
	require.Equal(uint32(math.MaxUint32), v.Value())
}

func TestWrapOneRange(t *testing.T) {
	require := require.New(t)

	for _, v := range []interface{}{-1, int8(-2), int64(math.MaxUint32 + 1), uint64(math.MaxUint32 + 1)} {
		_, err := wrapOne(v)
		require.ErrorIs(err, domain.ErrUnsupportedValueType, "value=%v", v)
	}

	got, err := wrapOne(int64(math.MaxUint32))
	require.NoError(err)
	require.Equal(uint32(math.MaxUint32), got.Value())
}

func TestShellClientTracesPayload(t *testing.T) {
	require := require.New(t)

	var logs bytes.Buffer
	obj := newFakeBusObject()
	s := NewShellClient(obj, logging.NewWithWriter(&logs, 4))
	level, err := domain.NewLevelDescriptor(0, 6495, 8000, 4156)
	require.NoError(err)

	require.NoError(s.ShowOSD(domain.IconSunset, level, "4156K"))
	require.Contains(logs.String(), "[trc] org.gnome.Shell.ShowOSD payload")
	require.Contains(logs.String(), "4156K")

	logs.Reset()
	quiet := NewShellClient(obj, logging.NewWithWriter(&logs, 2))
	require.NoError(quiet.ShowOSD(domain.IconSunset, level, "4156K"))
	require.NotContains(logs.String(), "[trc]")
}
