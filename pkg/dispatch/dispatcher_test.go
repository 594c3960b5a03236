package dispatch

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/genprop/genprop-go/pkg/introspect"
	"github.com/genprop/genprop-go/pkg/nodemap/memmap"
	"github.com/genprop/genprop-go/pkg/property"
	"github.com/genprop/genprop-go/pkg/walker"
)

func gainSchema(t *testing.T) *property.Schema {
	t.Helper()
	s := property.NewSchema()
	require.NoError(t, s.Add(
		&property.Descriptor{
			Name: "Gain-DigitalAll", Feature: "Gain", Kind: property.KindInteger,
			Flags: property.FlagReadWrite | property.FlagMutablePlaying,
			Int:   &property.IntRange{Min: 0, Max: 360},
			Selector: &property.SelectorBinding{
				Feature: "Gain", Selector: "GainSelector", Entry: "DigitalAll", Value: 1,
			},
		},
		&property.Descriptor{
			Name: "ReverseX", Feature: "ReverseX", Kind: property.KindBoolean,
			Flags: property.FlagReadWrite | property.FlagMutableReady,
		},
	))
	return s
}

func TestSetSelectorFailureAbortsTargetWrite(t *testing.T) {
	values := &mockValues{}
	values.On("SetEnumValue", "GainSelector", int64(1)).Return(errors.New("selector write refused")).Once()

	d := New(values, gainSchema(t))
	err := d.Set("Gain-DigitalAll", 12)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceAccess)

	var aerr *AccessError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, "Gain-DigitalAll", aerr.Property)
	assert.Equal(t, "GainSelector", aerr.Feature)
	assert.Equal(t, OpSet, aerr.Op)

	values.AssertExpectations(t)
	values.AssertNotCalled(t, "SetInteger", mock.Anything, mock.Anything)
}

func TestSetWritesSelectorThenTarget(t *testing.T) {
	values := &mockValues{}
	var order []string
	values.On("SetEnumValue", "GainSelector", int64(1)).Return(nil).Once().
		Run(func(mock.Arguments) { order = append(order, "selector") })
	values.On("SetInteger", "Gain", int64(12)).Return(nil).Once().
		Run(func(mock.Arguments) { order = append(order, "target") })

	d := New(values, gainSchema(t))
	require.NoError(t, d.Set("Gain-DigitalAll", int32(12)))

	assert.Equal(t, []string{"selector", "target"}, order)
	values.AssertExpectations(t)
}

func TestGetForcesSelector(t *testing.T) {
	values := &mockValues{}
	values.On("SetEnumValue", "GainSelector", int64(1)).Return(nil).Once()
	values.On("Integer", "Gain").Return(int64(42), nil).Once()

	d := New(values, gainSchema(t))
	v, err := d.Get("Gain-DigitalAll")
	require.NoError(t, err)
	assert.Equal(t, int64(42), v)
	values.AssertExpectations(t)
}

func TestGetSelectorFailure(t *testing.T) {
	values := &mockValues{}
	values.On("SetEnumValue", "GainSelector", int64(1)).Return(errors.New("nak")).Once()

	d := New(values, gainSchema(t))
	_, err := d.Get("Gain-DigitalAll")
	assert.ErrorIs(t, err, ErrDeviceAccess)
	values.AssertNotCalled(t, "Integer", mock.Anything)
}

func TestTargetFailureIsAccessError(t *testing.T) {
	values := &mockValues{}
	boom := errors.New("register write timeout")
	values.On("SetBoolean", "ReverseX", true).Return(boom).Once()

	d := New(values, gainSchema(t))
	err := d.Set("ReverseX", true)

	assert.ErrorIs(t, err, ErrDeviceAccess)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ReverseX")
	assert.Contains(t, err.Error(), "register write timeout")
}

func TestSetValidation(t *testing.T) {
	values := &mockValues{}
	d := New(values, gainSchema(t))

	assert.ErrorIs(t, d.Set("Nope", 1), ErrUnknownProperty)
	assert.ErrorIs(t, d.Set("ReverseX", "yes"), ErrValueType)
	assert.ErrorIs(t, d.Set("Gain-DigitalAll", 1.5), ErrValueType)

	d.SetCapturing(true)
	assert.True(t, d.Capturing())
	assert.ErrorIs(t, d.Set("ReverseX", true), ErrLockedWhileCapturing)

	// Invalid requests never reach the device.
	values.AssertNotCalled(t, "SetEnumValue", mock.Anything, mock.Anything)
	values.AssertNotCalled(t, "SetBoolean", mock.Anything, mock.Anything)
}

func TestSetWhileCapturingPlayingProperty(t *testing.T) {
	values := &mockValues{}
	values.On("SetEnumValue", "GainSelector", int64(1)).Return(nil)
	values.On("SetInteger", "Gain", int64(3)).Return(nil)

	d := New(values, gainSchema(t))
	d.SetCapturing(true)
	assert.NoError(t, d.Set("Gain-DigitalAll", int64(3)))
}

func TestUnsupportedKind(t *testing.T) {
	// Descriptors are validated on install; build the schema by hand to
	// reach the default branch.
	s := property.NewSchema()
	require.NoError(t, s.Add(&property.Descriptor{Name: "X", Feature: "X", Kind: property.KindString, Flags: property.FlagReadWrite}))
	desc, _ := s.Lookup("X")
	desc.Kind = property.KindUnknown

	d := New(&mockValues{}, s)
	_, err := d.Get("X")
	assert.ErrorIs(t, err, property.ErrUnsupportedValueKind)
	assert.ErrorIs(t, d.Set("X", "v"), property.ErrUnsupportedValueKind)
}

func discoveredDispatcher(t *testing.T) (*Dispatcher, *memmap.Map) {
	t.Helper()
	m := memmap.MustBuild(
		memmap.NodeSpec{Name: "Root", Kind: "category", Features: []string{
			"GainSelector", "Gain", "ExposureTime", "ReverseX", "DeviceUserID", "GainAuto", "DeviceTemperature",
		}},
		memmap.NodeSpec{Name: "GainSelector", Kind: "enumeration", Entries: []memmap.EntrySpec{
			{Name: "All", Value: 0}, {Name: "DigitalAll", Value: 1},
		}},
		memmap.NodeSpec{Name: "Gain", Kind: "integer", Min: 0, Max: 360, Selectors: []string{"GainSelector"}},
		memmap.NodeSpec{Name: "ExposureTime", Kind: "float", Min: 20.0, Max: 10000.0, Value: 100.0},
		memmap.NodeSpec{Name: "ReverseX", Kind: "boolean", Locked: true},
		memmap.NodeSpec{Name: "DeviceUserID", Kind: "string", Value: "cam-left"},
		memmap.NodeSpec{Name: "GainAuto", Kind: "enumeration", Entries: []memmap.EntrySpec{
			{Name: "Off", Value: 0}, {Name: "Once", Value: 1}, {Name: "Continuous", Value: 2},
		}},
		memmap.NodeSpec{Name: "DeviceTemperature", Kind: "float", Access: "ro", Value: 38.0},
	)

	result, err := walker.New(walker.Config{Enums: introspect.NewEnumRegistry()}).Install(m)
	require.NoError(t, err)
	require.Empty(t, result.Skipped)
	return New(m, result.Schema), m
}

func TestSetAcceptsUnsignedIntegers(t *testing.T) {
	d, m := discoveredDispatcher(t)

	require.NoError(t, d.Set("Gain-All", uint(5)))
	v, err := d.Get("Gain-All")
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	require.NoError(t, d.Set("Gain-DigitalAll", uint64(7)))
	v, err = d.Get("Gain-DigitalAll")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v)

	require.NoError(t, d.Set("GainAuto", uintptr(2)))
	require.NoError(t, d.Set("ExposureTime", uint64(500)))
	f, err := m.Float("ExposureTime")
	require.NoError(t, err)
	assert.Equal(t, 500.0, f)

	assert.ErrorIs(t, d.Set("Gain-All", uint64(math.MaxUint64)), ErrValueType)
}

func TestDispatchAgainstNodeMap(t *testing.T) {
	d, m := discoveredDispatcher(t)

	t.Run("multiplexed values are independent", func(t *testing.T) {
		require.NoError(t, d.Set("Gain-All", 100))
		require.NoError(t, d.Set("Gain-DigitalAll", 200))

		v, err := d.Get("Gain-All")
		require.NoError(t, err)
		assert.Equal(t, int64(100), v)

		v, err = d.Get("Gain-DigitalAll")
		require.NoError(t, err)
		assert.Equal(t, int64(200), v)
	})

	t.Run("float accepts integers", func(t *testing.T) {
		require.NoError(t, d.Set("ExposureTime", 5000))
		v, err := d.Get("ExposureTime")
		require.NoError(t, err)
		assert.Equal(t, 5000.0, v)
	})

	t.Run("string and bool", func(t *testing.T) {
		require.NoError(t, d.Set("DeviceUserID", "cam-right"))
		require.NoError(t, d.Set("ReverseX", true))

		v, err := d.Get("DeviceUserID")
		require.NoError(t, err)
		assert.Equal(t, "cam-right", v)
		v, err = d.Get("ReverseX")
		require.NoError(t, err)
		assert.Equal(t, true, v)
	})

	t.Run("enum by name and code", func(t *testing.T) {
		require.NoError(t, d.Set("GainAuto", "Continuous"))
		v, err := d.Get("GainAuto")
		require.NoError(t, err)
		assert.Equal(t, int64(2), v)

		require.NoError(t, d.Set("GainAuto", 1))
		v, err = d.Get("GainAuto")
		require.NoError(t, err)
		assert.Equal(t, int64(1), v)

		assert.ErrorIs(t, d.Set("GainAuto", "Sometimes"), ErrValueType)
	})

	t.Run("read only", func(t *testing.T) {
		assert.ErrorIs(t, d.Set("DeviceTemperature", 1.0), ErrNotWritable)
		v, err := d.Get("DeviceTemperature")
		require.NoError(t, err)
		assert.Equal(t, 38.0, v)
	})

	t.Run("device rejects out of range", func(t *testing.T) {
		err := d.Set("ExposureTime", 1.0)
		assert.ErrorIs(t, err, ErrDeviceAccess)
		assert.ErrorIs(t, err, memmap.ErrOutOfRange)
	})

	t.Run("selector failure leaves target untouched", func(t *testing.T) {
		m.ResetWrites()
		m.FailWrites("GainSelector", errors.New("bus reset"))
		defer m.FailWrites("GainSelector", nil)

		assert.ErrorIs(t, d.Set("Gain-All", 7), ErrDeviceAccess)
		assert.Empty(t, m.Writes())
	})
}
