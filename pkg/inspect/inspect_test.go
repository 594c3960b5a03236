package inspect

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/genprop/genprop-go/pkg/camera"
	"github.com/genprop/genprop-go/pkg/examples"
	"github.com/genprop/genprop-go/pkg/introspect"
	"github.com/genprop/genprop-go/pkg/property"
)

func enumDesc() *property.Descriptor {
	return &property.Descriptor{
		Name: "GainAuto", Kind: property.KindEnumeration, Flags: property.FlagReadWrite | property.FlagMutablePlaying,
		Enum: &property.EnumType{Name: "GainAuto", Values: []property.EnumValue{
			{Value: 0, Name: "Off", Description: "Manual"},
			{Value: 2, Name: "Continuous"},
		}},
		Settable: []string{"Off", "Continuous"},
		Default:  int64(0),
	}
}

func TestFormatValue(t *testing.T) {
	f := NewFormatter()

	assert.Equal(t, "null", f.FormatValue(nil, nil))
	assert.Equal(t, "true", f.FormatValue(nil, true))
	assert.Equal(t, `"cam-left"`, f.FormatValue(nil, "cam-left"))
	assert.Equal(t, "5000.5", f.FormatValue(nil, 5000.5))
	assert.Equal(t, "-3", f.FormatValue(nil, int64(-3)))
	assert.Equal(t, "Continuous (2)", f.FormatValue(enumDesc(), int64(2)))
	assert.Equal(t, "UNKNOWN(7)", f.FormatValue(enumDesc(), int64(7)))
}

func TestFormatRange(t *testing.T) {
	assert.Equal(t, "[0, 360]", FormatRange(&property.Descriptor{Int: &property.IntRange{Max: 360}}))
	assert.Equal(t, "[19, 1e+07]", FormatRange(&property.Descriptor{Float: &property.FloatRange{Min: 19, Max: 1e7}}))
	assert.Equal(t, "{Off, Continuous}", FormatRange(enumDesc()))
	assert.Equal(t, "", FormatRange(&property.Descriptor{Kind: property.KindBoolean}))
}

func TestFormatPropertyTable(t *testing.T) {
	f := NewFormatter()
	assert.Equal(t, "  (no properties)", f.FormatPropertyTable(nil))

	out := f.FormatPropertyTable([]PropertyRow{
		f.Row(enumDesc(), int64(0)),
		f.Row(&property.Descriptor{Name: "Gamma", Kind: property.KindFloat, Flags: property.FlagReadable,
			Float: &property.FloatRange{Min: 0, Max: 4}}, 1.0),
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  GainAuto = Off (0) (enum, RW playing, {Off, Continuous})", lines[0])
	assert.Equal(t, "  Gamma    = 1 (double, R, [0, 4])", lines[1])
}

func TestFormatDescriptor(t *testing.T) {
	d := enumDesc()
	d.Selector = &property.SelectorBinding{Selector: "GainSelector", Entry: "All", Value: 0}
	out := NewFormatter().FormatDescriptor(d)

	assert.True(t, strings.HasPrefix(out, "GainAuto\n"))
	assert.Contains(t, out, "selector: GainSelector=All (0)")
	assert.Contains(t, out, "0 Off  Manual")
	assert.Contains(t, out, "default:  Off (0)")
}

func TestParseValue(t *testing.T) {
	intDesc := &property.Descriptor{Name: "OffsetX", Kind: property.KindInteger}
	floatDesc := &property.Descriptor{Name: "Gamma", Kind: property.KindFloat}
	boolDesc := &property.Descriptor{Name: "ReverseX", Kind: property.KindBoolean}
	strDesc := &property.Descriptor{Name: "DeviceUserID", Kind: property.KindString}

	tests := []struct {
		name string
		desc *property.Descriptor
		text string
		want any
	}{
		{"int", intDesc, "42", int64(42)},
		{"hex int", intDesc, "0x10", int64(16)},
		{"negative int", intDesc, " -5 ", int64(-5)},
		{"float", floatDesc, "0.45", 0.45},
		{"float from int", floatDesc, "2", 2.0},
		{"bool on", boolDesc, "on", true},
		{"bool false", boolDesc, "FALSE", false},
		{"string", strDesc, "left", "left"},
		{"quoted string", strDesc, `"two words"`, "two words"},
		{"enum name", enumDesc(), "continuous", "Continuous"},
		{"enum code", enumDesc(), "2", int64(2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.desc, tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []struct {
		desc *property.Descriptor
		text string
	}{
		{intDesc, "1.5"},
		{floatDesc, "fast"},
		{boolDesc, "maybe"},
		{enumDesc(), "Sometimes"},
	} {
		_, err := ParseValue(bad.desc, bad.text)
		assert.ErrorIs(t, err, ErrInvalidValue, bad.text)
	}

	_, err := ParseValue(&property.Descriptor{Name: "X"}, "1")
	assert.ErrorIs(t, err, property.ErrUnsupportedValueKind)
}

func openCamera(t *testing.T) *camera.Camera {
	t.Helper()
	m, err := examples.NewAreaScan(examples.DefaultAreaScanConfig())
	require.NoError(t, err)

	cfg := camera.DefaultConfig()
	cfg.Enums = introspect.NewEnumRegistry()
	cam, err := camera.Open(m, cfg)
	require.NoError(t, err)
	return cam
}

func TestNames(t *testing.T) {
	cam := openCamera(t)
	schema := cam.Schema()

	name, ok := ResolveName(schema, "gain-digitalall")
	assert.True(t, ok)
	assert.Equal(t, "Gain-DigitalAll", name)
	_, ok = ResolveName(schema, "Width")
	assert.False(t, ok)

	assert.Equal(t, []string{"BalanceRatio-Blue", "BalanceRatio-Green", "BalanceRatio-Red"}, Complete(schema, "balanceratio-"))
	assert.Equal(t, []string{"TriggerMode-FrameStart", "TriggerSource-FrameStart"}, Match(schema, "framestart"))
	assert.Equal(t, schema.Len(), len(Match(schema, "")))
}

func TestInspector(t *testing.T) {
	cam := openCamera(t)
	i := NewInspector(cam, nil)

	require.NoError(t, i.Write("gain-all", "3.5"))
	v, err := i.Read("Gain-All")
	require.NoError(t, err)
	assert.Equal(t, "3.5", v)

	require.NoError(t, i.Write("TriggerMode-FrameStart", "on"))
	v, err = i.Read("TriggerMode-FrameStart")
	require.NoError(t, err)
	assert.Equal(t, "On (1)", v)

	_, err = i.Read("Height")
	assert.ErrorIs(t, err, ErrPropertyNotFound)
	assert.ErrorIs(t, i.Write("Gamma", "bright"), ErrInvalidValue)

	desc, err := i.Describe("LightSourcePreset")
	require.NoError(t, err)
	assert.Contains(t, desc, "No light source preset is applied")

	rows := i.List("Gain")
	require.NotEmpty(t, rows)
	assert.Equal(t, "Gain-All", rows[0].Name)
	assert.Equal(t, "3.5", rows[0].Value)
}

type failingTarget struct {
	schema *property.Schema
}

func (f failingTarget) Schema() *property.Schema { return f.schema }
func (f failingTarget) Get(string) (any, error)  { return nil, errors.New("link down") }
func (f failingTarget) Set(string, any) error    { return errors.New("link down") }

func TestInspectorListErrors(t *testing.T) {
	s := property.NewSchema()
	require.NoError(t, s.Add(
		&property.Descriptor{Name: "A", Kind: property.KindBoolean, Flags: property.FlagReadable},
		&property.Descriptor{Name: "B", Kind: property.KindBoolean, Flags: property.FlagWritable},
	))

	rows := NewInspector(failingTarget{s}, nil).List("")
	require.Len(t, rows, 2)
	assert.Equal(t, "error: link down", rows[0].Value)
	assert.Equal(t, "(write-only)", rows[1].Value)
}
