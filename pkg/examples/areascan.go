package examples

import (
	"fmt"

	"github.com/genprop/genprop-go/pkg/nodemap/memmap"
)

// AreaScanConfig contains configuration for creating an area-scan camera.
type AreaScanConfig struct {
	ModelName    string
	VendorName   string
	SerialNumber string

	// Sensor geometry in pixels.
	MaxWidth  int64
	MaxHeight int64

	// Color adds white balance and the BalanceRatioSelector.
	Color bool
}

// DefaultAreaScanConfig returns the configuration of a 2.3 MP color camera.
func DefaultAreaScanConfig() AreaScanConfig {
	return AreaScanConfig{
		ModelName:    "a2A1920-51gcBAS",
		VendorName:   "Basler",
		SerialNumber: "40012345",
		MaxWidth:     1920,
		MaxHeight:    1200,
		Color:        true,
	}
}

// NewAreaScan creates the node map of an area-scan camera.
func NewAreaScan(cfg AreaScanConfig) (*memmap.Map, error) {
	specs := []memmap.NodeSpec{
		{Name: "Root", Kind: "category", Features: []string{
			"DeviceControl", "ImageFormatControl", "AnalogControl", "AcquisitionControl", "AutoFunctionControl",
		}},

		// Device information
		{Name: "DeviceControl", DisplayName: "Device Control", Kind: "category", Features: []string{
			"DeviceVendorName", "DeviceModelName", "DeviceSerialNumber", "DeviceUserID", "DeviceTemperature",
			"DeviceRegistersStreamingStart",
		}},
		{Name: "DeviceVendorName", DisplayName: "Vendor Name", Kind: "string", Access: "ro", Value: cfg.VendorName},
		{Name: "DeviceModelName", DisplayName: "Model Name", Kind: "string", Access: "ro", Value: cfg.ModelName},
		{Name: "DeviceSerialNumber", DisplayName: "Serial Number", Kind: "string", Access: "ro", Value: cfg.SerialNumber},
		{Name: "DeviceUserID", DisplayName: "Device User ID", ToolTip: "User-defined name of the device", Kind: "string"},
		{Name: "DeviceTemperature", DisplayName: "Device Temperature", Kind: "float", Access: "ro", Visibility: "expert",
			Min: -40.0, Max: 125.0, Value: 42.5},
		{Name: "DeviceRegistersStreamingStart", Kind: "command", Visibility: "invisible"},

		// Image format
		{Name: "ImageFormatControl", DisplayName: "Image Format Control", Kind: "category", Features: []string{
			"Width", "Height", "OffsetX", "OffsetY", "PixelFormat", "ReverseX", "ReverseY", "TestPattern",
		}},
		{Name: "Width", Kind: "integer", Min: 1, Max: cfg.MaxWidth, Value: cfg.MaxWidth, Locked: true},
		{Name: "Height", Kind: "integer", Min: 1, Max: cfg.MaxHeight, Value: cfg.MaxHeight, Locked: true},
		{Name: "OffsetX", DisplayName: "Offset X", Kind: "integer", Min: 0, Max: cfg.MaxWidth - 1, Locked: true},
		{Name: "OffsetY", DisplayName: "Offset Y", Kind: "integer", Min: 0, Max: cfg.MaxHeight - 1, Locked: true},
		pixelFormat(cfg.Color),
		{Name: "ReverseX", DisplayName: "Reverse X", ToolTip: "Mirror the image horizontally", Kind: "boolean", Locked: true},
		{Name: "ReverseY", DisplayName: "Reverse Y", ToolTip: "Mirror the image vertically", Kind: "boolean", Locked: true},
		{Name: "TestPattern", DisplayName: "Test Pattern", Kind: "enumeration", Value: "Off", Entries: []memmap.EntrySpec{
			{Name: "Off", Value: 0, ToolTip: "Sensor image"},
			{Name: "GreyDiagonalSawtooth8", Value: 1},
			{Name: "ColorDiagonalSawtooth8", Value: 2, Disabled: !cfg.Color},
		}},

		// Analog control
		{Name: "AnalogControl", DisplayName: "Analog Control", Kind: "category", Features: []string{
			"GainSelector", "Gain", "BlackLevelSelector", "BlackLevel", "Gamma",
		}},
		{Name: "GainSelector", DisplayName: "Gain Selector", Kind: "enumeration", Entries: []memmap.EntrySpec{
			{Name: "All", Value: 0},
			{Name: "DigitalAll", Value: 1},
		}},
		{Name: "Gain", DisplayName: "Gain", ToolTip: "Gain in dB", Kind: "float", Min: 0.0, Max: 24.0,
			Selectors: []string{"GainSelector"}, Values: map[string]any{"All": 0.0, "DigitalAll": 0.0}},
		{Name: "BlackLevelSelector", DisplayName: "Black Level Selector", Kind: "enumeration", Entries: []memmap.EntrySpec{
			{Name: "All", Value: 0},
		}},
		{Name: "BlackLevel", DisplayName: "Black Level", Kind: "float", Min: 0.0, Max: 31.9,
			Selectors: []string{"BlackLevelSelector"}},
		{Name: "Gamma", DisplayName: "Gamma", Kind: "float", Min: 0.0, Max: 4.0, Value: 1.0},

		// Acquisition
		{Name: "AcquisitionControl", DisplayName: "Acquisition Control", Kind: "category", Features: []string{
			"AcquisitionMode", "ExposureMode", "ExposureTime", "AcquisitionFrameRateEnable", "AcquisitionFrameRate",
			"TriggerSelector", "TriggerMode", "TriggerSource", "SensorReadoutTime",
		}},
		{Name: "AcquisitionMode", DisplayName: "Acquisition Mode", Kind: "enumeration", Value: "Continuous", Locked: true,
			Entries: []memmap.EntrySpec{{Name: "SingleFrame", Value: 0}, {Name: "Continuous", Value: 2}}},
		{Name: "ExposureMode", DisplayName: "Exposure Mode", Kind: "enumeration", Value: "Timed",
			Entries: []memmap.EntrySpec{{Name: "Timed", Value: 1}, {Name: "TriggerWidth", Value: 2}}},
		{Name: "ExposureTime", DisplayName: "Exposure Time", ToolTip: "Exposure time in microseconds",
			Kind: "float", Min: 19.0, Max: 1e7, Value: 5000.0},
		{Name: "AcquisitionFrameRateEnable", Kind: "boolean"},
		{Name: "AcquisitionFrameRate", Kind: "float", Min: 0.1, Max: 51.0, Value: 51.0},
		{Name: "TriggerSelector", DisplayName: "Trigger Selector", Kind: "enumeration", Value: "FrameStart",
			Entries: []memmap.EntrySpec{{Name: "FrameStart", Value: 6}, {Name: "FrameBurstStart", Value: 7}}},
		{Name: "TriggerMode", DisplayName: "Trigger Mode", Kind: "enumeration", Selectors: []string{"TriggerSelector"},
			Entries: []memmap.EntrySpec{{Name: "Off", Value: 0}, {Name: "On", Value: 1}}},
		{Name: "TriggerSource", DisplayName: "Trigger Source", Kind: "enumeration", Selectors: []string{"TriggerSelector"},
			Values: map[string]any{"FrameStart": "Line1", "FrameBurstStart": "Software"},
			Entries: []memmap.EntrySpec{
				{Name: "Software", Value: 0},
				{Name: "Line1", Value: 1},
				{Name: "Line3", Value: 3},
				{Name: "Line4", Value: 4, Disabled: true, ToolTip: "Line 4 is configured as output"},
			}},
		{Name: "SensorReadoutTime", DisplayName: "Sensor Readout Time", Kind: "float", Access: "ro", Visibility: "guru",
			Value: 12345.0, Unavailable: true},

		// Auto functions
		{Name: "AutoFunctionControl", DisplayName: "Auto Function Control", Kind: "category", Features: []string{
			"ExposureAuto", "GainAuto", "AutoTargetBrightness",
		}},
		{Name: "ExposureAuto", DisplayName: "Exposure Auto", Kind: "enumeration", Value: "Off", Entries: autoEntries()},
		{Name: "GainAuto", DisplayName: "Gain Auto", Kind: "enumeration", Value: "Off", Entries: autoEntries()},
		{Name: "AutoTargetBrightness", DisplayName: "Target Brightness", Kind: "float", Min: 0.2, Max: 0.8, Value: 0.3},
	}

	if cfg.Color {
		specs[0].Features = append(specs[0].Features, "ColorControl")
		specs = append(specs,
			memmap.NodeSpec{Name: "ColorControl", DisplayName: "Color Control", Kind: "category", Features: []string{
				"BalanceWhiteAuto", "BalanceRatioSelector", "BalanceRatio", "LightSourcePreset",
			}},
			memmap.NodeSpec{Name: "BalanceWhiteAuto", DisplayName: "Balance White Auto", Kind: "enumeration", Value: "Off",
				Entries: autoEntries()},
			memmap.NodeSpec{Name: "BalanceRatioSelector", DisplayName: "Balance Ratio Selector", Kind: "enumeration",
				Entries: []memmap.EntrySpec{{Name: "Red", Value: 0}, {Name: "Green", Value: 1}, {Name: "Blue", Value: 2}}},
			memmap.NodeSpec{Name: "BalanceRatio", DisplayName: "Balance Ratio", Kind: "float", Min: 0.0, Max: 15.98,
				Selectors: []string{"BalanceRatioSelector"},
				Values:    map[string]any{"Red": 1.6, "Green": 1.0, "Blue": 2.1}},
			memmap.NodeSpec{Name: "LightSourcePreset", DisplayName: "Light Source Preset", Kind: "enumeration",
				Value: "Daylight5000K", Entries: []memmap.EntrySpec{
					{Name: "Off", Value: 0, ToolTip: "No light source preset is applied"},
					{Name: "Daylight5000K", Value: 1},
					{Name: "Daylight6500K", Value: 2},
					{Name: "Tungsten2800K", Value: 3},
				}},
		)
	}

	m, err := memmap.Build(specs...)
	if err != nil {
		return nil, fmt.Errorf("area-scan %s: %w", cfg.ModelName, err)
	}
	return m, nil
}

func pixelFormat(color bool) memmap.NodeSpec {
	spec := memmap.NodeSpec{
		Name: "PixelFormat", DisplayName: "Pixel Format", Kind: "enumeration", Value: "Mono8", Locked: true,
		Entries: []memmap.EntrySpec{{Name: "Mono8", Value: 0x01080001}, {Name: "Mono12", Value: 0x01100005}},
	}
	if color {
		spec.Entries = append(spec.Entries,
			memmap.EntrySpec{Name: "BayerRG8", Value: 0x01080009},
			memmap.EntrySpec{Name: "RGB8", Value: 0x02180014},
		)
	}
	return spec
}

func autoEntries() []memmap.EntrySpec {
	return []memmap.EntrySpec{
		{Name: "Off", Value: 0},
		{Name: "Once", Value: 1},
		{Name: "Continuous", Value: 2},
	}
}
