package examples

import "github.com/genprop/genprop-go/pkg/nodemap/memmap"

// EmulatorModelName is the model name reported by the emulator.
const EmulatorModelName = "Emulation"

// NewEmulator creates the node map of a minimal camera emulator: a flat
// feature list without selectors.
func NewEmulator() *memmap.Map {
	return memmap.MustBuild(
		memmap.NodeSpec{Name: "Root", Kind: "category", Features: []string{
			"DeviceModelName", "Width", "Height", "PixelFormat", "ExposureTime", "Gain", "TestImageSelector",
		}},
		memmap.NodeSpec{Name: "DeviceModelName", Kind: "string", Access: "ro", Value: EmulatorModelName},
		memmap.NodeSpec{Name: "Width", Kind: "integer", Min: 16, Max: 4096, Value: 1024},
		memmap.NodeSpec{Name: "Height", Kind: "integer", Min: 16, Max: 4096, Value: 1040},
		memmap.NodeSpec{Name: "PixelFormat", Kind: "enumeration", Value: "Mono8",
			Entries: []memmap.EntrySpec{{Name: "Mono8", Value: 0x01080001}}},
		memmap.NodeSpec{Name: "ExposureTime", DisplayName: "Exposure Time", Kind: "float", Min: 10.0, Max: 1e6, Value: 10000.0},
		memmap.NodeSpec{Name: "Gain", Kind: "integer", Min: 0, Max: 1023, Value: 0},
		memmap.NodeSpec{Name: "TestImageSelector", DisplayName: "Test Image Selector", Kind: "enumeration", Value: "Testimage1",
			Entries: []memmap.EntrySpec{
				{Name: "Off", Value: 0},
				{Name: "Testimage1", Value: 1},
				{Name: "Testimage2", Value: 2},
			}},
	)
}
