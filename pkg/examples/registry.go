package examples

import (
	"fmt"
	"sort"

	"github.com/genprop/genprop-go/pkg/nodemap/memmap"
)

var builders = map[string]func() (*memmap.Map, error){
	"areascan": func() (*memmap.Map, error) { return NewAreaScan(DefaultAreaScanConfig()) },
	"areascan-mono": func() (*memmap.Map, error) {
		cfg := DefaultAreaScanConfig()
		cfg.ModelName = "a2A1920-51gmBAS"
		cfg.Color = false
		return NewAreaScan(cfg)
	},
	"emulator": func() (*memmap.Map, error) { return NewEmulator(), nil },
}

// Names returns the example names accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName creates a fresh node map for the named example.
func ByName(name string) (*memmap.Map, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown example %q (available: %v)", name, Names())
	}
	return build()
}
