package camera

import (
	"github.com/genprop/genprop-go/pkg/nodemap"
	"github.com/genprop/genprop-go/pkg/nodemap/memmap"
)

type rootless struct {
	*memmap.Map
}

func (rootless) Root() (nodemap.Node, error) {
	return nil, nodemap.ErrNodeNotFound
}
