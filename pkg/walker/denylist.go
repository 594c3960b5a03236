package walker

// Denylist is a set of feature names excluded from discovery.
type Denylist map[string]struct{}

// DefaultDenylist holds the features owned by the media pipeline: frame
// geometry, pixel format and frame rate.
var DefaultDenylist = NewDenylist(
	"Width",
	"Height",
	"PixelFormat",
	"AcquisitionFrameRateEnable",
	"AcquisitionFrameRate",
	"AcquisitionFrameRateAbs",
)

// NewDenylist creates a denylist from feature names.
func NewDenylist(names ...string) Denylist {
	d := make(Denylist, len(names))
	for _, n := range names {
		d[n] = struct{}{}
	}
	return d
}

// Contains reports whether name is denied.
func (d Denylist) Contains(name string) bool {
	_, ok := d[name]
	return ok
}

// With returns a copy of d extended by names.
func (d Denylist) With(names ...string) Denylist {
	out := make(Denylist, len(d)+len(names))
	for n := range d {
		out[n] = struct{}{}
	}
	for _, n := range names {
		out[n] = struct{}{}
	}
	return out
}
