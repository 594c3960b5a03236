package inspect

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/genprop/genprop-go/pkg/property"
)

// ErrInvalidValue is returned when text cannot be parsed for a property.
var ErrInvalidValue = errors.New("invalid value")

// ParseValue parses text into the Go value a property of desc accepts.
// Integers may use a 0x prefix. Enumerations accept a symbolic name
// (case-insensitive) or an integer code.
func ParseValue(desc *property.Descriptor, text string) (any, error) {
	text = strings.TrimSpace(text)

	switch desc.Kind {
	case property.KindInteger:
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects an integer: %q", ErrInvalidValue, desc.Name, text)
		}
		return v, nil

	case property.KindFloat:
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %s expects a number: %q", ErrInvalidValue, desc.Name, text)
		}
		return v, nil

	case property.KindBoolean:
		switch strings.ToLower(text) {
		case "true", "1", "on", "yes":
			return true, nil
		case "false", "0", "off", "no":
			return false, nil
		}
		return nil, fmt.Errorf("%w: %s expects true or false: %q", ErrInvalidValue, desc.Name, text)

	case property.KindString:
		if unq, err := strconv.Unquote(text); err == nil {
			return unq, nil
		}
		return text, nil

	case property.KindEnumeration:
		if desc.Enum != nil {
			for _, ev := range desc.Enum.Values {
				if strings.EqualFold(ev.Name, text) {
					return ev.Name, nil
				}
			}
		}
		if v, err := strconv.ParseInt(text, 0, 64); err == nil {
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s expects one of %s: %q", ErrInvalidValue, desc.Name, FormatRange(desc), text)

	default:
		return nil, fmt.Errorf("%w: %s", property.ErrUnsupportedValueKind, desc.Kind)
	}
}
