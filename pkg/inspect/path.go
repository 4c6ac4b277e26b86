// Package inspect resolves resource names, parses command-line values and
// formats FSAPI results for display.
//
// Names are resolved against the catalog first (short name, Go name or
// dotted path, case-insensitive). Any other dotted netremote path resolves
// to an ad-hoc resource so that firmware nodes outside the catalog stay
// reachable.
package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/model"
)

// Resolution errors.
var (
	ErrEmptyName   = errors.New("empty resource name")
	ErrUnknownName = errors.New("unknown resource")
)

// PathPrefix is the root of every FSAPI resource path.
const PathPrefix = "netremote."

// IsResourcePath reports whether s looks like a dotted FSAPI path.
func IsResourcePath(s string) bool {
	if !strings.HasPrefix(strings.ToLower(s), PathPrefix) || len(s) == len(PathPrefix) {
		return false
	}
	return !strings.ContainsAny(s, " /?&#")
}

// Resolve returns the catalog resource for name. A path outside the catalog
// yields an ad-hoc resource with the given access flags.
func Resolve(name string, access model.Access) (model.Resource, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Resource{}, ErrEmptyName
	}
	if r, ok := model.Lookup(name); ok {
		return r, nil
	}
	if IsResourcePath(name) {
		return model.Custom(strings.ToLower(name), access)
	}
	return model.Resource{}, fmt.Errorf("%w: %q", ErrUnknownName, name)
}
