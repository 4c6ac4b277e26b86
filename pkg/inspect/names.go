package inspect

import (
	"sort"
	"strings"

	"github.com/multiroom/fsapi-go/pkg/model"
)

// Names returns the short names of all catalog resources, sorted.
func Names() []string {
	cat := model.Catalog()
	names := make([]string, 0, len(cat))
	for _, r := range cat {
		names = append(names, r.Name)
	}
	sort.Strings(names)
	return names
}

// NamesWithAccess returns the sorted short names of resources allowing
// every operation in access.
func NamesWithAccess(access model.Access) []string {
	var names []string
	for _, r := range model.Catalog() {
		if r.Access&access == access {
			names = append(names, r.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Complete returns the catalog names starting with prefix (case-insensitive).
func Complete(prefix string) []string {
	lp := strings.ToLower(prefix)
	var out []string
	for _, n := range Names() {
		if strings.HasPrefix(strings.ToLower(n), lp) {
			out = append(out, n)
		}
	}
	return out
}
