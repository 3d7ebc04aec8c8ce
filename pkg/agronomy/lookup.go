package agronomy

import (
	"sort"
	"strings"
)

// keysByLength holds the crop names sorted longest first, ties broken
// alphabetically, so partial matching is deterministic regardless of map
// iteration order.
var keysByLength []string

func init() {
	keysByLength = make([]string, 0, len(cropTable))
	for name := range cropTable {
		keysByLength = append(keysByLength, name)
	}
	sort.Slice(keysByLength, func(i, j int) bool {
		if len(keysByLength[i]) != len(keysByLength[j]) {
			return len(keysByLength[i]) > len(keysByLength[j])
		}
		return keysByLength[i] < keysByLength[j]
	})
}

// Lookup resolves a free-text crop name to its reference. Resolution is
// total: exact match first, then substring match in either direction over
// the known keys (longest key wins), and finally the generic default.
func Lookup(name string) CropReference {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return defaultReference
	}
	if ref, ok := cropTable[key]; ok {
		return ref
	}
	for _, known := range keysByLength {
		if strings.Contains(key, known) || strings.Contains(known, key) {
			return cropTable[known]
		}
	}
	return defaultReference
}

// Known reports whether the name resolves to a real table entry rather
// than the default reference.
func Known(name string) bool {
	return Lookup(name).Name != defaultReference.Name
}
