// File: dotpath.go
// Title: Dot-Path Flattening and Unflattening
// Description: Implements conversion between nested string-keyed maps and
//              flat maps whose keys are dot-joined paths, as used for
//              configuration access and structural transformations.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package mapx

import (
	"strings"
)

// Separator is the path segment separator for flattened keys
const Separator = "."

// Flatten converts a nested map into a single-level map keyed by dot-joined
// paths. Map values recurse; every other value (including slices) is treated
// as a leaf. An optional prefix is prepended to every emitted key.
//
// Keys that already contain the separator are not escaped; the
// Flatten/Unflatten round trip is only exact when no key contains a dot.
func Flatten(nested map[string]interface{}, prefix string) map[string]interface{} {
	flat := make(map[string]interface{})
	flattenInto(flat, nested, prefix)
	return flat
}

func flattenInto(flat map[string]interface{}, nested map[string]interface{}, prefix string) {
	for key, value := range nested {
		path := key
		if prefix != "" {
			path = prefix + Separator + key
		}

		if child, ok := value.(map[string]interface{}); ok {
			flattenInto(flat, child, path)
			continue
		}
		flat[path] = value
	}
}

// Unflatten reconstructs a nested map from a flat dot-path keyed map. Keys
// without a separator are assigned directly at the top level; keys with
// separators create intermediate maps, overwriting any non-map value that
// occupies an intermediate position.
func Unflatten(flat map[string]interface{}) map[string]interface{} {
	nested := make(map[string]interface{})

	for key, value := range flat {
		if !strings.Contains(key, Separator) {
			nested[key] = value
			continue
		}

		segments := strings.Split(key, Separator)
		current := nested
		for _, segment := range segments[:len(segments)-1] {
			child, ok := current[segment].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				current[segment] = child
			}
			current = child
		}
		current[segments[len(segments)-1]] = value
	}

	return nested
}

// Lookup resolves a dot-path against a nested map, returning the value and
// whether the full path could be walked.
func Lookup(nested map[string]interface{}, path string) (interface{}, bool) {
	segments := strings.Split(path, Separator)
	current := nested

	for i, segment := range segments {
		value, exists := current[segment]
		if !exists {
			return nil, false
		}
		if i == len(segments)-1 {
			return value, true
		}

		child, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = child
	}

	return nil, false
}
