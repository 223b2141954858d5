// Package dataset turns a decoded dataset document into the strongly typed
// entities.Dataset used by the battle engine.
package dataset

import (
	"encoding/json"

	"github.com/celala99/cela-geo-quest/internal/errors"
)

// Validate checks the top-level shape of a decoded dataset document. It only
// looks at the envelope: a record with a numeric version and a monsters
// record. Creature entries are not inspected here.
func Validate(v any) error {
	doc, ok := v.(map[string]any)
	if !ok {
		return errors.InvalidDataset("dataset must be an object")
	}

	version, present := doc["version"]
	if !present {
		return errors.InvalidDataset("dataset version is required")
	}
	if _, ok := toNumber(version); !ok {
		return errors.InvalidDatasetf("dataset version must be numeric, got %T", version)
	}

	monsters, present := doc["monsters"]
	if !present {
		return errors.InvalidDataset("dataset monsters is required")
	}
	if _, ok := monsters.(map[string]any); !ok {
		return errors.InvalidDatasetf("dataset monsters must be an object, got %T", monsters)
	}

	return nil
}

// toNumber accepts the numeric shapes a decoder can hand us
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
