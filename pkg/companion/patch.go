package companion

import (
	"encoding/json"
	"fmt"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
)

// applyPatch merges the JSON fields of patch over current. A null value clears the field.
// Keys listed in immutable are ignored.
func applyPatch[T any](current T, patch models.Patch, immutable ...string) (T, error) {
	var merged T

	raw, err := json.Marshal(current)
	if err != nil {
		return merged, err
	}
	fields := map[string]any{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return merged, err
	}

	for key, value := range patch {
		if common.Contains(immutable, key) {
			continue
		}
		if value == nil {
			delete(fields, key)
			continue
		}
		fields[key] = value
	}

	raw, err = json.Marshal(fields)
	if err != nil {
		return merged, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := json.Unmarshal(raw, &merged); err != nil {
		return merged, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return merged, nil
}
