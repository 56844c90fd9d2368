package mdnative

import (
	"fmt"
	"maps"
	"slices"
)

// ValidateStyleSheet checks that every attribute value is a scalar. Styles
// merge shallowly, so nested objects would silently replace each other
// instead of combining.
func ValidateStyleSheet(ss StyleSheet) error {
	for _, name := range slices.Sorted(maps.Keys(ss)) {
		if err := validateStyle(ss[name]); err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
	}
	return nil
}

func validateStyle(s Style) error {
	for _, k := range slices.Sorted(maps.Keys(s)) {
		switch v := s[k].(type) {
		case string, bool, int, int64, float32, float64, nil:
		default:
			return fmt.Errorf("attribute %q has non-scalar value of type %T: %w", k, v, ErrValidation)
		}
	}
	return nil
}
