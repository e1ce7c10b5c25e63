package easel

import "fmt"

// ParseFlag accepts v only if it is strictly a bool. Scripts and other untyped
// inputs go through ParseFlag before touching a boolean property, so a
// rejected value leaves the property unchanged.
func ParseFlag(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %v (%T)", ErrInvalidFlagValue, v, v)
	}
	return b, nil
}
