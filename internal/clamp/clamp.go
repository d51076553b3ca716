// Package clamp provides the generic bounds-constraining helper shared by
// every package in this module, the way tmc5160/helpers.go shares its
// unexported constrain[T] across register and ramp-speed code.
package clamp

import "golang.org/x/exp/constraints"

// Constrain limits value to [min, max].
func Constrain[T constraints.Ordered](value, min, max T) T {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
