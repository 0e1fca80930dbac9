package color

// CheckRange returns a *DomainError when value is outside [min, max].
// NaN is never in range.
func CheckRange(value, min, max float64) error {
	if !(value >= min && value <= max) {
		return &DomainError{Value: value, Min: min, Max: max}
	}
	return nil
}

// checkTriplet applies CheckRange to each channel with per-channel upper bounds.
func checkTriplet(a, b, c, maxA, maxB, maxC float64) error {
	if err := CheckRange(a, 0, maxA); err != nil {
		return err
	}
	if err := CheckRange(b, 0, maxB); err != nil {
		return err
	}
	return CheckRange(c, 0, maxC)
}
