package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"
)

// logger is resolved per call so a backend configured by the binary after
// package initialization is still picked up.
func logger() commonlog.Logger {
	return commonlog.GetLogger("colormap.color")
}

// NormalizeHex validates a hexadecimal color string and returns its canonical
// form, "#" followed by 6 uppercase digits.
//
// Accepted inputs are #RGB, #RRGGBB, #RRGGBBAA (alpha is dropped) and the same
// digits behind a 0x or 0X prefix.
func NormalizeHex(s string) (string, error) {
	if len(s) <= 3 {
		return "", &FormatError{Input: s, Reason: "must be of the form #FFF, #FFFFFF, 0xFFF or 0xFFFFFF"}
	}

	var digits string
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits = s[2:]
	case strings.HasPrefix(s, "#"):
		digits = s[1:]
	default:
		return "", &FormatError{Input: s, Reason: "must start with '#' or '0x'"}
	}

	digits = strings.ToUpper(digits)
	for _, r := range digits {
		if !strings.ContainsRune("0123456789ABCDEF", r) {
			return "", &FormatError{Input: s, Reason: fmt.Sprintf("invalid hex digit %q", r)}
		}
	}

	switch len(digits) {
	case 6, 8:
		return "#" + digits[:6], nil
	case 3:
		return "#" + strings.Repeat(digits[0:1], 2) + strings.Repeat(digits[1:2], 2) + strings.Repeat(digits[2:3], 2), nil
	default:
		return "", &FormatError{Input: s, Reason: "must have 3, 6 or 8 digits"}
	}
}

// IsValidHex reports whether s is accepted by NormalizeHex. The rejection
// reason goes to the debug log.
func IsValidHex(s string) bool {
	if _, err := NormalizeHex(s); err != nil {
		logger().Debugf("not a hex color: %s", err)
		return false
	}
	return true
}

// WebToHex expands a 3-digit web color to its 6-digit form, e.g. "#FA1" to "#FFAA11".
func WebToHex(web string) (string, error) {
	return NormalizeHex(web)
}

// HexToWeb shortens a hex color to 3 digits by keeping the high digit of each
// channel, e.g. "#FFAA11" to "#FA1".
func HexToWeb(hex string) (string, error) {
	h, err := NormalizeHex(hex)
	if err != nil {
		return "", err
	}
	return "#" + h[1:2] + h[3:4] + h[5:6], nil
}

// HexToDec parses a hexadecimal number, with or without a leading '#', and
// divides it by 255. "FF" is 1.
func HexToDec(s string) (float64, error) {
	digits := strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "not a hexadecimal number"}
	}
	return float64(v) / 255, nil
}

// HexToRGB converts a hex color to an RGB triplet, in [0,255] or, when
// normalize is set, in [0,1].
func HexToRGB(hex string, normalize bool) (Triplet, error) {
	h, err := NormalizeHex(hex)
	if err != nil {
		return Triplet{}, err
	}
	var t Triplet
	for i := range 3 {
		v, err := strconv.ParseUint(h[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Triplet{}, &FormatError{Input: hex, Reason: err.Error()}
		}
		t[i] = float64(v)
	}
	if normalize {
		t = Normalize(t, ModeRGB)
	}
	return t, nil
}

// RGBToHex formats an RGB triplet as a canonical hex string. Normalized input
// is scaled to [0,255] and rounded to the nearest integer first.
func RGBToHex(r, g, b float64, normalized bool) (string, error) {
	if normalized {
		if err := checkTriplet(r, g, b, 1, 1, 1); err != nil {
			return "", err
		}
		t := Denormalize(Triplet{r, g, b}, ModeRGB)
		r, g, b = t[0], t[1], t[2]
	}
	if err := checkTriplet(r, g, b, 255, 255, 255); err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02X%02X%02X", quantize(r), quantize(g), quantize(b)), nil
}
