// Package climate turns a raw sensor Reading into what the panel shows:
// a Condition band and the three formatted display lines.
//
// Everything here is pure and allocation-light so it can run on the MCU hot
// path without fmt.
package climate

import (
	"unicode/utf8"

	"envpanel/errcode"
	"envpanel/types"
	"envpanel/x/conv"
)

// Band edges in tenths of °C. Normal is closed on both ends.
const (
	NormalLowDeciC  = 250
	NormalHighDeciC = 300
)

// MaxLineRunes is the widest line a 128 px row holds in the 6 px panel font.
const MaxLineRunes = 21

const (
	tempPrefix = "Temp: "
	tempSuffix = "°C" // proggy has no glyph above '~', so the panel shows a blank before C
	humPrefix  = "Humidity: "
	humSuffix  = "%"
	condPrefix = "Condition: "
)

// Content is the formatted text for one cycle.
type Content struct {
	Temperature string
	Humidity    string
	Condition   string
}

// Classify maps a temperature in tenths of °C to its band:
// below 25.0 is Cold, 25.0 through 30.0 is Normal, above 30.0 is Hot.
func Classify(deciC int32) types.Condition {
	switch {
	case deciC < NormalLowDeciC:
		return types.Cold
	case deciC <= NormalHighDeciC:
		return types.Normal
	default:
		return types.Hot
	}
}

// Format renders r and c for a display row of MaxLineRunes.
func Format(r types.Reading, c types.Condition) (Content, error) {
	return FormatWidth(r, c, MaxLineRunes)
}

// FormatWidth renders r and c and fails with errcode.FormatOverflow when any
// line is longer than maxRunes. Lines are never truncated.
func FormatWidth(r types.Reading, c types.Condition, maxRunes int) (Content, error) {
	buf := make([]byte, 0, 32)

	buf = append(buf, tempPrefix...)
	buf = conv.AppendDeci(buf, r.DeciC)
	buf = append(buf, tempSuffix...)
	temp := string(buf)

	buf = append(buf[:0], humPrefix...)
	buf = conv.AppendDeci(buf, r.DeciRH)
	buf = append(buf, humSuffix...)
	hum := string(buf)

	cond := condPrefix + c.String()

	for _, line := range [...]string{temp, hum, cond} {
		if n := utf8.RuneCountInString(line); n > maxRunes {
			return Content{}, overflow(line, n, maxRunes)
		}
	}
	return Content{Temperature: temp, Humidity: hum, Condition: cond}, nil
}

func overflow(line string, n, limit int) error {
	var a, b [20]byte
	msg := "\"" + line + "\" is " + string(conv.Itoa(a[:], int64(n))) +
		" runes, row holds " + string(conv.Itoa(b[:], int64(limit)))
	return &errcode.E{C: errcode.FormatOverflow, Op: "format", Msg: msg}
}
