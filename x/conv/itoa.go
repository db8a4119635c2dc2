package conv

// Itoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for int64. Negative numbers supported.
// No allocations; no fmt/strconv dependency.
func Itoa(buf []byte, n int64) []byte {
	if len(buf) == 0 {
		return buf[:0]
	}
	i := len(buf)
	neg := n < 0
	var u uint64
	if neg {
		u = uint64(-n)
	} else {
		u = uint64(n)
	}
	// Write digits backwards.
	if u == 0 {
		i--
		buf[i] = '0'
	} else {
		for u > 0 && i > 0 {
			i--
			buf[i] = byte('0' + (u % 10))
			u /= 10
		}
	}
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}

// AppendDeci appends a tenths fixed-point value as a decimal with exactly one
// fractional digit: 235 => "23.5", -5 => "-0.5", 0 => "0.0".
func AppendDeci(dst []byte, tenths int32) []byte {
	v := int64(tenths)
	if v < 0 {
		dst = append(dst, '-')
		v = -v
	}
	var tmp [20]byte
	dst = append(dst, Itoa(tmp[:], v/10)...)
	return append(dst, '.', byte('0'+v%10))
}
