package bignum

import (
	"strconv"
)

// radix describes a little-endian sequence of decimal limbs: each limb holds
// a value below base, and renders as exactly width decimal digits when it is
// not the most significant limb.
type radix struct {
	base  uint64
	width int
}

// carry moves every out-of-range limb's overflow into the next limb in a
// single pass from least to most significant, growing l while a carry is left
// over at the top. A limb is reduced before the incoming carry is added, so
// any uint64 is accepted as a limb.
func (r radix) carry(l []uint64) []uint64 {
	var c uint64
	for i := 0; i < len(l); i++ {
		v := l[i]
		l[i] = v%r.base + c
		c = v / r.base
		if l[i] >= r.base {
			c += l[i] / r.base
			l[i] %= r.base
		}
		if c > 0 && i+1 == len(l) {
			l = append(l, 0)
		}
	}
	return l
}

// normalize carries l and trims redundant most significant zero limbs.
func (r radix) normalize(l []uint64) []uint64 {
	return trim(r.carry(l))
}

// trim drops most significant zero limbs, keeping at least one limb.
func trim(l []uint64) []uint64 {
	if len(l) == 0 {
		return append(l, 0)
	}
	n := len(l)
	for n > 1 && l[n-1] == 0 {
		n--
	}
	return l[:n]
}

// parse validates s and decodes it into limbs. No partial result is
// returned on error.
func (r radix) parse(s string) ([]uint64, error) {
	if len(s) == 0 {
		return nil, Error.Wrap(&InvalidDigitError{Input: s, Offset: 0})
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, Error.Wrap(&InvalidDigitError{Input: s, Offset: i})
		}
	}
	return r.decode(s), nil
}

// decode splits a string of decimal digits into width-sized chunks counted
// from the right; the rightmost chunk becomes limb 0. s must be non-empty and
// contain only '0'-'9'; the output of render always qualifies.
func (r radix) decode(s string) []uint64 {
	n := (len(s) + r.width - 1) / r.width
	l := make([]uint64, n, n+1)

	end := len(s)
	for i := 0; i < n; i++ {
		start := end - r.width
		if start < 0 {
			start = 0
		}
		var v uint64
		for _, c := range []byte(s[start:end]) {
			v = v*10 + uint64(c-'0')
		}
		l[i] = v
		end = start
	}

	return r.normalize(l)
}

// render appends the decimal form of l to dst: the most significant limb
// without padding, every other limb zero-padded to r.width digits.
func (r radix) render(dst []byte, l []uint64) []byte {
	if len(l) == 0 {
		return append(dst, '0')
	}

	dst = strconv.AppendUint(dst, l[len(l)-1], 10)

	var scratch [20]byte
	for i := len(l) - 2; i >= 0; i-- {
		digits := strconv.AppendUint(scratch[:0], l[i], 10)
		for pad := r.width - len(digits); pad > 0; pad-- {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)
	}
	return dst
}

// renderedLen returns an upper bound on the length of render's output for l.
func (r radix) renderedLen(l []uint64) int {
	if len(l) == 0 {
		return 1
	}
	return len(l) * r.width
}

// digitsOf counts the decimal digits in v. Zero has one digit.
func digitsOf(v uint64) int {
	n := 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}
