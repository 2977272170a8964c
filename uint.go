package bignum

import (
	"math/big"
)

// Uint is an arbitrary-precision unsigned integer. The zero value is 0.
type Uint struct {
	// l holds base 10^11 limbs, least significant first. A nil l is zero;
	// otherwise it is normalized with no redundant most significant zeros.
	l []uint64
}

func UintFrom64(v uint64) Uint { return Uint{l: limbRadix.normalize([]uint64{v})} }
func UintFrom32(v uint32) Uint { return Uint{l: []uint64{uint64(v)}} }
func UintFrom16(v uint16) Uint { return Uint{l: []uint64{uint64(v)}} }
func UintFrom8(v uint8) Uint   { return Uint{l: []uint64{uint64(v)}} }

// UintFromString creates a Uint from a string of decimal digits. Leading
// zeros are accepted. Any other byte, or an empty string, produces an
// InvalidDigitError.
func UintFromString(s string) (out Uint, err error) {
	l, err := limbRadix.parse(s)
	if err != nil {
		return zeroUint, err
	}
	return Uint{l: l}, nil
}

// MustUintFromString is like UintFromString but panics if s is invalid.
func MustUintFromString(s string) Uint {
	u, err := UintFromString(s)
	if err != nil {
		panic(err)
	}
	return u
}

// UintFromRaw creates a Uint from base 10^11 limbs, least significant first.
// Limbs do not need to be in range; overflow is carried into the following
// limbs.
func UintFromRaw(limbs ...uint64) Uint {
	l := make([]uint64, len(limbs), len(limbs)+2)
	copy(l, limbs)
	return Uint{l: limbRadix.normalize(l)}
}

// UintFromBigInt creates a Uint from a big.Int. Negative values produce zero
// and set accurate to 'false'.
func UintFromBigInt(v *big.Int) (out Uint, accurate bool) {
	if v.Sign() < 0 {
		return zeroUint, false
	}
	return Uint{l: limbRadix.decode(v.Text(10))}, true
}

func (u Uint) limbSlice() []uint64 {
	if len(u.l) == 0 {
		return []uint64{0}
	}
	return u.l
}

// Limbs returns a copy of u's base 10^11 limbs, least significant first.
// There is always at least one limb. See UintFromRaw() for the counterpart.
func (u Uint) Limbs() []uint64 {
	l := u.limbSlice()
	out := make([]uint64, len(l))
	copy(out, l)
	return out
}

func (u Uint) IsZero() bool {
	return len(u.l) == 0 || (len(u.l) == 1 && u.l[0] == 0)
}

// IsUint64 reports whether u can be represented as a uint64.
func (u Uint) IsUint64() bool {
	switch len(u.l) {
	case 0, 1:
		return true
	case 2:
		// 18446744073709551615 == 184467440 * 10^11 + 73709551615
		return u.l[1] < 184467440 || (u.l[1] == 184467440 && u.l[0] <= 73709551615)
	default:
		return false
	}
}

// AsUint64 truncates u to fit in a uint64. Values outside the range will
// wrap. See IsUint64() if you want to check before you convert.
func (u Uint) AsUint64() (v uint64) {
	l := u.limbSlice()
	for i := len(l) - 1; i >= 0; i-- {
		v = v*limbBase + l[i]
	}
	return v
}

func (u Uint) AsBigInt() *big.Int {
	v, _ := new(big.Int).SetString(u.String(), 10)
	return v
}

func (u Uint) String() string {
	l := u.limbSlice()
	return string(limbRadix.render(make([]byte, 0, limbRadix.renderedLen(l)), l))
}

// Add returns u+n. u is not modified.
func (u Uint) Add(n Uint) Uint {
	return Uint{l: addLimbs(u.limbSlice(), n.limbSlice())}
}

// AddInPlace sets u to u+n. The sum is written to new storage, so copies of
// u taken before the call keep their value.
func (u *Uint) AddInPlace(n Uint) {
	u.l = addLimbs(u.limbSlice(), n.limbSlice())
}

func addLimbs(x, y []uint64) []uint64 {
	if len(x) < len(y) {
		x, y = y, x
	}
	out := make([]uint64, len(x), len(x)+1)
	copy(out, x)
	for i, v := range y {
		out[i] += v
	}
	return limbRadix.normalize(out)
}

// Mul returns u*n. u is not modified.
func (u Uint) Mul(n Uint) Uint {
	return mulUint(u, n)
}

// MulInPlace sets u to u*n.
func (u *Uint) MulInPlace(n Uint) {
	*u = mulUint(*u, n)
}

func (u Uint) Equal(n Uint) bool {
	ul, nl := u.limbSlice(), n.limbSlice()
	if len(ul) != len(nl) {
		return false
	}
	for i := range ul {
		if ul[i] != nl[i] {
			return false
		}
	}
	return true
}

// Cmp compares u and n and returns -1 if u < n, 0 if u == n and +1 if u > n.
func (u Uint) Cmp(n Uint) int {
	ul, nl := u.limbSlice(), n.limbSlice()
	if len(ul) > len(nl) {
		return 1
	} else if len(ul) < len(nl) {
		return -1
	}
	for i := len(ul) - 1; i >= 0; i-- {
		if ul[i] > nl[i] {
			return 1
		} else if ul[i] < nl[i] {
			return -1
		}
	}
	return 0
}

// Digits returns the number of decimal digits in u. Zero has one digit.
func (u Uint) Digits() int {
	l := u.limbSlice()
	return (len(l)-1)*limbWidth + digitsOf(l[len(l)-1])
}

// Size returns the number of bytes reserved for u's limbs. This reports the
// capacity of the underlying storage, which may exceed the limbs in use.
func (u Uint) Size() int {
	return cap(u.l) * limbBytes
}
