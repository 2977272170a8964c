/*
Package bignum provides an arbitrary-precision unsigned integer (Uint) stored
as decimal limbs, supporting addition, multiplication, comparison and decimal
rendering.

Uint is a value type; all operations except AddInPlace and MulInPlace return
new values, and no operation shares limb storage with its operands.

Simple example:

	a := MustUintFromString("589436845976845932342")
	b := UintFrom64(10)
	fmt.Println(a.Mul(b))
	// Output: 5894368459768459323420

Uint can be created from a variety of sources:

	UintFromString(s string) (out Uint, err error)
	UintFromBigInt(v *big.Int) (out Uint, accurate bool)
	UintFromRaw(limbs ...uint64) Uint
	UintFrom64(v uint64) Uint
	UintFrom32(v uint32) Uint
	UintFrom16(v uint16) Uint
	UintFrom8(v uint8) Uint

Values are held in base 10^11 limbs. Multiplication re-encodes both operands
into base 10^5 digits so that every partial product, and a large number of
partial products summed into one column, fits in a uint64.

Uint supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Scanner
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package bignum
