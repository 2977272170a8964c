package bignum

const (
	maxUint64 = 1<<64 - 1

	limbBase   = 100000000000 // 10^11
	limbWidth  = 11
	limbBytes  = 8

	fineBase   = 100000 // 10^5
	fineWidth  = 5
)

var (
	limbRadix = radix{base: limbBase, width: limbWidth}
	fineRadix = radix{base: fineBase, width: fineWidth}

	// mulFoldLimit is the number of partial-product rows that may be summed
	// into the accumulator before it must be carried. Each row contributes
	// at most (fineBase-1)^2 to a column; half of the remaining headroom is
	// kept back for the carries themselves.
	mulFoldLimit = maxUint64 / ((fineBase - 1) * (fineBase - 1)) / 2

	zeroUint Uint
)
