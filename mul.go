package bignum

// mulFine multiplies x by y using schoolbook long multiplication in the finer
// radix.
//
// For each digit y[j] a row is built holding j leading zeros followed by
// x[i]*y[j] for every i, i.e. x*y[j] shifted left by j places. The longest
// row becomes the accumulator and every other row is added into it column by
// column. Columns are only carried once all rows are folded, unless
// mulFoldLimit rows have been added since the last carry.
func mulFine(x, y fineDigits) fineDigits {
	rows := mulRows(x, y)
	return fineDigits(fineRadix.normalize(foldRows(rows)))
}

func mulRows(x, y fineDigits) [][]uint64 {
	rows := make([][]uint64, len(y))
	for j, yd := range y {
		row := make([]uint64, j+len(x))
		for i, xd := range x {
			row[j+i] = xd * yd
		}
		rows[j] = row
	}
	return rows
}

// foldRows sums rows into the longest one, which is modified and returned.
// The result is not normalized.
func foldRows(rows [][]uint64) []uint64 {
	if len(rows) == 0 {
		return []uint64{0}
	}

	acc := 0
	for j := range rows {
		if len(rows[j]) > len(rows[acc]) {
			acc = j
		}
	}

	sum := rows[acc]
	folded := 0
	for j := len(rows) - 1; j >= 0; j-- {
		if j == acc {
			continue
		}
		if folded >= mulFoldLimit {
			sum = fineRadix.carry(sum)
			folded = 0
		}

		row := rows[j]
		if len(row) > len(sum) {
			row = row[:len(sum)]
		}
		for a, v := range row {
			sum[a] += v
		}
		folded++
	}

	return sum
}

func mulUint(x, y Uint) Uint {
	return mulFine(toFine(x), toFine(y)).toUint()
}
