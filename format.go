package bignum

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter. Decimal verbs (%d, %s, %v) are rendered
// directly and honour width and the '-' and '0' flags; other integer verbs
// are passed through to math/big.
func (u Uint) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		str := u.String()
		w, ok := s.Width()
		if !ok || w <= len(str) {
			io.WriteString(s, str)
			return
		}

		pad := w - len(str)
		if s.Flag('-') {
			io.WriteString(s, str)
			writePad(s, ' ', pad)
		} else if s.Flag('0') && c == 'd' {
			writePad(s, '0', pad)
			io.WriteString(s, str)
		} else {
			writePad(s, ' ', pad)
			io.WriteString(s, str)
		}

	default:
		u.AsBigInt().Format(s, c)
	}
}

func writePad(w io.Writer, b byte, n int) {
	var buf [32]byte
	for i := range buf {
		buf[i] = b
	}
	for n > 0 {
		sz := n
		if sz > len(buf) {
			sz = len(buf)
		}
		w.Write(buf[:sz])
		n -= sz
	}
}

// Scan implements fmt.Scanner. It reads one whitespace-delimited token and
// parses it as a decimal string; see UintFromString.
func (u *Uint) Scan(s fmt.ScanState, c rune) error {
	switch c {
	case 'd', 's', 'v':
	default:
		return Error.New("unsupported scan verb %%%c", c)
	}

	tok, err := s.Token(true, nil)
	if err != nil {
		return err
	}

	v, err := UintFromString(string(tok))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
