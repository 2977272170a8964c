package bignum

func (u Uint) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Uint) UnmarshalText(bts []byte) (err error) {
	v, err := UintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u Uint) MarshalJSON() ([]byte, error) {
	l := u.limbSlice()
	out := make([]byte, 0, limbRadix.renderedLen(l)+2)
	out = append(out, '"')
	out = limbRadix.render(out, l)
	return append(out, '"'), nil
}

// UnmarshalJSON accepts both a quoted decimal string and a bare JSON number
// made of digits only.
func (u *Uint) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("uint invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := UintFromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
