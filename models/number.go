package models

import (
	"bytes"
	"errors"
	"strconv"
)

var ErrNotNumeric = errors.New("value is not numeric")

// Number is a float64 that also accepts quoted numeric strings. Browser
// forms post numbers as text, and the old express backend silently
// coerced them; decoding keeps that behavior while rejecting anything
// that is not a number.
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	if len(data) == 0 || string(data) == "null" {
		return ErrNotNumeric
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return ErrNotNumeric
	}
	*n = Number(v)
	return nil
}

func (n Number) Float64() float64 { return float64(n) }

// Int converts to int, rejecting fractional values.
func (n Number) Int() (int, error) {
	v := float64(n)
	i := int(v)
	if float64(i) != v {
		return 0, ErrNotNumeric
	}
	return i, nil
}
