// seehuhn.de/go/gridsvg - vector outlines for pixel grids
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package gridsvg

import (
	"strconv"
)

// decimalScale is the number of Decimal units per integer.
const decimalScale = 1_000_000

// Decimal is an exact fixed-point number with six decimal places.
//
// Two Decimals are equal if and only if they represent the same number,
// so Decimal values (and structs built from them) can be compared with ==
// and used as map keys.  Addition and subtraction are exact.  Half and Mul
// are exact as long as the result has at most six decimal places, which
// holds for all coordinates derived from integer percentages.
type Decimal int64

// DecimalInt returns the Decimal representing the integer n.
func DecimalInt(n int) Decimal {
	return Decimal(n) * decimalScale
}

// DecimalPercent returns p/100.
func DecimalPercent(p uint) Decimal {
	return Decimal(p) * (decimalScale / 100)
}

// Add returns d+e.
func (d Decimal) Add(e Decimal) Decimal {
	return d + e
}

// Sub returns d-e.
func (d Decimal) Sub(e Decimal) Decimal {
	return d - e
}

// Half returns d/2, truncated towards zero at the last decimal place.
func (d Decimal) Half() Decimal {
	return d / 2
}

// Mul returns d·e, truncated towards zero at the last decimal place.
func (d Decimal) Mul(e Decimal) Decimal {
	return d * e / decimalScale
}

// Scale returns k·d for an integer factor k.
func (d Decimal) Scale(k int) Decimal {
	return d * Decimal(k)
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool {
	return d == 0
}

// Float64 returns the nearest float64 value.
func (d Decimal) Float64() float64 {
	return float64(d) / decimalScale
}

// String returns the shortest exact decimal representation of d,
// for example "3", "0.5" or "-12.375".
func (d Decimal) String() string {
	return string(d.append(nil))
}

// append appends the decimal representation of d to buf.
func (d Decimal) append(buf []byte) []byte {
	v := int64(d)
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	buf = strconv.AppendInt(buf, v/decimalScale, 10)

	frac := v % decimalScale
	if frac == 0 {
		return buf
	}
	digits := 6
	for frac%10 == 0 {
		frac /= 10
		digits--
	}
	buf = append(buf, '.')
	s := strconv.FormatInt(frac, 10)
	for range digits - len(s) {
		buf = append(buf, '0')
	}
	return append(buf, s...)
}
