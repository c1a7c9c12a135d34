package money

import (
	"fmt"
	"strconv"
)

// Cents is an amount of US dollars in minor units (cents).
// All stored prices use this representation; conversion to and from
// whole-dollar values happens only at API and display boundaries.
type Cents int64

// FromDollars converts a whole-dollar amount into Cents.
func FromDollars(dollars int64) Cents {
	return Cents(dollars * 100)
}

// Dollars returns the whole-dollar part of the amount, truncating cents.
func (c Cents) Dollars() int64 {
	return int64(c) / 100
}

// Format renders the amount as a display price with a dollar sign and
// thousands separators, dropping the cents ("$1,250,000").
func (c Cents) Format() string {
	d := c.Dollars()
	negative := d < 0
	if negative {
		d = -d
	}

	s := strconv.FormatInt(d, 10)
	var grouped []byte
	for i, ch := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, ch)
	}

	if negative {
		return fmt.Sprintf("-$%s", grouped)
	}
	return fmt.Sprintf("$%s", grouped)
}

// String implements fmt.Stringer using the display format.
func (c Cents) String() string {
	return c.Format()
}
