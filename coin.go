package vending

import "strconv"

// Coin is a coin value in currency subunits (cents).
type Coin int

// Accepted coin denominations.
const (
	Fifty   Coin = 50
	Hundred Coin = 100
)

// Price is what a single vend costs.
const Price = 200

// Denominations lists every accepted Coin, smallest first.
func Denominations() []Coin { return []Coin{Fifty, Hundred} }

// Valid reports whether the machine accepts the coin.
func (c Coin) Valid() bool {
	switch c {
	case Fifty, Hundred:
		return true
	default:
		return false
	}
}

func (c Coin) String() string { return strconv.Itoa(int(c)) }
