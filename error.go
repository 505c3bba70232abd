package vending

import "fmt"

// ErrInvalidCoin is returned by InsertCoin when the coin is not one of the Denominations.
// Balance and State are left unchanged.
type ErrInvalidCoin struct {
	Coin Coin
}

func (e ErrInvalidCoin) Error() string {
	return fmt.Sprintf("invalid coin %d: accepts %v", e.Coin, Denominations())
}

// ErrInsufficientBalance is returned by Vend when Balance has not reached Price.
// Balance and State are left unchanged.
type ErrInsufficientBalance struct {
	Balance int
	Price   int
}

func (e ErrInsufficientBalance) Error() string {
	return fmt.Sprintf("insufficient balance %d: need %d more", e.Balance, e.Price-e.Balance)
}
