// Package vending models a coin-operated vending machine as a finite state machine.
//
// A Machine starts Idle with a balance of 0.
// Coins of 50 and 100 are accepted, anything else is rejected with ErrInvalidCoin.
// Once the balance reaches Price the machine is Paid, and Vend dispenses one item
// and refunds the rest of the balance as change.
//
//	Idle --coin--> EnteringCoins --coin, balance >= Price--> Paid --coin--> Paid
//	  ^                  |                                     |
//	  +------ Refund / Vend (from any State) ------------------+
//
// Every State handles InsertCoin, Refund and Vend; the transitions are computed by
// the pure function Apply, and the Machine applies the outcome.
package vending
