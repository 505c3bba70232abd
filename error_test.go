package vending_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	vending "github.com/Azure/go-vending"
)

func TestErrorMessages(t *testing.T) {
	assert.EqualError(t, vending.ErrInvalidCoin{Coin: 25}, "invalid coin 25: accepts [50 100]")
	assert.EqualError(t,
		vending.ErrInsufficientBalance{Balance: 150, Price: vending.Price},
		"insufficient balance 150: need 50 more",
	)
}

func TestErrorsAreMatchable(t *testing.T) {
	wrapped := fmt.Errorf("machine #3: %w", vending.ErrInvalidCoin{Coin: 1})
	var errCoin vending.ErrInvalidCoin
	if assert.True(t, errors.As(wrapped, &errCoin)) {
		assert.Equal(t, vending.Coin(1), errCoin.Coin)
	}
	assert.False(t, errors.As(wrapped, new(vending.ErrInsufficientBalance)))
}
