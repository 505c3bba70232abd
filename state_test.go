package vending_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	vending "github.com/Azure/go-vending"
)

func TestApply(t *testing.T) {
	ctx := context.Background()
	for _, tc := range []struct {
		name    string
		state   vending.State
		event   vending.Event
		balance int

		next     vending.State
		record   vending.Record
		errMatch any
	}{
		{"Idle accepts 50", vending.Idle, vending.InsertCoin(50), 0, vending.EnteringCoins, vending.Record{Balance: 50}, nil},
		{"Idle accepts 100", vending.Idle, vending.InsertCoin(100), 0, vending.EnteringCoins, vending.Record{Balance: 100}, nil},
		{"Idle rejects 25", vending.Idle, vending.InsertCoin(25), 0, vending.Idle, vending.Record{}, new(vending.ErrInvalidCoin)},
		{"Idle refunds", vending.Idle, vending.Refund(), 0, vending.Idle, vending.Record{}, nil},
		{"Idle cannot vend", vending.Idle, vending.Vend(), 0, vending.Idle, vending.Record{}, new(vending.ErrInsufficientBalance)},
		{"Idle vends with enough balance", vending.Idle, vending.Vend(), 300, vending.Idle, vending.Record{Returned: 100}, nil},

		{"EnteringCoins stays below price", vending.EnteringCoins, vending.InsertCoin(50), 50, vending.EnteringCoins, vending.Record{Balance: 100}, nil},
		{"EnteringCoins reaches price", vending.EnteringCoins, vending.InsertCoin(100), 100, vending.Paid, vending.Record{Balance: 200}, nil},
		{"EnteringCoins passes price", vending.EnteringCoins, vending.InsertCoin(100), 150, vending.Paid, vending.Record{Balance: 250}, nil},
		{"EnteringCoins rejects 10", vending.EnteringCoins, vending.InsertCoin(10), 150, vending.EnteringCoins, vending.Record{Balance: 150}, new(vending.ErrInvalidCoin)},
		{"EnteringCoins refunds", vending.EnteringCoins, vending.Refund(), 150, vending.Idle, vending.Record{Returned: 150}, nil},
		{"EnteringCoins cannot vend", vending.EnteringCoins, vending.Vend(), 150, vending.EnteringCoins, vending.Record{Balance: 150}, new(vending.ErrInsufficientBalance)},

		{"Paid accepts more", vending.Paid, vending.InsertCoin(50), 200, vending.Paid, vending.Record{Balance: 250}, nil},
		{"Paid rejects 0", vending.Paid, vending.InsertCoin(0), 200, vending.Paid, vending.Record{Balance: 200}, new(vending.ErrInvalidCoin)},
		{"Paid refunds", vending.Paid, vending.Refund(), 250, vending.Idle, vending.Record{Returned: 250}, nil},
		{"Paid vends exact", vending.Paid, vending.Vend(), 200, vending.Idle, vending.Record{}, nil},
		{"Paid vends with change", vending.Paid, vending.Vend(), 350, vending.Idle, vending.Record{Returned: 150}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			next, record, err := vending.Apply(ctx, tc.state, tc.event, vending.Record{Balance: tc.balance})
			if tc.errMatch != nil {
				assert.ErrorAs(t, err, tc.errMatch)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.next, next)
			assert.Equal(t, tc.record, record)
		})
	}
}

func TestApplyUnknown(t *testing.T) {
	ctx := context.Background()
	t.Run("unknown state", func(t *testing.T) {
		_, _, err := vending.Apply(ctx, vending.State(7), vending.Refund(), vending.Record{})
		assert.ErrorContains(t, err, "unknown state State(7)")
	})
	t.Run("unknown event", func(t *testing.T) {
		next, record, err := vending.Apply(ctx, vending.Paid, vending.Event{Kind: 9}, vending.Record{Balance: 200})
		assert.ErrorContains(t, err, "Paid: unknown event Unknown")
		assert.Equal(t, vending.Paid, next)
		assert.Equal(t, 200, record.Balance)
	})
}

func TestStates(t *testing.T) {
	assert.Equal(t, []vending.State{vending.Idle, vending.EnteringCoins, vending.Paid}, vending.States())
	names := []string{}
	for _, s := range vending.States() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"Idle", "EnteringCoins", "Paid"}, names)
}

func TestCoin(t *testing.T) {
	assert.Equal(t, []vending.Coin{vending.Fifty, vending.Hundred}, vending.Denominations())
	for _, c := range vending.Denominations() {
		assert.True(t, c.Valid())
	}
	for _, c := range []vending.Coin{-100, 0, 1, 25, 99, 150, 200} {
		assert.False(t, c.Valid(), c.String())
	}
}
