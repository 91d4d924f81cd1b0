package ledger

import (
	"testing"

	"github.com/avGenie/go-order-tracker/internal/app/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrders() entity.Orders {
	return entity.Orders{
		{OrderID: "A1", Customer: "Alice", Items: []entity.Item{{Name: "tea", Price: 50, Quantity: 2}}},
		{OrderID: "B2", Customer: "Bob", Items: []entity.Item{{Name: "bun", Price: 5, Quantity: 3}}},
		{OrderID: "C3", Customer: "Carol", Items: []entity.Item{{Name: "pie", Price: 120, Quantity: 1}}},
	}
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name    string
		pending entity.Orders
		order   entity.Order

		wantLen int
		wantErr error
	}{
		{
			name:    "append to empty sequence",
			pending: entity.Orders{},
			order:   entity.Order{OrderID: "A1", Items: []entity.Item{{Name: "tea", Price: 50, Quantity: 2}}},

			wantLen: 1,
		},
		{
			name:    "append to populated sequence",
			pending: testOrders(),
			order:   entity.Order{OrderID: "D4", Items: []entity.Item{{Name: "jam", Price: 30, Quantity: 1}}},

			wantLen: 4,
		},
		{
			name:    "duplicate id is rejected",
			pending: testOrders(),
			order:   entity.Order{OrderID: "B2", Items: []entity.Item{{Name: "jam", Price: 30, Quantity: 1}}},

			wantLen: 3,
			wantErr: ErrOrderIDExists,
		},
		{
			name:    "order without items is rejected",
			pending: testOrders(),
			order:   entity.Order{OrderID: "D4"},

			wantLen: 3,
			wantErr: ErrNoItems,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Add(test.pending, test.order)

			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
				assert.Equal(t, test.pending, got)
				return
			}

			require.NoError(t, err)
			require.Len(t, got, test.wantLen)
			assert.Equal(t, test.order, got[len(got)-1])
		})
	}
}

func TestFulfill(t *testing.T) {
	t.Run("empty sequence", func(t *testing.T) {
		got, _, err := Fulfill(entity.Orders{}, 0)

		assert.ErrorIs(t, err, ErrBadOrderIndex)
		assert.Empty(t, got)
	})

	t.Run("index out of range", func(t *testing.T) {
		pending := testOrders()

		for _, index := range []int{-1, 3, 42} {
			got, _, err := Fulfill(pending, index)

			assert.ErrorIs(t, err, ErrBadOrderIndex)
			assert.Equal(t, pending, got)
		}
	})

	t.Run("first order preserves the rest", func(t *testing.T) {
		pending := testOrders()

		got, order, err := Fulfill(pending, 0)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderID("A1"), order.OrderID)
		require.Len(t, got, 2)
		assert.Equal(t, entity.OrderID("B2"), got[0].OrderID)
		assert.Equal(t, entity.OrderID("C3"), got[1].OrderID)
	})

	t.Run("middle order preserves the rest", func(t *testing.T) {
		pending := testOrders()

		got, order, err := Fulfill(pending, 1)

		require.NoError(t, err)
		assert.Equal(t, entity.OrderID("B2"), order.OrderID)
		require.Len(t, got, 2)
		assert.Equal(t, entity.OrderID("A1"), got[0].OrderID)
		assert.Equal(t, entity.OrderID("C3"), got[1].OrderID)
	})
}
