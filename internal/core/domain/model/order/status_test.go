package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "ON_HOLD", order.OnHold.String())
	assert.Equal(t, "UNKNOWN", order.Status(42).String())
	assert.Error(t, order.Status(42).Validate())
	assert.Error(t, order.Unknown.Validate())
	assert.NoError(t, order.Returned.Validate())
}

func TestStatus_IsShippable(t *testing.T) {
	tests := []struct {
		status order.Status
		want   bool
	}{
		{order.Pending, false},
		{order.Confirmed, true},
		{order.Processing, true},
		{order.Picking, false},
		{order.Packed, true},
		{order.Shipped, false},
		{order.Cancelled, false},
		{order.OnHold, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsShippable())
		})
	}
	assert.ElementsMatch(t, []order.Status{order.Confirmed, order.Processing, order.Packed}, order.ShippableStatuses())
}

func TestStatus_Transitions(t *testing.T) {
	next, ok := order.Confirmed.StartProcessing()
	assert.True(t, ok)
	assert.Equal(t, order.Processing, next)

	_, ok = order.Shipped.StartProcessing()
	assert.False(t, ok)

	next, ok = order.Picking.Ship()
	assert.True(t, ok)
	assert.Equal(t, order.Shipped, next)

	_, ok = order.Delivered.Ship()
	assert.False(t, ok)

	next, ok = order.Shipped.Return()
	assert.True(t, ok)
	assert.Equal(t, order.Returned, next)

	_, ok = order.Processing.Deliver()
	assert.False(t, ok)
}
