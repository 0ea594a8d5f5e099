package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddMergesCaseInsensitively(t *testing.T) {
	cart := NewCart()

	first, merged := cart.Add("Kopi", 15_000)
	require.False(t, merged)
	assert.Equal(t, 1, first.Quantity)

	second, merged := cart.Add("kopi", 15_000)
	require.True(t, merged)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 2, second.Quantity)
	assert.Equal(t, "Kopi", second.Name, "first spelling wins")

	require.Len(t, cart.Lines(), 1)
}

func TestCartKeepsInsertionOrder(t *testing.T) {
	cart := NewCart()
	cart.Add("Kopi", 15_000)
	cart.Add("Teh", 8_000)
	cart.Add("Gula", 12_000)
	cart.Add("teh", 8_000)

	lines := cart.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "Kopi", lines[0].Name)
	assert.Equal(t, "Teh", lines[1].Name)
	assert.Equal(t, "Gula", lines[2].Name)
}

func TestCartQuantityBounds(t *testing.T) {
	cart := NewCart()
	line, _ := cart.Add("Kopi", 15_000)

	assert.True(t, cart.IncreaseQuantity(line.ID))
	assert.True(t, cart.DecreaseQuantity(line.ID))

	// Floor: decrement at 1 does nothing, zero takes an explicit Remove.
	assert.False(t, cart.DecreaseQuantity(line.ID))
	got, ok := cart.Line(line.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)

	// Ceiling.
	for i := 0; i < MaxQuantity+10; i++ {
		cart.IncreaseQuantity(line.ID)
	}
	got, _ = cart.Line(line.ID)
	assert.Equal(t, MaxQuantity, got.Quantity)
	assert.False(t, cart.IncreaseQuantity(line.ID))

	// Unknown ids are a no-op.
	assert.False(t, cart.IncreaseQuantity("missing"))
	assert.False(t, cart.DecreaseQuantity("missing"))
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCart()
	kopi, _ := cart.Add("Kopi", 15_000)
	cart.Add("Teh", 8_000)

	assert.True(t, cart.Remove(kopi.ID))
	assert.False(t, cart.Remove(kopi.ID), "second remove is a no-op")
	require.Len(t, cart.Lines(), 1)

	cart.Clear()
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total())
}

func TestCartTotalAndItemCount(t *testing.T) {
	cart := NewCart()
	cart.Add("Kopi", 15_000)
	cart.Add("Kopi", 15_000)
	cart.Add("Teh", 8_000)

	assert.Equal(t, int64(38_000), cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCartLinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add("Kopi", 15_000)

	lines := cart.Lines()
	lines[0].Quantity = 500

	got, _ := cart.LineByName("kopi")
	assert.Equal(t, 1, got.Quantity)
}

func TestRestoreCartCopiesInput(t *testing.T) {
	saved := []CartLine{{ID: "a", Name: "Kopi", UnitPrice: 15_000, Quantity: 2}}
	cart := RestoreCart(saved)

	saved[0].Quantity = 99
	got, ok := cart.Line("a")
	require.True(t, ok)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, int64(30_000), cart.Total())
}

func TestFreezeTransactionDeepCopiesLines(t *testing.T) {
	cart := NewCart()
	cart.Add("Kopi", 15_000)
	cart.Add("Kopi", 15_000)

	transaction := FreezeTransaction("main", "TRX-ABCD1234", cart, 50_000)

	require.Len(t, transaction.Lines, 1)
	assert.Equal(t, int64(30_000), transaction.Total)
	assert.Equal(t, int64(50_000), transaction.Tendered)
	assert.Equal(t, int64(20_000), transaction.Change)
	assert.Equal(t, int64(30_000), transaction.Lines[0].Subtotal)

	// Later cart mutation must not leak into the frozen record.
	cart.Clear()
	cart.Add("Teh", 8_000)
	assert.Equal(t, "Kopi", transaction.Lines[0].Name)
	assert.Equal(t, 2, transaction.Lines[0].Quantity)
}
