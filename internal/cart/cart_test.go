package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartHasAllZeroSlots(t *testing.T) {
	s := New()
	require.Len(t, s, MaxSlot+1)
	for i := 0; i <= MaxSlot; i++ {
		qty, ok := s[i]
		require.True(t, ok, "slot %d missing", i)
		assert.Zero(t, qty, "slot %d not zero", i)
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	for _, itemID := range []int{0, 5, 150, MaxSlot} {
		s := New()
		require.NoError(t, s.Increment(itemID))
		assert.Equal(t, 1, s[itemID])
		require.NoError(t, s.Decrement(itemID))
		assert.Equal(t, New(), s, "round trip for slot %d", itemID)
	}
}

func TestDecrementClampsAtZero(t *testing.T) {
	s := New()

	// Empty slot: decrement is a no-op, never an error.
	require.NoError(t, s.Decrement(7))
	assert.Equal(t, 0, s[7])

	// Drain a loaded slot past zero.
	require.NoError(t, s.Increment(7))
	require.NoError(t, s.Increment(7))
	for i := 0; i < 5; i++ {
		require.NoError(t, s.Decrement(7))
	}
	assert.Equal(t, 0, s[7])
}

func TestSlotRangeRejected(t *testing.T) {
	s := New()
	for _, itemID := range []int{-1, MaxSlot + 1, 100000} {
		assert.ErrorIs(t, s.Increment(itemID), ErrSlotRange)
		assert.ErrorIs(t, s.Decrement(itemID), ErrSlotRange)
	}
	// Rejected mutations leave the cart untouched.
	assert.Equal(t, New(), s)
}

func TestEncodeDecode(t *testing.T) {
	s := New()
	require.NoError(t, s.Increment(5))
	require.NoError(t, s.Increment(5))
	require.NoError(t, s.Increment(MaxSlot))

	raw, err := s.Encode()
	require.NoError(t, err)

	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, s, decoded)
	assert.Equal(t, 2, decoded[5])
}

func TestDecodeEmptyBlob(t *testing.T) {
	s, err := Decode("")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode("{not json")
	assert.Error(t, err)
}
