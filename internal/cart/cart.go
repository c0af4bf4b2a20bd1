// Package cart holds the pure cart logic: a fixed set of item slots and the
// quantity mutations the storefront performs on them. Persistence is someone
// else's job; a State travels to and from the users table as a JSON blob.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxSlot is the highest valid item slot. Slots are 0..MaxSlot inclusive,
// so a fresh cart carries MaxSlot+1 entries. The storefront renders the
// whole mapping, which is why the slot count is a fixed contract.
const MaxSlot = 300

// ErrSlotRange is returned for item ids outside 0..MaxSlot. Out-of-range ids
// are rejected rather than grown into: silently extending the mapping would
// change the shape every getcart response is built from.
var ErrSlotRange = errors.New("cart: item id outside slot range")

// State maps an item slot to the quantity held. Quantities never go
// negative.
type State map[int]int

// New returns a cart with every slot present and zeroed.
func New() State {
	s := make(State, MaxSlot+1)
	for i := 0; i <= MaxSlot; i++ {
		s[i] = 0
	}
	return s
}

func checkSlot(itemID int) error {
	if itemID < 0 || itemID > MaxSlot {
		return fmt.Errorf("%w: %d", ErrSlotRange, itemID)
	}
	return nil
}

// Increment adds one to the slot's quantity.
func (s State) Increment(itemID int) error {
	if err := checkSlot(itemID); err != nil {
		return err
	}
	s[itemID]++
	return nil
}

// Decrement removes one from the slot's quantity, clamping at zero.
// Decrementing an empty slot is a no-op, never an error.
func (s State) Decrement(itemID int) error {
	if err := checkSlot(itemID); err != nil {
		return err
	}
	if s[itemID] > 0 {
		s[itemID]--
	}
	return nil
}

// Encode serializes the cart for the users.cartData column.
func (s State) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Decode parses a stored cart blob. An empty or NULL column decodes to an
// empty State, matching how rows written before the cart feature behave.
func Decode(raw string) (State, error) {
	if raw == "" {
		return State{}, nil
	}
	var s State
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return s, nil
}
