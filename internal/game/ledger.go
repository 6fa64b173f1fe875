package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/furnace-pets/internal/economy"
	"github.com/vovakirdan/furnace-pets/internal/shop"
)

// Purchase buys one catalog item. Ownership is checked before funds: an
// owned base id fails with ErrDuplicateItem whatever the balance. On
// success the debit and the new inventory entry are committed together.
// Items without a base id or a positive price are rejected with
// economy.ErrInvalidInput.
func (e *Engine) Purchase(item shop.Item) (InventoryItem, error) {
	if item.ID == "" || item.Price <= 0 {
		return InventoryItem{}, fmt.Errorf("%w: item %q priced %d", economy.ErrInvalidInput, item.ID, item.Price)
	}

	e.mu.Lock()
	cur := e.state

	if cur.Owns(item.ID) {
		e.mu.Unlock()
		return InventoryItem{}, fmt.Errorf("%w: %s", ErrDuplicateItem, item.ID)
	}
	if !economy.CanAfford(cur.TotalCurrency, item.Price) {
		e.mu.Unlock()
		return InventoryItem{}, fmt.Errorf("%w: %s costs %d, balance %d", ErrInsufficientFunds, item.ID, item.Price, cur.TotalCurrency)
	}

	now := e.clock.Now().UTC()
	next := cur.Clone()
	bought := InventoryItem{
		ID:     e.newItemIDLocked(next, item.ID, now.UnixMilli()),
		Name:   item.Name,
		BaseID: item.ID,
	}
	next.TotalCurrency -= item.Price
	next.Inventory = append(next.Inventory, bought)

	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return InventoryItem{}, err
	}
	e.mu.Unlock()

	e.logger.Info("item purchased", "item", item.ID, "price", item.Price, "balance", next.TotalCurrency)
	e.record(Event{Kind: EventPurchase, Amount: item.Price, Detail: item.ID, At: now})
	return bought, nil
}

// PurchaseByID looks the base id up in the catalog and buys it.
func (e *Engine) PurchaseByID(baseID string) (InventoryItem, error) {
	item, err := e.catalog.Get(baseID)
	if err != nil {
		return InventoryItem{}, err
	}
	return e.Purchase(item)
}

// newItemIDLocked derives "<baseID>-<stamp>". Stamps increase strictly
// within the session so ids never collide.
func (e *Engine) newItemIDLocked(st State, baseID string, stamp int64) string {
	if stamp <= e.lastStamp {
		stamp = e.lastStamp + 1
	}
	id := baseID + "-" + strconv.FormatInt(stamp, 10)
	for st.hasID(id) {
		stamp++
		id = baseID + "-" + strconv.FormatInt(stamp, 10)
	}
	e.lastStamp = stamp
	return id
}

// ClearInventory removes every owned item. Nothing is refunded.
func (e *Engine) ClearInventory() {
	e.mu.Lock()
	next := e.state.Clone()
	removed := len(next.Inventory)
	next.Inventory = []InventoryItem{}
	if err := e.commitLocked(next); err != nil {
		e.mu.Unlock()
		return
	}
	e.mu.Unlock()

	e.logger.Info("inventory cleared", "removed", removed)
	e.record(Event{Kind: EventClearInventory, Amount: removed, At: e.clock.Now().UTC()})
}

// Equip is reserved for applying cosmetics to the pet. It never changes
// state.
func (e *Engine) Equip(item InventoryItem) error {
	e.logger.Debug("equip requested", "item", item.ID)
	return nil
}
