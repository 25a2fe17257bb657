package services

// Selection tracks which catalog items the user has chosen and any per-item
// price overrides. Category rollups and totals are always recomputed from
// this state on read; nothing derived is cached.
//
// Invariant: an override exists only for a currently selected id. Every path
// that deselects an item also drops its override.
type Selection struct {
	selected  map[string]struct{}
	overrides map[string]float64
}

func NewSelection() *Selection {
	return &Selection{
		selected:  make(map[string]struct{}),
		overrides: make(map[string]float64),
	}
}

// ToggleItem flips membership of id. Deselecting also removes any price
// override so re-selecting falls back to the catalog base price.
func (s *Selection) ToggleItem(id string) {
	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		delete(s.overrides, id)
		return
	}
	s.selected[id] = struct{}{}
}

// Select adds id without toggling. Used by the custom-service add flow, which
// auto-selects the item it just created.
func (s *Selection) Select(id string) {
	s.selected[id] = struct{}{}
}

func (s *Selection) IsSelected(id string) bool {
	_, ok := s.selected[id]
	return ok
}

// Count reports how many items are selected.
func (s *Selection) Count() int {
	return len(s.selected)
}

// SetOverride records a custom price for a selected item. Calls for an
// unselected id are ignored, which keeps the override invariant trivially
// intact when a price edit races a checkbox change.
func (s *Selection) SetOverride(id string, price float64) {
	if _, ok := s.selected[id]; !ok {
		return
	}
	s.overrides[id] = price
}

// ClearOverride reverts an item to its catalog base price. Idempotent.
func (s *Selection) ClearOverride(id string) {
	delete(s.overrides, id)
}

// Override returns the override price for id, if one is set.
func (s *Selection) Override(id string) (float64, bool) {
	p, ok := s.overrides[id]
	return p, ok
}

// EffectivePrice is the override price if present, else the catalog base
// price. Ids unknown to the catalog yield 0.
func (s *Selection) EffectivePrice(c *Catalog, id string) float64 {
	item, ok := c.Item(id)
	if !ok {
		return 0
	}
	if p, ok := s.overrides[id]; ok {
		return p
	}
	return item.Price
}

// CategoryState is the tri-state rollup shown on a category checkbox:
// neither flag set means none selected, Checked means all selected,
// Indeterminate means a partial selection.
type CategoryState struct {
	Checked       bool
	Indeterminate bool
}

// CategoryStateOf computes the rollup over the given visible items of one
// category. Items hidden by an active search filter must not be passed in;
// an empty visible set reads as none selected.
func (s *Selection) CategoryStateOf(visible []ServiceItem) CategoryState {
	selected := 0
	for _, item := range visible {
		if s.IsSelected(item.ID) {
			selected++
		}
	}
	switch {
	case selected == 0:
		return CategoryState{}
	case selected == len(visible):
		return CategoryState{Checked: true}
	default:
		return CategoryState{Indeterminate: true}
	}
}

// ToggleCategory selects or deselects a whole category worth of visible
// items. The rollup is read once up front and the batch applied from that
// snapshot, so membership changes mid-batch cannot flip the direction.
// Deselection drops the overrides of the affected items.
func (s *Selection) ToggleCategory(visible []ServiceItem) {
	state := s.CategoryStateOf(visible)
	if state.Checked {
		for _, item := range visible {
			delete(s.selected, item.ID)
			delete(s.overrides, item.ID)
		}
		return
	}
	for _, item := range visible {
		s.selected[item.ID] = struct{}{}
	}
}

// Total sums the effective price of every selected item still present in the
// catalog. A selected id the catalog does not know contributes nothing.
func (s *Selection) Total(c *Catalog) float64 {
	var total float64
	for id := range s.selected {
		item, ok := c.Item(id)
		if !ok {
			continue
		}
		if p, ok := s.overrides[id]; ok {
			total += p
			continue
		}
		total += item.Price
	}
	return total
}
