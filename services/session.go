package services

import "log"

// Session is the controller behind one proposal-configurator screen. It owns
// the catalog, the selection state, the navigation sync and the client form
// for the lifetime of that screen, and is discarded on navigation away.
// Nothing here persists; the catalog's backing store is the only durable
// state.
type Session struct {
	Catalog   *Catalog
	Selection *Selection
	Nav       *NavSync
	Client    ClientInfo
	Meta      ProposalMeta

	searchTerm string
}

func NewSession() *Session {
	return &Session{
		Catalog:   NewCatalog(),
		Selection: NewSelection(),
		Nav:       NewNavSync(),
	}
}

// LoadCatalog fetches the service catalog once at session start. A failing
// source is logged and leaves the catalog empty but usable.
func (s *Session) LoadCatalog(src CatalogSource) {
	items, err := src.ListServices()
	if err != nil {
		log.Printf("session: catalog load failed: %v", err)
		return
	}
	s.Catalog.Load(items)
}

// SetSearchTerm updates the active search filter.
func (s *Session) SetSearchTerm(term string) {
	s.searchTerm = term
}

func (s *Session) SearchTerm() string {
	return s.searchTerm
}

// VisibleItems returns the catalog filtered by the active search term.
func (s *Session) VisibleItems() []ServiceItem {
	return s.Catalog.Filter(s.searchTerm)
}

// VisibleInCategory returns the currently visible items of one category.
// Category-level operations act on this set, so "select all" can never touch
// items hidden by the search filter.
func (s *Session) VisibleInCategory(category string) []ServiceItem {
	return ByCategory(s.VisibleItems(), category)
}

// CategoryState computes the tri-state rollup for a category over its
// visible items.
func (s *Session) CategoryState(category string) CategoryState {
	return s.Selection.CategoryStateOf(s.VisibleInCategory(category))
}

// ToggleCategory selects or deselects a category's visible items.
func (s *Session) ToggleCategory(category string) {
	s.Selection.ToggleCategory(s.VisibleInCategory(category))
}

// AddCustomService validates and appends a custom item, auto-selecting it.
func (s *Session) AddCustomService(d ServiceDraft) (ServiceItem, error) {
	item, err := s.Catalog.AddCustom(d)
	if err != nil {
		return ServiceItem{}, err
	}
	s.Selection.Select(item.ID)
	return item, nil
}

// Total is the running total over the current selection.
func (s *Session) Total() float64 {
	return s.Selection.Total(s.Catalog)
}

// BuildPayload snapshots the session into a proposal payload.
func (s *Session) BuildPayload() ProposalPayload {
	return BuildPayload(s.Catalog, s.Selection, s.Client, s.Meta)
}

// Close releases session resources (the navigation settle timer).
func (s *Session) Close() {
	s.Nav.Close()
}
