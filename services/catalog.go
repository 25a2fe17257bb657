// Package services holds the proposal engine: the in-session service catalog,
// the selection and pricing state, scroll/navigation sync, proposal assembly
// and the document renderers.
package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ServiceItem is a single entry of the billable-services catalog.
type ServiceItem struct {
	ID           string  `json:"id"`
	Category     string  `json:"category"`
	Service      string  `json:"service"`
	ScopeOfWork  string  `json:"scopeOfWork,omitempty"`
	Price        float64 `json:"price"`
	BillingCycle string  `json:"billingCycle"`
}

// ServiceDraft is the user input for a custom service. Price arrives as the
// raw form string so validation owns the parse.
type ServiceDraft struct {
	Service      string `json:"service"`
	ScopeOfWork  string `json:"scopeOfWork"`
	Category     string `json:"category"`
	Price        string `json:"price"`
	BillingCycle string `json:"billingCycle"`
}

// DefaultBillingCycles are the built-in cycle values. Custom cycles entered by
// the user are appended to the catalog's known list at runtime.
var DefaultBillingCycles = []string{"One-off", "Monthly", "Quarterly", "Yearly"}

// Catalog holds the services selectable during one session. It is append-only:
// items are loaded once at startup and custom items may be added, but nothing
// is ever removed or edited in place.
type Catalog struct {
	items         []ServiceItem
	categories    []string
	billingCycles []string
	ids           map[string]int // id -> index into items
}

func NewCatalog() *Catalog {
	c := &Catalog{ids: make(map[string]int)}
	c.billingCycles = append(c.billingCycles, DefaultBillingCycles...)
	return c
}

// Load appends the startup items. Items whose id is already present are
// skipped so a repeated load cannot break id uniqueness.
func (c *Catalog) Load(items []ServiceItem) {
	for _, item := range items {
		if _, exists := c.ids[item.ID]; exists {
			continue
		}
		c.append(item)
	}
}

func (c *Catalog) append(item ServiceItem) {
	c.ids[item.ID] = len(c.items)
	c.items = append(c.items, item)
	if !contains(c.categories, item.Category) {
		c.categories = append(c.categories, item.Category)
	}
	if !contains(c.billingCycles, item.BillingCycle) {
		c.billingCycles = append(c.billingCycles, item.BillingCycle)
	}
}

// Items returns the full catalog in insertion order.
func (c *Catalog) Items() []ServiceItem {
	return c.items
}

// Item looks up a catalog entry by id.
func (c *Catalog) Item(id string) (ServiceItem, bool) {
	i, ok := c.ids[id]
	if !ok {
		return ServiceItem{}, false
	}
	return c.items[i], true
}

// Len reports the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Categories returns the distinct category labels in first-seen order.
func (c *Catalog) Categories() []string {
	return c.categories
}

// BillingCycles returns the known billing-cycle values, built-ins first, then
// custom values in first-seen order.
func (c *Catalog) BillingCycles() []string {
	return c.billingCycles
}

// AddCustom validates a draft, assigns a fresh id and appends the item.
// New category or billing-cycle values are registered so they show up in
// future selection lists. On a ValidationError nothing is mutated.
func (c *Catalog) AddCustom(d ServiceDraft) (ServiceItem, error) {
	item, err := draftToItem(d)
	if err != nil {
		return ServiceItem{}, err
	}
	item.ID = c.freshCustomID()
	c.append(item)
	return item, nil
}

// draftToItem validates the draft fields and builds an item without an id.
func draftToItem(d ServiceDraft) (ServiceItem, error) {
	if strings.TrimSpace(d.Service) == "" {
		return ServiceItem{}, &ValidationError{Field: "service", Message: "service description is required"}
	}
	if strings.TrimSpace(d.Category) == "" {
		return ServiceItem{}, &ValidationError{Field: "category", Message: "category is required"}
	}
	if strings.TrimSpace(d.BillingCycle) == "" {
		return ServiceItem{}, &ValidationError{Field: "billingCycle", Message: "billing cycle is required"}
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil {
		return ServiceItem{}, &ValidationError{Field: "price", Message: "price must be a number"}
	}
	if price < 0 {
		return ServiceItem{}, &ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return ServiceItem{
		Category:     strings.TrimSpace(d.Category),
		Service:      strings.TrimSpace(d.Service),
		ScopeOfWork:  strings.TrimSpace(d.ScopeOfWork),
		Price:        price,
		BillingCycle: strings.TrimSpace(d.BillingCycle),
	}, nil
}

// freshCustomID derives an id from the current timestamp, bumping it while it
// collides with an existing id (two adds inside one millisecond).
func (c *Catalog) freshCustomID() string {
	ms := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("custom-%d", ms)
		if _, exists := c.ids[id]; !exists {
			return id
		}
		ms++
	}
}

// Filter returns the items matching a case-insensitive substring search over
// the service name, scope of work, billing cycle and stringified price.
// An empty or all-whitespace term matches everything.
func (c *Catalog) Filter(term string) []ServiceItem {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.items
	}
	var matched []ServiceItem
	for _, item := range c.items {
		if itemMatches(item, term) {
			matched = append(matched, item)
		}
	}
	return matched
}

func itemMatches(item ServiceItem, term string) bool {
	if strings.Contains(strings.ToLower(item.Service), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.ScopeOfWork), term) {
		return true
	}
	if strings.Contains(strings.ToLower(item.BillingCycle), term) {
		return true
	}
	return strings.Contains(strconv.FormatFloat(item.Price, 'f', -1, 64), term)
}

// ByCategory filters an item slice down to one category, preserving order.
// Pass the output of Filter to scope it to the current search.
func ByCategory(items []ServiceItem, category string) []ServiceItem {
	var out []ServiceItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
