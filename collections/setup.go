package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the services and proposals
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "services", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "category", Required: true})
		c.Fields.Add(&core.TextField{Name: "service", Required: true})
		c.Fields.Add(&core.TextField{Name: "scope_of_work", Required: false})
		// Required would reject a zero price, which is legal.
		c.Fields.Add(&core.NumberField{Name: "price", Required: false})
		c.Fields.Add(&core.TextField{Name: "billing_cycle", Required: true})
		c.Fields.Add(&core.BoolField{Name: "custom"})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "proposals", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "client_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "prepared_for", Required: false})
		c.Fields.Add(&core.TextField{Name: "prepared_by", Required: false})
		c.Fields.Add(&core.JSONField{Name: "payload", MaxSize: 1 << 20})
		c.Fields.Add(&core.NumberField{Name: "total"})
		c.Fields.Add(&core.NumberField{Name: "service_count"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
