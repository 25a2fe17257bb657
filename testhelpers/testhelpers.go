// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"proposalmaker/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestService creates a service record and returns it.
func CreateTestService(t *testing.T, app *pocketbase.PocketBase, category, service string, price float64, billingCycle string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		t.Fatalf("failed to find services collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("category", category)
	record.Set("service", service)
	record.Set("price", price)
	record.Set("billing_cycle", billingCycle)
	record.Set("custom", false)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test service: %v", err)
	}

	return record
}
