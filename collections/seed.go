package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type serviceDef struct {
	category     string
	service      string
	scopeOfWork  string
	price        float64
	billingCycle string
}

// builtinServices is the firm's standard catalog, grouped by practice area.
// Category order here drives the display order of the navigation rail.
var builtinServices = []serviceDef{
	// ── GST ──────────────────────────────────────────────────────────
	{"GST", "GST Registration", "Preparation and filing of the registration application with supporting documents.", 2500, "One-off"},
	{"GST", "GST Return Filing (GSTR-1 & GSTR-3B)", "Monthly preparation and filing of outward supply and summary returns.", 1500, "Monthly"},
	{"GST", "GST Annual Return (GSTR-9)", "Compilation and filing of the annual return with reconciliation statement.", 7500, "Yearly"},
	{"GST", "GST Notice Reply", "Drafting and filing replies to departmental notices.", 5000, "One-off"},

	// ── Income Tax ───────────────────────────────────────────────────
	{"Income Tax", "Income Tax Return - Individual", "Computation of total income and e-filing of the return.", 2000, "Yearly"},
	{"Income Tax", "Income Tax Return - Company", "Computation, tax audit coordination and e-filing for corporate assessees.", 10000, "Yearly"},
	{"Income Tax", "Advance Tax Computation", "Quarterly estimation of income and advance tax liability.", 1500, "Quarterly"},
	{"Income Tax", "TDS Return Filing", "Quarterly preparation and filing of TDS statements with challan reconciliation.", 2000, "Quarterly"},

	// ── Audit & Assurance ────────────────────────────────────────────
	{"Audit & Assurance", "Statutory Audit", "Audit of financial statements under the Companies Act.", 35000, "Yearly"},
	{"Audit & Assurance", "Tax Audit", "Audit under section 44AB with Form 3CA/3CB-3CD filing.", 25000, "Yearly"},
	{"Audit & Assurance", "Internal Audit", "Periodic review of internal controls and processes.", 15000, "Quarterly"},

	// ── Company Law ──────────────────────────────────────────────────
	{"Company Law", "Company Incorporation", "Name reservation, drafting of charter documents and incorporation filing.", 12000, "One-off"},
	{"Company Law", "ROC Annual Filing", "Preparation and filing of annual return and financial statements with the Registrar.", 8000, "Yearly"},
	{"Company Law", "Director KYC", "Filing of DIR-3 KYC for each director.", 1000, "Yearly"},

	// ── Accounting ───────────────────────────────────────────────────
	{"Accounting", "Bookkeeping", "Recording of transactions, ledger maintenance and monthly closing.", 5000, "Monthly"},
	{"Accounting", "Payroll Processing", "Salary computation, payslips and statutory deduction workings.", 3000, "Monthly"},
	{"Accounting", "MIS Reporting", "Monthly management reports covering profitability and cash flow.", 4000, "Monthly"},
}

// Seed inserts the built-in service catalog. Safe to call on every startup:
// it returns early if any service records already exist.
func Seed(app *pocketbase.PocketBase) error {
	servicesCol, err := app.FindCollectionByNameOrId("services")
	if err != nil {
		return fmt.Errorf("seed: could not find services collection: %w", err)
	}
	existing, err := app.FindAllRecords(servicesCol)
	if err != nil {
		return fmt.Errorf("seed: could not query services: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: services collection is empty – inserting built-in catalog …")

	for i, def := range builtinServices {
		record := core.NewRecord(servicesCol)
		record.Set("category", def.category)
		record.Set("service", def.service)
		record.Set("scope_of_work", def.scopeOfWork)
		record.Set("price", def.price)
		record.Set("billing_cycle", def.billingCycle)
		record.Set("custom", false)
		record.Set("sort_order", i+1)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed: could not save service %q: %w", def.service, err)
		}
	}

	log.Printf("seed: inserted %d services", len(builtinServices))
	return nil
}
