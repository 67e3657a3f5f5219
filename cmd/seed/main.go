// Command seed applies the schema and loads the demo dataset. It is
// idempotent: rows are upserted on their primary key, so re-running it
// refreshes the dataset without duplicating anything.
package main

import (
	"context"
	"log"

	"github.com/cosmedis/backoffice-go/internal/config"
	"github.com/cosmedis/backoffice-go/internal/fixtures"
	"github.com/cosmedis/backoffice-go/internal/pkg/database"
	"github.com/cosmedis/backoffice-go/internal/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()

	if _, err := db.Pool.Exec(ctx, fixtures.Schema); err != nil {
		log.Fatal("Error applying schema: ", err)
	}
	log.Println("Schema applied")

	ds, err := fixtures.Load()
	if err != nil {
		log.Fatal("Error loading dataset: ", err)
	}

	if err := seed(ctx, db, ds); err != nil {
		log.Fatal("Error seeding: ", err)
	}

	log.Printf("Seeded %d employees, %d presence records, %d products, %d deliveries",
		len(ds.Employees), len(ds.PresenceRecords), len(ds.Products), len(ds.Deliveries))
}

func seed(ctx context.Context, db *database.DB, ds fixtures.Dataset) error {
	for _, e := range ds.Employees {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO employees (id, full_name, role, business, salary, active, permissions)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET full_name = EXCLUDED.full_name, role = EXCLUDED.role,
				business = EXCLUDED.business, salary = EXCLUDED.salary, active = EXCLUDED.active,
				permissions = EXCLUDED.permissions, updated_at = NOW()
		`, e.ID, e.FullName, e.Role, e.Business, e.Salary, e.Active, e.Permissions)
		if err != nil {
			return err
		}
	}

	for _, r := range ds.PresenceRecords {
		date, _ := validator.IsValidDate(r.Date)
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO presence_records (id, employee_id, date, days_adj, hours_adj, note)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET date = EXCLUDED.date, days_adj = EXCLUDED.days_adj,
				hours_adj = EXCLUDED.hours_adj, note = EXCLUDED.note, updated_at = NOW()
		`, r.ID, r.EmployeeID, date, r.DaysAdj, r.HoursAdj, r.Note)
		if err != nil {
			return err
		}
	}

	for _, p := range ds.Products {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO products (id, name, sku, prix1, prix2, prix3, active)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, sku = EXCLUDED.sku,
				prix1 = EXCLUDED.prix1, prix2 = EXCLUDED.prix2, prix3 = EXCLUDED.prix3,
				active = EXCLUDED.active, updated_at = NOW()
		`, p.ID, p.Name, p.SKU, p.Prix1, p.Prix2, p.Prix3, p.Active)
		if err != nil {
			return err
		}
	}

	for _, b := range ds.ProductionBatches {
		date, _ := validator.IsValidDate(b.Date)
		unitCost := b.MaterialCost.Add(b.LaborCost).Add(b.OverheadCost).Div(b.Quantity)
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO production_batches (id, product_id, date, quantity, material_cost, labor_cost, overhead_cost, unit_cost, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING
		`, b.ID, b.ProductID, date, b.Quantity, b.MaterialCost, b.LaborCost, b.OverheadCost, unitCost, b.Note)
		if err != nil {
			return err
		}
	}

	for _, c := range ds.CommissionEntries {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO commission_entries (employee_id, product_id, c1, c2, c3)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id, product_id) DO UPDATE SET c1 = EXCLUDED.c1,
				c2 = EXCLUDED.c2, c3 = EXCLUDED.c3, updated_at = NOW()
		`, c.EmployeeID, c.ProductID, c.C1, c.C2, c.C3)
		if err != nil {
			return err
		}
	}

	for _, m := range ds.StockMovements {
		date, _ := validator.IsValidDate(m.Date)
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO stock_movements (id, product_id, type, from_location, to_location, quantity, date, note)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, m.ID, m.ProductID, m.Type, m.FromLocation, m.ToLocation, m.Quantity, date, m.Note)
		if err != nil {
			return err
		}
	}

	for _, d := range ds.Deliveries {
		date, _ := validator.IsValidDate(d.Date)
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO deliveries (id, order_ref, driver_id, destination, amount, status, date, delivered_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7,
				CASE WHEN $6 = 'delivered' THEN $7::timestamptz ELSE NULL END)
			ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, amount = EXCLUDED.amount,
				driver_id = EXCLUDED.driver_id, updated_at = NOW()
		`, d.ID, d.OrderRef, d.DriverID, d.Destination, d.Amount, d.Status, date)
		if err != nil {
			return err
		}
	}

	return nil
}
