// Package fixtures embeds the database schema and a demo dataset used by the
// seed command. The dataset mirrors real back-office usage, including presence
// adjustments far outside literal attendance (days_adj 120, hours_adj -300)
// that admins enter as pay corrections.
package fixtures

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:embed schema.sql
var Schema string

//go:embed seed.json
var seedJSON []byte

type Employee struct {
	ID          string          `json:"id"`
	FullName    string          `json:"full_name"`
	Role        string          `json:"role"`
	Business    string          `json:"business"`
	Salary      decimal.Decimal `json:"salary"`
	Active      bool            `json:"active"`
	Permissions []string        `json:"permissions"`
}

type PresenceRecord struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	DaysAdj    decimal.Decimal `json:"days_adj"`
	HoursAdj   decimal.Decimal `json:"hours_adj"`
	Note       *string         `json:"note"`
}

type Product struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	SKU    *string         `json:"sku"`
	Prix1  decimal.Decimal `json:"prix1"`
	Prix2  decimal.Decimal `json:"prix2"`
	Prix3  decimal.Decimal `json:"prix3"`
	Active bool            `json:"active"`
}

type ProductionBatch struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Date         string          `json:"date"`
	Quantity     decimal.Decimal `json:"quantity"`
	MaterialCost decimal.Decimal `json:"material_cost"`
	LaborCost    decimal.Decimal `json:"labor_cost"`
	OverheadCost decimal.Decimal `json:"overhead_cost"`
	Note         *string         `json:"note"`
}

type CommissionEntry struct {
	EmployeeID string          `json:"employee_id"`
	ProductID  string          `json:"product_id"`
	C1         decimal.Decimal `json:"c1"`
	C2         decimal.Decimal `json:"c2"`
	C3         decimal.Decimal `json:"c3"`
}

type StockMovement struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"product_id"`
	Type         string          `json:"type"`
	FromLocation *string         `json:"from_location"`
	ToLocation   *string         `json:"to_location"`
	Quantity     decimal.Decimal `json:"quantity"`
	Date         string          `json:"date"`
	Note         *string         `json:"note"`
}

type Delivery struct {
	ID          string          `json:"id"`
	OrderRef    string          `json:"order_ref"`
	DriverID    *string         `json:"driver_id"`
	Destination *string         `json:"destination"`
	Amount      decimal.Decimal `json:"amount"`
	Status      string          `json:"status"`
	Date        string          `json:"date"`
}

type Dataset struct {
	Employees         []Employee        `json:"employees"`
	PresenceRecords   []PresenceRecord  `json:"presence_records"`
	Products          []Product         `json:"products"`
	ProductionBatches []ProductionBatch `json:"production_batches"`
	CommissionEntries []CommissionEntry `json:"commission_entries"`
	StockMovements    []StockMovement   `json:"stock_movements"`
	Deliveries        []Delivery        `json:"deliveries"`
}

// Load parses the embedded dataset.
func Load() (Dataset, error) {
	var ds Dataset
	if err := json.Unmarshal(seedJSON, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parse seed dataset: %w", err)
	}
	return ds, nil
}
