package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ReplenishmentCalc holds the per-product constants consumed by the
// suggestion calculator.
//
// Domain notes:
//   - DailyBurnRate is the assumed daily consumption used both for the
//     demand target and the stockout projection. It must be positive:
//     the projection divides by it.
//   - StrategicBufferUnits is an extra fixed quantity (seasonal demand,
//     rebate thresholds) added to every suggestion before flooring at 0.

type ReplenishmentCalc struct {
	DailyBurnRate        decimal.Decimal `json:"daily_burn_rate"`
	SafetyStockDays      int             `json:"safety_stock_days"`
	StrategicBufferUnits int             `json:"strategic_buffer_units"`
}

// Product is an immutable catalog record. The catalog is defined at
// process start and never mutated; per-session stock corrections live in
// the override store, not here.
type Product struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	InitialStock int               `json:"initial_stock"`
	UnitPrice    decimal.Decimal   `json:"unit_price"`
	Calc         ReplenishmentCalc `json:"calc"`
}

// Validate reports configuration errors in a catalog record. A product
// that fails validation must abort startup: the calculator cannot
// produce a meaningful suggestion from it.
func (p Product) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("product id cannot be empty")
	}
	if p.Name == "" {
		return fmt.Errorf("product %s: name cannot be empty", p.ID)
	}
	if p.InitialStock < 0 {
		return fmt.Errorf("product %s: initial stock cannot be negative, got %d", p.ID, p.InitialStock)
	}
	if p.UnitPrice.IsNegative() {
		return fmt.Errorf("product %s: unit price cannot be negative, got %s", p.ID, p.UnitPrice)
	}
	if !p.Calc.DailyBurnRate.IsPositive() {
		return fmt.Errorf("product %s: daily burn rate must be positive, got %s", p.ID, p.Calc.DailyBurnRate)
	}
	if p.Calc.SafetyStockDays < 0 {
		return fmt.Errorf("product %s: safety stock days cannot be negative, got %d", p.ID, p.Calc.SafetyStockDays)
	}
	if p.Calc.StrategicBufferUnits < 0 {
		return fmt.Errorf("product %s: strategic buffer cannot be negative, got %d", p.ID, p.Calc.StrategicBufferUnits)
	}
	return nil
}

// ValidateCatalog checks every record and id uniqueness.
func ValidateCatalog(products []Product) error {
	seen := make(map[string]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("duplicate product id %s", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// DefaultCatalog returns the demo catalog. Constants mirror the portal's
// reference data set.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:           "P001",
			Name:         "Tamiflu (Oseltamivir) 75mg",
			Category:     "Antiviral",
			InitialStock: 120,
			UnitPrice:    decimal.NewFromFloat(185.00),
			Calc: ReplenishmentCalc{
				DailyBurnRate:        decimal.NewFromInt(25),
				SafetyStockDays:      20,
				StrategicBufferUnits: 150,
			},
		},
		{
			ID:           "P002",
			Name:         "Rocephin (Ceftriaxone) 1g",
			Category:     "Antibiotic",
			InitialStock: 300,
			UnitPrice:    decimal.NewFromFloat(45.00),
			Calc: ReplenishmentCalc{
				DailyBurnRate:        decimal.NewFromInt(5),
				SafetyStockDays:      30,
				StrategicBufferUnits: 0,
			},
		},
		{
			ID:           "P003",
			Name:         "Avastin (Bevacizumab) 100mg",
			Category:     "Oncology",
			InitialStock: 12,
			UnitPrice:    decimal.NewFromFloat(3200.00),
			Calc: ReplenishmentCalc{
				DailyBurnRate:        decimal.NewFromFloat(0.55),
				SafetyStockDays:      45,
				StrategicBufferUnits: 0,
			},
		},
	}
}
