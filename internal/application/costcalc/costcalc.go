package costcalc

import (
	"errors"
	"time"

	"carmarket-backend/internal/domain"
)

var ErrNegativeInput = errors.New("cost inputs must not be negative")

// Insurance classes (Schadenfreiheitsklasse).
const (
	ClassSF35 = "SF35"
	ClassSF25 = "SF25"
	ClassSF10 = "SF10"
	ClassSF5  = "SF5"
	ClassSF0  = "SF0"
)

var insuranceRates = map[string]float64{
	ClassSF35: 0.003,
	ClassSF25: 0.004,
	ClassSF10: 0.005,
	ClassSF5:  0.007,
	ClassSF0:  0.01,
}

const defaultInsuranceRate = 0.005

// Input describes the vehicle and usage. Nil pointers take the calculator defaults.
type Input struct {
	PurchasePrice   *float64 `json:"purchasePrice,omitempty"`
	AnnualMileage   *float64 `json:"annualMileage,omitempty"`
	FuelType        string   `json:"fuelType,omitempty"`
	FuelConsumption *float64 `json:"fuelConsumption,omitempty"`
	FuelPrice       *float64 `json:"fuelPrice,omitempty"`
	InsuranceClass  string   `json:"insuranceClass,omitempty"`
	VehicleAge      *int     `json:"vehicleAge,omitempty"`
	// Year is used to derive VehicleAge when that is absent.
	Year *int `json:"year,omitempty"`
}

// Result holds monthly cost components and the totals.
type Result struct {
	MonthlyInsurance    float64 `json:"monthlyInsurance"`
	MonthlyTax          float64 `json:"monthlyTax"`
	MonthlyFuel         float64 `json:"monthlyFuel"`
	MonthlyMaintenance  float64 `json:"monthlyMaintenance"`
	MonthlyDepreciation float64 `json:"monthlyDepreciation"`
	TotalMonthly        float64 `json:"totalMonthly"`
	TotalYearly         float64 `json:"totalYearly"`
	Applied             Applied `json:"applied"`
}

// Applied echoes the inputs after defaults were filled in.
type Applied struct {
	PurchasePrice   float64 `json:"purchasePrice"`
	AnnualMileage   float64 `json:"annualMileage"`
	FuelType        string  `json:"fuelType"`
	FuelConsumption float64 `json:"fuelConsumption"`
	FuelPrice       float64 `json:"fuelPrice"`
	InsuranceClass  string  `json:"insuranceClass"`
	VehicleAge      int     `json:"vehicleAge"`
}

// DefaultFuelPrice is the price per litre, or per kWh for electric cars.
func DefaultFuelPrice(fuelType string) float64 {
	switch fuelType {
	case domain.FuelDiesel:
		return 1.60
	case domain.FuelElektro:
		return 0.35
	default:
		return 1.80
	}
}

func resolve(in Input, now time.Time) Applied {
	a := Applied{
		PurchasePrice:   30000,
		AnnualMileage:   15000,
		FuelType:        domain.FuelBenzin,
		FuelConsumption: 7.5,
		InsuranceClass:  ClassSF10,
		VehicleAge:      3,
	}
	if in.PurchasePrice != nil {
		a.PurchasePrice = *in.PurchasePrice
	}
	if in.AnnualMileage != nil {
		a.AnnualMileage = *in.AnnualMileage
	}
	if in.FuelType != "" {
		a.FuelType = in.FuelType
	}
	if in.FuelConsumption != nil {
		a.FuelConsumption = *in.FuelConsumption
	}
	a.FuelPrice = DefaultFuelPrice(a.FuelType)
	if in.FuelPrice != nil {
		a.FuelPrice = *in.FuelPrice
	}
	if in.InsuranceClass != "" {
		a.InsuranceClass = in.InsuranceClass
	}
	switch {
	case in.VehicleAge != nil:
		a.VehicleAge = *in.VehicleAge
	case in.Year != nil:
		a.VehicleAge = now.Year() - *in.Year
		if a.VehicleAge < 0 {
			a.VehicleAge = 0
		}
	}
	return a
}

// Calculate computes the cost of ownership for in.
func Calculate(in Input) (Result, error) {
	return calculate(in, time.Now())
}

func calculate(in Input, now time.Time) (Result, error) {
	a := resolve(in, now)
	if a.PurchasePrice < 0 || a.AnnualMileage < 0 || a.FuelConsumption < 0 || a.FuelPrice < 0 || a.VehicleAge < 0 {
		return Result{}, ErrNegativeInput
	}

	rate, ok := insuranceRates[a.InsuranceClass]
	if !ok {
		rate = defaultInsuranceRate
	}
	insurance := a.PurchasePrice * rate

	var tax float64
	switch a.FuelType {
	case domain.FuelBenzin:
		tax = 10 + a.FuelConsumption*2
	case domain.FuelDiesel:
		tax = 15 + a.FuelConsumption*3
	case domain.FuelElektro:
		tax = 0
	default:
		tax = 12 + a.FuelConsumption*2.5
	}

	// consumption is kWh/100km for electric cars, l/100km otherwise
	fuel := a.AnnualMileage / 100 * a.FuelConsumption * a.FuelPrice / 12
	maintenance := a.PurchasePrice*0.02/12 + float64(a.VehicleAge)*10
	depreciation := a.PurchasePrice * depreciationRate(a.VehicleAge) / 12

	r := Result{
		MonthlyInsurance:    insurance / 12,
		MonthlyTax:          tax / 12,
		MonthlyFuel:         fuel,
		MonthlyMaintenance:  maintenance,
		MonthlyDepreciation: depreciation,
		Applied:             a,
	}
	r.TotalMonthly = r.MonthlyInsurance + r.MonthlyTax + r.MonthlyFuel + r.MonthlyMaintenance + r.MonthlyDepreciation
	r.TotalYearly = r.TotalMonthly * 12
	return r, nil
}

func depreciationRate(age int) float64 {
	switch {
	case age < 3:
		return 0.15
	case age < 6:
		return 0.10
	case age < 10:
		return 0.07
	default:
		return 0.05
	}
}
