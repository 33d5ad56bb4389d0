package domain

import "math"

// Criteria is the sparse set of active search constraints. A zero value field means
// "no constraint on that dimension". Brand is a single value: setting a new brand
// replaces the previous one.
type Criteria struct {
	Brand        string   `json:"brand,omitempty"`
	Model        string   `json:"model,omitempty"`
	MinYear      *int     `json:"minYear,omitempty"`
	MaxYear      *int     `json:"maxYear,omitempty"`
	MinPrice     *float64 `json:"minPrice,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty"`
	MinMileage   *int     `json:"minMileage,omitempty"`
	MaxMileage   *int     `json:"maxMileage,omitempty"`
	MinPower     *int     `json:"minPower,omitempty"`
	MaxPower     *int     `json:"maxPower,omitempty"`
	FuelType     []string `json:"fuelType,omitempty"`
	Transmission []string `json:"transmission,omitempty"`
	SellerType   []string `json:"sellerType,omitempty"`
	Source       []string `json:"source,omitempty"`
	Features     []string `json:"features,omitempty"`
	Keyword      string   `json:"keyword,omitempty"`
}

// Clone returns a deep copy; the result shares no pointers or slices with c.
func (c Criteria) Clone() Criteria {
	out := c
	out.MinYear = cloneInt(c.MinYear)
	out.MaxYear = cloneInt(c.MaxYear)
	out.MinPrice = cloneFloat(c.MinPrice)
	out.MaxPrice = cloneFloat(c.MaxPrice)
	out.MinMileage = cloneInt(c.MinMileage)
	out.MaxMileage = cloneInt(c.MaxMileage)
	out.MinPower = cloneInt(c.MinPower)
	out.MaxPower = cloneInt(c.MaxPower)
	out.FuelType = cloneStrings(c.FuelType)
	out.Transmission = cloneStrings(c.Transmission)
	out.SellerType = cloneStrings(c.SellerType)
	out.Source = cloneStrings(c.Source)
	out.Features = cloneStrings(c.Features)
	return out
}

// Normalize drops values that carry no constraint: empty sets and NaN price bounds
// become absent. The result is a copy.
func (c Criteria) Normalize() Criteria {
	out := c.Clone()
	if out.MinPrice != nil && math.IsNaN(*out.MinPrice) {
		out.MinPrice = nil
	}
	if out.MaxPrice != nil && math.IsNaN(*out.MaxPrice) {
		out.MaxPrice = nil
	}
	out.FuelType = nilIfEmpty(out.FuelType)
	out.Transmission = nilIfEmpty(out.Transmission)
	out.SellerType = nilIfEmpty(out.SellerType)
	out.Source = nilIfEmpty(out.Source)
	out.Features = nilIfEmpty(out.Features)
	return out
}

// Merge overwrites every field present in patch and keeps the rest of c.
func (c Criteria) Merge(patch Criteria) Criteria {
	out := c.Clone()
	p := patch.Normalize()
	if p.Brand != "" {
		out.Brand = p.Brand
	}
	if p.Model != "" {
		out.Model = p.Model
	}
	if p.MinYear != nil {
		out.MinYear = p.MinYear
	}
	if p.MaxYear != nil {
		out.MaxYear = p.MaxYear
	}
	if p.MinPrice != nil {
		out.MinPrice = p.MinPrice
	}
	if p.MaxPrice != nil {
		out.MaxPrice = p.MaxPrice
	}
	if p.MinMileage != nil {
		out.MinMileage = p.MinMileage
	}
	if p.MaxMileage != nil {
		out.MaxMileage = p.MaxMileage
	}
	if p.MinPower != nil {
		out.MinPower = p.MinPower
	}
	if p.MaxPower != nil {
		out.MaxPower = p.MaxPower
	}
	if p.FuelType != nil {
		out.FuelType = p.FuelType
	}
	if p.Transmission != nil {
		out.Transmission = p.Transmission
	}
	if p.SellerType != nil {
		out.SellerType = p.SellerType
	}
	if p.Source != nil {
		out.Source = p.Source
	}
	if p.Features != nil {
		out.Features = p.Features
	}
	if p.Keyword != "" {
		out.Keyword = p.Keyword
	}
	return out
}

// ActiveCount returns how many dimensions carry a constraint (the filter badge count).
func (c Criteria) ActiveCount() int {
	n := 0
	for _, set := range []bool{
		c.Brand != "", c.Model != "",
		c.MinYear != nil, c.MaxYear != nil,
		c.MinPrice != nil, c.MaxPrice != nil,
		c.MinMileage != nil, c.MaxMileage != nil,
		c.MinPower != nil, c.MaxPower != nil,
		len(c.FuelType) > 0, len(c.Transmission) > 0,
		len(c.SellerType) > 0, len(c.Source) > 0,
		len(c.Features) > 0, c.Keyword != "",
	} {
		if set {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no dimension is constrained.
func (c Criteria) IsEmpty() bool {
	return c.ActiveCount() == 0
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

// IntPtr is a small helper for building criteria literals.
func IntPtr(v int) *int { return &v }

// FloatPtr is a small helper for building criteria literals.
func FloatPtr(v float64) *float64 { return &v }
