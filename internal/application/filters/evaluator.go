package filters

import (
	"math"
	"strings"

	"carmarket-backend/internal/domain"
)

// Matches reports whether l satisfies every constraint present in c.
// Absent bounds, NaN price bounds and empty sets do not constrain.
// Features are carried by Criteria but not evaluated.
func Matches(l domain.Listing, c domain.Criteria) bool {
	if c.Brand != "" && l.Brand != c.Brand {
		return false
	}
	if c.Model != "" && l.Model != c.Model {
		return false
	}
	if !inIntRange(l.Year, c.MinYear, c.MaxYear) {
		return false
	}
	if !inFloatRange(l.Price, c.MinPrice, c.MaxPrice) {
		return false
	}
	if !inIntRange(l.Mileage, c.MinMileage, c.MaxMileage) {
		return false
	}
	if !inIntRange(l.Power, c.MinPower, c.MaxPower) {
		return false
	}
	if !inSet(l.FuelType, c.FuelType) {
		return false
	}
	if !inSet(l.Transmission, c.Transmission) {
		return false
	}
	if !inSet(l.SellerType, c.SellerType) {
		return false
	}
	if !inSet(string(l.OriginOrDefault()), c.Source) {
		return false
	}
	if c.Keyword != "" && !matchesKeyword(l, c.Keyword) {
		return false
	}
	return true
}

// Apply returns the listings that match c, in their original order.
// The result is never nil so an empty match renders as [].
func Apply(listings []domain.Listing, c domain.Criteria) []domain.Listing {
	out := make([]domain.Listing, 0, len(listings))
	for _, l := range listings {
		if Matches(l, c) {
			out = append(out, l)
		}
	}
	return out
}

func inIntRange(v int, lo, hi *int) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

func inFloatRange(v float64, lo, hi *float64) bool {
	if lo != nil && !math.IsNaN(*lo) && v < *lo {
		return false
	}
	if hi != nil && !math.IsNaN(*hi) && v > *hi {
		return false
	}
	return true
}

func inSet(v string, set []string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func matchesKeyword(l domain.Listing, keyword string) bool {
	kw := strings.ToLower(keyword)
	for _, field := range []string{l.Title, l.Brand, l.Model, l.Description} {
		if strings.Contains(strings.ToLower(field), kw) {
			return true
		}
	}
	return false
}
