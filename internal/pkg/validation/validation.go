package validation

import (
	"regexp"
	"strings"

	"github.com/mcnijman/go-emailaddress"
)

// VINs are 17 characters; I, O and Q are never used.
var vinRe = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// IsValidEmail accepts a syntactically valid address whose domain has a TLD.
func IsValidEmail(email string) bool {
	addr, err := emailaddress.Parse(strings.TrimSpace(email))
	if err != nil {
		return false
	}
	return strings.Contains(addr.Domain, ".")
}

// NormalizeVIN trims and upper-cases a VIN.
func NormalizeVIN(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

func IsValidVIN(vin string) bool {
	return vinRe.MatchString(NormalizeVIN(vin))
}
