package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Origin tags the catalog a listing was fetched from.
type Origin string

const (
	OriginInternal      Origin = "internal"
	OriginMobileDe      Origin = "mobile.de"
	OriginKleinanzeigen Origin = "kleinanzeigen.de"
)

// Origins lists every known origin in fetch order.
var Origins = []Origin{OriginInternal, OriginMobileDe, OriginKleinanzeigen}

const (
	FuelBenzin  = "Benzin"
	FuelDiesel  = "Diesel"
	FuelElektro = "Elektro"
	FuelHybrid  = "Hybrid"
	FuelLPG     = "LPG"
	FuelAndere  = "Andere"

	TransmissionManuell   = "Manuell"
	TransmissionAutomatik = "Automatik"

	SellerPrivat   = "Privat"
	SellerHaendler = "Händler"
)

var (
	FuelTypes         = []string{FuelBenzin, FuelDiesel, FuelElektro, FuelHybrid, FuelLPG, FuelAndere}
	TransmissionTypes = []string{TransmissionManuell, TransmissionAutomatik}
	SellerTypes       = []string{SellerPrivat, SellerHaendler}
)

// ValidFuelType reports whether s is one of FuelTypes.
func ValidFuelType(s string) bool { return contains(FuelTypes, s) }

// ValidTransmission reports whether s is one of TransmissionTypes.
func ValidTransmission(s string) bool { return contains(TransmissionTypes, s) }

// ValidSellerType reports whether s is one of SellerTypes.
func ValidSellerType(s string) bool { return contains(SellerTypes, s) }

// ValidOrigin reports whether s names a known origin.
func ValidOrigin(s string) bool {
	for _, o := range Origins {
		if string(o) == s {
			return true
		}
	}
	return false
}

func contains(values []string, s string) bool {
	for _, v := range values {
		if v == s {
			return true
		}
	}
	return false
}

// StringList stores an ordered list of strings in a json column and marshals as a JSON array.
type StringList []string

// Scan implements sql.Scanner for reading from DB (json column).
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported type for StringList")
	}
	if len(raw) == 0 {
		*s = nil
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*s = out
	return nil
}

// Value implements driver.Valuer for writing to DB.
func (s StringList) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	bs, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(bs), nil
}

// MarshalJSON keeps empty lists as [] rather than null so clients can iterate.
func (s StringList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(s))
}

// Listing is one vehicle offer. Internal listings are stored in the listings table;
// external ones only exist for the lifetime of a fetch.
type Listing struct {
	ID           string     `gorm:"column:id;primaryKey" json:"id"`
	Title        string     `gorm:"column:title;not null" json:"title"`
	Brand        string     `gorm:"column:brand;not null;index" json:"brand"`
	Model        string     `gorm:"column:model;not null" json:"model"`
	Year         int        `gorm:"column:year;not null" json:"year"`
	Price        float64    `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	Mileage      int        `gorm:"column:mileage;not null" json:"mileage"`
	FuelType     string     `gorm:"column:fuel_type;type:varchar(20);not null" json:"fuelType"`
	Transmission string     `gorm:"column:transmission;type:varchar(20);not null" json:"transmission"`
	Power        int        `gorm:"column:power;not null" json:"power"`
	Description  string     `gorm:"column:description" json:"description"`
	Location     string     `gorm:"column:location" json:"location"`
	SellerType   string     `gorm:"column:seller_type;type:varchar(20);not null" json:"sellerType"`
	SellerName   string     `gorm:"column:seller_name" json:"sellerName"`
	SellerPhone  string     `gorm:"column:seller_phone" json:"sellerPhone,omitempty"`
	SellerID     string     `gorm:"column:seller_id;index" json:"sellerId,omitempty"`
	VIN          string     `gorm:"column:vin;type:varchar(17)" json:"vin,omitempty"`
	Images       StringList `gorm:"column:images;type:json" json:"images"`
	Features     StringList `gorm:"column:features;type:json" json:"features"`
	Source       Origin     `gorm:"column:source;type:varchar(32)" json:"source,omitempty"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updatedAt"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate sets id if not already set.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// OriginOrDefault returns the listing's origin; an absent tag means internal.
func (l Listing) OriginOrDefault() Origin {
	if l.Source == "" {
		return OriginInternal
	}
	return l.Source
}
