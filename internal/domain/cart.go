package domain

// Part conditions offered in the parts market.
const (
	ConditionNew         = "Neu"
	ConditionUsed        = "Gebraucht"
	ConditionRefurbished = "Generalüberholt"
)

// PartSeller describes who ships a cart item.
type PartSeller struct {
	Name     string  `json:"name"`
	Rating   float64 `json:"rating"`
	Location string  `json:"location"`
}

// Shipping is the per-seller delivery cost and estimate.
type Shipping struct {
	Cost float64 `json:"cost"`
	Time string  `json:"time"`
}

// CartItem is one line of the parts cart.
type CartItem struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Price            float64    `json:"price"`
	OriginalPrice    *float64   `json:"originalPrice,omitempty"`
	Brand            string     `json:"brand"`
	Condition        string     `json:"condition"`
	Image            string     `json:"image"`
	Quantity         int        `json:"quantity"`
	Seller           PartSeller `json:"seller"`
	Shipping         Shipping   `json:"shipping"`
	Warranty         string     `json:"warranty"`
	CarCompatibility string     `json:"carCompatibility"`
}
