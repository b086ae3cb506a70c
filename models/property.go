package models

// PropertyStatus is the listing lifecycle label shown on a property card.
type PropertyStatus string

const (
	StatusAvailable         PropertyStatus = "Available"
	StatusUnderConstruction PropertyStatus = "Under Construction"
	StatusSold              PropertyStatus = "Sold"
)

// PropertyStatuses lists every valid status, in display order.
var PropertyStatuses = []PropertyStatus{StatusAvailable, StatusUnderConstruction, StatusSold}

// Valid reports whether s is one of the known statuses.
func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusAvailable, StatusUnderConstruction, StatusSold:
		return true
	}
	return false
}

type Property struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Price        int            `json:"price"`
	Beds         int            `json:"beds"`
	Baths        float64        `json:"baths"`
	Sqft         int            `json:"sqft"`
	Description  string         `json:"description"`
	Image        string         `json:"image"`
	Gallery      []string       `json:"gallery"`
	Status       PropertyStatus `json:"status"`
	Neighborhood string         `json:"neighborhood"`
	Features     []string       `json:"features"`
}

// Clone returns a deep copy so callers can mutate the result freely.
func (p Property) Clone() Property {
	c := p
	if p.Gallery != nil {
		c.Gallery = append([]string(nil), p.Gallery...)
	}
	if p.Features != nil {
		c.Features = append([]string(nil), p.Features...)
	}
	return c
}
