package models

// TourPackage is a trusted catalog entry. Price is whole rupees per
// traveler and is the only amount the order service will charge from.
type TourPackage struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	State       string   `json:"state"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration"`
	Price       int64    `json:"price"`
	GroupSize   string   `json:"groupSize"`
	Difficulty  string   `json:"difficulty"`
	Season      string   `json:"season"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
}
