package dal

// Tier ranks how closely a comparable listing matches the subject vehicle.
type Tier int

const (
	TierExact   Tier = 1 // same model and year
	TierNear    Tier = 2 // adjacent model-year
	TierSegment Tier = 3 // cross-brand segment comparable
)

// Source identifies a market data source and how much it is trusted.
type Source struct {
	ID     string  `json:"id" mapstructure:"id"`
	Name   string  `json:"name" mapstructure:"name"`
	URL    string  `json:"url" mapstructure:"url"`
	Type   string  `json:"type,omitempty" mapstructure:"type"`
	Weight float64 `json:"weight" mapstructure:"weight"`
}

// Listing is a synthetic comparable. Listings are generated per call and
// never persisted.
type Listing struct {
	Source      Source  `json:"source"`
	Tier        Tier    `json:"tier"`
	MatchScore  float64 `json:"matchScore"`
	Price       int     `json:"price"`
	Mileage     int     `json:"mileage"`
	Year        int     `json:"year"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	IsDealer    bool    `json:"isDealer"`
	Region      string  `json:"region"`
	DaysListed  int     `json:"daysListed"`
	URL         string  `json:"url"`
	PrestigeAdj float64 `json:"prestigeAdj,omitempty"`
}
