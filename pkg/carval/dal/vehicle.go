package dal

// Severity grades a condition deviation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityModerate Severity = "moderate"
	SeverityMinor    Severity = "minor"
)

// Deviation is one reported condition defect.
type Deviation struct {
	Description string   `json:"desc,omitempty"`
	Severity    Severity `json:"sev"`
}

// Vehicle defines the subject of a valuation. The engine never mutates it.
type Vehicle struct {
	ID           string `json:"id,omitempty"`
	Brand        string `json:"brand"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	Fuel         string `json:"fuel"`
	Horsepower   int    `json:"hp,omitempty"`
	Mileage      string `json:"mi,omitempty"`
	Drive        string `json:"drive,omitempty"`
	Body         string `json:"body,omitempty"`
	Transmission string `json:"trans,omitempty"`
	Color        string `json:"color,omitempty"`

	MotorVariant string `json:"motorVariant,omitempty"`
	BaseMotor    string `json:"baseMotor,omitempty"`
	FuelType     string `json:"fuelType,omitempty"`
	BaseFuel     string `json:"baseFuel,omitempty"`
	DriveVariant string `json:"driveVariant,omitempty"`
	TransVariant string `json:"transVariant,omitempty"`
	BaseTrans    string `json:"baseTrans,omitempty"`
	TrimLevel    string `json:"trimLevel,omitempty"`
	BaseTrim     string `json:"baseTrim,omitempty"`
	PaintType    string `json:"paintType,omitempty"`

	ExtraEquipment   []string    `json:"extraEquip,omitempty"`
	MissingEquipment []string    `json:"missingEquip,omitempty"`
	Deviations       []Deviation `json:"devs,omitempty"`

	RegRegion  string `json:"regRegion,omitempty"`
	RegCountry string `json:"regCountry,omitempty"`

	// Running costs, all optional. Zero means "not recorded".
	InsurancePerMonth float64 `json:"insurance,omitempty"`
	AnnualTax         float64 `json:"tax,omitempty"`
	ActualFuelCost    float64 `json:"fuelActual,omitempty"`
}

// Market returns the registration country, defaulting to US.
func (v Vehicle) Market() string {
	if v.RegCountry == "" {
		return "US"
	}
	return v.RegCountry
}

// Region returns the registration region, defaulting to the west coast.
func (v Vehicle) Region() string {
	if v.RegRegion == "" {
		return "westcoast"
	}
	return v.RegRegion
}
