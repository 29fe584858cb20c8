package dal

// Disclaimer accompanies every cross-border fee figure.
const Disclaimer = "All costs are preliminary and subject to changes"

// RegionValue is the vehicle's value in one US region.
type RegionValue struct {
	Name        string  `json:"name"`
	Short       string  `json:"short"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Color       string  `json:"color"`
	Country     string  `json:"country"`
	Value       int     `json:"value"`
	Coeff       float64 `json:"coeff"`
	IsHome      bool    `json:"isHome"`
	Diff        int     `json:"diff"`
	DiffPercent int     `json:"diffPercent"`
}

// RegionalResult is the value table across all US regions.
type RegionalResult struct {
	HomeRegion string                 `json:"homeRegion"`
	HomeValue  int                    `json:"homeValue"`
	Regions    map[string]RegionValue `json:"regions"`
	Order      []string               `json:"order"`
}

// NetValueResult splits the gross value into net value and VAT.
type NetValueResult struct {
	NetValue   int     `json:"nvv"`
	GrossValue int     `json:"grossValue"`
	VATRate    float64 `json:"vatRate"`
	VATAmount  int     `json:"vatAmount"`
}

// ExportFees is the preliminary cost of exporting out of a country.
type ExportFees struct {
	Country       string `json:"country"`
	DeReg         int    `json:"deReg"`
	ExportCert    int    `json:"exportCert"`
	Plates        int    `json:"plates"`
	Admin         int    `json:"admin"`
	Desc          string `json:"desc"`
	Total         int    `json:"total"`
	Label         string `json:"label"`
	IsPreliminary bool   `json:"isPreliminary"`
}

// ImportFees is the preliminary cost of registering an import.
type ImportFees struct {
	Country       string  `json:"country"`
	Inspection    int     `json:"inspection"`
	RegCert       int     `json:"regCert"`
	Plates        int     `json:"plates"`
	Admin         int     `json:"admin"`
	RegTaxRate    float64 `json:"regTaxRate"`
	ImportVATRate float64 `json:"importVATRate"`
	Desc          string  `json:"desc"`
	BaseFees      int     `json:"baseFees"`
	RegTax        int     `json:"regTax"`
	ImportVAT     int     `json:"importVAT"`
	EVBonus       int     `json:"evBonus"`
	Total         int     `json:"total"`
	IsPreliminary bool    `json:"isPreliminary"`
}

// SpeculativeValue is the estimated value of the vehicle on another market.
type SpeculativeValue struct {
	HomeValue        int        `json:"homeValue"`
	HomeNVV          int        `json:"homeNVV"`
	TargetMarket     string     `json:"targetMarket"`
	ModelFactor      float64    `json:"modelFactor"`
	TargetVAT        float64    `json:"targetVAT"`
	SpeculativeGross int        `json:"speculativeGross"`
	Diff             int        `json:"diff"`
	DiffPercent      int        `json:"diffPercent"`
	ExportFees       ExportFees `json:"exportFees"`
	ImportFees       ImportFees `json:"importFees"`
	TotalFees        int        `json:"totalFees"`
	NetDiff          int        `json:"netDiff"`
	IsModelSpecific  bool       `json:"isModelSpecific"`
	Confidence       int        `json:"confidence"`
	IsPreliminary    bool       `json:"isPreliminary"`
}

// SellOpportunity is one foreign market ranked for selling.
type SellOpportunity struct {
	Country          string `json:"country"`
	SpeculativeValue int    `json:"speculativeValue"`
	ExportFees       int    `json:"exportFees"`
	ImportFees       int    `json:"importFees"`
	TotalFees        int    `json:"totalFees"`
	NetVsHome        int    `json:"netVsHome"`
	NetVsHomePercent int    `json:"netVsHomePercent"`
	IsOpportunity    bool   `json:"isOpportunity"`
	IsPreliminary    bool   `json:"isPreliminary"`
}

// SellMarketResult ranks foreign markets by net benefit of selling there.
type SellMarketResult struct {
	HomeValue     int               `json:"homeValue"`
	HomeMarket    string            `json:"homeMarket"`
	Results       []SellOpportunity `json:"results"`
	BestMarket    *SellOpportunity  `json:"bestMarket"`
	Opportunities []SellOpportunity `json:"opportunities"`
	Disclaimer    string            `json:"disclaimer"`
}

// BuyOpportunity is one foreign market ranked for buying and importing.
type BuyOpportunity struct {
	Country        string `json:"country"`
	ForeignPrice   int    `json:"foreignPrice"`
	ForeignNVV     int    `json:"foreignNVV"`
	ExportFees     int    `json:"exportFees"`
	ImportFees     int    `json:"importFees"`
	TotalCost      int    `json:"totalCost"`
	Savings        int    `json:"savings"`
	SavingsPercent int    `json:"savingsPercent"`
	IsOpportunity  bool   `json:"isOpportunity"`
	IsPreliminary  bool   `json:"isPreliminary"`
}

// BuyMarketResult ranks foreign markets by landed-cost savings.
type BuyMarketResult struct {
	HomeValue     int              `json:"homeValue"`
	HomeMarket    string           `json:"homeMarket"`
	Results       []BuyOpportunity `json:"results"`
	BestBuy       *BuyOpportunity  `json:"bestBuy"`
	Opportunities []BuyOpportunity `json:"opportunities"`
	Disclaimer    string           `json:"disclaimer"`
}

// MarketSide is one end of a market comparison.
type MarketSide struct {
	Market string `json:"market"`
	Value  int    `json:"value"`
	NVV    int    `json:"nvv,omitempty"`
}

// MarketComparison moves the vehicle from one market to another.
type MarketComparison struct {
	From          MarketSide `json:"from"`
	To            MarketSide `json:"to"`
	ExportFees    ExportFees `json:"exportFees"`
	ImportFees    ImportFees `json:"importFees"`
	TotalFees     int        `json:"totalFees"`
	NetDiff       int        `json:"netDiff"`
	IsPreliminary bool       `json:"isPreliminary"`
	Disclaimer    string     `json:"disclaimer"`
}
