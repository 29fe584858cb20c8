package reference

import "github.com/nekruzvatanshoev/carval/pkg/carval/dal"

// Default returns a fresh copy of the built-in reference tables.
func Default() *Tables {
	t := &Tables{
		AgeCurve: map[int]float64{
			0: 1.0, 1: 0.82, 2: 0.72, 3: 0.65, 4: 0.58,
			5: 0.52, 6: 0.46, 7: 0.41, 8: 0.37, 9: 0.33, 10: 0.3,
		},
		// keyed on odometer / 10,000
		MileageCurve: map[int]float64{
			0: 1.0, 1: 0.97, 2: 0.94, 3: 0.91, 4: 0.88,
			5: 0.85, 6: 0.82, 7: 0.79, 8: 0.76, 9: 0.74,
			10: 0.72, 12: 0.68, 15: 0.62, 20: 0.52,
		},
		// dollars per 10,000 of deviation from market mileage, by age
		MileageAdjPer10k: map[int]float64{
			0: 1200, 1: 1100, 2: 1000, 3: 900, 4: 750,
			5: 650, 6: 550, 7: 500, 8: 400, 9: 350, 10: 250,
		},
		// keyed on age in months
		MonthlyDepreciation: map[int]float64{
			0: 0.018, 6: 0.015, 12: 0.012, 18: 0.01, 24: 0.009, 30: 0.008,
			36: 0.007, 48: 0.006, 60: 0.005, 72: 0.004, 84: 0.003, 96: 0.003,
			108: 0.002, 120: 0.002,
		},
		EquipmentResidual: map[int]float64{
			0: 0.75, 1: 0.6, 2: 0.5, 3: 0.42, 4: 0.35,
			5: 0.3, 6: 0.25, 7: 0.22, 8: 0.18, 9: 0.15, 10: 0.12,
		},
		ConditionPenalty: map[string]float64{
			string(dal.SeverityCritical): -0.08,
			string(dal.SeverityModerate): -0.04,
			string(dal.SeverityMinor):    -0.02,
		},
		AnnualMileage: map[string]int{
			"gas": 12000, "diesel": 15000, "hybrid": 13000, "phev": 11000, "bev": 10000,
		},
		EquipmentValues: map[string]int{
			"Bowers & Wilkins": 1800, "Harman Kardon": 1200, "Premium Audio": 1000, "Bang & Olufsen": 1500,
			"Autopilot": 2500, "Super Cruise": 2000, "Adaptive Cruise": 1200, "360 Camera": 800,
			"Head-Up Display": 1000, "Panoramic Sunroof": 1500, "Moonroof": 1000,
			"Ventilated Seats": 800, "Massage Seats": 1000, "Nappa Leather": 2000, "Leather Seats": 1200,
			"Tow Hitch": 800, "Roof Rails": 400, "Metallic Paint": 1000, "Pearl Paint": 1600,
			"Parking Assist": 600, "Wireless Charging": 200, "Apple CarPlay": 300, "Navigation": 800,
			"Air Suspension": 2000, "Remote Start": 400, "Heated Steering": 300, "Heated Seats": 500,
			"Backup Camera": 400, "Blind Spot Monitor": 400, "Power Liftgate": 600, "Keyless Entry": 500,
			"LED Matrix": 800, "Android Auto": 300, "Sentry Mode": 600, "OTA Updates": 400,
			"Pro Power Onboard": 800,
		},
		Prestige: map[string]float64{
			"Porsche": 1.35, "Mercedes": 1.18, "BMW": 1.15, "Audi": 1.12, "Lexus": 1.1,
			"Volvo": 1.08, "Tesla": 1.06, "Polestar": 1.05, "Jaguar": 1.04, "Land Rover": 1.06,
			"Volkswagen": 1.02, "Toyota": 1.02, "Mazda": 1.01, "Subaru": 1.0, "Hyundai": 0.98,
			"Kia": 0.96, "Skoda": 0.97, "Ford": 0.95, "Peugeot": 0.94,
			"Renault": 0.93, "Opel": 0.92, "Jeep": 0.98, "Chevrolet": 0.95, "GMC": 1.02,
			"Ram": 0.98, "Cadillac": 1.1, "Lincoln": 1.05, "Fiat": 0.9,
			"Nissan": 0.95, "Honda": 1.0, "Suzuki": 0.92, "MG": 0.88, "Genesis": 1.05, "Rivian": 1.08,
			"BYD": 0.9, "Lucid": 1.08,
			"Ferrari": 1.6, "Lamborghini": 1.55, "Maserati": 1.15, "Bentley": 1.45, "Rolls-Royce": 1.5,
		},
		Baselines: defaultBaselines(),
		Generic: ModelBaseline{
			BaseNewPrice: 400000,
			Motors:       map[string]int{},
			Fuels:        map[string]int{},
			Drives:       map[string]int{"FWD": 0, "AWD": 22000},
			Trans:        map[string]int{"manual": 0, "auto": 18000},
			Trims:        map[string]int{},
			Paint:        map[string]int{"solid": 0, "metallic": 10000},
			AvgMileage:   12000,
		},
		Segments: []Segment{
			{ID: "compact_suv", Label: "Compact SUV", Models: []SegmentModel{
				{"Toyota", "RAV4"}, {"Honda", "CR-V"}, {"Hyundai", "Tucson"}, {"Kia", "Sportage"}, {"Chevrolet", "Equinox"},
			}},
			{ID: "midsize_suv", Label: "Midsize SUV", Models: []SegmentModel{
				{"BMW", "X3"}, {"Mercedes", "GLC"}, {"Jeep", "Grand Cherokee"}, {"Subaru", "Outback"},
			}},
			{ID: "large_suv", Label: "Full-Size SUV", Models: []SegmentModel{
				{"Chevrolet", "Tahoe"}, {"Ford", "Expedition"}, {"Cadillac", "Escalade"},
			}},
			{ID: "compact_sedan", Label: "Compact Sedan", Models: []SegmentModel{
				{"Honda", "Civic"}, {"Toyota", "Corolla"}, {"Hyundai", "Elantra"},
			}},
			{ID: "compact_suv_ev", Label: "Compact SUV EV", Models: []SegmentModel{
				{"Tesla", "Model Y"}, {"Ford", "Mustang Mach-E"}, {"Hyundai", "Ioniq 5"}, {"Kia", "EV6"},
			}},
			{ID: "full_size_truck", Label: "Full-Size Pickup", Models: []SegmentModel{
				{"Ford", "F-150"}, {"Chevrolet", "Silverado"}, {"Ram", "1500"}, {"Toyota", "Tundra"},
			}},
			{ID: "compact_hatchback", Label: "Compact Hatchback", Models: []SegmentModel{
				{"Toyota", "Corolla"}, {"Honda", "Civic"},
			}},
			{ID: "small_car", Label: "Subcompact", Models: []SegmentModel{
				{"Hyundai", "Venue"}, {"Kia", "Soul"}, {"Nissan", "Kicks"},
			}},
		},
		Sources: map[string][]dal.Source{
			"US": {
				{ID: "autotrader", Name: "Autotrader", URL: "autotrader.com", Type: "B2C", Weight: 1.0},
				{ID: "cargurus", Name: "CarGurus", URL: "cargurus.com", Type: "C2C+B2C", Weight: 0.95},
				{ID: "carsdotcom", Name: "Cars.com", URL: "cars.com", Type: "B2C", Weight: 0.9},
				{ID: "carmax", Name: "CarMax", URL: "carmax.com", Type: "B2C", Weight: 0.85},
				{ID: "carvana", Name: "Carvana", URL: "carvana.com", Type: "B2C", Weight: 0.8},
			},
		},
		Regions: map[string]Region{
			"northeast": {Name: "Northeast", Short: "NE", Lat: 40.71, Lng: -74.01, Color: "#FF6B00", Country: "US",
				Coeff: map[string]float64{"gas": 0.98, "diesel": 0.97, "hybrid": 1.04, "phev": 1.06, "bev": 1.08}},
			"southeast": {Name: "Southeast", Short: "SE", Lat: 33.75, Lng: -84.39, Color: "#3b82f6", Country: "US",
				Coeff: map[string]float64{"gas": 1.02, "diesel": 1.0, "hybrid": 0.99, "phev": 0.98, "bev": 0.96}},
			"midwest": {Name: "Midwest", Short: "MW", Lat: 41.88, Lng: -87.63, Color: "#10b981", Country: "US",
				Coeff: map[string]float64{"gas": 1.01, "diesel": 1.03, "hybrid": 0.98, "phev": 0.96, "bev": 0.94}},
			"southwest": {Name: "Southwest", Short: "SW", Lat: 30.27, Lng: -97.74, Color: "#f59e0b", Country: "US",
				Coeff: map[string]float64{"gas": 1.03, "diesel": 1.04, "hybrid": 0.97, "phev": 0.95, "bev": 0.93}},
			"westcoast": {Name: "West Coast", Short: "West", Lat: 34.05, Lng: -118.24, Color: "#8b5cf6", Country: "US",
				Coeff: map[string]float64{"gas": 0.96, "diesel": 0.94, "hybrid": 1.06, "phev": 1.08, "bev": 1.12}},
		},
		RegionOrder: []string{"northeast", "southeast", "midwest", "southwest", "westcoast"},
		VAT: map[string]float64{
			"SE": 0.25, "NO": 0.25, "DE": 0.19, "DK": 0.25, "FR": 0.2,
			"NL": 0.21, "FI": 0.24, "AT": 0.2, "IT": 0.22, "ES": 0.21, "PL": 0.23, "BE": 0.21,
		},
		MarketFactors: map[string]map[string]float64{
			"Tesla Model Y":       {"US": 1.0, "NO": 1.14, "DE": 0.97, "DK": 0.89, "FI": 0.96, "FR": 0.95, "NL": 1.04, "AT": 0.96, "IT": 0.91, "ES": 0.89, "PL": 0.79, "BE": 0.97},
			"Tesla Model 3":       {"US": 1.0, "NO": 1.12, "DE": 0.96, "DK": 0.88, "FI": 0.95, "FR": 0.94, "NL": 1.02, "AT": 0.95, "IT": 0.9, "ES": 0.88, "PL": 0.78, "BE": 0.96},
			"BMW X3":              {"US": 1.0, "NO": 0.94, "DE": 0.88, "DK": 0.8, "FI": 0.93, "FR": 0.9, "NL": 0.92, "AT": 0.91, "IT": 0.93, "ES": 0.89, "PL": 0.76, "BE": 0.91},
			"Mercedes GLC":        {"US": 1.0, "NO": 0.95, "DE": 0.87, "DK": 0.79, "FI": 0.92, "FR": 0.91, "NL": 0.93, "AT": 0.9, "IT": 0.94, "ES": 0.9, "PL": 0.77, "BE": 0.92},
			"Toyota RAV4":         {"US": 1.0, "NO": 1.04, "DE": 0.92, "DK": 0.86, "FI": 1.01, "FR": 0.88, "NL": 0.9, "AT": 0.91, "IT": 0.85, "ES": 0.84, "PL": 0.74, "BE": 0.89},
			"Honda CR-V":          {"US": 1.0, "NO": 1.02, "DE": 0.94, "DK": 0.85, "FI": 0.97, "FR": 0.88, "NL": 0.91, "AT": 0.92, "IT": 0.86, "ES": 0.84, "PL": 0.78, "BE": 0.9},
			"Kia EV6":             {"US": 1.0, "NO": 1.14, "DE": 0.94, "DK": 0.86, "FI": 0.93, "FR": 0.91, "NL": 1.04, "AT": 0.93, "IT": 0.87, "ES": 0.85, "PL": 0.75, "BE": 0.95},
			"Hyundai Tucson":      {"US": 1.0, "NO": 1.01, "DE": 0.93, "DK": 0.84, "FI": 0.96, "FR": 0.87, "NL": 0.9, "AT": 0.91, "IT": 0.85, "ES": 0.83, "PL": 0.77, "BE": 0.89},
			"Ford F-150":          {"US": 1.0, "NO": 0.7, "DE": 0.65, "DK": 0.6, "FI": 0.72, "FR": 0.6, "NL": 0.62, "AT": 0.63, "IT": 0.58, "ES": 0.6, "PL": 0.55, "BE": 0.62},
			"Chevrolet Silverado": {"US": 1.0, "NO": 0.65, "DE": 0.6, "DK": 0.55, "FI": 0.68, "FR": 0.55, "NL": 0.58, "AT": 0.58, "IT": 0.55, "ES": 0.55, "PL": 0.5, "BE": 0.58},
		},
		ExportFees: map[string]ExportSchedule{
			"US": {DeReg: 50, ExportCert: 200, Plates: 50, Admin: 300, Desc: "Title transfer + export documentation"},
			"SE": {DeReg: 350, ExportCert: 400, Plates: 150, Admin: 800, Desc: "Avregistrering + exportcertifikat"},
			"NO": {DeReg: 500, ExportCert: 450, Plates: 200, Admin: 900, Desc: "Avregistrering + export documents"},
			"DE": {DeReg: 15, ExportCert: 50, Plates: 30, Admin: 200, Desc: "Abmeldung + Ausfuhrkennzeichen"},
			"DK": {DeReg: 300, ExportCert: 350, Plates: 200, Admin: 700, Desc: "Afregistrering + export docs"},
			"FI": {DeReg: 300, ExportCert: 350, Plates: 150, Admin: 600, Desc: "De-registration + export docs"},
			"FR": {DeReg: 200, ExportCert: 300, Plates: 100, Admin: 500, Desc: "Radiation + certificat de cession"},
			"NL": {DeReg: 100, ExportCert: 150, Plates: 50, Admin: 400, Desc: "Uitschrijving RDW"},
			"AT": {DeReg: 200, ExportCert: 250, Plates: 100, Admin: 500, Desc: "Abmeldung + Ausfuhrpapiere"},
			"IT": {DeReg: 300, ExportCert: 400, Plates: 150, Admin: 700, Desc: "Radiazione PRA"},
			"ES": {DeReg: 200, ExportCert: 350, Plates: 100, Admin: 600, Desc: "Baja definitiva"},
			"PL": {DeReg: 150, ExportCert: 200, Plates: 80, Admin: 400, Desc: "Wyrejestrowanie"},
			"BE": {DeReg: 150, ExportCert: 200, Plates: 80, Admin: 400, Desc: "Radiation DIV"},
		},
		ImportFees: map[string]ImportSchedule{
			"US": {Inspection: 500, RegCert: 200, Plates: 50, Admin: 300, EVExempt: true, Desc: "State registration + inspection"},
			"SE": {Inspection: 4500, RegCert: 1200, Plates: 300, Admin: 2500, EVExempt: true, ImportVATRate: 0.25, Desc: "State registration"},
			"NO": {Inspection: 3000, RegCert: 1500, Plates: 400, Admin: 2200, EVExempt: true, ImportVATRate: 0.25, Desc: "EU-kontroll + registration"},
			"DE": {Inspection: 120, RegCert: 30, Plates: 60, Admin: 200, EVExempt: true, EVBonus: 50400, ImportVATRate: 0.19, Desc: "TÜV + Zulassung"},
			"DK": {Inspection: 600, RegCert: 400, Plates: 200, Admin: 1500, RegTaxRate: 0.85, EVBonusRate: 0.4, ImportVATRate: 0.25, Desc: "Syn + registreringsafgift (85%)"},
			"FI": {Inspection: 500, RegCert: 400, Plates: 200, Admin: 1200, RegTaxRate: 0.05, EVExempt: true, ImportVATRate: 0.24, Desc: "Inspection + autovero"},
			"FR": {Inspection: 120, RegCert: 200, Plates: 50, Admin: 500, EVExempt: true, EVBonus: 56000, ImportVATRate: 0.2, Desc: "Contrôle technique + carte grise"},
			"NL": {Inspection: 100, RegCert: 120, Plates: 50, Admin: 350, RegTaxRate: 0.42, EVExempt: true, ImportVATRate: 0.21, Desc: "APK + RDW + BPM"},
			"AT": {Inspection: 120, RegCert: 200, Plates: 80, Admin: 400, RegTaxRate: 0.02, EVExempt: true, EVBonus: 33600, ImportVATRate: 0.2, Desc: "§57a + NoVA + Zulassung"},
			"IT": {Inspection: 200, RegCert: 350, Plates: 150, Admin: 600, EVExempt: true, EVBonus: 33600, ImportVATRate: 0.22, Desc: "Revisione + PRA"},
			"ES": {Inspection: 150, RegCert: 200, Plates: 100, Admin: 500, EVExempt: true, EVBonus: 50400, ImportVATRate: 0.21, Desc: "ITV + matriculación"},
			"PL": {Inspection: 100, RegCert: 150, Plates: 80, Admin: 300, EVExempt: true, ImportVATRate: 0.23, Desc: "Przegląd + rejestracja"},
			"BE": {Inspection: 100, RegCert: 150, Plates: 80, Admin: 400, RegTaxRate: 0.03, EVExempt: true, ImportVATRate: 0.21, Desc: "Contrôle technique + DIV"},
		},
		Markets: []string{"US", "SE", "NO", "DE", "DK", "FI", "FR", "NL", "AT", "IT", "ES", "PL", "BE"},
	}
	t.normalize()
	return t
}

type opts = map[string]int

func defaultBaselines() map[string]ModelBaseline {
	return map[string]ModelBaseline{
		"Toyota RAV4": {BaseNewPrice: 35000, Segment: "compact_suv",
			Motors: opts{"2.5L": 0, "2.5L Hybrid": 3000, "2.5L PHEV": 8000}, Fuels: opts{"gas": 0, "hybrid": 3000, "phev": 8000},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"auto": 0}, Trims: opts{"LE": 0, "XLE": 2500, "Limited": 7000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Tesla Model Y": {BaseNewPrice: 44990, Segment: "compact_suv_ev",
			Motors: opts{"Standard": 0, "Long Range": 5000, "Performance": 10000}, Fuels: opts{"bev": 0},
			Drives: opts{"RWD": 0, "AWD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"Standard": 0, "Long Range": 5000, "Performance": 10000},
			Paint: opts{"solid": 0, "metallic": 1000}, AvgMileage: 10000},
		"Tesla Model 3": {BaseNewPrice: 38990, Segment: "compact_sedan_ev",
			Motors: opts{"Standard": 0, "Long Range": 5000, "Performance": 12000}, Fuels: opts{"bev": 0},
			Drives: opts{"RWD": 0, "AWD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"Standard": 0, "Long Range": 5000, "Performance": 12000},
			Paint: opts{"solid": 0, "metallic": 1000}, AvgMileage: 10000},
		"Ford F-150": {BaseNewPrice: 36000, Segment: "full_size_truck",
			Motors: opts{"2.7L V6": 0, "3.5L EcoBoost": 3000, "5.0L V8": 4000}, Fuels: opts{"gas": 0, "hybrid": 6000},
			Drives: opts{"RWD": 0, "4WD": 4000}, Trans: opts{"auto": 0}, Trims: opts{"XL": 0, "XLT": 5000, "Lariat": 12000, "Platinum": 22000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 14000},
		"Honda CR-V": {BaseNewPrice: 32000, Segment: "compact_suv",
			Motors: opts{"1.5T": 0, "2.0L Hybrid": 3500}, Fuels: opts{"gas": 0, "hybrid": 3500},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"CVT": 0}, Trims: opts{"EX": 0, "EX-L": 3000, "Sport Touring": 5000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Toyota Camry": {BaseNewPrice: 29000, Segment: "midsize_sedan",
			Motors: opts{"2.5L": 0, "2.5L Hybrid": 3000}, Fuels: opts{"gas": 0, "hybrid": 3000},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"auto": 0}, Trims: opts{"LE": 0, "SE": 1500, "XSE": 4000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Honda Civic": {BaseNewPrice: 25000, Segment: "compact_sedan",
			Motors: opts{"2.0L": 0, "1.5T": 2000}, Fuels: opts{"gas": 0},
			Drives: opts{"FWD": 0}, Trans: opts{"CVT": 0}, Trims: opts{"LX": 0, "Sport": 2000, "Touring": 5000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Hyundai Tucson": {BaseNewPrice: 30000, Segment: "compact_suv",
			Motors: opts{"2.5L": 0, "1.6T Hybrid": 3000}, Fuels: opts{"gas": 0, "hybrid": 3000, "phev": 7000},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"auto": 0}, Trims: opts{"SE": 0, "SEL": 2500, "Limited": 5000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"BMW X3": {BaseNewPrice: 48000, Segment: "midsize_suv",
			Motors: opts{"sDrive30i": 0, "xDrive30i": 2000, "M40i": 10000}, Fuels: opts{"gas": 0, "phev": 6000},
			Drives: opts{"RWD": 0, "AWD": 2000}, Trans: opts{"auto": 0}, Trims: opts{"": 0, "M Sport": 4000},
			Paint: opts{"solid": 0, "metallic": 1000}, AvgMileage: 11000},
		"Mercedes GLC": {BaseNewPrice: 47000, Segment: "midsize_suv",
			Motors: opts{"GLC 300": 0, "GLC 300e": 6000}, Fuels: opts{"gas": 0, "phev": 6000},
			Drives: opts{"RWD": 0, "4MATIC": 2500}, Trans: opts{"auto": 0}, Trims: opts{"": 0, "AMG Line": 3000},
			Paint: opts{"solid": 0, "metallic": 1000}, AvgMileage: 11000},
		"Ford Mustang Mach-E": {BaseNewPrice: 43000, Segment: "compact_suv_ev",
			Motors: opts{"Standard": 0, "Extended Range": 5000, "GT": 15000}, Fuels: opts{"bev": 0},
			Drives: opts{"RWD": 0, "AWD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"Select": 0, "Premium": 4000, "GT": 15000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 10000},
		"Chevrolet Silverado": {BaseNewPrice: 37000, Segment: "full_size_truck",
			Motors: opts{"2.7L Turbo": 0, "5.3L V8": 2000, "3.0L Duramax": 4000}, Fuels: opts{"gas": 0, "diesel": 4000},
			Drives: opts{"RWD": 0, "4WD": 4000}, Trans: opts{"auto": 0}, Trims: opts{"WT": 0, "LT": 5000, "LTZ": 12000, "High Country": 18000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 14000},
		"Jeep Grand Cherokee": {BaseNewPrice: 42000, Segment: "midsize_suv",
			Motors: opts{"3.6L V6": 0, "2.0T 4xe": 6000}, Fuels: opts{"gas": 0, "phev": 6000},
			Drives: opts{"RWD": 0, "4WD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"Laredo": 0, "Limited": 6000, "Summit": 14000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Subaru Outback": {BaseNewPrice: 33000, Segment: "midsize_wagon",
			Motors: opts{"2.5L": 0, "2.4T": 5000}, Fuels: opts{"gas": 0},
			Drives: opts{"AWD": 0}, Trans: opts{"CVT": 0}, Trims: opts{"Base": 0, "Premium": 2500, "Limited": 5000, "Wilderness": 4500},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Hyundai Ioniq 5": {BaseNewPrice: 42000, Segment: "compact_suv_ev",
			Motors: opts{"Standard": 0, "Long Range": 4000}, Fuels: opts{"bev": 0},
			Drives: opts{"RWD": 0, "AWD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"SE": 0, "SEL": 3000, "Limited": 6000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 10000},
		"Kia EV6": {BaseNewPrice: 43500, Segment: "compact_suv_ev",
			Motors: opts{"Standard": 0, "Long Range": 4000, "GT": 20000}, Fuels: opts{"bev": 0},
			Drives: opts{"RWD": 0, "AWD": 3000}, Trans: opts{"auto": 0}, Trims: opts{"Wind": 0, "GT-Line": 4000, "GT": 20000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 10000},
		"Toyota Corolla": {BaseNewPrice: 23000, Segment: "compact_hatchback",
			Motors: opts{"2.0L": 0, "1.8L HEV": 2000}, Fuels: opts{"gas": 0, "hybrid": 2000},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"CVT": 0}, Trims: opts{"LE": 0, "SE": 1500, "XSE": 3000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Chevrolet Equinox": {BaseNewPrice: 28000, Segment: "compact_suv",
			Motors: opts{"1.5T": 0}, Fuels: opts{"gas": 0},
			Drives: opts{"FWD": 0, "AWD": 1500}, Trans: opts{"auto": 0}, Trims: opts{"LS": 0, "LT": 2500, "RS": 4000, "Premier": 6000},
			Paint: opts{"solid": 0, "metallic": 500}, AvgMileage: 12000},
		"Rivian R1S": {BaseNewPrice: 78000, Segment: "large_suv_ev",
			Motors: opts{"Dual Motor": 0, "Quad Motor": 12000}, Fuels: opts{"bev": 0},
			Drives: opts{"AWD": 0}, Trans: opts{"auto": 0}, Trims: opts{"Adventure": 0, "Launch Edition": 8000},
			Paint: opts{"solid": 0, "metallic": 1500}, AvgMileage: 10000},
	}
}
