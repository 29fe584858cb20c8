package markets

import (
	"strings"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
	"github.com/nekruzvatanshoev/carval/pkg/carval/reference"
)

const exportLabel = "Preliminary export costs"

// ExportFees is the flat cost of de-registering and exporting out of
// country. Unknown countries use the US schedule.
func ExportFees(t *reference.Tables, country string) dal.ExportFees {
	s := t.Export(country)
	return dal.ExportFees{
		Country:       strings.ToUpper(country),
		DeReg:         s.DeReg,
		ExportCert:    s.ExportCert,
		Plates:        s.Plates,
		Admin:         s.Admin,
		Desc:          s.Desc,
		Total:         s.DeReg + s.ExportCert + s.Plates + s.Admin,
		Label:         exportLabel,
		IsPreliminary: true,
	}
}

// ImportFees is the cost of registering a vehicle with net value nvv in
// country. Registration tax is levied on the net value; electric vehicles
// are exempt where the schedule says so, or taxed at a reduced share of the
// rate where it sets an EV bonus rate instead. Import VAT applies to the net
// value and any EV purchase bonus is subtracted.
func ImportFees(t *reference.Tables, country string, nvv int, isEV bool) dal.ImportFees {
	s := t.Import(country)
	base := s.Inspection + s.RegCert + s.Plates + s.Admin

	var regTax int
	if s.RegTaxRate > 0 {
		switch {
		case isEV && s.EVExempt:
		case isEV && s.EVBonusRate > 0:
			regTax = numeric.RoundInt(float64(nvv) * s.RegTaxRate * s.EVBonusRate)
		default:
			regTax = numeric.RoundInt(float64(nvv) * s.RegTaxRate)
		}
	}
	importVAT := numeric.RoundInt(float64(nvv) * s.ImportVATRate)
	var bonus int
	if isEV {
		bonus = s.EVBonus
	}

	return dal.ImportFees{
		Country:       strings.ToUpper(country),
		Inspection:    s.Inspection,
		RegCert:       s.RegCert,
		Plates:        s.Plates,
		Admin:         s.Admin,
		RegTaxRate:    s.RegTaxRate,
		ImportVATRate: s.ImportVATRate,
		Desc:          s.Desc,
		BaseFees:      base,
		RegTax:        regTax,
		ImportVAT:     importVAT,
		EVBonus:       bonus,
		Total:         base + regTax + importVAT - bonus,
		IsPreliminary: true,
	}
}

// crossing is every fee paid to move a vehicle worth nvv net from one
// country to another. All cross-market views price moves through it.
func crossing(t *reference.Tables, from, to string, nvv int, isEV bool) (dal.ExportFees, dal.ImportFees) {
	return ExportFees(t, from), ImportFees(t, to, nvv, isEV)
}
