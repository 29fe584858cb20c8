package markets

import (
	"sort"
	"strings"

	"github.com/nekruzvatanshoev/carval/pkg/carval/dal"
	"github.com/nekruzvatanshoev/carval/pkg/carval/numeric"
)

// Speculative estimates what the vehicle would fetch on target and what is
// left after export and import fees.
func Speculative(e Valuer, v dal.Vehicle, target string) dal.SpeculativeValue {
	return newHome(e, v).speculative(strings.ToUpper(target))
}

func (h home) speculative(target string) dal.SpeculativeValue {
	t := h.tables
	homeFactor, targetFactor := 1.0, defaultTargetFactor
	factors, specific := t.MarketFactor(h.vehicle.Brand, h.vehicle.Model)
	if specific {
		if f, ok := factors[h.country]; ok && f > 0 {
			homeFactor = f
		}
		if f, ok := factors[target]; ok && f > 0 {
			targetFactor = f
		}
	}
	relative := targetFactor / homeFactor
	vat := targetVAT(t, target)
	gross := int(numeric.RoundTo(float64(h.nvv)*(1+vat)*relative, 1000))

	exp, imp := crossing(t, h.country, target, h.nvv, h.isEV)
	diff := gross - h.gross
	confidence := genericConfidence
	if specific {
		confidence = modelConfidence
	}

	return dal.SpeculativeValue{
		HomeValue:        h.gross,
		HomeNVV:          h.nvv,
		TargetMarket:     target,
		ModelFactor:      numeric.RoundPlaces(relative, 4),
		TargetVAT:        vat,
		SpeculativeGross: gross,
		Diff:             diff,
		DiffPercent:      percentOf(diff, h.gross),
		ExportFees:       exp,
		ImportFees:       imp,
		TotalFees:        exp.Total + imp.Total,
		NetDiff:          diff - exp.Total - imp.Total,
		IsModelSpecific:  specific,
		Confidence:       confidence,
		IsPreliminary:    true,
	}
}

// BestSellMarket ranks every foreign market by what selling there nets
// compared with selling at home, best first.
func BestSellMarket(e Valuer, v dal.Vehicle) dal.SellMarketResult {
	h := newHome(e, v)

	results := make([]dal.SellOpportunity, 0, len(h.tables.Markets))
	for _, m := range foreignMarkets(h.tables, h.country) {
		spec := h.speculative(m)
		results = append(results, dal.SellOpportunity{
			Country:          m,
			SpeculativeValue: spec.SpeculativeGross,
			ExportFees:       spec.ExportFees.Total,
			ImportFees:       spec.ImportFees.Total,
			TotalFees:        spec.TotalFees,
			NetVsHome:        spec.NetDiff,
			NetVsHomePercent: percentOf(spec.NetDiff, h.gross),
			IsOpportunity:    spec.NetDiff > 0,
			IsPreliminary:    true,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].NetVsHome > results[j].NetVsHome })

	res := dal.SellMarketResult{
		HomeValue:     h.gross,
		HomeMarket:    h.country,
		Results:       results,
		Opportunities: []dal.SellOpportunity{},
		Disclaimer:    dal.Disclaimer,
	}
	if len(results) > 0 {
		best := results[0]
		res.BestMarket = &best
	}
	for _, r := range results {
		if r.IsOpportunity {
			res.Opportunities = append(res.Opportunities, r)
		}
	}
	return res
}

// BestBuyMarket ranks every foreign market by how much cheaper it is to buy
// the same vehicle there and import it, best first.
func BestBuyMarket(e Valuer, v dal.Vehicle) dal.BuyMarketResult {
	h := newHome(e, v)
	t := h.tables

	results := make([]dal.BuyOpportunity, 0, len(t.Markets))
	for _, m := range foreignMarkets(t, h.country) {
		price := h.speculative(m).SpeculativeGross
		nvv := netOf(price, targetVAT(t, m))
		exp, imp := crossing(t, m, h.country, nvv, h.isEV)
		cost := nvv + exp.Total + imp.Total
		savings := h.gross - cost
		results = append(results, dal.BuyOpportunity{
			Country:        m,
			ForeignPrice:   price,
			ForeignNVV:     nvv,
			ExportFees:     exp.Total,
			ImportFees:     imp.Total,
			TotalCost:      cost,
			Savings:        savings,
			SavingsPercent: percentOf(savings, h.gross),
			IsOpportunity:  savings > 0,
			IsPreliminary:  true,
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Savings > results[j].Savings })

	res := dal.BuyMarketResult{
		HomeValue:     h.gross,
		HomeMarket:    h.country,
		Results:       results,
		Opportunities: []dal.BuyOpportunity{},
		Disclaimer:    dal.Disclaimer,
	}
	if len(results) > 0 {
		best := results[0]
		res.BestBuy = &best
	}
	for _, r := range results {
		if r.IsOpportunity {
			res.Opportunities = append(res.Opportunities, r)
		}
	}
	return res
}

// side prices the vehicle on one market. The home market is the valuation
// itself; any other market is its speculative value, netted at that
// market's VAT.
func (h home) side(market string) dal.MarketSide {
	if market == h.country {
		return dal.MarketSide{Market: market, Value: h.gross, NVV: h.nvv}
	}
	gross := h.speculative(market).SpeculativeGross
	return dal.MarketSide{Market: market, Value: gross, NVV: netOf(gross, targetVAT(h.tables, market))}
}

// Compare moves the vehicle from one market to another and reports the
// value difference net of fees. Fees match those used by BestSellMarket and
// BestBuyMarket for the same pair of countries.
func Compare(e Valuer, v dal.Vehicle, from, to string) dal.MarketComparison {
	h := newHome(e, v)
	from, to = strings.ToUpper(from), strings.ToUpper(to)
	if from == "" {
		from = h.country
	}
	if to == "" {
		to = h.country
	}

	src := h.side(from)
	dst := h.side(to)
	exp, imp := crossing(h.tables, from, to, src.NVV, h.isEV)
	dst.NVV = 0

	return dal.MarketComparison{
		From:          src,
		To:            dst,
		ExportFees:    exp,
		ImportFees:    imp,
		TotalFees:     exp.Total + imp.Total,
		NetDiff:       dst.Value - src.Value - exp.Total - imp.Total,
		IsPreliminary: true,
		Disclaimer:    dal.Disclaimer,
	}
}
