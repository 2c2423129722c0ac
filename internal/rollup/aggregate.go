package rollup

import "github.com/shopspring/decimal"

// Totals сумма итогов нескольких заказов
type Totals struct {
	Orders      int             `json:"orders"`
	SubtotalUsd decimal.Decimal `json:"subtotal_usd"`
	EarningsUsd decimal.Decimal `json:"earnings_usd"`
	EarningsVnd decimal.Decimal `json:"earnings_vnd"`
	FeesUsd     decimal.Decimal `json:"fees_usd"`
	FeesVnd     decimal.Decimal `json:"fees_vnd"`
	BonusUsd    decimal.Decimal `json:"bonus_usd"`
	BonusVnd    decimal.Decimal `json:"bonus_vnd"`
	ProfitUsd   decimal.Decimal `json:"profit_usd"`
	ProfitVnd   decimal.Decimal `json:"profit_vnd"`
}

// Aggregate суммирует уже рассчитанные итоги заказов
func Aggregate(results []*Result) Totals {
	var t Totals
	for _, r := range results {
		if r == nil {
			continue
		}
		t.Orders++
		t.SubtotalUsd = t.SubtotalUsd.Add(r.SubtotalUsd)
		t.EarningsUsd = t.EarningsUsd.Add(r.OrderEarningsUsd)
		t.EarningsVnd = t.EarningsVnd.Add(r.OrderEarningsVnd)
		t.FeesUsd = t.FeesUsd.Add(r.TotalFeesUsd)
		t.FeesVnd = t.FeesVnd.Add(r.TotalFeesVnd)
		t.BonusUsd = t.BonusUsd.Add(r.TotalBonusUsd)
		t.BonusVnd = t.BonusVnd.Add(r.TotalBonusVnd)
		t.ProfitUsd = t.ProfitUsd.Add(r.ProfitUsd)
		t.ProfitVnd = t.ProfitVnd.Add(r.ProfitVnd)
	}
	return t
}
