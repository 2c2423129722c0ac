// Package rollup рассчитывает финансовые итоги заказа в USD и VND.
//
// Все производные суммы вычисляются из USD-полей заказа и курсов обмена.
// VND никогда не является входным значением: каждая сумма в VND равна
// сумме в USD, умноженной на применимый курс.
package rollup

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FeeKind тип строки расходов
type FeeKind string

const (
	FeeKindShipping FeeKind = "shipping"
	FeeKindRefund   FeeKind = "refund"
	FeeKindOther    FeeKind = "other"
)

// Valid проверяет, что тип расхода известен
func (k FeeKind) Valid() bool {
	switch k {
	case FeeKindShipping, FeeKindRefund, FeeKindOther:
		return true
	}
	return false
}

// BonusKind тип строки бонуса
type BonusKind string

const (
	BonusKindOther BonusKind = "other"
)

// Valid проверяет, что тип бонуса известен
func (k BonusKind) Valid() bool {
	return k == BonusKindOther
}

// LineType отличает расходы от бонусов в разбивке
type LineType string

const (
	LineTypeFee   LineType = "fee"
	LineTypeBonus LineType = "bonus"
)

// FeeLine строка расходов (доставка, возврат, прочее)
type FeeLine struct {
	Kind                 FeeKind          `json:"kind"`
	AmountUsd            decimal.Decimal  `json:"amount_usd"`
	ExchangeRateOverride *decimal.Decimal `json:"exchange_rate_override,omitempty"`
}

// BonusLine строка бонуса
type BonusLine struct {
	Kind                 BonusKind        `json:"kind"`
	AmountUsd            decimal.Decimal  `json:"amount_usd"`
	ExchangeRateOverride *decimal.Decimal `json:"exchange_rate_override,omitempty"`
}

// OrderFinancials входные данные расчета
type OrderFinancials struct {
	ItemTotalUsd          decimal.Decimal `json:"item_total_usd"`
	DiscountRatePct       decimal.Decimal `json:"discount_rate_pct"`
	BuyerPaidUsd          decimal.Decimal `json:"buyer_paid_usd"`
	OrderEarningsUsd      decimal.Decimal `json:"order_earnings_usd"`
	ExchangeRateVndPerUsd decimal.Decimal `json:"exchange_rate_vnd_per_usd"`
	FeeLines              []FeeLine       `json:"fee_lines"`
	BonusLines            []BonusLine     `json:"bonus_lines"`
}

// Line строка разбивки для отображения
type Line struct {
	Type          LineType        `json:"type"`
	Kind          string          `json:"kind"`
	AmountUsd     decimal.Decimal `json:"amount_usd"`
	AmountVnd     decimal.Decimal `json:"amount_vnd"`
	EffectiveRate decimal.Decimal `json:"effective_rate"`
}

// Result итоги расчета
type Result struct {
	DiscountAmountUsd decimal.Decimal `json:"discount_amount_usd"`
	SubtotalUsd       decimal.Decimal `json:"subtotal_usd"`
	OrderEarningsUsd  decimal.Decimal `json:"order_earnings_usd"`
	OrderEarningsVnd  decimal.Decimal `json:"order_earnings_vnd"`
	TotalFeesUsd      decimal.Decimal `json:"total_fees_usd"`
	TotalFeesVnd      decimal.Decimal `json:"total_fees_vnd"`
	TotalBonusUsd     decimal.Decimal `json:"total_bonus_usd"`
	TotalBonusVnd     decimal.Decimal `json:"total_bonus_vnd"`
	ProfitUsd         decimal.Decimal `json:"profit_usd"`
	ProfitVnd         decimal.Decimal `json:"profit_vnd"`
	Lines             []Line          `json:"lines"`
}

// ValidationError описывает первое нарушенное ограничение входных данных
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

var hundred = decimal.NewFromInt(100)

// Compute вычисляет итоги заказа.
// При ошибке валидации возвращает *ValidationError и никаких частичных результатов.
func Compute(f OrderFinancials) (*Result, error) {
	if err := Validate(f); err != nil {
		return nil, err
	}

	rate := f.ExchangeRateVndPerUsd

	res := &Result{
		Lines: make([]Line, 0, len(f.FeeLines)+len(f.BonusLines)),
	}
	res.DiscountAmountUsd = f.ItemTotalUsd.Mul(f.DiscountRatePct).Div(hundred)
	res.SubtotalUsd = f.ItemTotalUsd.Sub(res.DiscountAmountUsd)
	res.OrderEarningsUsd = f.OrderEarningsUsd
	res.OrderEarningsVnd = f.OrderEarningsUsd.Mul(rate)

	for _, fee := range f.FeeLines {
		line := convert(LineTypeFee, string(fee.Kind), fee.AmountUsd, fee.ExchangeRateOverride, rate)
		res.TotalFeesUsd = res.TotalFeesUsd.Add(line.AmountUsd)
		res.TotalFeesVnd = res.TotalFeesVnd.Add(line.AmountVnd)
		res.Lines = append(res.Lines, line)
	}

	for _, bonus := range f.BonusLines {
		line := convert(LineTypeBonus, string(bonus.Kind), bonus.AmountUsd, bonus.ExchangeRateOverride, rate)
		res.TotalBonusUsd = res.TotalBonusUsd.Add(line.AmountUsd)
		res.TotalBonusVnd = res.TotalBonusVnd.Add(line.AmountVnd)
		res.Lines = append(res.Lines, line)
	}

	// Прибыль в VND считается по курсам каждой строки, а не конвертацией прибыли в USD
	res.ProfitUsd = res.OrderEarningsUsd.Add(res.TotalBonusUsd).Sub(res.TotalFeesUsd)
	res.ProfitVnd = res.OrderEarningsVnd.Add(res.TotalBonusVnd).Sub(res.TotalFeesVnd)

	return res, nil
}

// convert переводит строку в VND по собственному курсу строки или основному курсу заказа
func convert(lineType LineType, kind string, amountUsd decimal.Decimal, override *decimal.Decimal, primary decimal.Decimal) Line {
	rate := primary
	if override != nil {
		rate = *override
	}
	return Line{
		Type:          lineType,
		Kind:          kind,
		AmountUsd:     amountUsd,
		AmountVnd:     amountUsd.Mul(rate),
		EffectiveRate: rate,
	}
}
