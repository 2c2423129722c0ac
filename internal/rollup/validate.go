package rollup

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Validate проверяет входные данные в фиксированном порядке полей
// и возвращает первое нарушение.
func Validate(f OrderFinancials) error {
	if f.ItemTotalUsd.IsNegative() {
		return &ValidationError{Field: "itemTotalUsd", Reason: "must not be negative"}
	}
	if f.DiscountRatePct.IsNegative() || f.DiscountRatePct.GreaterThan(hundred) {
		return &ValidationError{Field: "discountRatePct", Reason: "must be between 0 and 100"}
	}
	if f.BuyerPaidUsd.IsNegative() {
		return &ValidationError{Field: "buyerPaidUsd", Reason: "must not be negative"}
	}
	if f.OrderEarningsUsd.IsNegative() {
		return &ValidationError{Field: "orderEarningsUsd", Reason: "must not be negative"}
	}
	if !f.ExchangeRateVndPerUsd.IsPositive() {
		return &ValidationError{Field: "exchangeRateVndPerUsd", Reason: "must be greater than 0"}
	}

	for i, fee := range f.FeeLines {
		prefix := fmt.Sprintf("feeLines[%d]", i)
		if !fee.Kind.Valid() {
			return &ValidationError{Field: prefix + ".kind", Reason: fmt.Sprintf("unknown fee kind %q", fee.Kind)}
		}
		if err := validateLine(prefix, fee.AmountUsd, fee.ExchangeRateOverride); err != nil {
			return err
		}
	}

	for i, bonus := range f.BonusLines {
		prefix := fmt.Sprintf("bonusLines[%d]", i)
		if !bonus.Kind.Valid() {
			return &ValidationError{Field: prefix + ".kind", Reason: fmt.Sprintf("unknown bonus kind %q", bonus.Kind)}
		}
		if err := validateLine(prefix, bonus.AmountUsd, bonus.ExchangeRateOverride); err != nil {
			return err
		}
	}

	return nil
}

func validateLine(prefix string, amountUsd decimal.Decimal, override *decimal.Decimal) error {
	if amountUsd.IsNegative() {
		return &ValidationError{Field: prefix + ".amountUsd", Reason: "must not be negative"}
	}
	if override != nil && !override.IsPositive() {
		return &ValidationError{Field: prefix + ".exchangeRateOverride", Reason: "must be greater than 0"}
	}
	return nil
}
