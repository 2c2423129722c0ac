package rollup

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func dp(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func sampleFinancials() OrderFinancials {
	return OrderFinancials{
		ItemTotalUsd:          d("100"),
		DiscountRatePct:       d("10"),
		BuyerPaidUsd:          d("90"),
		OrderEarningsUsd:      d("85"),
		ExchangeRateVndPerUsd: d("25000"),
		FeeLines: []FeeLine{
			{Kind: FeeKindShipping, AmountUsd: d("5")},
		},
		BonusLines: []BonusLine{
			{Kind: BonusKindOther, AmountUsd: d("2")},
		},
	}
}

func TestCompute(t *testing.T) {
	t.Run("End-to-end scenario", func(t *testing.T) {
		res, err := Compute(sampleFinancials())
		require.NoError(t, err)

		assertDecimal(t, "10", res.DiscountAmountUsd)
		assertDecimal(t, "90", res.SubtotalUsd)
		assertDecimal(t, "85", res.OrderEarningsUsd)
		assertDecimal(t, "2125000", res.OrderEarningsVnd)
		assertDecimal(t, "5", res.TotalFeesUsd)
		assertDecimal(t, "125000", res.TotalFeesVnd)
		assertDecimal(t, "2", res.TotalBonusUsd)
		assertDecimal(t, "50000", res.TotalBonusVnd)
		assertDecimal(t, "82", res.ProfitUsd)
		assertDecimal(t, "2050000", res.ProfitVnd)

		require.Len(t, res.Lines, 2)
		assert.Equal(t, LineTypeFee, res.Lines[0].Type)
		assert.Equal(t, "shipping", res.Lines[0].Kind)
		assertDecimal(t, "25000", res.Lines[0].EffectiveRate)
		assert.Equal(t, LineTypeBonus, res.Lines[1].Type)
		assertDecimal(t, "50000", res.Lines[1].AmountVnd)
	})

	t.Run("No fee or bonus lines", func(t *testing.T) {
		f := sampleFinancials()
		f.FeeLines = nil
		f.BonusLines = nil

		res, err := Compute(f)
		require.NoError(t, err)

		assert.True(t, res.TotalFeesUsd.IsZero())
		assert.True(t, res.TotalBonusUsd.IsZero())
		assert.True(t, res.TotalFeesVnd.IsZero())
		assert.True(t, res.TotalBonusVnd.IsZero())
		assertDecimal(t, "85", res.ProfitUsd)
		assertDecimal(t, "2125000", res.ProfitVnd)
		assert.Empty(t, res.Lines)
	})

	t.Run("Override rate is used instead of primary rate", func(t *testing.T) {
		f := sampleFinancials()
		f.FeeLines = []FeeLine{
			{Kind: FeeKindShipping, AmountUsd: d("10"), ExchangeRateOverride: dp("24000")},
		}
		f.BonusLines = nil

		res, err := Compute(f)
		require.NoError(t, err)

		require.Len(t, res.Lines, 1)
		assertDecimal(t, "240000", res.Lines[0].AmountVnd)
		assertDecimal(t, "24000", res.Lines[0].EffectiveRate)
		assertDecimal(t, "240000", res.TotalFeesVnd)
		// 85*25000 - 240000, а не (85-10)*25000
		assertDecimal(t, "1885000", res.ProfitVnd)
	})

	t.Run("Mixed rates keep per-line fidelity", func(t *testing.T) {
		f := sampleFinancials()
		f.FeeLines = []FeeLine{
			{Kind: FeeKindShipping, AmountUsd: d("4.5")},
			{Kind: FeeKindRefund, AmountUsd: d("3"), ExchangeRateOverride: dp("24500")},
			{Kind: FeeKindOther, AmountUsd: d("0.25")},
		}
		f.BonusLines = []BonusLine{
			{Kind: BonusKindOther, AmountUsd: d("1.5"), ExchangeRateOverride: dp("26000")},
		}

		res, err := Compute(f)
		require.NoError(t, err)

		assertDecimal(t, "7.75", res.TotalFeesUsd)
		// 4.5*25000 + 3*24500 + 0.25*25000
		assertDecimal(t, "192250", res.TotalFeesVnd)
		assertDecimal(t, "1.5", res.TotalBonusUsd)
		assertDecimal(t, "39000", res.TotalBonusVnd)
		assertDecimal(t, "78.75", res.ProfitUsd)
		assertDecimal(t, "1971750", res.ProfitVnd)
		assert.Len(t, res.Lines, 4)
	})

	t.Run("Fractional discount", func(t *testing.T) {
		f := sampleFinancials()
		f.ItemTotalUsd = d("59.97")
		f.DiscountRatePct = d("15")

		res, err := Compute(f)
		require.NoError(t, err)

		assertDecimal(t, "8.9955", res.DiscountAmountUsd)
		assertDecimal(t, "50.9745", res.SubtotalUsd)
	})

	t.Run("Boundary discount rates", func(t *testing.T) {
		f := sampleFinancials()

		f.DiscountRatePct = d("0")
		res, err := Compute(f)
		require.NoError(t, err)
		assertDecimal(t, "100", res.SubtotalUsd)

		f.DiscountRatePct = d("100")
		res, err = Compute(f)
		require.NoError(t, err)
		assertDecimal(t, "0", res.SubtotalUsd)
	})

	t.Run("Input is not mutated", func(t *testing.T) {
		f := sampleFinancials()
		f.FeeLines[0].ExchangeRateOverride = dp("24000")
		before := f.FeeLines[0].AmountUsd.String()

		_, err := Compute(f)
		require.NoError(t, err)

		assert.Equal(t, before, f.FeeLines[0].AmountUsd.String())
		assert.Equal(t, "24000", f.FeeLines[0].ExchangeRateOverride.String())
		assert.Len(t, f.FeeLines, 1)
	})
}

func TestCompute_Properties(t *testing.T) {
	cases := []OrderFinancials{
		sampleFinancials(),
		{
			ItemTotalUsd:          d("1234.56"),
			DiscountRatePct:       d("33.333"),
			BuyerPaidUsd:          d("823.04"),
			OrderEarningsUsd:      d("700.1"),
			ExchangeRateVndPerUsd: d("25345.5"),
			FeeLines: []FeeLine{
				{Kind: FeeKindShipping, AmountUsd: d("12.34")},
				{Kind: FeeKindOther, AmountUsd: d("0.01"), ExchangeRateOverride: dp("1")},
			},
			BonusLines: []BonusLine{
				{Kind: BonusKindOther, AmountUsd: d("9.99"), ExchangeRateOverride: dp("23999.99")},
			},
		},
		{
			ExchangeRateVndPerUsd: d("1"),
		},
	}

	tolerance := d("0.000000001")
	for _, f := range cases {
		first, err := Compute(f)
		require.NoError(t, err)

		// profit = earnings + bonus - fees
		assert.True(t, first.ProfitUsd.Equal(f.OrderEarningsUsd.Add(first.TotalBonusUsd).Sub(first.TotalFeesUsd)))

		// subtotal = itemTotal * (100 - rate) / 100
		expectedSubtotal := f.ItemTotalUsd.Mul(d("100").Sub(f.DiscountRatePct)).Div(d("100"))
		assert.True(t, first.SubtotalUsd.Sub(expectedSubtotal).Abs().LessThanOrEqual(tolerance))

		// Каждая сумма в VND равна USD, умноженной на курс строки
		for _, line := range first.Lines {
			assert.True(t, line.AmountVnd.Equal(line.AmountUsd.Mul(line.EffectiveRate)))
		}

		second, err := Compute(f)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	}
}

func TestCompute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *OrderFinancials)
		field  string
	}{
		{
			name:   "Negative item total",
			modify: func(f *OrderFinancials) { f.ItemTotalUsd = d("-1") },
			field:  "itemTotalUsd",
		},
		{
			name:   "Negative discount rate",
			modify: func(f *OrderFinancials) { f.DiscountRatePct = d("-5") },
			field:  "discountRatePct",
		},
		{
			name:   "Discount rate above 100",
			modify: func(f *OrderFinancials) { f.DiscountRatePct = d("100.01") },
			field:  "discountRatePct",
		},
		{
			name:   "Negative buyer paid",
			modify: func(f *OrderFinancials) { f.BuyerPaidUsd = d("-0.01") },
			field:  "buyerPaidUsd",
		},
		{
			name:   "Negative earnings",
			modify: func(f *OrderFinancials) { f.OrderEarningsUsd = d("-85") },
			field:  "orderEarningsUsd",
		},
		{
			name:   "Zero exchange rate",
			modify: func(f *OrderFinancials) { f.ExchangeRateVndPerUsd = decimal.Zero },
			field:  "exchangeRateVndPerUsd",
		},
		{
			name:   "Negative exchange rate",
			modify: func(f *OrderFinancials) { f.ExchangeRateVndPerUsd = d("-25000") },
			field:  "exchangeRateVndPerUsd",
		},
		{
			name:   "Unknown fee kind",
			modify: func(f *OrderFinancials) { f.FeeLines[0].Kind = "tax" },
			field:  "feeLines[0].kind",
		},
		{
			name:   "Negative fee amount",
			modify: func(f *OrderFinancials) { f.FeeLines[0].AmountUsd = d("-5") },
			field:  "feeLines[0].amountUsd",
		},
		{
			name:   "Zero fee override",
			modify: func(f *OrderFinancials) { f.FeeLines[0].ExchangeRateOverride = dp("0") },
			field:  "feeLines[0].exchangeRateOverride",
		},
		{
			name:   "Unknown bonus kind",
			modify: func(f *OrderFinancials) { f.BonusLines[0].Kind = "shipping" },
			field:  "bonusLines[0].kind",
		},
		{
			name:   "Negative bonus amount",
			modify: func(f *OrderFinancials) { f.BonusLines[0].AmountUsd = d("-2") },
			field:  "bonusLines[0].amountUsd",
		},
		{
			name:   "Negative bonus override",
			modify: func(f *OrderFinancials) { f.BonusLines[0].ExchangeRateOverride = dp("-1") },
			field:  "bonusLines[0].exchangeRateOverride",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := sampleFinancials()
			tt.modify(&f)

			res, err := Compute(f)
			assert.Nil(t, res)

			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
			assert.NotEmpty(t, validationErr.Reason)
		})
	}

	t.Run("First violation wins", func(t *testing.T) {
		f := sampleFinancials()
		f.DiscountRatePct = d("-5")
		f.ExchangeRateVndPerUsd = decimal.Zero
		f.FeeLines[0].AmountUsd = d("-1")

		_, err := Compute(f)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "discountRatePct", validationErr.Field)
	})

	t.Run("Second fee line is reported with its index", func(t *testing.T) {
		f := sampleFinancials()
		f.FeeLines = append(f.FeeLines, FeeLine{Kind: FeeKindRefund, AmountUsd: d("-3")})

		_, err := Compute(f)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "feeLines[1].amountUsd", validationErr.Field)
		assert.Equal(t, "invalid feeLines[1].amountUsd: must not be negative", err.Error())
	})
}

func TestAggregate(t *testing.T) {
	first, err := Compute(sampleFinancials())
	require.NoError(t, err)

	f := sampleFinancials()
	f.OrderEarningsUsd = d("40")
	f.FeeLines = []FeeLine{{Kind: FeeKindRefund, AmountUsd: d("10"), ExchangeRateOverride: dp("24000")}}
	f.BonusLines = nil
	second, err := Compute(f)
	require.NoError(t, err)

	totals := Aggregate([]*Result{first, nil, second})

	assert.Equal(t, 2, totals.Orders)
	assertDecimal(t, "180", totals.SubtotalUsd)
	assertDecimal(t, "125", totals.EarningsUsd)
	assertDecimal(t, "3125000", totals.EarningsVnd)
	assertDecimal(t, "15", totals.FeesUsd)
	assertDecimal(t, "365000", totals.FeesVnd)
	assertDecimal(t, "2", totals.BonusUsd)
	assertDecimal(t, "50000", totals.BonusVnd)
	assertDecimal(t, "112", totals.ProfitUsd)
	assertDecimal(t, "2810000", totals.ProfitVnd)

	empty := Aggregate(nil)
	assert.Equal(t, 0, empty.Orders)
	assert.True(t, empty.ProfitUsd.IsZero())
}
