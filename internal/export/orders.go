// Package export выгружает заказы в книгу Excel.
package export

import (
	"fmt"

	"github.com/avc/printshop-dashboard/internal/domain"
	"github.com/avc/printshop-dashboard/internal/rollup"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName имя листа с заказами
const SheetName = "Orders"

// ContentType MIME-тип книги xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Встроенные форматы чисел Excel
const (
	numFmtInteger  = 1 // 0
	numFmtTwoDigit = 2 // 0.00
)

var headers = []string{
	"Number", "Status", "Ordered At",
	"Item Total USD", "Discount USD", "Subtotal USD", "Buyer Paid USD",
	"Earnings USD", "Earnings VND",
	"Fees USD", "Fees VND",
	"Bonus USD", "Bonus VND",
	"Profit USD", "Profit VND",
}

const (
	usdColumns = "D:H"
	lastColumn = "O"
)

var (
	usdSingleColumns = []string{"J", "L", "N"}
	vndColumns       = []string{"I", "K", "M", "O"}
)

// OrdersWorkbook создает книгу со строкой на каждый заказ и строкой итогов
func OrdersWorkbook(views []*domain.OrderView, totals rollup.Totals) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := fillOrders(f, views, totals); err != nil {
		_ = f.Close()
		return nil, err
	}
	return f, nil
}

func fillOrders(f *excelize.File, views []*domain.OrderView, totals rollup.Totals) error {
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("export: failed to rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return fmt.Errorf("export: failed to write headers: %w", err)
	}

	row := 2
	for _, v := range views {
		if v == nil || v.Order == nil || v.Rollup == nil {
			continue
		}
		if err := setRow(f, row, orderRow(v)); err != nil {
			return err
		}
		row++
	}

	if err := setRow(f, row, totalsRow(totals)); err != nil {
		return err
	}

	return applyStyles(f)
}

func orderRow(v *domain.OrderView) []interface{} {
	r := v.Rollup
	return []interface{}{
		v.Number,
		string(v.Status),
		v.OrderedAt.UTC().Format("2006-01-02 15:04"),
		money(v.ItemTotal),
		money(r.DiscountAmountUsd),
		money(r.SubtotalUsd),
		money(v.BuyerPaidUsd),
		money(r.OrderEarningsUsd),
		money(r.OrderEarningsVnd),
		money(r.TotalFeesUsd),
		money(r.TotalFeesVnd),
		money(r.TotalBonusUsd),
		money(r.TotalBonusVnd),
		money(r.ProfitUsd),
		money(r.ProfitVnd),
	}
}

func totalsRow(t rollup.Totals) []interface{} {
	return []interface{}{
		"Total",
		t.Orders,
		nil,
		nil,
		nil,
		money(t.SubtotalUsd),
		nil,
		money(t.EarningsUsd),
		money(t.EarningsVnd),
		money(t.FeesUsd),
		money(t.FeesVnd),
		money(t.BonusUsd),
		money(t.BonusVnd),
		money(t.ProfitUsd),
		money(t.ProfitVnd),
	}
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("export: invalid row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("export: failed to write row %d: %w", row, err)
	}
	return nil
}

// applyStyles задает формат USD с двумя знаками и VND без дробной части
func applyStyles(f *excelize.File) error {
	usd, err := f.NewStyle(&excelize.Style{NumFmt: numFmtTwoDigit})
	if err != nil {
		return fmt.Errorf("export: failed to create usd style: %w", err)
	}
	vnd, err := f.NewStyle(&excelize.Style{NumFmt: numFmtInteger})
	if err != nil {
		return fmt.Errorf("export: failed to create vnd style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: failed to create header style: %w", err)
	}

	if err := f.SetColStyle(SheetName, usdColumns, usd); err != nil {
		return fmt.Errorf("export: failed to style usd columns: %w", err)
	}
	for _, col := range usdSingleColumns {
		if err := f.SetColStyle(SheetName, col, usd); err != nil {
			return fmt.Errorf("export: failed to style usd columns: %w", err)
		}
	}
	for _, col := range vndColumns {
		if err := f.SetColStyle(SheetName, col, vnd); err != nil {
			return fmt.Errorf("export: failed to style vnd columns: %w", err)
		}
	}

	if err := f.SetCellStyle(SheetName, "A1", lastColumn+"1", header); err != nil {
		return fmt.Errorf("export: failed to style headers: %w", err)
	}
	return nil
}

// money переводит сумму в число ячейки; округление выполняет формат столбца
func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
