package pdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"
)

// ExportInvoiceData is the stateless export-invoice payload: the document is
// rendered straight from the request body, nothing is persisted.
type ExportInvoiceData struct {
	Date          string                       `json:"date"`
	City          string                       `json:"city"`
	ContainerInfo string                       `json:"containerInfo"`
	ContainerCode string                       `json:"containerCode"`
	RefCode       string                       `json:"refCode"`
	DurianItems   []calc.DurianItem            `json:"durianItems"`
	FreightItems  []calc.FreightItem           `json:"freightItems"`
	HandlingCosts map[string]calc.HandlingCost `json:"handlingCosts"`
	BoxCosts      map[string]calc.BoxCost      `json:"boxCosts"`
	InspectionFee float64                      `json:"inspectionFee"`
	BrandSummary  string                       `json:"brandSummary"`
}

// ExportInvoice renders the large-format bilingual export invoice.
func ExportInvoice(assets config.AssetsConfig, data ExportInvoiceData) ([]byte, error) {
	d, err := NewDocument(InvoicePage, 50, assets)
	if err != nil {
		return nil, err
	}

	d.Logo(50, 50, 80)
	d.SetY(50)
	d.CenteredLine(26, true, "ใบส่งออกทุเรียน SAIJAITHAM / Durian Export Invoice - SAIJAITHAM")

	d.SetY(150)
	d.Line(150, 20, true, "วันที่ / Date: "+data.Date)
	d.Line(150, 20, true, "ปลายทาง / Destination: "+data.City)
	d.Line(150, 20, true, "ตู้ / Container: "+data.ContainerInfo)
	d.Line(150, 20, true, "รหัสตู้ / Container Code: "+data.ContainerCode)
	d.Line(150, 20, true, "รหัสอ้างอิง / Reference Code: "+data.RefCode)

	d.MoveDown(20)
	d.Line(50, 24, true, "รายการทุเรียน / Durian Items")
	d.MoveDown(8)

	var total float64
	for i, item := range data.DurianItems {
		totalWeight := item.Boxes * item.WeightPerBox
		totalPrice := totalWeight * item.PricePerKg
		total += totalPrice
		d.Line(50, 18, true, fmt.Sprintf("%d. %s เกรด %s | %s กล่อง × %s กก. = %s กก. × %s บาท = %s บาท",
			i+1, item.Variety, item.Grade, weight(item.Boxes), weight(item.WeightPerBox),
			weight(totalWeight), weight(item.PricePerKg), money(totalPrice)))
	}

	if len(data.FreightItems) > 0 {
		d.MoveDown(16)
		d.Line(50, 24, true, "ค่าน้ำหนักซิ / Freight Charges")
		for i, item := range data.FreightItems {
			subtotal := item.Weight * item.PricePerKg
			total += subtotal
			d.Line(50, 18, true, fmt.Sprintf("%d. %s เกรด %s | น้ำหนัก %s กก. × %s บาท = %s บาท",
				i+1, item.Variety, item.Grade, weight(item.Weight), weight(item.PricePerKg), money(subtotal)))
		}
	}

	d.MoveDown(16)
	d.Line(50, 24, true, "ค่าจัดการกล่อง / Handling Costs")
	for _, size := range sortedKeysHandling(data.HandlingCosts) {
		cost := data.HandlingCosts[size]
		sub := cost.Weight * cost.CostPerKg
		total += sub
		d.Line(50, 18, true, fmt.Sprintf("%s: น้ำหนักรวม %s กก. × %s บาท = %s บาท",
			size, weight(cost.Weight), weight(cost.CostPerKg), money(sub)))
	}

	d.MoveDown(16)
	d.Line(50, 24, true, "ค่ากล่อง / Box Costs")
	for _, size := range sortedKeysBox(data.BoxCosts) {
		box := data.BoxCosts[size]
		sub := box.Quantity * box.UnitCost
		total += sub
		d.Line(50, 18, true, fmt.Sprintf("%s: %s กล่อง × %s = %s บาท",
			size, weight(box.Quantity), weight(box.UnitCost), money(sub)))
	}

	total += data.InspectionFee
	d.MoveDown(16)
	d.Line(50, 24, true, fmt.Sprintf("ค่าตรวจสาร / Inspection Fee: %s บาท", money(data.InspectionFee)))

	d.MoveDown(16)
	d.RightLine(d.Y(), 0, 26, true, fmt.Sprintf("รวมยอด / Total: %s บาท", money(total)))
	d.MoveDown(40)

	if strings.TrimSpace(data.BrandSummary) != "" {
		d.CenteredLine(28, true, "สรุปกล่องตามแบรนด์ / Brand-wise Box Summary")
		d.MoveDown(10)
		for _, line := range strings.Split(data.BrandSummary, "\n") {
			d.Line(50, 20, true, line)
		}
	}

	return d.Bytes(), nil
}

// SeasonRow pairs an export document with its rolled-up total for the
// season report.
type SeasonRow struct {
	Export models.ExportContainer
	Total  float64
}

// SeasonSummary renders the season-wide export report: one line per
// document and the season grand total.
func SeasonSummary(assets config.AssetsConfig, season models.Season, rows []SeasonRow) ([]byte, error) {
	d, err := NewDocument(A4Page, 40, assets)
	if err != nil {
		return nil, err
	}

	d.SetY(40)
	d.CenteredLine(20, true, "รายงานสรุปการส่งออกทุเรียน - ฤดูกาล "+season.Name)
	d.MoveDown(10)

	endStr := "ปัจจุบัน"
	if season.EndDate != nil {
		endStr = util.ThaiDateShort(*season.EndDate)
	}
	d.Line(40, 14, false, fmt.Sprintf("ช่วงเวลา: %s - %s", util.ThaiDateShort(season.StartDate), endStr))
	d.MoveDown(10)

	var grandTotal float64
	for i, row := range rows {
		grandTotal += row.Total
		d.Line(40, 12, false, fmt.Sprintf("%d. วันที่: %s | เมือง: %s | รหัสตู้: %s | รวม: %s บาท",
			i+1, util.ThaiDateShort(row.Export.Date), row.Export.City, row.Export.ContainerCode, money(row.Total)))
	}

	d.MoveDown(14)
	d.RightLine(d.Y(), 0, 16, true, fmt.Sprintf("รวมยอดทั้งฤดูกาล: %s บาท", money(grandTotal)))

	return d.Bytes(), nil
}

// deterministic section order; JS object iteration was insertion-ordered,
// Go maps are not
func sortedKeysHandling(m map[string]calc.HandlingCost) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedKeysBox(m map[string]calc.BoxCost) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
