package pdf

import (
	"fmt"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"
)

// DailyFinanceReport renders one day's ledger: the merged income/expense
// notes in creation order and the running net.
func DailyFinanceReport(assets config.AssetsConfig, record models.DailyFinance) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	d.CompanyHeader()
	d.TextAt(billInfoX, headerTopY, 13, false, "วันที่: "+util.ThaiDate(record.Date))

	d.MoveDown(14)
	d.CenteredLine(17, true, "ใบสรุปรายวัน / Daily Financial Report")

	d.MoveDown(10)
	for i, note := range calc.MergeNotes(record) {
		prefix := "รายรับ"
		if note.Type == calc.NoteExpense {
			prefix = "รายจ่าย"
		}
		d.Line(40, 14, false, fmt.Sprintf("%s %d. %s - %s บาท", prefix, i+1, note.Label, money(note.Amount)))
	}

	_, _, net := calc.DailyNet(record)
	d.MoveDown(10)
	d.RightLine(d.Y(), 0, 16, true, fmt.Sprintf("คงเหลือ: %s บาท", money(net)))

	d.Signatures("ผู้จัดทำ: "+record.CreatedBy, "")
	return d.Bytes(), nil
}

// MonthlyFinanceReport renders the month rollup: one line per day with its
// income/expense/net, then the month grand totals.
func MonthlyFinanceReport(assets config.AssetsConfig, month string, records []models.DailyFinance) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	d.CompanyHeader()
	d.TextAt(billInfoX, headerTopY, 13, false,
		fmt.Sprintf("พิมพ์เมื่อ: %s เวลา: %s", util.ThaiDateShort(now), util.ThaiTime(now)))

	d.MoveDown(14)
	d.CenteredLine(17, true, "สรุปบันทึกรายเดือน "+month)

	d.MoveDown(6)
	var totalIncome, totalExpense float64
	for i, r := range records {
		income, expense, net := calc.DailyNet(r)
		totalIncome += income
		totalExpense += expense
		d.Line(bodyX, 14, true, fmt.Sprintf("%d. %s | รายรับ %s - รายจ่าย %s = คงเหลือ %s บาท",
			i+1, util.ThaiDateShort(r.Date), money(income), money(expense), money(net)))
	}

	d.MoveDown(10)
	d.Line(bodyX, 16, true, fmt.Sprintf("รวมรายรับทั้งเดือน: %s บาท", money(totalIncome)))
	d.Line(bodyX, 16, true, fmt.Sprintf("รวมรายจ่ายทั้งเดือน: %s บาท", money(totalExpense)))
	d.RightLine(d.Y(), 0, 16, true, fmt.Sprintf("คงเหลือสุทธิ: %s บาท", money(totalIncome-totalExpense)))

	return d.Bytes(), nil
}
