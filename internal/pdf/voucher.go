package pdf

import (
	"fmt"
	"strings"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"
)

const paymentVoucherTitle = "ใบสำคัญจ่าย PAYMENT VOUCHER"

// BillVoucher renders the purchase payment voucher.
func BillVoucher(assets config.AssetsConfig, bill models.Bill) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	d.CompanyHeader()
	d.BillInfo(bill.ID, "จ่ายให้", bill.Seller, "ค่าทุเรียน", util.ThaiDate(bill.Date), util.ThaiTime(bill.Date))
	d.VoucherTitle(paymentVoucherTitle)

	d.MoveDown(6)
	d.Line(bodyX, 17, true, "รายการที่ซื้อ:")

	var total float64
	for i, item := range bill.Items {
		subtotal := item.Weight * item.PricePerKg
		total += subtotal
		d.Line(bodyX, 17, true, fmt.Sprintf("%d. %s เกรด %s | น้ำหนัก: %s กก. x %s บาท = %s บาท",
			i+1, item.Variety, item.Grade, weight(item.Weight), weight(item.PricePerKg), money(subtotal)))
	}

	d.MoveDown(6)
	d.CenteredLine(17, true, fmt.Sprintf("รวมเงิน: %s บาท", money(total)))

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// SellVoucher renders the cash-sale receipt, including the per-basket
// sub-weights on each line.
func SellVoucher(assets config.AssetsConfig, bill models.SellBill) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	d.CompanyHeader()
	d.BillInfo(bill.ID, "ชื่อ", bill.Customer, "ค่าทุเรียน", util.ThaiDate(bill.Date), "")
	d.VoucherTitle("บิลเงินสด")

	d.MoveDown(6)
	d.Line(bodyX, 16, false, "ใบเสร็จการขายทุเรียน")
	d.Line(bodyX, 17, true, "รายการที่ขาย:")

	var total float64
	for i, item := range bill.Items {
		baskets := "-"
		if len(item.Weights) > 0 {
			parts := make([]string, len(item.Weights))
			for j, w := range item.Weights {
				parts[j] = weight(w)
			}
			baskets = strings.Join(parts, " + ")
		}
		sum := item.Weight * item.PricePerKg
		total += sum
		d.Line(bodyX, 16, true, fmt.Sprintf("%d. %s เกรด %s | เข่ง: %s กก. | น้ำหนักรวม: %s กก. × %s = %s บาท",
			i+1, item.Variety, item.Grade, baskets, weight(item.Weight), weight(item.PricePerKg), money(sum)))
	}

	d.MoveDown(6)
	d.CenteredLine(17, true, fmt.Sprintf("รวมเงิน: %s บาท", money(total)))

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// CuttingVoucher renders the cutter payment voucher with the main charges,
// the quantity deductions (showing actual-amount overrides) and the extras,
// with the net total on the right.
func CuttingVoucher(assets config.AssetsConfig, bill models.CuttingBill) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	d.CompanyHeader()
	d.BillInfo(bill.ID, "จ่ายให้", bill.CutterName, "ค่าตัดทุเรียน", util.ThaiDate(bill.Date), "")
	d.VoucherTitle(paymentVoucherTitle)

	mainTotal, _, _, netTotal := calc.CuttingTotals(bill)

	d.MoveDown(6)
	d.Line(bodyX, 14, true, "วันที่: "+util.ThaiDate(bill.Date))

	if len(bill.MainItems) > 0 {
		for i, item := range bill.MainItems {
			sub := calc.MainItemAmount(item)
			label := ""
			if item.Label != "" {
				label = item.Label + " - "
			}
			var line string
			if item.Weight != nil {
				line = fmt.Sprintf("%s%s กก. × %s บาท = %s บาท", label, weight(*item.Weight), weight(item.Price), money(sub))
			} else {
				line = fmt.Sprintf("%s%s บาท", label, money(item.Price))
			}
			d.Line(bodyX, 14, true, fmt.Sprintf("%d. %s", i+1, line))
		}
	} else if bill.MainWeight != nil && bill.MainPrice != nil {
		d.Line(bodyX, 14, true, fmt.Sprintf("น้ำหนักรวม: %s กก. × %s บาท = %s บาท",
			weight(*bill.MainWeight), weight(*bill.MainPrice), money(mainTotal)))
	}

	d.MoveDown(5)
	d.Line(bodyX, 15, true, "รายการหัก:")
	for i, item := range bill.DeductItems {
		calculated := item.Qty * item.UnitPrice
		line := fmt.Sprintf("%d. %s - %s × %s = %s บาท", i+1, item.Label, weight(item.Qty), weight(item.UnitPrice), money(calculated))
		if item.ActualAmount != nil {
			line += fmt.Sprintf(" - หัก: %s บาท", money(*item.ActualAmount))
		}
		d.Line(bodyX, 14, true, line)
	}

	d.MoveDown(5)
	lineY := d.Y()
	d.Line(bodyX, 15, true, "รายการหักเพิ่มเติม:")
	d.RightLine(lineY, 80, 16, true, fmt.Sprintf("ยอดสุทธิ: %s บาท", money(netTotal)))
	for i, item := range bill.ExtraDeductions {
		d.Line(bodyX, 14, true, fmt.Sprintf("%d. %s - %s บาท", i+1, item.Label, money(item.Amount)))
	}

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// ChemicalDipVoucher renders the dip-treatment fee voucher.
func ChemicalDipVoucher(assets config.AssetsConfig, data models.ChemicalDip) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	recipient := data.Recipient
	if recipient == "" {
		recipient = "__________"
	}

	d.CompanyHeader()
	d.BillInfo(data.ID, "จ่ายให้", recipient, "ค่าชุบน้ำยาทุเรียน", util.ThaiDate(data.Date), "")
	d.VoucherTitle(paymentVoucherTitle)

	d.MoveDown(10)
	d.Line(bodyX, 16, false, "ใบสรุปค่าชุบน้ำยาทุเรียน")
	d.Line(bodyX, 16, true, "รายละเอียดค่าชุบน้ำยา:")

	total := calc.ChemicalDipTotal(data)
	d.Line(bodyX, 19, true, fmt.Sprintf("น้ำหนักทุเรียน: %s ตัน", weight(data.Weight)))
	d.Line(bodyX, 19, true, fmt.Sprintf("ราคาต่อตัน: %s บาท", weight(data.PricePerKg)))
	d.Line(bodyX, 19, true, fmt.Sprintf("รวมทั้งหมด: %s บาท", money(total)))

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// ContainerLoadingVoucher renders the loading-fee voucher, one line per
// container.
func ContainerLoadingVoucher(assets config.AssetsConfig, data models.ContainerLoading) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	recipient := data.Recipient
	if recipient == "" {
		recipient = "__________"
	}

	d.CompanyHeader()
	d.BillInfo(data.ID, "จ่ายให้", recipient, "ค่าขึ้นตู้ทุเรียน", util.ThaiDate(data.Date), "")
	d.VoucherTitle(paymentVoucherTitle)

	d.MoveDown(10)
	d.Line(bodyX, 16, false, "ใบสรุปค่าขึ้นตู้ทุเรียน")
	d.Line(bodyX, 16, true, "รายละเอียดค่าขึ้นตู้:")

	for i, c := range data.Containers {
		label := strings.TrimSpace(c.Label)
		if label == "" {
			label = fmt.Sprintf("ตู้ที่ %d", i+1)
		}
		code := c.ContainerCode
		if code == "" {
			code = "-"
		}
		d.Line(30, 16, false, fmt.Sprintf("%s: %s × %s บาท", label, code, money(c.Price)))
	}

	d.MoveDown(10)
	d.Line(bodyX, 18, true, fmt.Sprintf("รวมทั้งหมด: %s บาท", money(calc.ContainerLoadingTotal(data))))

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// PackingVoucher renders the packing-fee voucher with the box subtotals and
// any deductions.
func PackingVoucher(assets config.AssetsConfig, data models.Packing) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	recipient := data.Recipient
	if recipient == "" {
		recipient = "__________"
	}

	d.CompanyHeader()
	d.BillInfo(data.ID, "จ่ายให้", recipient, "ค่าบริการแพ็คทุเรียน", util.ThaiDate(data.Date), "")
	d.VoucherTitle(paymentVoucherTitle)

	boxTotal, deductTotal, netTotal := calc.PackingTotals(data)

	d.MoveDown(4)
	d.Line(bodyX, 16, false, "ใบสรุปค่าแพ็คทุเรียน")
	d.Line(bodyX, 16, true, "รายละเอียดค่าแพ็ค:")
	d.Line(bodyX, 16, true, fmt.Sprintf("กล่องใหญ่: %s กล่อง × %s บาท = %s บาท",
		weight(data.BigBoxQuantity), weight(data.BigBoxPrice), money(data.BigBoxQuantity*data.BigBoxPrice)))
	d.Line(bodyX, 16, true, fmt.Sprintf("กล่องเล็ก: %s กล่อง × %s บาท = %s บาท",
		weight(data.SmallBoxQuantity), weight(data.SmallBoxPrice), money(data.SmallBoxQuantity*data.SmallBoxPrice)))

	if len(data.Deductions) > 0 {
		d.MoveDown(4)
		d.Line(bodyX, 16, true, "รายละเอียดรายการหัก:")
		for i, ded := range data.Deductions {
			label := ded.Label
			if label == "" {
				label = "-"
			}
			d.Line(30, 16, false, fmt.Sprintf("%d. %s: %s บาท", i+1, label, money(ded.Amount)))
		}
	}

	d.MoveDown(4)
	d.Line(bodyX, 16, true, fmt.Sprintf("รวมทั้งหมด: %s บาท", money(boxTotal)))
	if deductTotal > 0 {
		d.Line(bodyX, 16, true, fmt.Sprintf("หัก: %s บาท", money(deductTotal)))
		d.Line(bodyX, 16, true, fmt.Sprintf("คงเหลือหลังหัก: %s บาท", money(netTotal)))
	}

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

// PayrollVoucher renders the payslip for any of the three pay types.
func PayrollVoucher(assets config.AssetsConfig, data models.Payroll) ([]byte, error) {
	d, err := NewDocument(VoucherPage, 20, assets)
	if err != nil {
		return nil, err
	}

	d.CompanyHeader()
	d.BillInfo(data.ID, "จ่ายให้", data.EmployeeName, "ค่าจ้างพนักงาน", util.ThaiDate(data.Date), "")
	d.VoucherTitle(paymentVoucherTitle)

	basePay := calc.PayrollBasePay(data)
	totalPay, totalDeduct, netPay := calc.PayrollTotals(data)

	d.MoveDown(4)
	d.Line(bodyX, 16, false, "ใบสรุปเงินเดือนพนักงาน")
	d.Line(bodyX, 16, true, "รายละเอียดค่าจ้าง:")

	switch data.PayType {
	case models.PayTypeMonthly:
		d.Line(bodyX, 16, false, fmt.Sprintf("รายเดือน: %s บาท × %s เดือน = %s บาท",
			weight(derefFloat(data.MonthlySalary)), weight(derefFloat(data.Months)), money(basePay)))
	case models.PayTypeContainer:
		d.Line(bodyX, 16, false, fmt.Sprintf("รายตู้: %s ตู้ × %s บาท/ตู้ = %s บาท",
			weight(derefFloat(data.WorkDays)), weight(derefFloat(data.PricePerDay)), money(basePay)))
	default:
		d.Line(bodyX, 16, false, fmt.Sprintf("รายวัน: %s วัน × %s บาท = %s บาท",
			weight(derefFloat(data.WorkDays)), weight(derefFloat(data.PricePerDay)), money(basePay)))
	}

	if data.Bonus > 0 {
		d.Line(bodyX, 16, false, fmt.Sprintf("พิเศษ: %s บาท", money(data.Bonus)))
	}

	if len(data.Deductions) > 0 {
		d.MoveDown(4)
		d.Line(bodyX, 16, true, "รายละเอียดรายการหัก:")
		for i, ded := range data.Deductions {
			name := ded.Name
			if name == "" {
				name = "-"
			}
			d.Line(30, 16, false, fmt.Sprintf("%d. %s: %s บาท", i+1, name, money(ded.Amount)))
		}
	}

	d.MoveDown(5)
	d.Line(bodyX, 16, true, fmt.Sprintf("รวมทั้งหมด: %s บาท", money(totalPay)))
	if totalDeduct > 0 {
		d.Line(bodyX, 16, true, fmt.Sprintf("หักเบิก: %s บาท", money(totalDeduct)))
		d.Line(bodyX, 16, true, fmt.Sprintf("คงเหลือหลังหัก: %s บาท", money(netPay)))
	}

	d.Signatures("ผู้จ่ายเงิน", "ผู้รับเงิน")
	return d.Bytes(), nil
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
