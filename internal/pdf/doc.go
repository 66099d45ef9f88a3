// Package pdf renders the company's printable documents with fixed
// coordinate layouts and the TH Sarabun fonts. Totals shown on any document
// come from internal/calc, never computed here.
package pdf

import (
	"fmt"
	"os"

	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/signintech/gopdf"
)

// Voucher pages are a small fixed landscape sheet; the export invoice and
// season report use their own sizes.
var (
	VoucherPage = gopdf.Rect{W: 648, H: 396}
	InvoicePage = gopdf.Rect{W: 841.89, H: 1400}
	A4Page      = gopdf.Rect{W: 595.28, H: 841.89}
)

const (
	fontThai = "thai"
	fontBold = "thai-bold"
)

// Document wraps gopdf with the font registry and a flowing Y cursor, the
// way the old renderer tracked doc.y.
type Document struct {
	pdf    gopdf.GoPdf
	page   gopdf.Rect
	margin float64
	y      float64
	logo   string
}

// NewDocument starts a single-page document of the given size and registers
// the Thai fonts. The regular font is required; the bold face falls back to
// the regular file when missing. A missing logo is skipped at draw time.
func NewDocument(page gopdf.Rect, margin float64, assets config.AssetsConfig) (*Document, error) {
	d := &Document{page: page, margin: margin, y: margin, logo: assets.LogoPath}
	d.pdf.Start(gopdf.Config{PageSize: page})
	d.pdf.AddPage()

	if _, err := os.Stat(assets.FontPath); err != nil {
		return nil, fmt.Errorf("thai font: %w", err)
	}
	if err := d.pdf.AddTTFFont(fontThai, assets.FontPath); err != nil {
		return nil, fmt.Errorf("load thai font: %w", err)
	}

	boldPath := assets.FontBoldPath
	if _, err := os.Stat(boldPath); err != nil {
		boldPath = assets.FontPath
	}
	if err := d.pdf.AddTTFFont(fontBold, boldPath); err != nil {
		return nil, fmt.Errorf("load thai bold font: %w", err)
	}

	return d, nil
}

func (d *Document) setFont(size float64, bold bool) error {
	name := fontThai
	if bold {
		name = fontBold
	}
	return d.pdf.SetFont(name, "", size)
}

// TextAt draws a single line at an absolute position without moving the
// cursor.
func (d *Document) TextAt(x, y float64, size float64, bold bool, text string) {
	if err := d.setFont(size, bold); err != nil {
		return
	}
	d.pdf.SetXY(x, y)
	_ = d.pdf.Cell(nil, text)
}

// Line draws text at the cursor and advances it one line.
func (d *Document) Line(x float64, size float64, bold bool, text string) {
	d.TextAt(x, d.y, size, bold, text)
	d.y += size * 1.25
}

// CenteredLine draws a horizontally centered line at the cursor.
func (d *Document) CenteredLine(size float64, bold bool, text string) {
	if err := d.setFont(size, bold); err != nil {
		return
	}
	w, err := d.pdf.MeasureTextWidth(text)
	if err != nil {
		w = 0
	}
	d.TextAt((d.page.W-w)/2, d.y, size, bold, text)
	d.y += size * 1.25
}

// RightLine draws a right-aligned line at the given Y (cursor unchanged),
// inset from the right edge by rightInset.
func (d *Document) RightLine(y, rightInset float64, size float64, bold bool, text string) {
	if err := d.setFont(size, bold); err != nil {
		return
	}
	w, err := d.pdf.MeasureTextWidth(text)
	if err != nil {
		w = 0
	}
	d.TextAt(d.page.W-d.margin-rightInset-w, y, size, bold, text)
}

// MoveDown advances the cursor.
func (d *Document) MoveDown(dy float64) { d.y += dy }

// SetY positions the cursor.
func (d *Document) SetY(y float64) { d.y = y }

// Y reports the cursor position.
func (d *Document) Y() float64 { return d.y }

// Logo draws the company logo fitted into a box; silently skipped when the
// asset is missing.
func (d *Document) Logo(x, y, size float64) {
	if _, err := os.Stat(d.logo); err != nil {
		return
	}
	_ = d.pdf.Image(d.logo, x, y, &gopdf.Rect{W: size, H: size})
}

// Bytes finalizes the document.
func (d *Document) Bytes() []byte { return d.pdf.GetBytesPdf() }

// Voucher header/footer scaffolding shared by every payment voucher.

const (
	headerTopY    = 20
	logoSize      = 70
	companyX      = 105 // logoX 20 + logoSize 70 + 15
	billInfoX     = 355 // companyX + 250
	bodyX         = 20
	signatureRise = 60
)

// CompanyHeader draws the logo and the three-line company letterhead.
func (d *Document) CompanyHeader() {
	d.Logo(bodyX, headerTopY+10, logoSize)
	d.TextAt(companyX, headerTopY, 13, false, "บริษัท สุริยา388 จำกัด")
	d.TextAt(companyX, headerTopY+18, 13, false, "เลขที่ 203/2 ม.12 ต.บ้านนา อ.เมืองชุมพร จ.ชุมพร 86190")
	d.TextAt(companyX, headerTopY+36, 13, false, "โทร: 081-078-2324 , 082-801-1225 , 095-905-5588")
	d.y = headerTopY + 60
}

// BillInfo draws the right-hand bill block: id + payee, payment method line
// with the purpose, and the localized date (with time when withTime).
func (d *Document) BillInfo(billID uint, payeeLabel, payee, purpose string, date string, timeStr string) {
	d.TextAt(billInfoX, headerTopY, 13, false, fmt.Sprintf("รหัสบิล: %d    %s: %s", billID, payeeLabel, payee))
	d.TextAt(billInfoX, headerTopY+18, 13, false, "โดย: ___ เงินสด   ___ โอนผ่านบัญชีธนาคาร   เพื่อชำระ: "+purpose)
	line := "วันที่: " + date
	if timeStr != "" {
		line += " เวลา: " + timeStr + " น."
	}
	d.TextAt(billInfoX, headerTopY+36, 13, false, line)
}

// VoucherTitle centers the bold document-type title below the header.
func (d *Document) VoucherTitle(title string) {
	d.MoveDown(8)
	d.CenteredLine(17, true, title)
}

// Signatures anchors the payer/payee signature blocks to the page bottom.
func (d *Document) Signatures(leftLabel, rightLabel string) {
	sigY := d.page.H - signatureRise
	d.TextAt(40, sigY, 11, false, "...............................................")
	d.TextAt(40, sigY+12, 11, false, leftLabel)
	d.TextAt(40, sigY+24, 11, false, "ลงวันที่: ........../........../..........")

	if rightLabel != "" {
		d.TextAt(340, sigY, 11, false, "...............................................")
		d.TextAt(340, sigY+12, 11, false, rightLabel)
		d.TextAt(340, sigY+24, 11, false, "ลงวันที่: ........../........../..........")
	}
}

func money(v float64) string  { return util.FormatMoney(v) }
func weight(v float64) string { return util.FormatWeight(v) }
