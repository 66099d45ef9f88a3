package handler

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/pdf"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// BillHandler serves purchase bills, their summary groupings and vouchers.
type BillHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewBillHandler(db *gorm.DB, assets config.AssetsConfig) *BillHandler {
	return &BillHandler{DB: db, Assets: assets}
}

type billItemReq struct {
	Variety    string  `json:"variety"`
	Grade      string  `json:"grade"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"pricePerKg"`
}

type billReq struct {
	Seller string        `json:"seller" binding:"required"`
	Date   string        `json:"date" binding:"required"`
	Items  []billItemReq `json:"items"`
}

func (r billReq) items(billID uint) []models.Item {
	items := make([]models.Item, len(r.Items))
	for i, it := range r.Items {
		items[i] = models.Item{
			BillID:     billID,
			Variety:    it.Variety,
			Grade:      it.Grade,
			Weight:     it.Weight,
			PricePerKg: it.PricePerKg,
		}
	}
	return items
}

// Create records a new purchase bill with its line items.
func (h *BillHandler) Create(c *gin.Context) {
	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	bill := models.Bill{Seller: req.Seller, Date: date, Items: req.items(0)}
	if err := h.DB.Create(&bill).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

// List returns all bills, newest first.
func (h *BillHandler) List(c *gin.Context) {
	var bills []models.Bill
	if err := h.DB.Preload("Items").Order("date DESC").Find(&bills).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

// Get returns one bill with its items.
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.Bill
	if err := h.DB.Preload("Items").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch bill")
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

// Update replaces the bill header and its entire item collection.
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req billReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var bill models.Bill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating bill")
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&bill).Updates(map[string]interface{}{
			"seller": req.Seller,
			"date":   date,
		}).Error; err != nil {
			return err
		}
		items := req.items(id)
		if len(items) > 0 {
			return tx.Create(&items).Error
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating bill")
		return
	}

	var updated models.Bill
	if err := h.DB.Preload("Items").First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating bill")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a bill and its items.
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.Bill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("bill_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Bill{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

func (h *BillHandler) summary() (calc.PurchaseSummary, error) {
	var items []models.Item
	if err := h.DB.Find(&items).Error; err != nil {
		return calc.PurchaseSummary{}, err
	}
	var bills []models.Bill
	if err := h.DB.Find(&bills).Error; err != nil {
		return calc.PurchaseSummary{}, err
	}
	billsByID := make(map[uint]models.Bill, len(bills))
	for _, b := range bills {
		billsByID[b.ID] = b
	}
	return calc.SummarizePurchases(items, billsByID), nil
}

// Summary returns the four purchase groupings (by day, grade, variety and
// variety+grade), recomputed from all stored items.
func (h *BillHandler) Summary(c *gin.Context) {
	s, err := h.summary()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}
	c.JSON(http.StatusOK, s)
}

// SummaryXLSX exports the purchase summary as a spreadsheet, one sheet per
// grouping.
func (h *BillHandler) SummaryXLSX(c *gin.Context) {
	s, err := h.summary()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch summary")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	writeFlatSheet := func(sheet string, m map[string]calc.WeightTotal, keyHeader string) error {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		_ = f.SetSheetRow(sheet, "A1", &[]interface{}{keyHeader, "น้ำหนัก (กก.)", "มูลค่า (บาท)"})
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for i, k := range keys {
			cell := fmt.Sprintf("A%d", i+2)
			if err := f.SetSheetRow(sheet, cell, &[]interface{}{k, m[k].Weight, m[k].Total}); err != nil {
				return err
			}
		}
		return nil
	}

	// date sheet first, on the default sheet
	defaultSheet := f.GetSheetName(0)
	_ = f.SetSheetName(defaultSheet, "ByDate")
	_ = f.SetSheetRow("ByDate", "A1", &[]interface{}{"วันที่", "รายการ", "น้ำหนัก (กก.)", "มูลค่า (บาท)"})
	days := make([]string, 0, len(s.ByDate))
	for d := range s.ByDate {
		days = append(days, d)
	}
	sort.Strings(days)
	row := 2
	for _, day := range days {
		combos := make([]string, 0, len(s.ByDate[day]))
		for combo := range s.ByDate[day] {
			combos = append(combos, combo)
		}
		sort.Strings(combos)
		for _, combo := range combos {
			b := s.ByDate[day][combo]
			_ = f.SetSheetRow("ByDate", fmt.Sprintf("A%d", row), &[]interface{}{day, combo, b.Weight, b.Total})
			row++
		}
	}

	if err := writeFlatSheet("ByGrade", s.ByGrade, "เกรด"); err != nil ||
		writeFlatSheet("ByVariety", s.ByVariety, "พันธุ์") != nil ||
		writeFlatSheet("ByVarietyGrade", s.ByVarietyGrade, "พันธุ์ เกรด") != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to build workbook")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="bill-summary-%s.xlsx"`, time.Now().In(util.Bangkok).Format("20060102")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// PDF streams the purchase payment voucher.
func (h *BillHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.Bill
	if err := h.DB.Preload("Items").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.BillVoucher(h.Assets, bill)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("bill-%d.pdf", bill.ID), data)
}
