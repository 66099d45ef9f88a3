package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/pdf"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DailyFinanceHandler serves the per-day income/expense note ledgers and
// their printed reports.
type DailyFinanceHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewDailyFinanceHandler(db *gorm.DB, assets config.AssetsConfig) *DailyFinanceHandler {
	return &DailyFinanceHandler{DB: db, Assets: assets}
}

type noteReq struct {
	Label  string  `json:"label" binding:"required"`
	Amount float64 `json:"amount"`
}

type dailyFinanceReq struct {
	Date         string    `json:"date" binding:"required"`
	CreatedBy    string    `json:"createdBy"`
	IncomeNotes  []noteReq `json:"incomeNotes"`
	ExpenseNotes []noteReq `json:"expenseNotes"`
}

func (h *DailyFinanceHandler) preload() *gorm.DB {
	return h.DB.Preload("IncomeNotes").Preload("ExpenseNotes")
}

func (h *DailyFinanceHandler) Create(c *gin.Context) {
	var req dailyFinanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	record := models.DailyFinance{Date: util.BangkokDay(date), CreatedBy: req.CreatedBy}
	for _, n := range req.IncomeNotes {
		record.IncomeNotes = append(record.IncomeNotes, models.IncomeNote{Label: n.Label, Amount: n.Amount})
	}
	for _, n := range req.ExpenseNotes {
		record.ExpenseNotes = append(record.ExpenseNotes, models.ExpenseNote{Label: n.Label, Amount: n.Amount})
	}
	if err := h.DB.Create(&record).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create daily finance")
		return
	}
	c.JSON(http.StatusOK, record)
}

// List returns all daily records. With ?date=YYYY-MM-DD it returns the
// single record for that day as an object, or null when the day has none.
func (h *DailyFinanceHandler) List(c *gin.Context) {
	if dateStr := c.Query("date"); dateStr != "" {
		date, err := util.ParseDate(dateStr)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
			return
		}
		day := util.BangkokDay(date)

		var record models.DailyFinance
		err = h.preload().
			Where("date >= ? AND date < ?", day, day.AddDate(0, 0, 1)).
			First(&record).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
			} else {
				util.Error(c, http.StatusInternalServerError, "Failed to fetch daily finance")
			}
			return
		}
		c.JSON(http.StatusOK, record)
		return
	}

	var records []models.DailyFinance
	if err := h.preload().Order("date DESC").Find(&records).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch daily finance")
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *DailyFinanceHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var record models.DailyFinance
	if err := h.preload().First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Daily finance not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch daily finance")
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// Update replaces the record header and both note collections.
func (h *DailyFinanceHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dailyFinanceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var record models.DailyFinance
	if err := h.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Daily finance not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating daily finance")
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_finance_id = ?", id).Delete(&models.IncomeNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("daily_finance_id = ?", id).Delete(&models.ExpenseNote{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&record).Updates(map[string]interface{}{
			"date":       util.BangkokDay(date),
			"created_by": req.CreatedBy,
		}).Error; err != nil {
			return err
		}
		for _, n := range req.IncomeNotes {
			if err := tx.Create(&models.IncomeNote{DailyFinanceID: id, Label: n.Label, Amount: n.Amount}).Error; err != nil {
				return err
			}
		}
		for _, n := range req.ExpenseNotes {
			if err := tx.Create(&models.ExpenseNote{DailyFinanceID: id, Label: n.Label, Amount: n.Amount}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating daily finance")
		return
	}

	var updated models.DailyFinance
	if err := h.preload().First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating daily finance")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DailyFinanceHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var record models.DailyFinance
	if err := h.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Daily finance not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("daily_finance_id = ?", id).Delete(&models.IncomeNote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("daily_finance_id = ?", id).Delete(&models.ExpenseNote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.DailyFinance{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// AddIncome appends one income note to an existing day.
func (h *DailyFinanceHandler) AddIncome(c *gin.Context) {
	h.addNote(c, true)
}

// AddExpense appends one expense note to an existing day.
func (h *DailyFinanceHandler) AddExpense(c *gin.Context) {
	h.addNote(c, false)
}

func (h *DailyFinanceHandler) addNote(c *gin.Context, income bool) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	var record models.DailyFinance
	if err := h.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Daily finance not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	var createErr error
	if income {
		createErr = h.DB.Create(&models.IncomeNote{DailyFinanceID: id, Label: req.Label, Amount: req.Amount}).Error
	} else {
		createErr = h.DB.Create(&models.ExpenseNote{DailyFinanceID: id, Label: req.Label, Amount: req.Amount}).Error
	}
	if createErr != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}

	var updated models.DailyFinance
	if err := h.preload().First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateIncomeNote edits a single income note in place.
func (h *DailyFinanceHandler) UpdateIncomeNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	var note models.IncomeNote
	if err := h.DB.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Income note not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}
	note.Label = req.Label
	note.Amount = req.Amount
	if err := h.DB.Save(&note).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}
	c.JSON(http.StatusOK, note)
}

// UpdateExpenseNote edits a single expense note in place.
func (h *DailyFinanceHandler) UpdateExpenseNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req noteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	var note models.ExpenseNote
	if err := h.DB.First(&note, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Expense note not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}
	note.Label = req.Label
	note.Amount = req.Amount
	if err := h.DB.Save(&note).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}
	c.JSON(http.StatusOK, note)
}

func (h *DailyFinanceHandler) DeleteIncomeNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.IncomeNote{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Income note not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

func (h *DailyFinanceHandler) DeleteExpenseNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.ExpenseNote{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Expense note not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// PDF streams the single-day cash-flow report.
func (h *DailyFinanceHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var record models.DailyFinance
	if err := h.preload().First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Daily finance not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.DailyFinanceReport(h.Assets, record)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("daily-%s.pdf", util.DayKey(record.Date)), data)
}

// MonthlyPDF streams the month report for ?month=YYYY-MM.
func (h *DailyFinanceHandler) MonthlyPDF(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		util.Error(c, http.StatusBadRequest, "กรุณาระบุเดือน")
		return
	}
	from, to, err := util.MonthRange(month)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบเดือนไม่ถูกต้อง")
		return
	}

	var records []models.DailyFinance
	if err := h.preload().
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&records).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}

	data, err := pdf.MonthlyFinanceReport(h.Assets, month, records)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("summary-%s.pdf", month), data)
}
