package handler

import (
	"errors"
	"net/http"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CalculateHandler serves the grade-deduction calculator, both the stateless
// endpoint and the persisted per-farm history.
type CalculateHandler struct {
	DB *gorm.DB
}

func NewCalculateHandler(db *gorm.DB) *CalculateHandler {
	return &CalculateHandler{DB: db}
}

const fullyDeductedWarning = "น้ำหนักหักครบทั้งหมด ไม่มีน้ำหนักคงเหลือ"

type calculateReq struct {
	TotalWeight float64         `json:"totalWeight" binding:"required"`
	BasePrice   float64         `json:"basePrice"`
	Grades      []calc.GradeCut `json:"grades"`
}

// Calculate prices a harvest from the request body without persisting
// anything.
func (h *CalculateHandler) Calculate(c *gin.Context) {
	var req calculateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	res := calc.GradeDeduction(req.TotalWeight, req.BasePrice, req.Grades)
	out := gin.H{
		"netAmount":       res.NetAmount,
		"remainingWeight": res.RemainingWeight,
		"finalPrice":      res.FinalPrice,
	}
	if res.FullyDeducted {
		out["warning"] = fullyDeductedWarning
	}
	c.JSON(http.StatusOK, out)
}

type gradeHistoryReq struct {
	FarmName        string          `json:"farmName" binding:"required"`
	Date            string          `json:"date" binding:"required"`
	TotalWeight     float64         `json:"totalWeight"`
	BasePrice       float64         `json:"basePrice"`
	NetAmount       float64         `json:"netAmount"`
	FinalPrice      float64         `json:"finalPrice"`
	RemainingWeight float64         `json:"remainingWeight"`
	Grades          []calc.GradeCut `json:"grades"`
}

func (r gradeHistoryReq) grades(historyID uint) []models.Grade {
	out := make([]models.Grade, len(r.Grades))
	for i, g := range r.Grades {
		out[i] = models.Grade{GradeHistoryID: historyID, Name: g.Name, Weight: g.Weight, Price: g.Price}
	}
	return out
}

// CreateHistory stores a calculation snapshot. The derived fields come from
// the client as submitted; Update recomputes them instead.
func (h *CalculateHandler) CreateHistory(c *gin.Context) {
	var req gradeHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	history := models.GradeHistory{
		FarmName:        req.FarmName,
		Date:            date,
		TotalWeight:     req.TotalWeight,
		BasePrice:       req.BasePrice,
		NetAmount:       req.NetAmount,
		FinalPrice:      req.FinalPrice,
		RemainingWeight: req.RemainingWeight,
		Grades:          req.grades(0),
	}
	if err := h.DB.Create(&history).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create history")
		return
	}
	c.JSON(http.StatusOK, history)
}

func (h *CalculateHandler) ListHistory(c *gin.Context) {
	var histories []models.GradeHistory
	if err := h.DB.Preload("Grades").Order("date DESC").Find(&histories).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	c.JSON(http.StatusOK, histories)
}

func (h *CalculateHandler) GetHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var history models.GradeHistory
	if err := h.DB.Preload("Grades").First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "History not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch history")
		}
		return
	}
	c.JSON(http.StatusOK, history)
}

// UpdateHistory replaces the stored grades and recomputes the snapshot
// server-side.
func (h *CalculateHandler) UpdateHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req gradeHistoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var history models.GradeHistory
	if err := h.DB.First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "History not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating history")
		}
		return
	}

	res := calc.GradeDeduction(req.TotalWeight, req.BasePrice, req.Grades)

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grade_history_id = ?", id).Delete(&models.Grade{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&history).Updates(map[string]interface{}{
			"farm_name":        req.FarmName,
			"date":             date,
			"total_weight":     req.TotalWeight,
			"base_price":       req.BasePrice,
			"net_amount":       res.NetAmount,
			"final_price":      res.FinalPrice,
			"remaining_weight": res.RemainingWeight,
		}).Error; err != nil {
			return err
		}
		grades := req.grades(id)
		if len(grades) > 0 {
			return tx.Create(&grades).Error
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating history")
		return
	}

	var updated models.GradeHistory
	if err := h.DB.Preload("Grades").First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating history")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CalculateHandler) DeleteHistory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var history models.GradeHistory
	if err := h.DB.First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "History not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("grade_history_id = ?", id).Delete(&models.Grade{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.GradeHistory{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}
