package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/pdf"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ExportHandler serves export-container cost documents, their season tagging
// and the printed invoices and season summaries.
type ExportHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
	Log    *zap.Logger
}

func NewExportHandler(db *gorm.DB, assets config.AssetsConfig, log *zap.Logger) *ExportHandler {
	return &ExportHandler{DB: db, Assets: assets, Log: log}
}

type exportReq struct {
	Date          string          `json:"date" binding:"required"`
	City          string          `json:"city"`
	ContainerInfo string          `json:"containerInfo"`
	ContainerCode string          `json:"containerCode"`
	RefCode       string          `json:"refCode"`
	DurianItems   json.RawMessage `json:"durianItems"`
	FreightItems  json.RawMessage `json:"freightItems"`
	HandlingCosts json.RawMessage `json:"handlingCosts"`
	BoxCosts      json.RawMessage `json:"boxCosts"`
	InspectionFee float64         `json:"inspectionFee"`
	BrandSummary  string          `json:"brandSummary"`
}

// resolveSeason picks the season covering the given day: started on or
// before it and either still open or ending on or after it. Overlaps go to
// the latest-starting season.
func (h *ExportHandler) resolveSeason(date time.Time) *uint {
	day := util.BangkokDay(date)
	var season models.Season
	err := h.DB.
		Where("start_date <= ? AND (end_date IS NULL OR end_date >= ?)", day, day).
		Order("start_date DESC").
		First(&season).Error
	if err != nil {
		return nil
	}
	id := season.ID
	return &id
}

func (h *ExportHandler) Create(c *gin.Context) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	refCode := req.RefCode
	if refCode == "" {
		refCode = uuid.NewString()
	}

	exp := models.ExportContainer{
		Date:          date,
		City:          req.City,
		ContainerInfo: req.ContainerInfo,
		ContainerCode: req.ContainerCode,
		RefCode:       refCode,
		DurianItems:   datatypes.JSON(req.DurianItems),
		FreightItems:  datatypes.JSON(req.FreightItems),
		HandlingCosts: datatypes.JSON(req.HandlingCosts),
		BoxCosts:      datatypes.JSON(req.BoxCosts),
		InspectionFee: req.InspectionFee,
		BrandSummary:  req.BrandSummary,
		SeasonID:      h.resolveSeason(date),
	}
	if err := h.DB.Create(&exp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create export")
		return
	}
	c.JSON(http.StatusOK, exp)
}

// List returns exports, optionally filtered by ?seasonId=.
func (h *ExportHandler) List(c *gin.Context) {
	q := h.DB.Order("date DESC")
	if seasonID := c.Query("seasonId"); seasonID != "" {
		q = q.Where("season_id = ?", seasonID)
	}
	var exports []models.ExportContainer
	if err := q.Find(&exports).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch exports")
		return
	}
	c.JSON(http.StatusOK, exports)
}

func (h *ExportHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var exp models.ExportContainer
	if err := h.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Export not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch export")
		}
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExportHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var exp models.ExportContainer
	if err := h.DB.First(&exp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Export not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating export")
		}
		return
	}

	exp.Date = date
	exp.City = req.City
	exp.ContainerInfo = req.ContainerInfo
	exp.ContainerCode = req.ContainerCode
	if req.RefCode != "" {
		exp.RefCode = req.RefCode
	}
	exp.DurianItems = datatypes.JSON(req.DurianItems)
	exp.FreightItems = datatypes.JSON(req.FreightItems)
	exp.HandlingCosts = datatypes.JSON(req.HandlingCosts)
	exp.BoxCosts = datatypes.JSON(req.BoxCosts)
	exp.InspectionFee = req.InspectionFee
	exp.BrandSummary = req.BrandSummary
	exp.SeasonID = h.resolveSeason(date)

	if err := h.DB.Save(&exp).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating export")
		return
	}
	c.JSON(http.StatusOK, exp)
}

func (h *ExportHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.ExportContainer{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Export not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// InvoicePDF renders the export invoice straight from the request body.
// Nothing is persisted.
func (h *ExportHandler) InvoicePDF(c *gin.Context) {
	var data pdf.ExportInvoiceData
	if err := c.ShouldBindJSON(&data); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}

	out, err := pdf.ExportInvoice(h.Assets, data)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}

	name := "export.pdf"
	if data.Date != "" {
		if d, err := util.ParseDate(data.Date); err == nil {
			name = fmt.Sprintf("export-%s.pdf", util.DayKey(d))
		}
	}
	servePDF(c, name, out)
}

// SeasonSummaryPDF rolls up every export in a season. A record with a
// malformed cost collection logs a warning and contributes zero to that
// collection, never aborts the document.
func (h *ExportHandler) SeasonSummaryPDF(c *gin.Context) {
	seasonID := c.Query("seasonId")
	if seasonID == "" {
		util.Error(c, http.StatusBadRequest, "กรุณาระบุฤดูกาล")
		return
	}

	var season models.Season
	if err := h.DB.First(&season, "id = ?", seasonID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Season not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	var exports []models.ExportContainer
	if err := h.DB.Where("season_id = ?", season.ID).Order("date ASC").Find(&exports).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		return
	}

	rows := make([]pdf.SeasonRow, 0, len(exports))
	for _, exp := range exports {
		breakdown := calc.ExportTotals(exp)
		for _, w := range breakdown.Warnings {
			h.Log.Warn("skipping malformed export cost collection",
				zap.Uint("exportId", exp.ID),
				zap.String("detail", w))
		}
		rows = append(rows, pdf.SeasonRow{Export: exp, Total: breakdown.Total})
	}

	out, err := pdf.SeasonSummary(h.Assets, season, rows)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("summary-season-%d.pdf", season.ID), out)
}
