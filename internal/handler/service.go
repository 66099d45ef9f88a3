package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/naraphan13/saijaitham-durian-backend/internal/calc"
	"github.com/naraphan13/saijaitham-durian-backend/internal/config"
	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/pdf"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ServiceHandler serves the three service-fee bill types: chemical dip,
// container loading and packing. They share the same flat CRUD shape.
type ServiceHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewServiceHandler(db *gorm.DB, assets config.AssetsConfig) *ServiceHandler {
	return &ServiceHandler{DB: db, Assets: assets}
}

type chemicalDipReq struct {
	Date       string  `json:"date" binding:"required"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"pricePerKg"`
	Recipient  string  `json:"recipient"`
}

func (h *ServiceHandler) CreateChemicalDip(c *gin.Context) {
	var req chemicalDipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	dip := models.ChemicalDip{Date: date, Weight: req.Weight, PricePerKg: req.PricePerKg, Recipient: req.Recipient}
	if err := h.DB.Create(&dip).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create chemical dip")
		return
	}
	c.JSON(http.StatusOK, dip)
}

func (h *ServiceHandler) ListChemicalDips(c *gin.Context) {
	var dips []models.ChemicalDip
	if err := h.DB.Order("date DESC").Find(&dips).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch chemical dips")
		return
	}
	c.JSON(http.StatusOK, dips)
}

func (h *ServiceHandler) GetChemicalDip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dip models.ChemicalDip
	if err := h.DB.First(&dip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Chemical dip not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch chemical dip")
		}
		return
	}
	c.JSON(http.StatusOK, dip)
}

func (h *ServiceHandler) UpdateChemicalDip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req chemicalDipReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var dip models.ChemicalDip
	if err := h.DB.First(&dip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Chemical dip not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating chemical dip")
		}
		return
	}

	dip.Date = date
	dip.Weight = req.Weight
	dip.PricePerKg = req.PricePerKg
	dip.Recipient = req.Recipient
	if err := h.DB.Save(&dip).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating chemical dip")
		return
	}
	c.JSON(http.StatusOK, dip)
}

func (h *ServiceHandler) DeleteChemicalDip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.ChemicalDip{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Chemical dip not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

func (h *ServiceHandler) ChemicalDipPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var dip models.ChemicalDip
	if err := h.DB.First(&dip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Chemical dip not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.ChemicalDipVoucher(h.Assets, dip)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("chemical-dip-%d.pdf", dip.ID), data)
}

type containerLoadingReq struct {
	Date       string                  `json:"date" binding:"required"`
	Recipient  string                  `json:"recipient"`
	Containers []models.ContainerEntry `json:"containers"`
}

func (h *ServiceHandler) CreateContainerLoading(c *gin.Context) {
	var req containerLoadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	loading := models.ContainerLoading{Date: date, Recipient: req.Recipient, Containers: req.Containers}
	if err := h.DB.Create(&loading).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create container loading")
		return
	}
	c.JSON(http.StatusOK, loading)
}

func (h *ServiceHandler) ListContainerLoadings(c *gin.Context) {
	var loadings []models.ContainerLoading
	if err := h.DB.Order("date DESC").Find(&loadings).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch container loadings")
		return
	}
	c.JSON(http.StatusOK, loadings)
}

func (h *ServiceHandler) GetContainerLoading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var loading models.ContainerLoading
	if err := h.DB.First(&loading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Container loading not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch container loading")
		}
		return
	}
	c.JSON(http.StatusOK, loading)
}

func (h *ServiceHandler) UpdateContainerLoading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req containerLoadingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var loading models.ContainerLoading
	if err := h.DB.First(&loading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Container loading not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating container loading")
		}
		return
	}

	loading.Date = date
	loading.Recipient = req.Recipient
	loading.Containers = req.Containers
	if err := h.DB.Save(&loading).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating container loading")
		return
	}
	c.JSON(http.StatusOK, loading)
}

func (h *ServiceHandler) DeleteContainerLoading(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.ContainerLoading{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Container loading not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

func (h *ServiceHandler) ContainerLoadingPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var loading models.ContainerLoading
	if err := h.DB.First(&loading, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Container loading not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.ContainerLoadingVoucher(h.Assets, loading)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("container-loading-%d.pdf", loading.ID), data)
}

type packingReq struct {
	Date             string                    `json:"date" binding:"required"`
	BigBoxQuantity   float64                   `json:"bigBoxQuantity"`
	BigBoxPrice      float64                   `json:"bigBoxPrice"`
	SmallBoxQuantity float64                   `json:"smallBoxQuantity"`
	SmallBoxPrice    float64                   `json:"smallBoxPrice"`
	Recipient        string                    `json:"recipient"`
	Deductions       []models.PackingDeduction `json:"deductions"`
}

func (h *ServiceHandler) CreatePacking(c *gin.Context) {
	var req packingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	packing := models.Packing{
		Date:             date,
		BigBoxQuantity:   req.BigBoxQuantity,
		BigBoxPrice:      req.BigBoxPrice,
		SmallBoxQuantity: req.SmallBoxQuantity,
		SmallBoxPrice:    req.SmallBoxPrice,
		Recipient:        req.Recipient,
		Deductions:       req.Deductions,
	}
	if err := h.DB.Create(&packing).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create packing")
		return
	}
	c.JSON(http.StatusOK, packing)
}

func (h *ServiceHandler) ListPackings(c *gin.Context) {
	var packings []models.Packing
	if err := h.DB.Order("date DESC").Find(&packings).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch packings")
		return
	}

	type packingRow struct {
		models.Packing
		TotalBeforeDeduction float64 `json:"totalBeforeDeduction"`
	}
	rows := make([]packingRow, len(packings))
	for i, p := range packings {
		boxTotal, _, _ := calc.PackingTotals(p)
		rows[i] = packingRow{Packing: p, TotalBeforeDeduction: boxTotal}
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ServiceHandler) GetPacking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var packing models.Packing
	if err := h.DB.First(&packing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Packing not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch packing")
		}
		return
	}
	c.JSON(http.StatusOK, packing)
}

func (h *ServiceHandler) UpdatePacking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req packingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var packing models.Packing
	if err := h.DB.First(&packing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Packing not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating packing")
		}
		return
	}

	packing.Date = date
	packing.BigBoxQuantity = req.BigBoxQuantity
	packing.BigBoxPrice = req.BigBoxPrice
	packing.SmallBoxQuantity = req.SmallBoxQuantity
	packing.SmallBoxPrice = req.SmallBoxPrice
	packing.Recipient = req.Recipient
	packing.Deductions = req.Deductions
	if err := h.DB.Save(&packing).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating packing")
		return
	}
	c.JSON(http.StatusOK, packing)
}

func (h *ServiceHandler) DeletePacking(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res := h.DB.Delete(&models.Packing{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, "Packing not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

func (h *ServiceHandler) PackingPDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var packing models.Packing
	if err := h.DB.First(&packing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Packing not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.PackingVoucher(h.Assets, packing)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("packing-%d.pdf", packing.ID), data)
}
