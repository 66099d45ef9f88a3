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

// SellHandler serves sell bills (cash sales) and their receipts.
type SellHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewSellHandler(db *gorm.DB, assets config.AssetsConfig) *SellHandler {
	return &SellHandler{DB: db, Assets: assets}
}

type sellItemReq struct {
	Variety    string    `json:"variety"`
	Grade      string    `json:"grade"`
	Weight     float64   `json:"weight"`
	PricePerKg float64   `json:"pricePerKg"`
	Weights    []float64 `json:"weights"`
}

type sellReq struct {
	Customer string        `json:"customer" binding:"required"`
	Date     string        `json:"date" binding:"required"`
	Items    []sellItemReq `json:"items"`
}

func (r sellReq) items(billID uint) []models.SellItem {
	items := make([]models.SellItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = models.SellItem{
			SellBillID: billID,
			Variety:    it.Variety,
			Grade:      it.Grade,
			Weight:     it.Weight,
			PricePerKg: it.PricePerKg,
			Weights:    it.Weights,
		}
	}
	return items
}

func (h *SellHandler) Create(c *gin.Context) {
	var req sellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	bill := models.SellBill{Customer: req.Customer, Date: date, Items: req.items(0)}
	if err := h.DB.Create(&bill).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create sell bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *SellHandler) List(c *gin.Context) {
	var bills []models.SellBill
	if err := h.DB.Preload("Items").Order("date DESC").Find(&bills).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch sell bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *SellHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.SellBill
	if err := h.DB.Preload("Items").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Sell bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch sell bill")
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *SellHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req sellReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var bill models.SellBill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Sell bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating sell bill")
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sell_bill_id = ?", id).Delete(&models.SellItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&bill).Updates(map[string]interface{}{
			"customer": req.Customer,
			"date":     date,
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
		util.Error(c, http.StatusInternalServerError, "Error updating sell bill")
		return
	}

	var updated models.SellBill
	if err := h.DB.Preload("Items").First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating sell bill")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SellHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.SellBill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Sell bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("sell_bill_id = ?", id).Delete(&models.SellItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.SellBill{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// PDF streams the cash sale receipt.
func (h *SellHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.SellBill
	if err := h.DB.Preload("Items").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Sell bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.SellVoucher(h.Assets, bill)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("receipt-sell-%d.pdf", bill.ID), data)
}
