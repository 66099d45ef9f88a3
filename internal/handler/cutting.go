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

// CuttingHandler serves cutting bills and their vouchers.
type CuttingHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewCuttingHandler(db *gorm.DB, assets config.AssetsConfig) *CuttingHandler {
	return &CuttingHandler{DB: db, Assets: assets}
}

type cuttingMainItemReq struct {
	Label  string   `json:"label"`
	Weight *float64 `json:"weight"`
	Price  float64  `json:"price"`
}

type cuttingDeductItemReq struct {
	Label        string   `json:"label"`
	Qty          float64  `json:"qty"`
	UnitPrice    float64  `json:"unitPrice"`
	ActualAmount *float64 `json:"actualAmount"`
}

type cuttingExtraReq struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type cuttingReq struct {
	CutterName      string                 `json:"cutterName" binding:"required"`
	Date            string                 `json:"date" binding:"required"`
	MainWeight      *float64               `json:"mainWeight"`
	MainPrice       *float64               `json:"mainPrice"`
	MainItems       []cuttingMainItemReq   `json:"mainItems"`
	DeductItems     []cuttingDeductItemReq `json:"deductItems"`
	ExtraDeductions []cuttingExtraReq      `json:"extraDeductions"`
}

func (r cuttingReq) children(billID uint) ([]models.MainItem, []models.DeductItem, []models.ExtraDeduction) {
	mains := make([]models.MainItem, len(r.MainItems))
	for i, it := range r.MainItems {
		mains[i] = models.MainItem{CuttingBillID: billID, Label: it.Label, Weight: it.Weight, Price: it.Price}
	}
	deducts := make([]models.DeductItem, len(r.DeductItems))
	for i, it := range r.DeductItems {
		deducts[i] = models.DeductItem{CuttingBillID: billID, Label: it.Label, Qty: it.Qty, UnitPrice: it.UnitPrice, ActualAmount: it.ActualAmount}
	}
	extras := make([]models.ExtraDeduction, len(r.ExtraDeductions))
	for i, it := range r.ExtraDeductions {
		extras[i] = models.ExtraDeduction{CuttingBillID: billID, Label: it.Label, Amount: it.Amount}
	}
	return mains, deducts, extras
}

// flatPair returns the legacy flat mainWeight/mainPrice pair, or nils when
// itemized main charges are present so the two modes never coexist.
func (r cuttingReq) flatPair() (*float64, *float64) {
	if len(r.MainItems) > 0 {
		return nil, nil
	}
	return r.MainWeight, r.MainPrice
}

func (h *CuttingHandler) preload() *gorm.DB {
	return h.DB.Preload("MainItems").Preload("DeductItems").Preload("ExtraDeductions")
}

func (h *CuttingHandler) Create(c *gin.Context) {
	var req cuttingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	mains, deducts, extras := req.children(0)
	mainWeight, mainPrice := req.flatPair()
	bill := models.CuttingBill{
		CutterName:      req.CutterName,
		Date:            date,
		MainWeight:      mainWeight,
		MainPrice:       mainPrice,
		MainItems:       mains,
		DeductItems:     deducts,
		ExtraDeductions: extras,
	}
	if err := h.DB.Create(&bill).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create cutting bill")
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *CuttingHandler) List(c *gin.Context) {
	var bills []models.CuttingBill
	if err := h.preload().Order("created_at DESC").Find(&bills).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch cutting bills")
		return
	}
	c.JSON(http.StatusOK, bills)
}

func (h *CuttingHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.CuttingBill
	if err := h.preload().First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Cutting bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch cutting bill")
		}
		return
	}
	c.JSON(http.StatusOK, bill)
}

func (h *CuttingHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req cuttingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var bill models.CuttingBill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Cutting bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating cutting bill")
		}
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.MainItem{}, &models.DeductItem{}, &models.ExtraDeduction{}} {
			if err := tx.Where("cutting_bill_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		mainWeight, mainPrice := req.flatPair()
		if err := tx.Model(&bill).Updates(map[string]interface{}{
			"cutter_name": req.CutterName,
			"date":        date,
			"main_weight": mainWeight,
			"main_price":  mainPrice,
		}).Error; err != nil {
			return err
		}
		mains, deducts, extras := req.children(id)
		if len(mains) > 0 {
			if err := tx.Create(&mains).Error; err != nil {
				return err
			}
		}
		if len(deducts) > 0 {
			if err := tx.Create(&deducts).Error; err != nil {
				return err
			}
		}
		if len(extras) > 0 {
			if err := tx.Create(&extras).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating cutting bill")
		return
	}

	var updated models.CuttingBill
	if err := h.preload().First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating cutting bill")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CuttingHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.CuttingBill
	if err := h.DB.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Cutting bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.MainItem{}, &models.DeductItem{}, &models.ExtraDeduction{}} {
			if err := tx.Where("cutting_bill_id = ?", id).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.CuttingBill{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// PDF streams the cutting payment voucher.
func (h *CuttingHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var bill models.CuttingBill
	if err := h.preload().First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Cutting bill not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.CuttingVoucher(h.Assets, bill)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("cutting-%d.pdf", bill.ID), data)
}
