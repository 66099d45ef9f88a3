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

// PayrollHandler serves wage payments and payslips.
type PayrollHandler struct {
	DB     *gorm.DB
	Assets config.AssetsConfig
}

func NewPayrollHandler(db *gorm.DB, assets config.AssetsConfig) *PayrollHandler {
	return &PayrollHandler{DB: db, Assets: assets}
}

type payrollDeductionReq struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type payrollReq struct {
	EmployeeName  string                `json:"employeeName" binding:"required"`
	Date          string                `json:"date" binding:"required"`
	PayType       string                `json:"payType" binding:"required"`
	WorkDays      *float64              `json:"workDays"`
	PricePerDay   *float64              `json:"pricePerDay"`
	MonthlySalary *float64              `json:"monthlySalary"`
	Months        *float64              `json:"months"`
	Bonus         float64               `json:"bonus"`
	Deductions    []payrollDeductionReq `json:"deductions"`
}

func validPayType(t string) bool {
	switch t {
	case models.PayTypeDaily, models.PayTypeMonthly, models.PayTypeContainer:
		return true
	}
	return false
}

func (r payrollReq) deductions(payrollID uint) []models.PayrollDeduction {
	out := make([]models.PayrollDeduction, len(r.Deductions))
	for i, d := range r.Deductions {
		out[i] = models.PayrollDeduction{PayrollID: payrollID, Name: d.Name, Amount: d.Amount}
	}
	return out
}

func (h *PayrollHandler) Create(c *gin.Context) {
	var req payrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	if !validPayType(req.PayType) {
		util.Error(c, http.StatusBadRequest, "ประเภทการจ่ายไม่ถูกต้อง")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	payroll := models.Payroll{
		EmployeeName:  req.EmployeeName,
		Date:          date,
		PayType:       req.PayType,
		WorkDays:      req.WorkDays,
		PricePerDay:   req.PricePerDay,
		MonthlySalary: req.MonthlySalary,
		Months:        req.Months,
		Bonus:         req.Bonus,
		Deductions:    req.deductions(0),
	}
	payroll.TotalPay, payroll.TotalDeduct, payroll.NetPay = calc.PayrollTotals(payroll)

	if err := h.DB.Create(&payroll).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to create payroll")
		return
	}
	c.JSON(http.StatusOK, payroll)
}

func (h *PayrollHandler) List(c *gin.Context) {
	var payrolls []models.Payroll
	if err := h.DB.Preload("Deductions").Order("date DESC").Find(&payrolls).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Failed to fetch payrolls")
		return
	}
	c.JSON(http.StatusOK, payrolls)
}

func (h *PayrollHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payroll models.Payroll
	if err := h.DB.Preload("Deductions").First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Payroll not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Failed to fetch payroll")
		}
		return
	}
	c.JSON(http.StatusOK, payroll)
}

func (h *PayrollHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req payrollReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "กรุณากรอกข้อมูลให้ครบถ้วน")
		return
	}
	if !validPayType(req.PayType) {
		util.Error(c, http.StatusBadRequest, "ประเภทการจ่ายไม่ถูกต้อง")
		return
	}
	date, err := util.ParseDate(req.Date)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "รูปแบบวันที่ไม่ถูกต้อง")
		return
	}

	var payroll models.Payroll
	if err := h.DB.First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Payroll not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "Error updating payroll")
		}
		return
	}

	next := models.Payroll{
		EmployeeName:  req.EmployeeName,
		Date:          date,
		PayType:       req.PayType,
		WorkDays:      req.WorkDays,
		PricePerDay:   req.PricePerDay,
		MonthlySalary: req.MonthlySalary,
		Months:        req.Months,
		Bonus:         req.Bonus,
		Deductions:    req.deductions(id),
	}
	totalPay, totalDeduct, netPay := calc.PayrollTotals(next)

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payroll_id = ?", id).Delete(&models.PayrollDeduction{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&payroll).Updates(map[string]interface{}{
			"employee_name":  req.EmployeeName,
			"date":           date,
			"pay_type":       req.PayType,
			"work_days":      req.WorkDays,
			"price_per_day":  req.PricePerDay,
			"monthly_salary": req.MonthlySalary,
			"months":         req.Months,
			"bonus":          req.Bonus,
			"total_pay":      totalPay,
			"total_deduct":   totalDeduct,
			"net_pay":        netPay,
		}).Error; err != nil {
			return err
		}
		if len(next.Deductions) > 0 {
			return tx.Create(&next.Deductions).Error
		}
		return nil
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating payroll")
		return
	}

	var updated models.Payroll
	if err := h.DB.Preload("Deductions").First(&updated, id).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, "Error updating payroll")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PayrollHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payroll models.Payroll
	if err := h.DB.First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Payroll not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		}
		return
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payroll_id = ?", id).Delete(&models.PayrollDeduction{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Payroll{}, id).Error
	})
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "ลบไม่สำเร็จ")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "ลบสำเร็จ"})
}

// PDF streams the payslip voucher.
func (h *PayrollHandler) PDF(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var payroll models.Payroll
	if err := h.DB.Preload("Deductions").First(&payroll, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Payroll not found")
		} else {
			util.Error(c, http.StatusInternalServerError, "เกิดข้อผิดพลาด")
		}
		return
	}

	data, err := pdf.PayrollVoucher(h.Assets, payroll)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "สร้าง PDF ไม่สำเร็จ")
		return
	}
	servePDF(c, fmt.Sprintf("payroll-%d.pdf", payroll.ID), data)
}
