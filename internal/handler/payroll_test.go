package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayrollSnapshots(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/payroll", gin.H{
		"employeeName": "สมศักดิ์",
		"date":         "2024-02-15",
		"payType":      "daily",
		"workDays":     10,
		"pricePerDay":  300,
		"bonus":        100,
		"deductions":   []gin.H{{"name": "เบิกล่วงหน้า", "amount": 50}},
	})
	requireStatus(t, w, http.StatusOK)

	var payroll models.Payroll
	decode(t, w, &payroll)
	require.NotZero(t, payroll.ID)
	assert.InDelta(t, 3100, payroll.TotalPay, 1e-9)
	assert.InDelta(t, 50, payroll.TotalDeduct, 1e-9)
	assert.InDelta(t, 3050, payroll.NetPay, 1e-9)

	// switching to monthly pay recomputes the snapshot
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/v1/payroll/%d", payroll.ID), gin.H{
		"employeeName":  "สมศักดิ์",
		"date":          "2024-02-15",
		"payType":       "monthly",
		"monthlySalary": 15000,
		"months":        1,
	})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &payroll)
	assert.InDelta(t, 15000, payroll.TotalPay, 1e-9)
	assert.Zero(t, payroll.TotalDeduct)
	assert.Empty(t, payroll.Deductions)
}

func TestPayrollRejectsUnknownPayType(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/payroll", gin.H{
		"employeeName": "x",
		"date":         "2024-02-15",
		"payType":      "hourly",
	})
	requireStatus(t, w, http.StatusBadRequest)
}
