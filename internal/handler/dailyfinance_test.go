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

func TestDailyFinanceNotes(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/dailyfinance", gin.H{
		"date":      "2024-03-01",
		"createdBy": "สมหญิง",
		"incomeNotes": []gin.H{
			{"label": "ขายหน้าร้าน", "amount": 700},
		},
		"expenseNotes": []gin.H{
			{"label": "ค่าน้ำแข็ง", "amount": 100},
		},
	})
	requireStatus(t, w, http.StatusOK)

	var record models.DailyFinance
	decode(t, w, &record)
	require.NotZero(t, record.ID)
	require.Len(t, record.IncomeNotes, 1)
	require.Len(t, record.ExpenseNotes, 1)

	// append one more income note
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/dailyfinance/%d/add-income", record.ID), gin.H{
		"label": "ขายส่ง", "amount": 300,
	})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &record)
	require.Len(t, record.IncomeNotes, 2)

	// edit a note in place
	noteID := record.ExpenseNotes[0].ID
	w = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/v1/dailyfinance/expensenote/%d", noteID), gin.H{
		"label": "ค่าน้ำแข็ง 2 กระสอบ", "amount": 120,
	})
	requireStatus(t, w, http.StatusOK)

	// then remove it
	requireStatus(t, doJSON(t, r, http.MethodDelete,
		fmt.Sprintf("/v1/dailyfinance/expensenote/%d", noteID), nil), http.StatusOK)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/dailyfinance/%d", record.ID), nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &record)
	assert.Len(t, record.IncomeNotes, 2)
	assert.Empty(t, record.ExpenseNotes)
}

func TestDailyFinanceDateFilter(t *testing.T) {
	r, _ := newTestServer(t)

	for _, day := range []string{"2024-03-01", "2024-03-02"} {
		requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/dailyfinance", gin.H{"date": day}), http.StatusOK)
	}

	// a single day resolves to one record object, not an array
	w := doJSON(t, r, http.MethodGet, "/v1/dailyfinance?date=2024-03-01", nil)
	requireStatus(t, w, http.StatusOK)
	var record models.DailyFinance
	decode(t, w, &record)
	require.NotZero(t, record.ID)

	// a day with no record yields null
	w = doJSON(t, r, http.MethodGet, "/v1/dailyfinance?date=2024-03-03", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "null", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/v1/dailyfinance", nil)
	requireStatus(t, w, http.StatusOK)
	var records []models.DailyFinance
	decode(t, w, &records)
	assert.Len(t, records, 2)
}

func TestDailyFinanceNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	requireStatus(t, doJSON(t, r, http.MethodGet, "/v1/dailyfinance/42", nil), http.StatusNotFound)
	requireStatus(t, doJSON(t, r, http.MethodDelete, "/v1/dailyfinance/expensenote/42", nil), http.StatusNotFound)
}
