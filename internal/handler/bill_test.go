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

func TestBillRoundTrip(t *testing.T) {
	r, db := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/bills", gin.H{
		"seller": "สวนลุงมี",
		"date":   "2024-02-15",
		"items": []gin.H{
			{"variety": "หมอนทอง", "grade": "A", "weight": 100, "pricePerKg": 80},
			{"variety": "หมอนทอง", "grade": "B", "weight": 50, "pricePerKg": 60},
		},
	})
	requireStatus(t, w, http.StatusOK)

	var bill models.Bill
	decode(t, w, &bill)
	require.NotZero(t, bill.ID)
	require.Len(t, bill.Items, 2)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/bills/%d", bill.ID), nil)
	requireStatus(t, w, http.StatusOK)
	var fetched models.Bill
	decode(t, w, &fetched)
	assert.Equal(t, "สวนลุงมี", fetched.Seller)
	assert.Len(t, fetched.Items, 2)

	// update replaces the item collection wholesale
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/v1/bills/%d", bill.ID), gin.H{
		"seller": "สวนลุงมี",
		"date":   "2024-02-16",
		"items": []gin.H{
			{"variety": "ชะนี", "grade": "A", "weight": 30, "pricePerKg": 50},
		},
	})
	requireStatus(t, w, http.StatusOK)
	var updated models.Bill
	decode(t, w, &updated)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "ชะนี", updated.Items[0].Variety)

	// the old child rows are gone, not orphaned
	var itemCount int64
	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	assert.EqualValues(t, 1, itemCount)

	requireStatus(t, doJSON(t, r, http.MethodDelete, fmt.Sprintf("/v1/bills/%d", bill.ID), nil), http.StatusOK)
	requireStatus(t, doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/bills/%d", bill.ID), nil), http.StatusNotFound)

	require.NoError(t, db.Model(&models.Item{}).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestBillInvalidDate(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodPost, "/v1/bills", gin.H{
		"seller": "x", "date": "15/02/2024",
	})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestBillSummaryData(t *testing.T) {
	r, _ := newTestServer(t)

	for _, day := range []string{"2024-02-15", "2024-02-16"} {
		w := doJSON(t, r, http.MethodPost, "/v1/bills", gin.H{
			"seller": "สวน", "date": day,
			"items": []gin.H{
				{"variety": "หมอนทอง", "grade": "A", "weight": 10, "pricePerKg": 80},
			},
		})
		requireStatus(t, w, http.StatusOK)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/bills/summary/data", nil)
	requireStatus(t, w, http.StatusOK)

	var summary struct {
		ByDate map[string]map[string]struct {
			Weight float64 `json:"weight"`
			Total  float64 `json:"total"`
		} `json:"byDate"`
		ByGrade map[string]struct {
			Weight float64 `json:"weight"`
			Total  float64 `json:"total"`
		} `json:"byGrade"`
	}
	decode(t, w, &summary)

	require.Contains(t, summary.ByDate, "2024-02-15")
	assert.InDelta(t, 10, summary.ByDate["2024-02-15"]["หมอนทอง A"].Weight, 1e-9)
	assert.InDelta(t, 20, summary.ByGrade["A"].Weight, 1e-9)
	assert.InDelta(t, 1600, summary.ByGrade["A"].Total, 1e-9)
}

func TestUnknownRoute(t *testing.T) {
	r, _ := newTestServer(t)
	w := doJSON(t, r, http.MethodGet, "/v1/nothing-here", nil)
	requireStatus(t, w, http.StatusNotFound)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}
