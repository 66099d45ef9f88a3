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

func TestCalculateStateless(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/calculate", gin.H{
		"totalWeight": 100,
		"basePrice":   50,
		"grades":      []gin.H{{"name": "ตกไซซ์", "weight": 10, "price": 5}},
	})
	requireStatus(t, w, http.StatusOK)

	var res struct {
		NetAmount       float64 `json:"netAmount"`
		RemainingWeight float64 `json:"remainingWeight"`
		FinalPrice      float64 `json:"finalPrice"`
		Warning         string  `json:"warning"`
	}
	decode(t, w, &res)
	assert.InDelta(t, 4950, res.NetAmount, 1e-9)
	assert.InDelta(t, 90, res.RemainingWeight, 1e-9)
	assert.InDelta(t, 55, res.FinalPrice, 1e-9)
	assert.Empty(t, res.Warning)
}

func TestCalculateFullyDeductedWarning(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/calculate", gin.H{
		"totalWeight": 100,
		"basePrice":   50,
		"grades":      []gin.H{{"weight": 100, "price": 10}},
	})
	requireStatus(t, w, http.StatusOK)

	var res struct {
		FinalPrice float64 `json:"finalPrice"`
		Warning    string  `json:"warning"`
	}
	decode(t, w, &res)
	assert.Zero(t, res.FinalPrice)
	assert.NotEmpty(t, res.Warning)
}

func TestGradeHistoryUpdateRecomputes(t *testing.T) {
	r, _ := newTestServer(t)

	// create stores the client-sent snapshot as is
	w := doJSON(t, r, http.MethodPost, "/v1/calculate/history", gin.H{
		"farmName":        "สวนลุงมี",
		"date":            "2024-02-15",
		"totalWeight":     100,
		"basePrice":       50,
		"netAmount":       1234, // deliberately wrong
		"finalPrice":      99,
		"remainingWeight": 1,
		"grades":          []gin.H{{"name": "ตกไซซ์", "weight": 10, "price": 5}},
	})
	requireStatus(t, w, http.StatusOK)
	var history models.GradeHistory
	decode(t, w, &history)
	require.NotZero(t, history.ID)
	assert.InDelta(t, 1234, history.NetAmount, 1e-9)

	// update recomputes server-side from the inputs
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/v1/calculate/%d", history.ID), gin.H{
		"farmName":    "สวนลุงมี",
		"date":        "2024-02-15",
		"totalWeight": 100,
		"basePrice":   50,
		"grades":      []gin.H{{"name": "ตกไซซ์", "weight": 10, "price": 5}},
	})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &history)
	assert.InDelta(t, 4950, history.NetAmount, 1e-9)
	assert.InDelta(t, 90, history.RemainingWeight, 1e-9)
	assert.InDelta(t, 55, history.FinalPrice, 1e-9)
	require.Len(t, history.Grades, 1)
}
