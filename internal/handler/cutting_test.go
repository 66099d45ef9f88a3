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

func TestCuttingFlatPairDroppedWhenItemized(t *testing.T) {
	r, _ := newTestServer(t)

	// the flat pair must not survive alongside itemized main charges
	w := doJSON(t, r, http.MethodPost, "/v1/cuttingbills", gin.H{
		"cutterName": "ช่างตัด",
		"date":       "2024-02-15",
		"mainWeight": 100,
		"mainPrice":  20,
		"mainItems": []gin.H{
			{"label": "ตัดหมอนทอง", "weight": 100, "price": 3},
		},
	})
	requireStatus(t, w, http.StatusOK)

	var bill models.CuttingBill
	decode(t, w, &bill)
	require.NotZero(t, bill.ID)
	assert.Nil(t, bill.MainWeight)
	assert.Nil(t, bill.MainPrice)
	require.Len(t, bill.MainItems, 1)

	// and the stored row agrees with the response
	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/cuttingbills/%d", bill.ID), nil)
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &bill)
	assert.Nil(t, bill.MainWeight)
	assert.Nil(t, bill.MainPrice)
}

func TestCuttingFlatPairKeptWithoutItems(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/v1/cuttingbills", gin.H{
		"cutterName": "ช่างตัด",
		"date":       "2024-02-15",
		"mainWeight": 1000,
		"mainPrice":  2,
	})
	requireStatus(t, w, http.StatusOK)

	var bill models.CuttingBill
	decode(t, w, &bill)
	require.NotNil(t, bill.MainWeight)
	require.NotNil(t, bill.MainPrice)
	assert.InDelta(t, 1000, *bill.MainWeight, 1e-9)
	assert.InDelta(t, 2, *bill.MainPrice, 1e-9)

	// switching a flat bill to itemized mode nulls the pair on update
	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/v1/cuttingbills/%d", bill.ID), gin.H{
		"cutterName": "ช่างตัด",
		"date":       "2024-02-15",
		"mainWeight": 1000,
		"mainPrice":  2,
		"mainItems": []gin.H{
			{"label": "เหมาเช้า", "price": 500},
		},
	})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &bill)
	assert.Nil(t, bill.MainWeight)
	assert.Nil(t, bill.MainPrice)
	require.Len(t, bill.MainItems, 1)
}

func TestCuttingListNewestCreatedFirst(t *testing.T) {
	r, _ := newTestServer(t)

	// same bill date, so only creation time can order them
	var ids []uint
	for _, name := range []string{"ช่างหนึ่ง", "ช่างสอง"} {
		w := doJSON(t, r, http.MethodPost, "/v1/cuttingbills", gin.H{
			"cutterName": name,
			"date":       "2024-02-15",
		})
		requireStatus(t, w, http.StatusOK)
		var bill models.CuttingBill
		decode(t, w, &bill)
		ids = append(ids, bill.ID)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/cuttingbills", nil)
	requireStatus(t, w, http.StatusOK)
	var bills []models.CuttingBill
	decode(t, w, &bills)
	require.Len(t, bills, 2)
	assert.Equal(t, ids[1], bills[0].ID)
	assert.Equal(t, ids[0], bills[1].ID)
}
