package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
	"github.com/naraphan13/saijaitham-durian-backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedSeasons(t *testing.T, r *gin.Engine) (uint, uint) {
	t.Helper()

	w := doJSON(t, r, http.MethodPost, "/v1/seasons", gin.H{
		"name": "ฤดูกาล 2024 ต้นปี", "startDate": "2024-01-01", "endDate": "2024-03-31",
	})
	requireStatus(t, w, http.StatusOK)
	var a models.Season
	decode(t, w, &a)

	w = doJSON(t, r, http.MethodPost, "/v1/seasons", gin.H{
		"name": "ฤดูกาล 2024 ปลายปี", "startDate": "2024-04-01",
	})
	requireStatus(t, w, http.StatusOK)
	var b models.Season
	decode(t, w, &b)

	return a.ID, b.ID
}

func TestExportSeasonTaggingOnCreate(t *testing.T) {
	r, _ := newTestServer(t)
	seasonA, seasonB := seedSeasons(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/export", gin.H{
		"date": "2024-02-15", "city": "กวางโจว",
	})
	requireStatus(t, w, http.StatusOK)
	var exp models.ExportContainer
	decode(t, w, &exp)
	require.NotNil(t, exp.SeasonID)
	assert.Equal(t, seasonA, *exp.SeasonID)
	assert.NotEmpty(t, exp.RefCode) // defaulted when not supplied

	// open-ended season catches later dates
	w = doJSON(t, r, http.MethodPost, "/v1/export", gin.H{"date": "2024-05-01"})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &exp)
	require.NotNil(t, exp.SeasonID)
	assert.Equal(t, seasonB, *exp.SeasonID)

	// before any season
	w = doJSON(t, r, http.MethodPost, "/v1/export", gin.H{"date": "2023-12-31"})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &exp)
	assert.Nil(t, exp.SeasonID)
}

func TestExportSeasonRetaggedOnUpdate(t *testing.T) {
	r, _ := newTestServer(t)
	seasonA, seasonB := seedSeasons(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/export", gin.H{"date": "2024-02-15"})
	requireStatus(t, w, http.StatusOK)
	var exp models.ExportContainer
	decode(t, w, &exp)
	require.NotNil(t, exp.SeasonID)
	require.Equal(t, seasonA, *exp.SeasonID)

	w = doJSON(t, r, http.MethodPut, fmt.Sprintf("/v1/export/%d", exp.ID), gin.H{
		"date": "2024-05-10",
	})
	requireStatus(t, w, http.StatusOK)
	decode(t, w, &exp)
	require.NotNil(t, exp.SeasonID)
	assert.Equal(t, seasonB, *exp.SeasonID)
}

func TestExportListFilteredBySeason(t *testing.T) {
	r, _ := newTestServer(t)
	seasonA, _ := seedSeasons(t, r)

	requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/export", gin.H{"date": "2024-02-15"}), http.StatusOK)
	requireStatus(t, doJSON(t, r, http.MethodPost, "/v1/export", gin.H{"date": "2024-05-01"}), http.StatusOK)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/v1/export?seasonId=%d", seasonA), nil)
	requireStatus(t, w, http.StatusOK)

	var exports []models.ExportContainer
	decode(t, w, &exports)
	require.Len(t, exports, 1)
	assert.Equal(t, "2024-02-15", util.DayKey(exports[0].Date))
}
