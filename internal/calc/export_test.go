package calc

import (
	"testing"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportTotals(t *testing.T) {
	exp := models.ExportContainer{
		DurianItems:   []byte(`[{"variety":"หมอนทอง","grade":"A","boxes":100,"weightPerBox":18,"pricePerKg":90}]`),
		FreightItems:  []byte(`[{"weight":1800,"pricePerKg":5}]`),
		HandlingCosts: []byte(`{"big":{"weight":1800,"costPerKg":2}}`),
		BoxCosts:      []byte(`{"big":{"quantity":100,"unitCost":45}}`),
		InspectionFee: 1500,
	}

	b := ExportTotals(exp)
	assert.InDelta(t, 162000, b.DurianTotal, 1e-9)
	assert.InDelta(t, 9000, b.FreightTotal, 1e-9)
	assert.InDelta(t, 3600, b.HandlingTotal, 1e-9)
	assert.InDelta(t, 4500, b.BoxTotal, 1e-9)
	assert.InDelta(t, 162000+9000+3600+4500+1500, b.Total, 1e-9)
	assert.Empty(t, b.Warnings)
}

func TestExportTotalsMalformedCollection(t *testing.T) {
	exp := models.ExportContainer{
		DurianItems:   []byte(`{"this is": "not an array"}`),
		FreightItems:  []byte(`[{"weight":100,"pricePerKg":3}]`),
		InspectionFee: 200,
	}

	b := ExportTotals(exp)
	require.Len(t, b.Warnings, 1)
	assert.Contains(t, b.Warnings[0], "durianItems")
	assert.Zero(t, b.DurianTotal)
	// the rest of the document still totals
	assert.InDelta(t, 500, b.Total, 1e-9)
}

func TestExportTotalsEmptyBlobs(t *testing.T) {
	b := ExportTotals(models.ExportContainer{InspectionFee: 100})
	assert.Empty(t, b.Warnings)
	assert.InDelta(t, 100, b.Total, 1e-9)
}
