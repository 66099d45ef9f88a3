package calc

import (
	"testing"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeNotesChronological(t *testing.T) {
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	record := models.DailyFinance{
		IncomeNotes: []models.IncomeNote{
			{ID: 3, Label: "ขายหน้าร้าน", Amount: 500, CreatedAt: base.Add(2 * time.Hour)},
		},
		ExpenseNotes: []models.ExpenseNote{
			{ID: 1, Label: "ค่าน้ำแข็ง", Amount: 100, CreatedAt: base},
			{ID: 5, Label: "ค่าแรง", Amount: 200, CreatedAt: base.Add(time.Hour)},
		},
	}

	notes := MergeNotes(record)
	require.Len(t, notes, 3)
	assert.Equal(t, "ค่าน้ำแข็ง", notes[0].Label)
	assert.Equal(t, "ค่าแรง", notes[1].Label)
	assert.Equal(t, "ขายหน้าร้าน", notes[2].Label)
	assert.Equal(t, NoteIncome, notes[2].Type)
}

func TestMergeNotesTieBreaksByID(t *testing.T) {
	ts := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	record := models.DailyFinance{
		IncomeNotes:  []models.IncomeNote{{ID: 2, Label: "b", CreatedAt: ts}},
		ExpenseNotes: []models.ExpenseNote{{ID: 1, Label: "a", CreatedAt: ts}},
	}

	notes := MergeNotes(record)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Label)
	assert.Equal(t, "b", notes[1].Label)
}

func TestDailyNet(t *testing.T) {
	record := models.DailyFinance{
		IncomeNotes: []models.IncomeNote{
			{Amount: 700},
			{Amount: 300},
		},
		ExpenseNotes: []models.ExpenseNote{
			{Amount: 400},
		},
	}

	income, expense, net := DailyNet(record)
	assert.InDelta(t, 1000, income, 1e-9)
	assert.InDelta(t, 400, expense, 1e-9)
	assert.InDelta(t, 600, net, 1e-9)
}
