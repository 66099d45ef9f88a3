package calc

import (
	"sort"
	"time"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
)

const (
	NoteIncome  = "income"
	NoteExpense = "expense"
)

// FinanceNote is an income or expense note flattened for chronological
// display.
type FinanceNote struct {
	ID        uint
	Type      string
	Label     string
	Amount    float64
	CreatedAt time.Time
}

// MergeNotes interleaves a day's income and expense notes into one sequence
// ordered by creation time, falling back to record ID when timestamps tie
// or are missing.
func MergeNotes(record models.DailyFinance) []FinanceNote {
	notes := make([]FinanceNote, 0, len(record.IncomeNotes)+len(record.ExpenseNotes))
	for _, n := range record.IncomeNotes {
		notes = append(notes, FinanceNote{ID: n.ID, Type: NoteIncome, Label: n.Label, Amount: n.Amount, CreatedAt: n.CreatedAt})
	}
	for _, n := range record.ExpenseNotes {
		notes = append(notes, FinanceNote{ID: n.ID, Type: NoteExpense, Label: n.Label, Amount: n.Amount, CreatedAt: n.CreatedAt})
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if !notes[i].CreatedAt.Equal(notes[j].CreatedAt) {
			return notes[i].CreatedAt.Before(notes[j].CreatedAt)
		}
		return notes[i].ID < notes[j].ID
	})
	return notes
}

// DailyNet sums a day's notes: income total, expense total and the running
// net (income - expense).
func DailyNet(record models.DailyFinance) (income, expense, net float64) {
	for _, n := range record.IncomeNotes {
		income += n.Amount
	}
	for _, n := range record.ExpenseNotes {
		expense += n.Amount
	}
	return income, expense, income - expense
}
