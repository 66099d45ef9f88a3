package database

import (
	"fmt"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Bill{},
		&models.Item{},
		&models.SellBill{},
		&models.SellItem{},
		&models.CuttingBill{},
		&models.MainItem{},
		&models.DeductItem{},
		&models.ExtraDeduction{},
		&models.ChemicalDip{},
		&models.ContainerLoading{},
		&models.Packing{},
		&models.Payroll{},
		&models.PayrollDeduction{},
		&models.DailyFinance{},
		&models.IncomeNote{},
		&models.ExpenseNote{},
		&models.GradeHistory{},
		&models.Grade{},
		&models.Season{},
		&models.ExportContainer{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
