package models

import (
	"time"

	"gorm.io/datatypes"
)

// Season is a named date range grouping export documents. A nil EndDate
// means the season is still open.
type Season struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:128;not null" json:"name"`
	StartDate time.Time  `gorm:"index;not null" json:"startDate"`
	EndDate   *time.Time `gorm:"index" json:"endDate"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// ExportContainer is an export-container cost document. The cost
// sub-collections are stored as raw JSON blobs exactly as submitted; the
// season summary parses them defensively (see calc.ExportTotals).
type ExportContainer struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	Date          time.Time      `gorm:"index;not null" json:"date"`
	City          string         `gorm:"size:128" json:"city"`
	ContainerInfo string         `gorm:"size:255" json:"containerInfo"`
	ContainerCode string         `gorm:"size:64" json:"containerCode"`
	RefCode       string         `gorm:"size:64" json:"refCode"`
	DurianItems   datatypes.JSON `json:"durianItems"`
	FreightItems  datatypes.JSON `json:"freightItems"`
	HandlingCosts datatypes.JSON `json:"handlingCosts"`
	BoxCosts      datatypes.JSON `json:"boxCosts"`
	InspectionFee float64        `json:"inspectionFee"`
	BrandSummary  string         `gorm:"type:text" json:"brandSummary"`
	SeasonID      *uint          `gorm:"index" json:"seasonId"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}
