package calc

import (
	"encoding/json"
	"fmt"

	"github.com/naraphan13/saijaitham-durian-backend/internal/models"
)

// DurianItem is one exported durian lot: boxes x weightPerBox kg at
// pricePerKg.
type DurianItem struct {
	Variety      string  `json:"variety"`
	Grade        string  `json:"grade"`
	Boxes        float64 `json:"boxes"`
	WeightPerBox float64 `json:"weightPerBox"`
	PricePerKg   float64 `json:"pricePerKg"`
}

// FreightItem is a freight charge: weight x pricePerKg.
type FreightItem struct {
	Variety    string  `json:"variety"`
	Grade      string  `json:"grade"`
	Weight     float64 `json:"weight"`
	PricePerKg float64 `json:"pricePerKg"`
}

// HandlingCost is a per-size-bucket handling charge: weight x costPerKg.
type HandlingCost struct {
	Weight    float64 `json:"weight"`
	CostPerKg float64 `json:"costPerKg"`
}

// BoxCost is a per-size-bucket box charge: quantity x unitCost.
type BoxCost struct {
	Quantity float64 `json:"quantity"`
	UnitCost float64 `json:"unitCost"`
}

// ExportBreakdown is one export document's cost rollup. Warnings lists the
// sub-collections that could not be parsed; their contribution is zero and
// the document still totals, per the report's partial-failure rule.
type ExportBreakdown struct {
	DurianTotal   float64
	FreightTotal  float64
	HandlingTotal float64
	BoxTotal      float64
	InspectionFee float64
	Total         float64
	Warnings      []string
}

// ExportTotals rolls up one export-container document from its stored JSON
// blobs. Each blob is parsed independently so one malformed collection never
// takes down the whole report.
func ExportTotals(exp models.ExportContainer) ExportBreakdown {
	b := ExportBreakdown{InspectionFee: exp.InspectionFee}

	var durians []DurianItem
	if err := parseBlob(exp.DurianItems, &durians); err != nil {
		b.Warnings = append(b.Warnings, fmt.Sprintf("durianItems: %v", err))
	} else {
		for _, d := range durians {
			b.DurianTotal += d.Boxes * d.WeightPerBox * d.PricePerKg
		}
	}

	var freights []FreightItem
	if err := parseBlob(exp.FreightItems, &freights); err != nil {
		b.Warnings = append(b.Warnings, fmt.Sprintf("freightItems: %v", err))
	} else {
		for _, f := range freights {
			b.FreightTotal += f.Weight * f.PricePerKg
		}
	}

	var handling map[string]HandlingCost
	if err := parseBlob(exp.HandlingCosts, &handling); err != nil {
		b.Warnings = append(b.Warnings, fmt.Sprintf("handlingCosts: %v", err))
	} else {
		for _, h := range handling {
			b.HandlingTotal += h.Weight * h.CostPerKg
		}
	}

	var boxes map[string]BoxCost
	if err := parseBlob(exp.BoxCosts, &boxes); err != nil {
		b.Warnings = append(b.Warnings, fmt.Sprintf("boxCosts: %v", err))
	} else {
		for _, box := range boxes {
			b.BoxTotal += box.Quantity * box.UnitCost
		}
	}

	b.Total = b.DurianTotal + b.FreightTotal + b.HandlingTotal + b.BoxTotal + b.InspectionFee
	return b
}

func parseBlob(raw []byte, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
