package entities

import (
	"strings"
	"time"
)

// LabOrderStatus is the lifecycle state of a lab order
type LabOrderStatus string

const (
	LabOrderStatusPending   LabOrderStatus = "pending"
	LabOrderStatusCompleted LabOrderStatus = "completed"
)

// LabOrder is a single test ordered for a patient. Multi-test requests are stored
// as one order per test name.
type LabOrder struct {
	ID          string         `json:"id" db:"id"`
	UHID        string         `json:"uhid" db:"uhid"`
	PatientName string         `json:"patient_name" db:"patient_name"`
	TestName    string         `json:"test_name" db:"test_name"`
	Technician  string         `json:"technician" db:"technician"`
	Consultant  string         `json:"consultant" db:"consultant"`
	Status      LabOrderStatus `json:"status" db:"status"`
	Parameters  []ResultRow    `json:"parameters" db:"parameters"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at" db:"updated_at"`
}

// ResultRow is one editable row of a result-entry form.
type ResultRow struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Unit     string `json:"unit"`
	RefRange string `json:"ref_range"`
	Group    string `json:"group,omitempty"`
}

// IsBlank reports whether the row has no parameter name.
func (r ResultRow) IsBlank() bool {
	return strings.TrimSpace(r.Name) == ""
}

// ResultRowFromProfileParameter builds an empty-valued row for a profile parameter.
func ResultRowFromProfileParameter(p ProfileParameter) ResultRow {
	return ResultRow{
		Name:     p.Name,
		Unit:     p.Unit,
		RefRange: p.RefRange,
		Group:    p.Group,
	}
}
