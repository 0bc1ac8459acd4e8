package model

import (
	"fmt"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// EmployeeAssignment places one employee at one branch.
type EmployeeAssignment struct {
	Meta
	EmployeeID     int64
	BranchID       int64
	AssignmentType string
	AssignmentDate time.Time
	Description    string
	Status         string
}

func (a *EmployeeAssignment) Table() string { return TableEmployeeAssignments }

func (a *EmployeeAssignment) Encode() string {
	return record.NewBuilder().
		Int(a.EmployeeID).
		Int(a.BranchID).
		Text(a.AssignmentType).
		Date(a.AssignmentDate).
		Text(a.Description).
		Text(a.Status).
		Join(record.CommaDelimiter)
}

func (a *EmployeeAssignment) Summary() string {
	return fmt.Sprintf("%d - %s", a.RecordID, a.AssignmentType)
}

func decodeAssignment(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	a := &EmployeeAssignment{
		EmployeeID:     p.Int("employee_id"),
		BranchID:       p.Int("branch_id"),
		AssignmentType: p.Text("assignment_type"),
		AssignmentDate: p.Date("assignment_date"),
		Description:    p.Text("description"),
		Status:         p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return a, nil
}
