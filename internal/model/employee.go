package model

import (
	"fmt"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Employee is one staff account. BranchID is empty until the employee is
// assigned somewhere.
type Employee struct {
	Meta
	Username  string
	FirstName string
	LastName  string
	Role      string
	BranchID  *int64
	Status    string
}

func (e *Employee) Table() string { return TableEmployees }

func (e *Employee) Encode() string {
	return record.NewBuilder().
		Text(e.Username).
		Text(e.FirstName).
		Text(e.LastName).
		Text(e.Role).
		NullInt(e.BranchID).
		Text(e.Status).
		Join(record.CommaDelimiter)
}

func (e *Employee) Summary() string {
	return fmt.Sprintf("%d - %s", e.RecordID, e.Username)
}

func decodeEmployee(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	e := &Employee{
		Username:  p.Text("username"),
		FirstName: p.Text("first_name"),
		LastName:  p.Text("last_name"),
		Role:      p.Text("role"),
		BranchID:  p.NullInt("branch_id"),
		Status:    p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return e, nil
}
