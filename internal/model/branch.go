package model

import (
	"fmt"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Branch is one rental office. Phone, email, and manager are optional.
type Branch struct {
	Meta
	BranchName  string
	Address     string
	City        string
	PhoneNumber *string
	Email       *string
	ManagerID   *int64
	Status      string
}

func (b *Branch) Table() string { return TableBranches }

func (b *Branch) Encode() string {
	return record.NewBuilder().
		Text(b.BranchName).
		Text(b.Address).
		Text(b.City).
		NullText(b.PhoneNumber).
		NullText(b.Email).
		NullInt(b.ManagerID).
		Text(b.Status).
		Join(record.CommaDelimiter)
}

func (b *Branch) Summary() string {
	return fmt.Sprintf("%d - %s", b.RecordID, b.BranchName)
}

func decodeBranch(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	b := &Branch{
		BranchName:  p.Text("branch_name"),
		Address:     p.Text("address"),
		City:        p.Text("city"),
		PhoneNumber: p.NullText("phone_number"),
		Email:       p.NullText("email"),
		ManagerID:   p.NullInt("manager_id"),
		Status:      p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return b, nil
}
