package model

import (
	"fmt"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Customer is one renting customer. Only the name is required; contact
// details and the license number may be absent.
type Customer struct {
	Meta
	FirstName     string
	LastName      string
	Email         *string
	PhoneNumber   *string
	Address       *string
	LicenseNumber *string
}

func (c *Customer) Table() string { return TableCustomers }

func (c *Customer) Encode() string {
	return record.NewBuilder().
		Text(c.FirstName).
		Text(c.LastName).
		NullText(c.Email).
		NullText(c.PhoneNumber).
		NullText(c.Address).
		NullText(c.LicenseNumber).
		Join(record.CommaDelimiter)
}

func (c *Customer) Summary() string {
	return fmt.Sprintf("%d - %s %s", c.RecordID, c.FirstName, c.LastName)
}

func decodeCustomer(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	c := &Customer{
		FirstName:     p.Text("first_name"),
		LastName:      p.Text("last_name"),
		Email:         p.NullText("email"),
		PhoneNumber:   p.NullText("phone_number"),
		Address:       p.NullText("address"),
		LicenseNumber: p.NullText("license_number"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
