package model

import (
	"strconv"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Rental is one booking binding a customer, a car, and the employee who
// handled it.
type Rental struct {
	Meta
	CustomerID  int64
	CarID       int64
	EmployeeID  int64
	StartDate   time.Time
	EndDate     time.Time
	TotalAmount float64
	Status      string
}

func (r *Rental) Table() string { return TableRentals }

func (r *Rental) Encode() string {
	return record.NewBuilder().
		Int(r.CustomerID).
		Int(r.CarID).
		Int(r.EmployeeID).
		Date(r.StartDate).
		Date(r.EndDate).
		Decimal(r.TotalAmount).
		Text(r.Status).
		Join(record.CommaDelimiter)
}

// Summary for rentals is the bare identifier; callers compose their own
// display labels from the joined customer and car.
func (r *Rental) Summary() string {
	return strconv.FormatUint(r.RecordID, 10)
}

func decodeRental(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	r := &Rental{
		CustomerID:  p.Int("customer_id"),
		CarID:       p.Int("car_id"),
		EmployeeID:  p.Int("employee_id"),
		StartDate:   p.Date("start_date"),
		EndDate:     p.Date("end_date"),
		TotalAmount: p.Decimal("total_amount"),
		Status:      p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return r, nil
}
