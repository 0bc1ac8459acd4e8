package model

import (
	"fmt"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Damage is one damage report tied to a rental and a car.
type Damage struct {
	Meta
	RentalID     int64
	CarID        int64
	Description  string
	RepairCost   *float64
	ReportedDate time.Time
	Status       string
}

func (d *Damage) Table() string { return TableDamages }

func (d *Damage) Encode() string {
	return record.NewBuilder().
		Int(d.RentalID).
		Int(d.CarID).
		Text(d.Description).
		NullDecimal(d.RepairCost).
		Date(d.ReportedDate).
		Text(d.Status).
		Join(record.CommaDelimiter)
}

func (d *Damage) Summary() string {
	return fmt.Sprintf("%d - %s", d.RecordID, d.Status)
}

func decodeDamage(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	d := &Damage{
		RentalID:     p.Int("rental_id"),
		CarID:        p.Int("car_id"),
		Description:  p.Text("description"),
		RepairCost:   p.NullDecimal("repair_cost"),
		ReportedDate: p.Date("reported_date"),
		Status:       p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return d, nil
}
