package model

import (
	"fmt"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Car is one fleet vehicle.
type Car struct {
	Meta
	Make         string
	CarModel     string
	Year         int64
	LicensePlate string
	RentalRate   float64
	Status       string
	Color        string
	Mileage      int64
}

func (c *Car) Table() string { return TableCars }

func (c *Car) Encode() string {
	return record.NewBuilder().
		Text(c.Make).
		Text(c.CarModel).
		Int(c.Year).
		Text(c.LicensePlate).
		Decimal(c.RentalRate).
		Text(c.Status).
		Text(c.Color).
		Int(c.Mileage).
		Join(record.CommaDelimiter)
}

func (c *Car) Summary() string {
	return fmt.Sprintf("%d - %s %s", c.RecordID, c.Make, c.CarModel)
}

func decodeCar(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	c := &Car{
		Make:         p.Text("make"),
		CarModel:     p.Text("model"),
		Year:         p.Int("year"),
		LicensePlate: p.Text("license_plate"),
		RentalRate:   p.Decimal("rental_rate"),
		Status:       p.Text("status"),
		Color:        p.Text("color"),
		Mileage:      p.Int("mileage"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return c, nil
}
