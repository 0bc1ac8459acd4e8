package model

import (
	"fmt"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// VehicleMaintenance is one service entry for a car. Its description is free
// text that routinely contains commas, so this is the one record format
// joined with '|' instead of ','; literal pipes inside the description are
// masked with a reserved glyph on encode and restored on decode.
type VehicleMaintenance struct {
	Meta
	CarID       int64
	ServiceDate time.Time
	Description string
	Cost        float64
}

func (m *VehicleMaintenance) Table() string { return TableVehicleMaintenance }

func (m *VehicleMaintenance) Encode() string {
	return record.NewBuilder().
		Int(m.CarID).
		Date(m.ServiceDate).
		Text(record.MaskPipes(m.Description)).
		Decimal(m.Cost).
		Join(record.PipeDelimiter)
}

func (m *VehicleMaintenance) Summary() string {
	return fmt.Sprintf("%d - %s", m.RecordID, m.ServiceDate.Format(record.DateLayout))
}

func decodeMaintenance(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	m := &VehicleMaintenance{
		CarID:       p.Int("car_id"),
		ServiceDate: p.Date("service_date"),
		Description: record.UnmaskPipes(p.Text("description")),
		Cost:        p.Decimal("cost"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
