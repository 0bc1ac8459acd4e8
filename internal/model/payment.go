package model

import (
	"fmt"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Payment is one payment against a rental.
type Payment struct {
	Meta
	RentalID      int64
	Amount        float64
	PaymentDate   time.Time
	PaymentMethod string
	PaymentStatus string
}

func (p *Payment) Table() string { return TablePayments }

func (p *Payment) Encode() string {
	return record.NewBuilder().
		Int(p.RentalID).
		Decimal(p.Amount).
		Date(p.PaymentDate).
		Text(p.PaymentMethod).
		Text(p.PaymentStatus).
		Join(record.CommaDelimiter)
}

func (p *Payment) Summary() string {
	return fmt.Sprintf("%d - %s", p.RecordID, p.PaymentMethod)
}

func decodePayment(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	pay := &Payment{
		RentalID:      p.Int("rental_id"),
		Amount:        p.Decimal("amount"),
		PaymentDate:   p.Date("payment_date"),
		PaymentMethod: p.Text("payment_method"),
		PaymentStatus: p.Text("payment_status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return pay, nil
}
