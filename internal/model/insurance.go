package model

import (
	"fmt"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

// Insurance is one policy covering one car.
type Insurance struct {
	Meta
	CarID            int64
	PolicyNumber     string
	InsuranceCompany string
	CoverageAmount   *float64
	PremiumAmount    float64
	StartDate        time.Time
	EndDate          time.Time
	Status           string
}

func (i *Insurance) Table() string { return TableInsurance }

func (i *Insurance) Encode() string {
	return record.NewBuilder().
		Int(i.CarID).
		Text(i.PolicyNumber).
		Text(i.InsuranceCompany).
		NullDecimal(i.CoverageAmount).
		Decimal(i.PremiumAmount).
		Date(i.StartDate).
		Date(i.EndDate).
		Text(i.Status).
		Join(record.CommaDelimiter)
}

func (i *Insurance) Summary() string {
	return fmt.Sprintf("%d - %s", i.RecordID, i.PolicyNumber)
}

func decodeInsurance(fields []string) (Entity, error) {
	p := record.NewParser(fields)
	i := &Insurance{
		CarID:            p.Int("car_id"),
		PolicyNumber:     p.Text("policy_number"),
		InsuranceCompany: p.Text("insurance_company"),
		CoverageAmount:   p.NullDecimal("coverage_amount"),
		PremiumAmount:    p.Decimal("premium_amount"),
		StartDate:        p.Date("start_date"),
		EndDate:          p.Date("end_date"),
		Status:           p.Text("status"),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return i, nil
}
