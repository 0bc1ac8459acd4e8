package model

import (
	"strings"
	"testing"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

func TestLookupKnowsAllTenKinds(t *testing.T) {
	tables := Tables()
	if len(tables) != 10 {
		t.Fatalf("expected 10 entity kinds, got %d", len(tables))
	}
	for _, table := range tables {
		desc, ok := Lookup(table)
		if !ok {
			t.Fatalf("lookup failed for %s", table)
		}
		if desc.Decode == nil || desc.Arity == 0 {
			t.Fatalf("incomplete descriptor for %s: %+v", table, desc)
		}
	}
}

func TestLookupIsCaseSensitive(t *testing.T) {
	if _, ok := Lookup("cars"); ok {
		t.Fatalf("lowercase table name must not match")
	}
}

func TestCarRoundTrip(t *testing.T) {
	desc, _ := Lookup(TableCars)
	payload := "Toyota,Camry,2022,ABC123,45.50,Available,White,12000"
	fields, err := record.Split(payload, desc.Delim, desc.Arity)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	e, err := desc.Decode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	car := e.(*Car)
	if car.Make != "Toyota" || car.Year != 2022 || car.Mileage != 12000 {
		t.Fatalf("unexpected car: %+v", car)
	}
	if got := car.Encode(); got != payload {
		t.Fatalf("encode mismatch: got %q want %q", got, payload)
	}
	car.SetID(1)
	if got := car.Summary(); got != "1 - Toyota Camry" {
		t.Fatalf("summary: %q", got)
	}
}

func TestCustomerNullableFieldsRoundTrip(t *testing.T) {
	desc, _ := Lookup(TableCustomers)
	payload := "John,Doe,john@x.com,,,"
	fields, err := record.Split(payload, desc.Delim, desc.Arity)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	e, err := desc.Decode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	c := e.(*Customer)
	if c.Email == nil || *c.Email != "john@x.com" {
		t.Fatalf("email: %v", c.Email)
	}
	if c.PhoneNumber != nil || c.Address != nil || c.LicenseNumber != nil {
		t.Fatalf("expected nil nullable fields: %+v", c)
	}
	// Absent fields come back as empty tokens at the same positions.
	if got := c.Encode(); got != payload {
		t.Fatalf("encode mismatch: got %q want %q", got, payload)
	}
}

func TestMaintenanceUsesPipesAndMasksDescription(t *testing.T) {
	desc, _ := Lookup(TableVehicleMaintenance)
	if desc.Delim != record.PipeDelimiter {
		t.Fatalf("maintenance delimiter: %q", desc.Delim)
	}
	m := &VehicleMaintenance{
		CarID:       3,
		ServiceDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "replaced belt | tensioner, and hoses",
		Cost:        89.99,
	}
	encoded := m.Encode()
	fields, err := record.Split(encoded, desc.Delim, desc.Arity)
	if err != nil {
		t.Fatalf("split encoded maintenance: %v", err)
	}
	e, err := desc.Decode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := e.(*VehicleMaintenance)
	if got.Description != m.Description {
		t.Fatalf("description mangled: %q", got.Description)
	}
	if !strings.Contains(got.Description, "|") {
		t.Fatalf("literal pipe lost: %q", got.Description)
	}
}

func TestRentalSummaryIsBareID(t *testing.T) {
	r := &Rental{}
	r.SetID(7)
	if got := r.Summary(); got != "7" {
		t.Fatalf("rental summary: %q", got)
	}
}

func TestBranchNullableManagerRoundTrip(t *testing.T) {
	desc, _ := Lookup(TableBranches)
	payload := "Downtown,12 Main St,Kampala,,,5,Active"
	fields, err := record.Split(payload, desc.Delim, desc.Arity)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	e, err := desc.Decode(fields)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	b := e.(*Branch)
	if b.PhoneNumber != nil || b.Email != nil {
		t.Fatalf("expected nil phone/email: %+v", b)
	}
	if b.ManagerID == nil || *b.ManagerID != 5 {
		t.Fatalf("manager id: %v", b.ManagerID)
	}
	if got := b.Encode(); got != payload {
		t.Fatalf("encode mismatch: got %q want %q", got, payload)
	}
}

func TestDecodeRejectsBadNumeric(t *testing.T) {
	desc, _ := Lookup(TableCars)
	fields, err := record.Split("Toyota,Camry,notayear,ABC123,45.50,Available,White,12000", desc.Delim, desc.Arity)
	if err != nil {
		t.Fatalf("split: %v", err)
	}
	if _, err := desc.Decode(fields); err == nil {
		t.Fatalf("expected decode error for bad year")
	}
}
