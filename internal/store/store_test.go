package store

import (
	"errors"
	"testing"
	"time"

	"github.com/Izaek256/CarRental-Server-Client/internal/model"
	"github.com/Izaek256/CarRental-Server-Client/internal/testutil/testlog"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	testlog.Start(t)
	st, err := Open()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return st
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	st := newStore(t)
	first := &model.Car{Make: "Toyota", CarModel: "Camry"}
	second := &model.Car{Make: "Honda", CarModel: "Civic"}
	if err := st.Create(first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := st.Create(second); err != nil {
		t.Fatalf("create: %v", err)
	}
	if first.ID() != 1 || second.ID() != 2 {
		t.Fatalf("ids: %d, %d", first.ID(), second.ID())
	}
}

func TestSequencesAreIndependentPerTable(t *testing.T) {
	st := newStore(t)
	car := &model.Car{Make: "Toyota"}
	customer := &model.Customer{FirstName: "John", LastName: "Doe"}
	_ = st.Create(car)
	_ = st.Create(customer)
	if car.ID() != 1 || customer.ID() != 1 {
		t.Fatalf("per-table sequences leaked: car=%d customer=%d", car.ID(), customer.ID())
	}
}

func TestFindReturnsStoredRecord(t *testing.T) {
	st := newStore(t)
	car := &model.Car{Make: "Toyota", CarModel: "Camry", Year: 2022}
	_ = st.Create(car)

	e, err := st.Find(model.TableCars, car.ID())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e.(*model.Car).Year != 2022 {
		t.Fatalf("unexpected record: %+v", e)
	}
}

func TestFindMissingIsErrNotFound(t *testing.T) {
	st := newStore(t)
	if _, err := st.Find(model.TableCars, 99); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateIsUpsert(t *testing.T) {
	st := newStore(t)
	car := &model.Car{Make: "Toyota"}
	_ = st.Create(car)

	replacement := &model.Car{Make: "Honda"}
	replacement.SetID(car.ID())
	if err := st.Update(replacement); err != nil {
		t.Fatalf("update: %v", err)
	}
	e, err := st.Find(model.TableCars, car.ID())
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if e.(*model.Car).Make != "Honda" {
		t.Fatalf("update not applied: %+v", e)
	}

	// Updating an unknown id stores the record and moves the sequence past it.
	fresh := &model.Car{Make: "Ford"}
	fresh.SetID(50)
	if err := st.Update(fresh); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	next := &model.Car{Make: "Mazda"}
	if err := st.Create(next); err != nil {
		t.Fatalf("create after upsert: %v", err)
	}
	if next.ID() <= 50 {
		t.Fatalf("sequence did not advance past upserted id: %d", next.ID())
	}
}

func TestDeleteMissingIsNotAnError(t *testing.T) {
	st := newStore(t)
	if err := st.Delete(model.TableCars, 99); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	st := newStore(t)
	car := &model.Car{Make: "Toyota"}
	_ = st.Create(car)
	if err := st.Delete(model.TableCars, car.ID()); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := st.Find(model.TableCars, car.ID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("record still present after delete: %v", err)
	}
}

func TestListAscendingByID(t *testing.T) {
	st := newStore(t)
	for _, mk := range []string{"Toyota", "Honda", "Ford"} {
		_ = st.Create(&model.Car{Make: mk})
	}
	ents, err := st.List(model.TableCars)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ents) != 3 {
		t.Fatalf("expected 3 records, got %d", len(ents))
	}
	for i, e := range ents {
		if e.ID() != uint64(i+1) {
			t.Fatalf("not ascending at %d: id=%d", i, e.ID())
		}
	}
}

func TestListEmptyTable(t *testing.T) {
	st := newStore(t)
	ents, err := st.List(model.TablePayments)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ents) != 0 {
		t.Fatalf("expected empty list, got %d", len(ents))
	}
}

func TestRentalsBetweenFiltersInclusive(t *testing.T) {
	st := newStore(t)
	day := func(d int) time.Time { return time.Date(2024, 6, d, 0, 0, 0, 0, time.UTC) }
	_ = st.Create(&model.Rental{StartDate: day(1), EndDate: day(5)})
	_ = st.Create(&model.Rental{StartDate: day(10), EndDate: day(12)})
	_ = st.Create(&model.Rental{StartDate: day(10), EndDate: day(30)})

	got, err := st.RentalsBetween(day(1), day(15))
	if err != nil {
		t.Fatalf("rentals between: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rentals, got %d", len(got))
	}
}
