// Package model defines one named record type per entity kind. The wire
// carries positions only; decoding converts the positional split into named
// fields immediately so nothing downstream deals in indices.
package model

import "sort"

// Wire names of the ten entity kinds. Matching is case-sensitive and exact.
const (
	TableCars                = "Cars"
	TableBranches            = "Branches"
	TableInsurance           = "Insurance"
	TableDamages             = "Damages"
	TableEmployeeAssignments = "EmployeeAssignments"
	TableVehicleMaintenance  = "VehicleMaintenance"
	TableRentals             = "Rentals"
	TablePayments            = "Payments"
	TableCustomers           = "Customers"
	TableEmployees           = "Employees"
)

// Entity is one decoded record. Implementations embed Meta for identity.
type Entity interface {
	Table() string
	ID() uint64
	SetID(uint64)
	// Encode renders the record's data fields (identifier excluded) in
	// their fixed wire order.
	Encode() string
	// Summary renders the compact projection used by LIST responses.
	Summary() string
}

// Meta carries the store-assigned identifier common to every entity kind.
type Meta struct {
	RecordID uint64
}

func (m *Meta) ID() uint64      { return m.RecordID }
func (m *Meta) SetID(id uint64) { m.RecordID = id }

// Descriptor binds one entity kind's wire shape to its decoder and response
// message strings. Field order and arity are fixed per kind.
type Descriptor struct {
	Table      string
	Label      string
	Delim      string
	Arity      int
	AddedMsg   string
	UpdatedMsg string
	Decode     func(fields []string) (Entity, error)
}

var descriptors = map[string]Descriptor{
	TableCars: {
		Table: TableCars, Label: "Car", Delim: ",", Arity: 8,
		AddedMsg:   "Car added successfully",
		UpdatedMsg: "Car updated successfully",
		Decode:     decodeCar,
	},
	TableBranches: {
		Table: TableBranches, Label: "Branch", Delim: ",", Arity: 7,
		AddedMsg:   "Branch added successfully",
		UpdatedMsg: "Branch updated successfully",
		Decode:     decodeBranch,
	},
	TableInsurance: {
		Table: TableInsurance, Label: "Insurance", Delim: ",", Arity: 8,
		AddedMsg:   "Insurance added successfully",
		UpdatedMsg: "Insurance updated successfully",
		Decode:     decodeInsurance,
	},
	TableDamages: {
		Table: TableDamages, Label: "Damage", Delim: ",", Arity: 6,
		AddedMsg:   "Damage record added successfully",
		UpdatedMsg: "Damage updated successfully",
		Decode:     decodeDamage,
	},
	TableEmployeeAssignments: {
		Table: TableEmployeeAssignments, Label: "Assignment", Delim: ",", Arity: 6,
		AddedMsg:   "Assignment added successfully",
		UpdatedMsg: "Assignment updated successfully",
		Decode:     decodeAssignment,
	},
	TableVehicleMaintenance: {
		Table: TableVehicleMaintenance, Label: "Maintenance record", Delim: "|", Arity: 4,
		AddedMsg:   "Maintenance record added successfully",
		UpdatedMsg: "Maintenance record updated successfully",
		Decode:     decodeMaintenance,
	},
	TableRentals: {
		Table: TableRentals, Label: "Rental", Delim: ",", Arity: 7,
		AddedMsg:   "Rental added successfully",
		UpdatedMsg: "Rental updated successfully",
		Decode:     decodeRental,
	},
	TablePayments: {
		Table: TablePayments, Label: "Payment", Delim: ",", Arity: 5,
		AddedMsg:   "Payment added successfully",
		UpdatedMsg: "Payment updated successfully",
		Decode:     decodePayment,
	},
	TableCustomers: {
		Table: TableCustomers, Label: "Customer", Delim: ",", Arity: 6,
		AddedMsg:   "Customer added successfully",
		UpdatedMsg: "Customer updated successfully",
		Decode:     decodeCustomer,
	},
	TableEmployees: {
		Table: TableEmployees, Label: "Employee", Delim: ",", Arity: 6,
		AddedMsg:   "Employee added successfully",
		UpdatedMsg: "Employee updated successfully",
		Decode:     decodeEmployee,
	},
}

// Lookup resolves one entity kind by its exact wire name.
func Lookup(table string) (Descriptor, bool) {
	d, ok := descriptors[table]
	return d, ok
}

// Tables returns every entity kind's wire name in sorted order.
func Tables() []string {
	out := make([]string, 0, len(descriptors))
	for name := range descriptors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
