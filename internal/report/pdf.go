package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/Izaek256/CarRental-Server-Client/internal/model"
	"github.com/Izaek256/CarRental-Server-Client/internal/protocol/record"
)

const (
	rowHeight    = 8.0
	headerHeight = 9.0
)

// tableDoc wraps one page-oriented document with the shared title block and
// fixed-width table rendering used by every report kind.
type tableDoc struct {
	pdf    *gofpdf.Fpdf
	tr     func(string) string
	widths []float64
}

func newDoc(orientation, title, subtitle string, now time.Time) *tableDoc {
	pdf := gofpdf.New(orientation, "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")

	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 12)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 8, tr(subtitle), "", 1, "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(128, 128, 128)
	generated := "Generated: " + now.Format("2006-01-02 15:04:05")
	pdf.CellFormat(0, 6, generated, "", 1, "R", false, 0, "")
	pdf.Ln(4)

	return &tableDoc{pdf: pdf, tr: tr}
}

// header lays out the column headings. Weights are relative; they are scaled
// to the usable page width.
func (d *tableDoc) header(cols []string, weights []float64) {
	pageW, _ := d.pdf.GetPageSize()
	left, _, right, _ := d.pdf.GetMargins()
	usable := pageW - left - right

	var total float64
	for _, w := range weights {
		total += w
	}
	d.widths = make([]float64, len(weights))
	for i, w := range weights {
		d.widths[i] = usable * w / total
	}

	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFillColor(52, 73, 94)
	for i, col := range cols {
		d.pdf.CellFormat(d.widths[i], headerHeight, d.tr(col), "1", 0, "C", true, 0, "")
	}
	d.pdf.Ln(-1)

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *tableDoc) row(cells ...string) {
	for i, cell := range cells {
		d.pdf.CellFormat(d.widths[i], rowHeight, d.tr(cell), "1", 0, "L", false, 0, "")
	}
	d.pdf.Ln(-1)
}

func (d *tableDoc) footer(text string) {
	d.pdf.Ln(4)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.CellFormat(0, 8, d.tr(text), "", 1, "L", false, 0, "")
}

func (d *tableDoc) write(path string) error {
	return d.pdf.OutputFileAndClose(path)
}

func (g *Generator) path(stem string) string {
	name := fmt.Sprintf("%s_%s.pdf", stem, g.now().Format(timestampLayout))
	return filepath.Join(g.dir, name)
}

func orNA(v *string) string {
	if v == nil {
		return "N/A"
	}
	return *v
}

func money(v float64) string {
	return "$" + record.FormatDecimal(v)
}

func (g *Generator) customerReportFile() (string, error) {
	ents, err := g.store.List(model.TableCustomers)
	if err != nil {
		return "", err
	}
	doc := newDoc("P", "Customer Report", "", g.now())
	doc.header(
		[]string{"ID", "Name", "Email", "Phone", "Address"},
		[]float64{1.5, 3, 3.5, 2.5, 3.5},
	)
	for _, e := range ents {
		c := e.(*model.Customer)
		doc.row(
			fmt.Sprintf("%d", c.RecordID),
			c.FirstName+" "+c.LastName,
			orNA(c.Email),
			orNA(c.PhoneNumber),
			orNA(c.Address),
		)
	}
	doc.footer(fmt.Sprintf("Total Customers: %d", len(ents)))

	path := g.path("CustomerReport")
	return path, doc.write(path)
}

func (g *Generator) carReportFile() (string, error) {
	ents, err := g.store.List(model.TableCars)
	if err != nil {
		return "", err
	}
	doc := newDoc("P", "Car Inventory Report", "", g.now())
	doc.header(
		[]string{"ID", "Make", "Model", "Year", "License", "Rate", "Status"},
		[]float64{1, 2.5, 2.5, 1.5, 2, 1.5, 2},
	)
	available := 0
	for _, e := range ents {
		c := e.(*model.Car)
		doc.row(
			fmt.Sprintf("%d", c.RecordID),
			c.Make,
			c.CarModel,
			fmt.Sprintf("%d", c.Year),
			c.LicensePlate,
			money(c.RentalRate),
			c.Status,
		)
		if strings.EqualFold(c.Status, "Available") {
			available++
		}
	}
	doc.footer(fmt.Sprintf("Total Cars: %d | Available: %d", len(ents), available))

	path := g.path("CarReport")
	return path, doc.write(path)
}

func (g *Generator) rentalReportFile(data string) (string, error) {
	fields, err := record.Split(data, record.CommaDelimiter, 2)
	if err != nil {
		return "", err
	}
	start, err := time.Parse(record.DateLayout, fields[0])
	if err != nil {
		return "", err
	}
	end, err := time.Parse(record.DateLayout, fields[1])
	if err != nil {
		return "", err
	}

	rentals, err := g.store.RentalsBetween(start, end)
	if err != nil {
		return "", err
	}

	doc := newDoc("L", "Rental Report",
		fmt.Sprintf("Period: %s to %s", fields[0], fields[1]), g.now())
	doc.header(
		[]string{"ID", "Customer", "Car", "Employee", "Start", "End", "Amount", "Status"},
		[]float64{1, 3, 3.5, 2.5, 2, 2, 2, 2},
	)
	var revenue float64
	for _, r := range rentals {
		doc.row(
			fmt.Sprintf("%d", r.RecordID),
			g.customerName(r.CustomerID),
			g.carName(r.CarID),
			g.employeeName(r.EmployeeID),
			r.StartDate.Format(record.DateLayout),
			r.EndDate.Format(record.DateLayout),
			money(r.TotalAmount),
			r.Status,
		)
		revenue += r.TotalAmount
	}
	doc.footer(fmt.Sprintf("Total Rentals: %d | Total Revenue: %s", len(rentals), money(revenue)))

	path := g.path("RentalReport")
	return path, doc.write(path)
}

func (g *Generator) paymentReportFile() (string, error) {
	ents, err := g.store.List(model.TablePayments)
	if err != nil {
		return "", err
	}
	doc := newDoc("P", "Payment Report", "", g.now())
	doc.header(
		[]string{"Pay ID", "Rental ID", "Amount", "Date", "Method", "Status"},
		[]float64{1.5, 2, 2.5, 2.5, 2.5, 2},
	)
	var total float64
	for _, e := range ents {
		p := e.(*model.Payment)
		doc.row(
			fmt.Sprintf("%d", p.RecordID),
			fmt.Sprintf("%d", p.RentalID),
			money(p.Amount),
			p.PaymentDate.Format(record.DateLayout),
			p.PaymentMethod,
			p.PaymentStatus,
		)
		total += p.Amount
	}
	doc.footer(fmt.Sprintf("Total Payments: %d | Total Amount: %s", len(ents), money(total)))

	path := g.path("PaymentReport")
	return path, doc.write(path)
}

func (g *Generator) maintenanceReportFile() (string, error) {
	ents, err := g.store.List(model.TableVehicleMaintenance)
	if err != nil {
		return "", err
	}
	doc := newDoc("P", "Vehicle Maintenance Report", "", g.now())
	doc.header(
		[]string{"ID", "Car", "Date", "Description", "Cost"},
		[]float64{1.5, 4, 2.5, 5, 2},
	)
	var total float64
	for _, e := range ents {
		m := e.(*model.VehicleMaintenance)
		doc.row(
			fmt.Sprintf("%d", m.RecordID),
			g.carLabel(m.CarID),
			m.ServiceDate.Format(record.DateLayout),
			m.Description,
			money(m.Cost),
		)
		total += m.Cost
	}
	doc.footer(fmt.Sprintf("Total Maintenance Records: %d | Total Cost: %s", len(ents), money(total)))

	path := g.path("MaintenanceReport")
	return path, doc.write(path)
}

// Join helpers. A dangling reference renders as "#<id>" rather than dropping
// the row.

func (g *Generator) customerName(id int64) string {
	e, err := g.store.Find(model.TableCustomers, uint64(id))
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	c := e.(*model.Customer)
	return c.FirstName + " " + c.LastName
}

func (g *Generator) carName(id int64) string {
	e, err := g.store.Find(model.TableCars, uint64(id))
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	c := e.(*model.Car)
	return c.Make + " " + c.CarModel
}

func (g *Generator) carLabel(id int64) string {
	e, err := g.store.Find(model.TableCars, uint64(id))
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	c := e.(*model.Car)
	return fmt.Sprintf("%s %s (%s)", c.Make, c.CarModel, c.LicensePlate)
}

func (g *Generator) employeeName(id int64) string {
	e, err := g.store.Find(model.TableEmployees, uint64(id))
	if err != nil {
		return fmt.Sprintf("#%d", id)
	}
	emp := e.(*model.Employee)
	return emp.FirstName + " " + emp.LastName
}
