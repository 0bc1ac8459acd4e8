// Package report renders PDF summaries of the stored records. Each report
// kind writes one timestamped file into the configured directory and answers
// with a human-readable message carrying the filename.
package report

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Izaek256/CarRental-Server-Client/internal/store"
)

// Report kinds accepted in the table position of a REPORT request.
const (
	KindCustomer    = "CUSTOMER"
	KindCar         = "CAR"
	KindRental      = "RENTAL"
	KindPayment     = "PAYMENT"
	KindMaintenance = "MAINTENANCE"
)

const timestampLayout = "20060102_150405"

// Generator reads the store and writes PDF files.
type Generator struct {
	store *store.Store
	dir   string
	log   zerolog.Logger

	// now is swappable so tests get stable filenames.
	now func() time.Time
}

func NewGenerator(st *store.Store, dir string, log zerolog.Logger) *Generator {
	return &Generator{
		store: st,
		dir:   dir,
		log:   log.With().Str("component", "report").Logger(),
		now:   time.Now,
	}
}

// Generate runs one report. The returned message is the full wire payload;
// on failure the error text is the wire payload.
func (g *Generator) Generate(kind, data string) (string, error) {
	var (
		label string
		file  string
		err   error
	)
	switch kind {
	case KindCustomer:
		label = "Customer"
		file, err = g.customerReportFile()
	case KindCar:
		label = "Car"
		file, err = g.carReportFile()
	case KindRental:
		label = "Rental"
		file, err = g.rentalReportFile(data)
	case KindPayment:
		label = "Payment"
		file, err = g.paymentReportFile()
	case KindMaintenance:
		label = "Maintenance"
		file, err = g.maintenanceReportFile()
	default:
		return "", fmt.Errorf("Unknown report type: %s", kind)
	}
	if err != nil {
		g.log.Error().Err(err).Str("kind", kind).Msg("report failed")
		return "", fmt.Errorf("Failed to generate %s Report: %v", label, err)
	}
	g.log.Info().Str("kind", kind).Str("file", file).Msg("report written")
	return fmt.Sprintf("%s Report generated successfully: %s", label, file), nil
}
