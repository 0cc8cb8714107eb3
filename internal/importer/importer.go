package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/domain"
	"github.com/TomasMurua/Hotel-Pacific-Reef/internal/repository"
)

// Column order of the reservation dataset export.
const expectedColumns = 19

// Importer loads a reservation CSV export into the store row by row. Rows
// that fail to insert are logged and skipped; malformed numeric cells are
// coerced to zero the way the original dataset loader did.
type Importer struct {
	repo repository.ReservationRepository
}

func NewImporter(repo repository.ReservationRepository) *Importer {
	return &Importer{repo: repo}
}

// Import reads the CSV from r, skipping the header row, and returns the
// number of reservations inserted.
func (i *Importer) Import(ctx context.Context, r io.Reader) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) < expectedColumns {
		return 0, fmt.Errorf("expected %d columns, got %d", expectedColumns, len(header))
	}

	inserted := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return inserted, fmt.Errorf("read row: %w", err)
		}
		if len(record) < expectedColumns {
			log.Printf("skipping short row (%d columns)", len(record))
			continue
		}

		reservation := parseRow(record)
		if err := i.repo.Insert(ctx, &reservation); err != nil {
			log.Printf("insert %s failed: %v", reservation.BookingID, err)
			continue
		}
		inserted++
	}
	return inserted, nil
}

func parseRow(record []string) domain.Reservation {
	return domain.Reservation{
		BookingID:             record[0],
		Adults:                intOrZero(record[1]),
		Children:              intOrZero(record[2]),
		WeekendNights:         intOrZero(record[3]),
		WeekNights:            intOrZero(record[4]),
		MealPlan:              record[5],
		ParkingRequired:       intOrZero(record[6]) == 1,
		RoomType:              record[7],
		LeadTime:              intOrZero(record[8]),
		ArrivalYear:           intOrZero(record[9]),
		ArrivalMonth:          intOrZero(record[10]),
		ArrivalDay:            intOrZero(record[11]),
		MarketSegment:         record[12],
		RepeatedGuest:         intOrZero(record[13]) == 1,
		PreviousCancellations: intOrZero(record[14]),
		PreviousNotCanceled:   intOrZero(record[15]),
		AvgPricePerRoom:       floatOrZero(record[16]),
		SpecialRequests:       intOrZero(record[17]),
		Status:                domain.ParseStatus(record[18]),
	}
}

func intOrZero(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func floatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
