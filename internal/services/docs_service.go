package services

import (
	"bytes"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"railway-backend/internal/domain"
	"railway-backend/internal/repositories"
	"railway-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders printable e-tickets.
type DocsService struct {
	Tickets   TicketStore
	Trains    TrainStore
	Stations  StationDirectory
	Fares     FareLookup
	RequestID string
}

type eticketData struct {
	PNR         string
	Passenger   string
	Age         int
	Gender      string
	TrainName   string
	FromName    string
	ToName      string
	BookingDate string
	ClassType   string
	SeatNumber  string
	Fare        float64
	Status      string
}

func (s DocsService) tickets() TicketStore {
	if s.Tickets != nil {
		return s.Tickets
	}
	return repositories.TicketRepo{}
}

func (s DocsService) trains() TrainStore {
	if s.Trains != nil {
		return s.Trains
	}
	return repositories.TrainRepo{}
}

func (s DocsService) stations() StationDirectory {
	if s.Stations != nil {
		return s.Stations
	}
	return repositories.StationRepo{}
}

func (s DocsService) fares() FareLookup {
	if s.Fares != nil {
		return s.Fares
	}
	return repositories.FareRepo{}
}

// ETicketByPNR builds the e-ticket PDF for a booked ticket. The fare is
// recomputed from the fare rules at print time since it is not stored on
// the ticket row.
func (s DocsService) ETicketByPNR(code string) ([]byte, string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, "", domain.ValidationError{Field: "pnr", Msg: "pnr wajib diisi"}
	}
	t, err := s.tickets().GetByPNR(code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.NotFoundError{Resource: "ticket", Err: err}
		}
		return nil, "", domain.InternalError{Err: err}
	}

	fare, _, err := s.fares().Lookup(t.FromStation, t.ToStation, t.ClassType)
	if err != nil {
		fare = 0
	}

	utils.LogEvent(s.RequestID, "docs", "generate_eticket", "pnr="+t.PNR)

	return buildETicketPDF(eticketData{
		PNR:         t.PNR,
		Passenger:   t.PassengerName,
		Age:         t.PassengerAge,
		Gender:      t.PassengerGender,
		TrainName:   s.trains().NameByID(t.TrainID),
		FromName:    s.stations().NameByID(t.FromStation),
		ToName:      s.stations().NameByID(t.ToStation),
		BookingDate: utils.FormatDate(t.BookingDate),
		ClassType:   t.ClassType,
		SeatNumber:  t.SeatNumber,
		Fare:        fare,
		Status:      strings.ToUpper(t.Status),
	})
}

func buildETicketPDF(d eticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Railway E-Ticket", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 15, "Railway E-Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(50, 8, label, "", 0, "", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, value, "", 1, "", false, 0, "")
	}
	section := func(title string) {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 9, title, "", 1, "", false, 0, "")
	}

	row("PNR Number:", d.PNR)
	row("Status:", d.Status)

	section("Passenger Details")
	row("Name:", d.Passenger)
	row("Age:", fmt.Sprintf("%d", d.Age))
	row("Gender:", d.Gender)

	section("Journey Details")
	row("Train:", d.TrainName)
	row("From:", d.FromName)
	row("To:", d.ToName)
	row("Booking Date:", d.BookingDate)
	row("Class:", d.ClassType)
	row("Seat Number:", d.SeatNumber)
	row("Fare:", "Rs. "+utils.FormatMoney(d.Fare))

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 8, "Thank you for choosing our service. Happy journey!", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), fmt.Sprintf("ticket_%s.pdf", d.PNR), nil
}
