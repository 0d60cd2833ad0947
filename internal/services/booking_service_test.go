package services

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"testing"

	"railway-backend/internal/domain"
	"railway-backend/internal/domain/models"
)

// fakeTicketStore mirrors the storage contract in memory: unique pnr, unique
// (train, seat) among Confirmed rows.
type fakeTicketStore struct {
	mu      sync.Mutex
	tickets map[string]models.Ticket

	// injectConflicts fails the next N inserts with a ConflictError
	// without persisting, to exercise the retry loop.
	injectConflicts int
	insertCalls     int
	pnrChecks       int
}

func newFakeTicketStore() *fakeTicketStore {
	return &fakeTicketStore{tickets: map[string]models.Ticket{}}
}

func (f *fakeTicketStore) ConfirmedSeatLabels(trainID int64) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []string{}
	for _, t := range f.tickets {
		if t.TrainID == trainID && t.Status == models.StatusConfirmed {
			out = append(out, t.SeatNumber)
		}
	}
	return out, nil
}

func (f *fakeTicketStore) PNRExists(code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pnrChecks++
	_, ok := f.tickets[code]
	return ok, nil
}

func (f *fakeTicketStore) Insert(t models.Ticket) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.insertCalls++
	if f.injectConflicts > 0 {
		f.injectConflicts--
		return domain.ConflictError{Resource: "ticket", Msg: "duplicate active seat"}
	}
	if _, ok := f.tickets[t.PNR]; ok {
		return domain.ConflictError{Resource: "ticket", Msg: "duplicate pnr"}
	}
	for _, existing := range f.tickets {
		if existing.TrainID == t.TrainID && existing.SeatNumber == t.SeatNumber &&
			existing.Status == models.StatusConfirmed {
			return domain.ConflictError{Resource: "ticket", Msg: "duplicate active seat"}
		}
	}
	f.tickets[t.PNR] = t
	return nil
}

func (f *fakeTicketStore) GetByPNR(code string) (models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[code]
	if !ok {
		return models.Ticket{}, sql.ErrNoRows
	}
	return t, nil
}

func (f *fakeTicketStore) UpdateStatus(code, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.tickets[code]
	if !ok {
		return sql.ErrNoRows
	}
	t.Status = status
	f.tickets[code] = t
	return nil
}

func (f *fakeTicketStore) ListByPassenger(passengerID int64) ([]models.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Ticket{}
	for _, t := range f.tickets {
		if t.PassengerID == passengerID {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeTrainStore struct {
	trains map[int64]models.Train
}

func (f fakeTrainStore) GetByID(id int64) (models.Train, error) {
	t, ok := f.trains[id]
	if !ok {
		return models.Train{}, sql.ErrNoRows
	}
	return t, nil
}

func (f fakeTrainStore) NameByID(id int64) string {
	if t, ok := f.trains[id]; ok {
		return t.Name
	}
	return fmt.Sprintf("%d", id)
}

type fakeStations struct{}

func (fakeStations) NameByID(id int64) string { return fmt.Sprintf("Station %d", id) }

type fakeFares struct {
	amount float64
	found  bool
	err    error
}

func (f fakeFares) Lookup(from, to int64, class string) (float64, bool, error) {
	return f.amount, f.found, f.err
}

func newBookingService(store *fakeTicketStore, totalSeats int) BookingService {
	return BookingService{
		Tickets:  store,
		Trains:   fakeTrainStore{trains: map[int64]models.Train{1: {ID: 1, Name: "Argo Bromo", Type: "Express", TotalSeats: totalSeats}}},
		Stations: fakeStations{},
		Fares:    fakeFares{amount: 150.50, found: true},
		Locks:    &TrainLocks{},
	}
}

func validRequest() BookingRequest {
	return BookingRequest{
		TrainID:     1,
		FromStation: 10,
		ToStation:   20,
		ClassType:   models.ClassAC,
		PassengerID: 7,
		Name:        "Budi Santoso",
		Age:         34,
		Gender:      "Male",
	}
}

func TestBookAssignsLowestFreeSeat(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 144)

	conf, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Ticket.SeatNumber != "S1-1" {
		t.Fatalf("seat = %q, want S1-1", conf.Ticket.SeatNumber)
	}
	if conf.Ticket.Status != models.StatusConfirmed {
		t.Fatalf("status = %q, want Confirmed", conf.Ticket.Status)
	}
	if len(conf.Ticket.PNR) != 8 {
		t.Fatalf("pnr = %q, want 8 chars", conf.Ticket.PNR)
	}
	if conf.Fare != 150.50 || conf.FareWarning {
		t.Fatalf("fare = %v warning = %v, want 150.50 without warning", conf.Fare, conf.FareWarning)
	}
	if conf.TrainName != "Argo Bromo" {
		t.Fatalf("train name = %q", conf.TrainName)
	}

	second, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("second Book: %v", err)
	}
	if second.Ticket.SeatNumber != "S1-2" {
		t.Fatalf("second seat = %q, want S1-2", second.Ticket.SeatNumber)
	}
}

func TestBookValidation(t *testing.T) {
	svc := newBookingService(newFakeTicketStore(), 144)

	cases := []struct {
		name   string
		mutate func(*BookingRequest)
	}{
		{"missing train", func(r *BookingRequest) { r.TrainID = 0 }},
		{"missing passenger", func(r *BookingRequest) { r.PassengerID = 0 }},
		{"missing station", func(r *BookingRequest) { r.FromStation = 0 }},
		{"same station", func(r *BookingRequest) { r.ToStation = r.FromStation }},
		{"unknown class", func(r *BookingRequest) { r.ClassType = "Business" }},
		{"blank name", func(r *BookingRequest) { r.Name = "   " }},
		{"zero age", func(r *BookingRequest) { r.Age = 0 }},
		{"age too high", func(r *BookingRequest) { r.Age = 120 }},
		{"blank gender", func(r *BookingRequest) { r.Gender = "" }},
	}
	for _, tc := range cases {
		req := validRequest()
		tc.mutate(&req)
		if _, err := svc.Book(req); !domain.IsValidation(err) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
		}
	}
}

func TestBookUnknownTrain(t *testing.T) {
	svc := newBookingService(newFakeTicketStore(), 144)
	req := validRequest()
	req.TrainID = 99
	if _, err := svc.Book(req); !domain.IsNotFound(err) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestBookTrainFull(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 2)

	for i := 0; i < 2; i++ {
		if _, err := svc.Book(validRequest()); err != nil {
			t.Fatalf("seed booking %d: %v", i, err)
		}
	}
	_, err := svc.Book(validRequest())
	if !domain.IsTrainFull(err) {
		t.Fatalf("err = %v, want TrainFullError", err)
	}
}

func TestBookFareFallback(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 10)
	svc.Fares = fakeFares{found: false}

	conf, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Fare != 0 || !conf.FareWarning {
		t.Fatalf("fare = %v warning = %v, want 0 with warning", conf.Fare, conf.FareWarning)
	}
}

func TestBookFareLookupErrorFallsBack(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 10)
	svc.Fares = fakeFares{amount: 500, found: true, err: errors.New("db down")}

	conf, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Fare != 0 || !conf.FareWarning {
		t.Fatalf("fare = %v warning = %v, want 0 with warning", conf.Fare, conf.FareWarning)
	}
}

func TestBookRetriesAfterLostRace(t *testing.T) {
	store := newFakeTicketStore()
	store.injectConflicts = 1
	svc := newBookingService(store, 10)

	conf, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if conf.Ticket.SeatNumber != "S1-1" {
		t.Fatalf("seat = %q", conf.Ticket.SeatNumber)
	}
	if store.insertCalls != 2 {
		t.Fatalf("insert calls = %d, want 2", store.insertCalls)
	}
}

func TestBookGivesUpUnderPersistentConflict(t *testing.T) {
	store := newFakeTicketStore()
	store.injectConflicts = maxBookingAttempts
	svc := newBookingService(store, 10)

	_, err := svc.Book(validRequest())
	if !domain.IsBookingConflict(err) {
		t.Fatalf("err = %v, want BookingConflictError", err)
	}
	var bc domain.BookingConflictError
	if errors.As(err, &bc) && bc.Attempts != maxBookingAttempts {
		t.Fatalf("attempts = %d, want %d", bc.Attempts, maxBookingAttempts)
	}
}

// Concurrent bookings on a small train must fill exactly the pool with no
// duplicate seats.
func TestBookConcurrentAllocation(t *testing.T) {
	const seats = 8
	const workers = 40

	store := newFakeTicketStore()
	svc := newBookingService(store, seats)

	var wg sync.WaitGroup
	results := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(validRequest())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case domain.IsTrainFull(err) || domain.IsBookingConflict(err):
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != seats {
		t.Fatalf("succeeded = %d, want %d", succeeded, seats)
	}

	seen := map[string]bool{}
	for _, tk := range store.tickets {
		if tk.Status != models.StatusConfirmed {
			continue
		}
		if seen[tk.SeatNumber] {
			t.Fatalf("seat %s assigned twice", tk.SeatNumber)
		}
		seen[tk.SeatNumber] = true
	}
	if len(seen) != seats {
		t.Fatalf("distinct seats = %d, want %d", len(seen), seats)
	}
}

func TestCancelledSeatIsReassigned(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 3)
	cancel := CancellationService{Tickets: store, Trains: svc.Trains, Stations: svc.Stations}

	first, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	if _, err := svc.Book(validRequest()); err != nil {
		t.Fatalf("second Book: %v", err)
	}

	if _, err := cancel.Cancel(first.Ticket.PNR); err != nil {
		t.Fatalf("Cancel: %v", err)
	}

	third, err := svc.Book(validRequest())
	if err != nil {
		t.Fatalf("rebook: %v", err)
	}
	if third.Ticket.SeatNumber != first.Ticket.SeatNumber {
		t.Fatalf("rebooked seat = %q, want freed %q", third.Ticket.SeatNumber, first.Ticket.SeatNumber)
	}
}

func TestListByPassenger(t *testing.T) {
	store := newFakeTicketStore()
	svc := newBookingService(store, 10)

	if _, err := svc.Book(validRequest()); err != nil {
		t.Fatalf("Book: %v", err)
	}
	other := validRequest()
	other.PassengerID = 8
	if _, err := svc.Book(other); err != nil {
		t.Fatalf("Book other: %v", err)
	}

	rows, err := svc.ListByPassenger(7)
	if err != nil {
		t.Fatalf("ListByPassenger: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if rows[0].TrainName != "Argo Bromo" || rows[0].FromName != "Station 10" {
		t.Fatalf("summary names not resolved: %+v", rows[0])
	}

	if _, err := svc.ListByPassenger(0); !domain.IsValidation(err) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}
