package billing

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/hms/hms/internal/platform/validate"
)

// -- Mock Repository --

type mockRepo struct {
	items    map[int64]*Bill
	patients map[int64]*Prefill
	nextID   int64
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		items:    make(map[int64]*Bill),
		patients: make(map[int64]*Prefill),
	}
}

func (m *mockRepo) Create(_ context.Context, b *Bill) error {
	m.nextID++
	b.ID = m.nextID
	m.items[b.ID] = b
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Bill, error) {
	b, ok := m.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return b, nil
}

func (m *mockRepo) UpdatePayment(_ context.Context, id int64, status string, method *string) error {
	b, ok := m.items[id]
	if !ok {
		return pgx.ErrNoRows
	}
	b.PaymentStatus = status
	b.PaymentMethod = method
	return nil
}

func (m *mockRepo) List(_ context.Context, status string, limit, offset int) ([]*Bill, int, error) {
	var result []*Bill
	for _, b := range m.items {
		if status != "" && b.PaymentStatus != status {
			continue
		}
		result = append(result, b)
	}
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, query string, limit, offset int) ([]*Bill, int, error) {
	q := strings.ToLower(query)
	var result []*Bill
	for _, b := range m.items {
		if strings.Contains(strings.ToLower(b.PatientName), q) {
			result = append(result, b)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) PatientPrefill(_ context.Context, patientID int64) (*Prefill, error) {
	pf, ok := m.patients[patientID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return pf, nil
}

func seedPatient(repo *mockRepo) int64 {
	doctorID := int64(3)
	repo.patients[7] = &Prefill{
		PatientID:       7,
		PatientName:     "Ravi Kumar",
		ConsultDoctorID: &doctorID,
		Diagnosis:       "angina",
		ContactNumber:   "9876543210",
		Amount:          decimal.RequireFromString("2500.00"),
	}
	return 7
}

func validInput() Input {
	return Input{
		ConsultDoctorID: "3",
		Diagnosis:       "angina",
		ContactNumber:   "9876543210",
		Amount:          "1000.00",
		PaymentStatus:   "pending",
	}
}

func TestPrefill(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	pf, err := svc.Prefill(context.Background(), patientID)
	if err != nil {
		t.Fatalf("Prefill() error: %v", err)
	}
	if pf.PatientName != "Ravi Kumar" {
		t.Errorf("expected patient name, got %s", pf.PatientName)
	}
	if !pf.Amount.Equal(decimal.RequireFromString("2500.00")) {
		t.Errorf("expected amount seeded from fee, got %s", pf.Amount)
	}
	if pf.ConsultDoctorID == nil || *pf.ConsultDoctorID != 3 {
		t.Errorf("expected consulting doctor prefill, got %v", pf.ConsultDoctorID)
	}
}

func TestPrefill_PatientNotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Prefill(context.Background(), 99); err == nil {
		t.Fatal("expected error for missing patient")
	}
}

func TestGenerate(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	b, err := svc.Generate(context.Background(), patientID, validInput(), "6f1e1d24-9d40-4c2c-a8a2-0f6a3b2b4c5d")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if b.ID == 0 {
		t.Error("expected assigned id")
	}
	if b.BillDate.IsZero() {
		t.Error("expected bill_date to be stamped")
	}
	if b.CreatedBy == nil {
		t.Error("expected created_by to be recorded")
	}
	if b.PaymentStatus != "pending" {
		t.Errorf("expected status pending, got %s", b.PaymentStatus)
	}
}

func TestGenerate_PatientNotFound(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Generate(context.Background(), 99, validInput(), ""); err == nil {
		t.Fatal("expected error for missing patient")
	}
}

func TestGenerate_Validation(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	in := validInput()
	in.Amount = "-100"
	in.PaymentStatus = "overdue"

	_, err := svc.Generate(context.Background(), patientID, in, "")
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := validate.AsErrors(err)
	if !ok {
		t.Fatalf("expected validate.Errors, got %T", err)
	}
	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field] = true
	}
	if !fields["amount"] || !fields["payment_status"] {
		t.Errorf("expected amount and payment_status errors, got %+v", verrs)
	}
	if len(repo.items) != 0 {
		t.Error("rejected request must not create a bill")
	}
}

func TestUpdatePayment(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	b, err := svc.Generate(context.Background(), patientID, validInput(), "")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	originalDate := b.BillDate

	updated, err := svc.UpdatePayment(context.Background(), b.ID, PaymentInput{
		PaymentStatus: "paid",
		PaymentMethod: "upi",
	})
	if err != nil {
		t.Fatalf("UpdatePayment() error: %v", err)
	}
	if updated.PaymentStatus != "paid" {
		t.Errorf("expected status paid, got %s", updated.PaymentStatus)
	}
	if updated.PaymentMethod == nil || *updated.PaymentMethod != "upi" {
		t.Errorf("expected method upi, got %v", updated.PaymentMethod)
	}
	if !updated.BillDate.Equal(originalDate) {
		t.Error("bill_date must not change on payment update")
	}
}

func TestUpdatePayment_InvalidStatus(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	b, err := svc.Generate(context.Background(), patientID, validInput(), "")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if _, err := svc.UpdatePayment(context.Background(), b.ID, PaymentInput{PaymentStatus: "void"}); err == nil {
		t.Fatal("expected validation error for status")
	}
}

func TestList_StatusFilter(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)

	if _, err := svc.Generate(context.Background(), patientID, validInput(), ""); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	in := validInput()
	in.PaymentStatus = "paid"
	in.PaymentMethod = "cash"
	if _, err := svc.Generate(context.Background(), patientID, in, ""); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	paid, total, err := svc.List(context.Background(), "paid", 20, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if total != 1 || len(paid) != 1 {
		t.Errorf("expected 1 paid bill, got %d", total)
	}

	if _, _, err := svc.List(context.Background(), "overdue", 20, 0); err == nil {
		t.Error("expected validation error for unknown status filter")
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	repo := newMockRepo()
	patientID := seedPatient(repo)
	svc := NewService(repo)
	if _, err := svc.Generate(context.Background(), patientID, validInput(), ""); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	items, total, err := svc.Search(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Errorf("expected empty result for empty query, got %d", total)
	}
}
