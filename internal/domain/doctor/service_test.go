package doctor

import (
	"context"
	"sort"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/hms/hms/internal/platform/validate"
)

// -- Mock Repository --

type mockRepo struct {
	items    map[int64]*Doctor
	nextID   int64
	patients map[int64][]*ConsultedPatient
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		items:    make(map[int64]*Doctor),
		patients: make(map[int64][]*ConsultedPatient),
	}
}

func (m *mockRepo) Create(_ context.Context, d *Doctor) error {
	m.nextID++
	d.ID = m.nextID
	m.items[d.ID] = d
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*Doctor, error) {
	d, ok := m.items[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return d, nil
}

func (m *mockRepo) Update(_ context.Context, d *Doctor) error {
	if _, ok := m.items[d.ID]; !ok {
		return pgx.ErrNoRows
	}
	m.items[d.ID] = d
	return nil
}

func (m *mockRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.items[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.items, id)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Doctor, int, error) {
	var result []*Doctor
	for _, d := range m.items {
		result = append(result, d)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, len(result), nil
}

func (m *mockRepo) Search(_ context.Context, query string, limit, offset int) ([]*Doctor, int, error) {
	q := strings.ToLower(query)
	var result []*Doctor
	for _, d := range m.items {
		if strings.Contains(strings.ToLower(d.DoctorName), q) ||
			strings.Contains(strings.ToLower(d.Qualification), q) {
			result = append(result, d)
		}
	}
	return result, len(result), nil
}

func (m *mockRepo) ConsultedPatients(_ context.Context, doctorID int64, limit int) ([]*ConsultedPatient, error) {
	items := m.patients[doctorID]
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func validInput() Input {
	return Input{
		DoctorName:         "Asha Rao",
		FatherName:         "K Rao",
		Gender:             "female",
		DOB:                "1980-04-12",
		Address:            "12 MG Road",
		Qualification:      "MBBS MD",
		Experience:         "15",
		LastWorkedHospital: "City Care",
		Salary:             "85000.00",
	}
}

func TestCreateDoctor(t *testing.T) {
	svc := NewService(newMockRepo())

	d, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if d.ID == 0 {
		t.Error("expected assigned id")
	}
	if d.Experience != 15 {
		t.Errorf("expected experience 15, got %d", d.Experience)
	}
	if d.Salary.String() == "0" {
		t.Error("expected parsed salary")
	}
}

func TestCreateDoctor_MissingFields(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.DoctorName = ""
	in.Qualification = ""

	_, err := svc.Create(context.Background(), in)
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
	if !fields["doctor_name"] || !fields["qualification"] {
		t.Errorf("expected doctor_name and qualification errors, got %+v", verrs)
	}
}

func TestCreateDoctor_InvalidGender(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.Gender = "unknown"

	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected validation error for gender")
	}
}

func TestCreateDoctor_NegativeExperience(t *testing.T) {
	svc := NewService(newMockRepo())

	in := validInput()
	in.Experience = "-3"

	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatal("expected validation error for negative experience")
	}
}

func TestUpdateDoctor_NotFound(t *testing.T) {
	svc := NewService(newMockRepo())

	if _, err := svc.Update(context.Background(), 42, validInput()); err == nil {
		t.Fatal("expected error for missing doctor")
	}
}

func TestUpdateDoctor(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	d, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	in := validInput()
	in.Qualification = "MBBS MD DM"
	updated, err := svc.Update(context.Background(), d.ID, in)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if updated.Qualification != "MBBS MD DM" {
		t.Errorf("expected updated qualification, got %s", updated.Qualification)
	}

	stored, _ := repo.GetByID(context.Background(), d.ID)
	if stored.Qualification != "MBBS MD DM" {
		t.Error("expected update to persist")
	}
}

func TestSearchDoctors_EmptyQuery(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	items, total, err := svc.Search(context.Background(), "", 20, 0)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(items) != 0 || total != 0 {
		t.Errorf("expected empty result for empty query, got %d items", len(items))
	}
}

func TestSearchDoctors_Matches(t *testing.T) {
	svc := NewService(newMockRepo())
	if _, err := svc.Create(context.Background(), validInput()); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	items, total, err := svc.Search(context.Background(), "asha", 20, 0)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if total != 1 || len(items) != 1 {
		t.Fatalf("expected 1 match, got %d", total)
	}
}

func TestConsultedPatients_Capped(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	d, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	for i := 0; i < 15; i++ {
		repo.patients[d.ID] = append(repo.patients[d.ID], &ConsultedPatient{ID: int64(i + 1)})
	}

	patients, err := svc.ConsultedPatients(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("ConsultedPatients() error: %v", err)
	}
	if len(patients) != recentPatientCount {
		t.Errorf("expected %d patients, got %d", recentPatientCount, len(patients))
	}
}
