package feedback

import (
	"context"
	"testing"
	"time"

	"github.com/hms/hms/internal/platform/validate"
)

type mockRepo struct {
	items  []*Feedback
	nextID int64
}

func (m *mockRepo) Create(_ context.Context, f *Feedback) error {
	m.nextID++
	f.ID = m.nextID
	f.CreatedAt = time.Now()
	m.items = append(m.items, f)
	return nil
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Feedback, int, error) {
	return m.items, len(m.items), nil
}

func TestSubmit(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	f, err := svc.Submit(context.Background(), Input{
		Username: "visitor",
		Email:    "visitor@example.com",
		Message:  "very helpful staff",
	})
	if err != nil {
		t.Fatalf("Submit() error: %v", err)
	}
	if f.ID == 0 {
		t.Error("expected assigned id")
	}
	if f.CreatedAt.IsZero() {
		t.Error("expected created_at to be stamped")
	}
}

func TestSubmit_Validation(t *testing.T) {
	svc := NewService(&mockRepo{})

	_, err := svc.Submit(context.Background(), Input{Email: "not-an-email"})
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
	for _, f := range []string{"username", "email", "message"} {
		if !fields[f] {
			t.Errorf("expected error for %s, got %+v", f, verrs)
		}
	}
}

func TestList(t *testing.T) {
	repo := &mockRepo{}
	svc := NewService(repo)

	for i := 0; i < 3; i++ {
		if _, err := svc.Submit(context.Background(), Input{
			Username: "visitor",
			Email:    "visitor@example.com",
			Message:  "note",
		}); err != nil {
			t.Fatalf("Submit() error: %v", err)
		}
	}

	items, total, err := svc.List(context.Background(), 20, 0)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if total != 3 || len(items) != 3 {
		t.Errorf("expected 3 feedback entries, got %d", total)
	}
}
