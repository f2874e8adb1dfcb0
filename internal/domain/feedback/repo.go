package feedback

import "context"

// Repository is append-only: feedback is never edited or removed.
type Repository interface {
	Create(ctx context.Context, f *Feedback) error
	List(ctx context.Context, limit, offset int) ([]*Feedback, int, error)
}
