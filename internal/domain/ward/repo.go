package ward

import "context"

type Repository interface {
	Create(ctx context.Context, w *Ward) error
	GetByID(ctx context.Context, id int64) (*Ward, error)
	List(ctx context.Context, limit, offset int) ([]*Ward, int, error)
}
