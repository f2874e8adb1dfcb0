package feedback

import (
	"context"
	"fmt"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	feedback Repository
}

func NewService(feedback Repository) *Service {
	return &Service{feedback: feedback}
}

func (s *Service) Submit(ctx context.Context, in Input) (*Feedback, error) {
	var errs validate.Errors
	errs.Required("username", in.Username)
	errs.Required("email", in.Email)
	errs.Email("email", in.Email)
	errs.Required("message", in.Message)
	if err := errs.Err(); err != nil {
		return nil, err
	}

	f := &Feedback{
		Username: in.Username,
		Email:    in.Email,
		Message:  in.Message,
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create feedback: %w", err)
	}
	return f, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Feedback, int, error) {
	return s.feedback.List(ctx, limit, offset)
}
