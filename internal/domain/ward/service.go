package ward

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	wards Repository
}

func NewService(wards Repository) *Service {
	return &Service{wards: wards}
}

var validRoomTypes = []string{"ac", "non_ac"}

func (s *Service) Create(ctx context.Context, in Input) (*Ward, error) {
	var errs validate.Errors
	errs.Required("ward_name", in.WardName)
	errs.Required("ward_type", in.WardType)
	errs.Required("ward_mode", in.WardMode)
	errs.Required("room_type", in.RoomType)
	errs.OneOf("room_type", in.RoomType, validRoomTypes)

	totalBeds := 0
	if in.TotalBeds == "" {
		errs.Add("total_beds", "is required")
	} else {
		var err error
		totalBeds, err = strconv.Atoi(in.TotalBeds)
		if err != nil {
			errs.Add("total_beds", "must be a whole number")
		} else {
			errs.PositiveInt("total_beds", totalBeds)
		}
	}

	costPerDay := errs.Amount("cost_per_day", in.CostPerDay)

	if err := errs.Err(); err != nil {
		return nil, err
	}

	w := &Ward{
		WardName:   in.WardName,
		WardType:   in.WardType,
		WardMode:   in.WardMode,
		TotalBeds:  totalBeds,
		CostPerDay: costPerDay,
		RoomType:   in.RoomType,
	}
	if err := s.wards.Create(ctx, w); err != nil {
		return nil, fmt.Errorf("create ward: %w", err)
	}
	return w, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Ward, error) {
	return s.wards.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Ward, int, error) {
	return s.wards.List(ctx, limit, offset)
}
