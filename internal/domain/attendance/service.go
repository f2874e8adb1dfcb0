package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hms/hms/internal/platform/validate"
)

type Service struct {
	records Repository
}

func NewService(records Repository) *Service {
	return &Service{records: records}
}

var validStatuses = []string{"present", "absent", "leave", "half_day"}

const uniqueViolation = "23505"

// Mark records attendance for one staff member and day. The unique index on
// (staff_id, date_of_attendance) rejects a second record for the same pair;
// that violation surfaces as a field error.
func (s *Service) Mark(ctx context.Context, in Input) (*Record, error) {
	var errs validate.Errors

	var staffID uuid.UUID
	if in.StaffID == "" {
		errs.Add("staff_id", "is required")
	} else {
		var err error
		staffID, err = uuid.Parse(in.StaffID)
		if err != nil {
			errs.Add("staff_id", "must be a valid staff id")
		}
	}

	date := errs.Date("date_of_attendance", in.DateOfAttendance)
	incoming := errs.OptionalTime("incoming_time", in.IncomingTime)
	outgoing := errs.OptionalTime("outgoing_time", in.OutgoingTime)

	status := in.Status
	if status == "" {
		status = "present"
	}
	errs.OneOf("status", status, validStatuses)

	if err := errs.Err(); err != nil {
		return nil, err
	}

	rec := &Record{
		StaffID:          staffID,
		DateOfAttendance: date,
		IncomingTime:     incoming,
		OutgoingTime:     outgoing,
		Status:           status,
		TaskInvolved:     in.TaskInvolved,
	}
	if err := s.records.Create(ctx, rec); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			var dup validate.Errors
			dup.Add("date_of_attendance", "attendance already marked for this staff member on this date")
			return nil, dup
		}
		return nil, fmt.Errorf("mark attendance: %w", err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Record, int, error) {
	return s.records.List(ctx, limit, offset)
}
