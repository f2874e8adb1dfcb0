package attendance

import (
	"time"

	"github.com/google/uuid"
)

// Record is one staff member's attendance for one calendar day.
type Record struct {
	ID               int64      `json:"id"`
	StaffID          uuid.UUID  `json:"staff_id"`
	StaffUsername    string     `json:"staff_username,omitempty"`
	DateOfAttendance time.Time  `json:"date_of_attendance"`
	IncomingTime     *time.Time `json:"incoming_time"`
	OutgoingTime     *time.Time `json:"outgoing_time"`
	Status           string     `json:"status"`
	TaskInvolved     string     `json:"task_involved"`
}

// Input carries the form fields for marking attendance.
type Input struct {
	StaffID          string `form:"staff_id" json:"staff_id"`
	DateOfAttendance string `form:"date_of_attendance" json:"date_of_attendance"`
	IncomingTime     string `form:"incoming_time" json:"incoming_time"`
	OutgoingTime     string `form:"outgoing_time" json:"outgoing_time"`
	Status           string `form:"status" json:"status"`
	TaskInvolved     string `form:"task_involved" json:"task_involved"`
}
