package ward

import "github.com/shopspring/decimal"

// Ward is a hospital ward with bed capacity and daily pricing.
type Ward struct {
	ID         int64           `json:"id"`
	WardName   string          `json:"ward_name"`
	WardType   string          `json:"ward_type"`
	WardMode   string          `json:"ward_mode"`
	TotalBeds  int             `json:"total_beds"`
	CostPerDay decimal.Decimal `json:"cost_per_day"`
	RoomType   string          `json:"room_type"`
}

// Input carries the form fields for creating a ward.
type Input struct {
	WardName   string `form:"ward_name" json:"ward_name"`
	WardType   string `form:"ward_type" json:"ward_type"`
	WardMode   string `form:"ward_mode" json:"ward_mode"`
	TotalBeds  string `form:"total_beds" json:"total_beds"`
	CostPerDay string `form:"cost_per_day" json:"cost_per_day"`
	RoomType   string `form:"room_type" json:"room_type"`
}
