package schedule

// SaveScheduleDTO accepts either a combined local Datetime
// ("2006-01-02T15:04") or pre-split Date/Time fields. The datetime is split
// by local extraction, never converted through UTC.
type SaveScheduleDTO struct {
	ActivityID uint   `json:"activity_id" form:"activity_id" binding:"required"`
	Datetime   string `json:"datetime" form:"datetime"`
	Date       string `json:"date" form:"date"`
	Time       string `json:"time" form:"time"`
	Location   string `json:"location" form:"location"`
	Notes      string `json:"notes" form:"notes"`
}
