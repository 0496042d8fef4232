package requirement

// CreateExtraDTO creates an activity-scoped extra requirement. InputType is
// "file" or "text"; IsFile is derived from it, never sent directly.
type CreateExtraDTO struct {
	ActivityID uint   `json:"activity_id" form:"activity_id" binding:"required"`
	Name       string `json:"name" form:"name" binding:"required,min=2,max=150"`
	InputType  string `json:"input_type" form:"input_type" binding:"required,oneof=file text"`
}

type SubmitValueDTO struct {
	ActivityID uint   `json:"activity_id" form:"activity_id" binding:"required"`
	Value      string `json:"value" form:"value"`
}

type ReviewValueDTO struct {
	Status string `json:"status" binding:"required,oneof=approved rejected"`
	Note   string `json:"note"`
}
