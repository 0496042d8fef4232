package activity

import "github.com/danuartha/notaris-go/internal/domain/track"

type CreateActivityDTO struct {
	Name      string `json:"name" form:"name" binding:"required,min=3,max=200"`
	DeedID    uint   `json:"deed_id" form:"deed_id" binding:"required"`
	ClientIDs []uint `json:"client_ids" form:"client_ids"`
}

type UpdateActivityDTO struct {
	Name      *string `json:"name,omitempty" form:"name,omitempty"`
	DeedID    *uint   `json:"deed_id,omitempty" form:"deed_id,omitempty"`
	ClientIDs *[]uint `json:"client_ids,omitempty" form:"client_ids,omitempty"`
}

type AddClientDTO struct {
	UserID uint `json:"user_id" form:"user_id" binding:"required"`
}

type RespondDTO struct {
	Status string `json:"status" binding:"required,oneof=approve reject"`
}

// StepState is one entry of the derived track in display order.
type StepState struct {
	Step        track.Step   `json:"step"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Status      track.Status `json:"status"`
	Label       string       `json:"label"`
}

// Detail is the full activity payload returned by every read and mutation:
// the record plus the derived step states and progress. MyDraftStatus carries
// the calling party's own draft decision and is only set on reads where the
// caller is an invited party.
type Detail struct {
	Activity      Activity    `json:"data"`
	Steps         []StepState `json:"steps"`
	Progress      int         `json:"progress"`
	MyDraftStatus string      `json:"my_draft_status,omitempty"`
}

// ResizeClientSlots adjusts a party-slot array to the deed's required count,
// truncating or padding with nil while keeping the surviving prefix in place.
func ResizeClientSlots(slots []*uint, required int) []*uint {
	if required < 0 {
		required = 0
	}
	out := make([]*uint, required)
	copy(out, slots)
	return out
}
