package deed

type RequirementItemDTO struct {
	Name      string `json:"name" form:"name" binding:"required,min=2,max=150"`
	InputType string `json:"input_type" form:"input_type" binding:"required,oneof=file text"`
}

type CreateDeedDTO struct {
	Name         string               `json:"name" form:"name" binding:"required,min=3,max=150"`
	Description  string               `json:"description" form:"description"`
	TotalClient  int                  `json:"total_client" form:"total_client" binding:"required,min=1,max=10"`
	Requirements []RequirementItemDTO `json:"requirements" form:"requirements" binding:"omitempty,dive"`
}

type UpdateDeedDTO struct {
	Name        *string `json:"name,omitempty" form:"name,omitempty"`
	Description *string `json:"description,omitempty" form:"description,omitempty"`
	TotalClient *int    `json:"total_client,omitempty" form:"total_client,omitempty" binding:"omitempty,min=1,max=10"`
}
