package user

type CreateUserInput struct {
	Name     string  `json:"name" form:"name" binding:"required,min=2,max=100" example:"Budi Santoso"`
	Email    string  `json:"email" form:"email" binding:"required,email" example:"budi@example.com"`
	Password string  `json:"password" form:"password" binding:"required,min=8" example:"password123"`
	RoleID   *uint   `json:"role_id,omitempty" form:"role_id,omitempty" binding:"omitempty,oneof=1 2 3" example:"2"`
	Phone    *string `json:"phone,omitempty" form:"phone,omitempty" example:"+6281234567890"`
	Address  *string `json:"address,omitempty" form:"address,omitempty"`
}

type UpdateUserInput struct {
	Name        *string `json:"name,omitempty" form:"name,omitempty"`
	Email       *string `json:"email,omitempty" form:"email,omitempty" binding:"omitempty,email"`
	Password    *string `json:"password,omitempty" form:"password,omitempty" binding:"omitempty,min=8"`
	OldPassword *string `json:"old_password,omitempty" form:"old_password,omitempty"`
	RoleID      *uint   `json:"role_id,omitempty" form:"role_id,omitempty" binding:"omitempty,oneof=1 2 3"`
	Phone       *string `json:"phone,omitempty" form:"phone,omitempty"`
	Address     *string `json:"address,omitempty" form:"address,omitempty"`
}

type LoginInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"budi@example.com"`
	Password string `json:"password" form:"password" binding:"required" example:"password123"`
}
