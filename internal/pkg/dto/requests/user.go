package requests

type CreateUser struct {
	Username    string `json:"username" validate:"required,max=150"`
	Email       string `json:"email" validate:"required,email,max=254"`
	Password    string `json:"password" validate:"required,max=256"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsSuperuser bool   `json:"is_superuser"`
}

// UpdateUser is a partial update. Nil fields are left out of the backend
// call, so an account keeps its password unless a new one is given.
type UpdateUser struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=1,max=150"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email,max=254"`
	Password    *string `json:"password,omitempty" validate:"omitempty,max=256"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser *bool   `json:"is_superuser,omitempty"`
}

func (u *UpdateUser) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Password == nil && u.IsActive == nil && u.IsSuperuser == nil
}
