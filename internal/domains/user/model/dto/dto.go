package dto

import (
	"railstay/internal/domains/user/model"
	"railstay/shared"
	gDto "railstay/shared/dto"
	"railstay/shared/timezone"
	"time"
)

// UpdateRoleRequest is the admin role assignment payload.
type UpdateRoleRequest struct {
	Role string `db:"role" json:"role" validate:"required,oneof=admin hotel customer"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FullName  string `json:"full_name"`
	Active    bool   `json:"active"`
	LastLogin string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(mod model.User) {
	r.ID = mod.ID
	r.Email = mod.Email
	r.Role = mod.Role
	r.FullName = mod.FullName
	r.Active = mod.Active

	if mod.LastLogin != nil {
		r.LastLogin = timezone.Format(*mod.LastLogin, time.RFC3339)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
