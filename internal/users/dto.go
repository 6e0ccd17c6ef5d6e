package users

import "github.com/kmorales-dev/closetwish-backend/pkg/db/models"

// UserDTO is the transport shape that omits the stored credential hash.
type UserDTO struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// CreateUserDTO holds the data required by the repo to persist a new user.
type CreateUserDTO struct {
	Email        string
	PasswordHash string
}

func FromModel(u *models.User) *UserDTO {
	if u == nil {
		return nil
	}
	return &UserDTO{
		ID:    u.ID,
		Email: u.Email,
	}
}

func (c CreateUserDTO) ToModel() *models.User {
	return &models.User{
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
	}
}
