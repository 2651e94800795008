package response

import (
	"healthsched/internal/usecase/commands"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
}

type LoginResponse struct {
	AccessToken string    `json:"accessToken"`
	TokenType   string    `json:"tokenType"`
	ExpiresIn   int64     `json:"expiresIn"`
	SubjectID   uuid.UUID `json:"subjectId"`
}

func FromRegisterResult(r *commands.RegisterResult) *RegisterResponse {
	return &RegisterResponse{
		ID:        r.ID,
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		SubjectID:   r.SubjectID,
	}
}
