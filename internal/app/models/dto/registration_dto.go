package dto

import (
	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/domain/registration"
	"github.com/yigit/careerhub/internal/pkg/validation"
)

// RegisterRequest is a complete registration form submitted in one call
type RegisterRequest struct {
	Email           string      `json:"email" example:"ama.mensah@ashesi.edu.gh"`
	Password        string      `json:"password" example:"Abc123!@"`
	ConfirmPassword string      `json:"confirmPassword" example:"Abc123!@"`
	FirstName       string      `json:"firstName" binding:"max=100" example:"Ama"`
	LastName        string      `json:"lastName" binding:"max=100" example:"Mensah"`
	Role            models.Role `json:"role" binding:"omitempty,oneof=student staff" example:"student" enums:"student,staff"`
	StudentID       string      `json:"studentId" example:"12342023"`
}

// ToDraft converts the request into a registration draft
func (r RegisterRequest) ToDraft() registration.Draft {
	return registration.Draft{
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Role:            r.Role,
		StudentID:       r.StudentID,
	}
}

// UpdateFieldRequest sets one field of a draft
type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required" example:"email" enums:"email,password,confirmPassword,firstName,lastName,role,studentId"`
	Value string `json:"value" example:"ama.mensah@ashesi.edu.gh"`
}

// DraftResponse is the client view of a draft. Passwords are never returned.
type DraftResponse struct {
	ID          string             `json:"id" example:"9b2e7c1a-4f0d-4a43-8d1e-5c7a2f9b3e10"`
	Email       string             `json:"email" example:"ama.mensah@ashesi.edu.gh"`
	FirstName   string             `json:"firstName" example:"Ama"`
	LastName    string             `json:"lastName" example:"Mensah"`
	Role        models.Role        `json:"role" example:"student"`
	StudentID   string             `json:"studentId,omitempty" example:"12342023"`
	HasPassword bool               `json:"hasPassword" example:"true"`
	State       registration.State `json:"state" example:"idle" enums:"idle,validating,submitting,succeeded,navigated"`
	Error       string             `json:"error,omitempty" example:"Passwords do not match"`
	Succeeded   bool               `json:"succeeded" example:"false"`
	AccountID   string             `json:"accountId,omitempty"`
	Destination string             `json:"destination,omitempty" example:"/dashboard/student"`
}

// NewDraftResponse builds a DraftResponse from a draft snapshot
func NewDraftResponse(id string, s registration.Snapshot) DraftResponse {
	return DraftResponse{
		ID:          id,
		Email:       s.Email,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Role:        s.Role,
		StudentID:   s.StudentID,
		HasPassword: s.HasPassword,
		State:       s.State,
		Error:       s.ErrorMessage,
		Succeeded:   s.Succeeded,
		AccountID:   s.AccountID,
		Destination: s.Destination,
	}
}

// RegisterResponse reports a successful registration and where to go next
type RegisterResponse struct {
	UserID               string      `json:"userId" example:"3f1c2b9e-0d6a-4f7e-9a51-2b8f6c1d7e90"`
	Role                 models.Role `json:"role" example:"student"`
	AccessToken          string      `json:"accessToken,omitempty"`
	RedirectTo           string      `json:"redirectTo" example:"/dashboard/student"`
	RedirectAfterSeconds int         `json:"redirectAfterSeconds" example:"5"`
}

// NewRegisterResponse builds a RegisterResponse from a submission result
func NewRegisterResponse(r registration.Result) RegisterResponse {
	return RegisterResponse{
		UserID:               r.AccountID,
		Role:                 r.Role,
		AccessToken:          r.AccessToken,
		RedirectTo:           r.Destination,
		RedirectAfterSeconds: int(r.Delay.Seconds()),
	}
}

// PasswordStrengthResponse is the strength meter reading for a draft's password
type PasswordStrengthResponse struct {
	Score int    `json:"score" example:"3"`
	Label string `json:"label" example:"good" enums:"too weak,weak,okay,good,strong"`
}

// NewPasswordStrengthResponse builds a PasswordStrengthResponse
func NewPasswordStrengthResponse(s validation.Strength) PasswordStrengthResponse {
	return PasswordStrengthResponse{Score: s.Score, Label: s.Label}
}
