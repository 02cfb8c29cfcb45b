package dto

import (
	"time"

	"github.com/yigit/careerhub/internal/app/models"
)

// OrphanedSignupResponse is an auth account that has no profile row
type OrphanedSignupResponse struct {
	ID        int64     `json:"id" example:"7"`
	AccountID string    `json:"accountId" example:"5b7c0f1e-3c1a-4a57-9a0e-6f2f0e3e9b11"`
	Email     string    `json:"email" example:"ama.mensah@ashesi.edu.gh"`
	Message   string    `json:"message" example:"duplicate key value violates unique constraint \"users_student_id_key\""`
	CreatedAt time.Time `json:"createdAt"`
}

// OrphanedSignupListResponse is one page of open orphaned signups
type OrphanedSignupListResponse struct {
	Items      []OrphanedSignupResponse `json:"items"`
	Pagination PaginationInfo           `json:"pagination"`
}

// NewOrphanedSignupListResponse maps repository rows to the response
func NewOrphanedSignupListResponse(orphans []models.OrphanedSignup, pagination PaginationInfo) OrphanedSignupListResponse {
	items := make([]OrphanedSignupResponse, 0, len(orphans))
	for _, o := range orphans {
		items = append(items, OrphanedSignupResponse{
			ID:        o.ID,
			AccountID: o.AccountID,
			Email:     o.Email,
			Message:   o.Message,
			CreatedAt: o.CreatedAt,
		})
	}
	return OrphanedSignupListResponse{Items: items, Pagination: pagination}
}
