package models

import (
	"time"
)

// Profile is a row of the 'users' table. The credential itself lives in the
// auth service, Password only holds a placeholder marker.
type Profile struct {
	ID        string    `json:"id" db:"id" example:"3f1c2b9e-0d6a-4f7e-9a51-2b8f6c1d7e90"`
	FirstName string    `json:"fname" db:"fname" example:"Ama"`
	LastName  string    `json:"lname" db:"lname" example:"Mensah"`
	Email     string    `json:"email" db:"email" example:"ama.mensah@ashesi.edu.gh"`
	RoleID    RoleID    `json:"role_id" db:"role_id" example:"3"`
	StudentID *string   `json:"student_id" db:"student_id" example:"12342023"`
	Password  string    `json:"-" db:"password"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// OrphanedSignup records an account created in the auth service whose profile row could not be written
type OrphanedSignup struct {
	ID        int64     `json:"id" db:"id"`
	AccountID string    `json:"accountId" db:"account_id"`
	Email     string    `json:"email" db:"email"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// AuthUser is a credential record kept by the local auth provider
type AuthUser struct {
	ID           string                 `db:"id"`
	Email        string                 `db:"email"`
	PasswordHash string                 `db:"password_hash"`
	Metadata     map[string]interface{} `db:"metadata"`
	CreatedAt    time.Time              `db:"created_at"`
}
