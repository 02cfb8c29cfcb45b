// Package registration holds the registration form controller: the draft a
// registrant fills in, the ordered validation rules, and the two-stage
// account creation pipeline.
package registration

import (
	"fmt"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

// Field names accepted by UpdateField.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldRole            = "role"
	FieldStudentID       = "studentId"
)

// Draft is the form state of one registration attempt.
type Draft struct {
	Email           string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
	Role            models.Role
	StudentID       string
}

// NewDraft returns an empty draft for a student, the default role.
func NewDraft() Draft {
	return Draft{Role: models.RoleStudent}
}

// UpdateField sets one field. Switching to a role without student IDs clears
// the student ID, and a student ID typed for such a role is ignored.
func (d *Draft) UpdateField(name, value string) error {
	switch name {
	case FieldEmail:
		d.Email = value
	case FieldPassword:
		d.Password = value
	case FieldConfirmPassword:
		d.ConfirmPassword = value
	case FieldFirstName:
		d.FirstName = value
	case FieldLastName:
		d.LastName = value
	case FieldRole:
		role, err := models.ParseRole(value)
		if err != nil {
			return fmt.Errorf("%w: %q", apperrors.ErrInvalidRole, value)
		}
		d.Role = role
		if !role.RequiresStudentID() {
			d.StudentID = ""
		}
	case FieldStudentID:
		if d.Role.RequiresStudentID() {
			d.StudentID = value
		}
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownField, name)
	}
	return nil
}

// studentID returns the student ID to send to the backends, nil when absent.
func (d Draft) studentID() *string {
	if !d.Role.RequiresStudentID() || d.StudentID == "" {
		return nil
	}
	id := d.StudentID
	return &id
}

// withoutSecrets drops the password fields once they are no longer needed.
func (d Draft) withoutSecrets() Draft {
	d.Password = ""
	d.ConfirmPassword = ""
	return d
}
