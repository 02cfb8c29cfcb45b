package registration

import (
	"strings"

	"github.com/yigit/careerhub/internal/pkg/validation"
)

// Rules are the checks run on a draft at submission time.
type Rules struct {
	AllowedDomains []string
	PasswordPolicy validation.PasswordPolicy
}

// DefaultRules uses the institutional domains and the default password policy.
func DefaultRules() Rules {
	return Rules{
		AllowedDomains: validation.DefaultEmailDomains,
		PasswordPolicy: validation.DefaultPasswordPolicy(),
	}
}

// Validate checks d in a fixed order and returns the first failure as a *ValidationError:
// password strength, password confirmation, email domain, then the student ID for students.
func (r Rules) Validate(d Draft) error {
	if reason, ok := r.PasswordPolicy.Check(d.Password); !ok {
		return &ValidationError{
			Field:   FieldPassword,
			Code:    CodeWeakPassword,
			Message: "Password is too weak: " + reason,
		}
	}

	if d.Password != d.ConfirmPassword {
		return &ValidationError{
			Field:   FieldConfirmPassword,
			Code:    CodePasswordMismatch,
			Message: "Passwords do not match",
		}
	}

	if !validation.HasAllowedDomain(d.Email, r.AllowedDomains) {
		return &ValidationError{
			Field:   FieldEmail,
			Code:    CodeEmailDomain,
			Message: "Please use your school email address (" + r.domainList() + ")",
		}
	}

	if d.Role.RequiresStudentID() {
		if d.StudentID == "" {
			return &ValidationError{
				Field:   FieldStudentID,
				Code:    CodeStudentIDMissing,
				Message: "Student ID is required for student accounts",
			}
		}
		if !validation.IsStudentID(d.StudentID) {
			return &ValidationError{
				Field:   FieldStudentID,
				Code:    CodeStudentIDFormat,
				Message: "Student ID must be 8 digits with 20 as the fifth and sixth digits, e.g. 12342023",
			}
		}
	}

	return nil
}

// PasswordStrength scores a password for display.
func (r Rules) PasswordStrength(password string) validation.Strength {
	return r.PasswordPolicy.Score(password)
}

func (r Rules) domainList() string {
	domains := make([]string, len(r.AllowedDomains))
	for i, d := range r.AllowedDomains {
		domains[i] = "@" + d
	}
	return strings.Join(domains, " or ")
}
