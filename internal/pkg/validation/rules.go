package validation

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Validation rule patterns
var (
	// Student identifier pattern - four digits, the literal "20", two digits
	StudentIDPattern = `^\d{4}20\d{2}$`

	// Password min length
	PasswordMinLength = 8

	// DefaultEmailDomains is the allow-list of institutional mail domains.
	DefaultEmailDomains = []string{"ashesi.edu.gh", "aucampus.onmicrosoft.com"}
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	StudentID *regexp.Regexp
}{
	StudentID: regexp.MustCompile(StudentIDPattern),
}

// IsStudentID reports whether id has the expected student identifier shape.
func IsStudentID(id string) bool {
	return CompiledPatterns.StudentID.MatchString(id)
}

// EmailDomain splits email on "@" and returns the domain part.
// ok is false unless there are exactly two parts.
func EmailDomain(email string) (domain string, ok bool) {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return "", false
	}
	return parts[1], true
}

// HasAllowedDomain reports whether email's domain is exactly one of allowed.
func HasAllowedDomain(email string, allowed []string) bool {
	domain, ok := EmailDomain(email)
	if !ok {
		return false
	}
	for _, d := range allowed {
		if domain == d {
			return true
		}
	}
	return false
}

// StrengthLabels are the display labels for scores 0 through 4.
var StrengthLabels = [...]string{"too weak", "weak", "okay", "good", "strong"}

// Strength is the result of scoring a password for display.
type Strength struct {
	Score int    `json:"score"`
	Label string `json:"label"`
}

// PasswordPolicy decides whether a password is acceptable and how strong it looks.
type PasswordPolicy interface {
	// Check returns a human readable reason when the password is rejected.
	Check(password string) (reason string, ok bool)
	Score(password string) Strength
}

// CharacterPolicy requires a minimum length and one of each character class.
type CharacterPolicy struct {
	MinLength     int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy returns the policy used when nothing else is configured.
func DefaultPasswordPolicy() CharacterPolicy {
	return CharacterPolicy{
		MinLength:     PasswordMinLength,
		RequireUpper:  true,
		RequireLower:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

type charClasses struct {
	upper, lower, digit, symbol bool
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			c.symbol = true
		}
	}
	return c
}

// Check implements PasswordPolicy.
func (p CharacterPolicy) Check(password string) (string, bool) {
	if password == "" {
		return "password cannot be empty", false
	}
	if len([]rune(password)) < p.MinLength {
		return "password must be at least " + strconv.Itoa(p.MinLength) + " characters long", false
	}

	c := classify(password)
	switch {
	case p.RequireUpper && !c.upper:
		return "password must contain an uppercase letter", false
	case p.RequireLower && !c.lower:
		return "password must contain a lowercase letter", false
	case p.RequireDigit && !c.digit:
		return "password must contain a digit", false
	case p.RequireSymbol && !c.symbol:
		return "password must contain a symbol", false
	}
	return "", true
}

// Score implements PasswordPolicy. Below the minimum length the score is 0.
// Each character class beyond the first adds a point, and a password half again
// as long as the minimum adds one more. Rejected passwords never score above 1.
func (p CharacterPolicy) Score(password string) Strength {
	if password == "" {
		return Strength{Score: 0, Label: StrengthLabels[0]}
	}

	c := classify(password)
	classes := 0
	for _, has := range []bool{c.upper, c.lower, c.digit, c.symbol} {
		if has {
			classes++
		}
	}

	length := len([]rune(password))
	score := 0
	if length >= p.MinLength {
		score = classes - 1
		if length >= p.MinLength+p.MinLength/2 {
			score++
		}
	}
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}
	if _, ok := p.Check(password); !ok && score > 1 {
		score = 1
	}
	return Strength{Score: score, Label: StrengthLabels[score]}
}
