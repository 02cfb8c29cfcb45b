package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestIsStudentID(t *testing.T) {
	assert.True(t, IsStudentID("12342023"))
	assert.True(t, IsStudentID("99992099"))
	assert.False(t, IsStudentID("1234202"))
	assert.False(t, IsStudentID("123420234"))
	assert.False(t, IsStudentID("12341923"))
	assert.False(t, IsStudentID(" 12342023"))
}

func TestEmailDomain(t *testing.T) {
	domain, ok := EmailDomain("ama@ashesi.edu.gh")
	assert.True(t, ok)
	assert.Equal(t, "ashesi.edu.gh", domain)

	_, ok = EmailDomain("ama")
	assert.False(t, ok)
	_, ok = EmailDomain("a@b@ashesi.edu.gh")
	assert.False(t, ok)
}

func TestHasAllowedDomain(t *testing.T) {
	assert.True(t, HasAllowedDomain("ama@aucampus.onmicrosoft.com", DefaultEmailDomains))
	assert.False(t, HasAllowedDomain("ama@gmail.com", DefaultEmailDomains))
	assert.False(t, HasAllowedDomain("ama@Ashesi.edu.gh", DefaultEmailDomains))
	assert.False(t, HasAllowedDomain("ama@ashesi.edu.gh", nil))
}

func TestCharacterPolicy_Check(t *testing.T) {
	p := DefaultPasswordPolicy()

	tests := []struct {
		password string
		reason   string
	}{
		{password: "Abc123!@"},
		{password: "", reason: "password cannot be empty"},
		{password: "Ab1!", reason: "password must be at least 8 characters long"},
		{password: "abc123!@", reason: "password must contain an uppercase letter"},
		{password: "ABC123!@", reason: "password must contain a lowercase letter"},
		{password: "Abcdef!@", reason: "password must contain a digit"},
		{password: "Abc12345", reason: "password must contain a symbol"},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			reason, ok := p.Check(tt.password)
			assert.Equal(t, tt.reason == "", ok)
			assert.Equal(t, tt.reason, reason)
		})
	}
}

func TestCharacterPolicy_Score(t *testing.T) {
	p := DefaultPasswordPolicy()

	tests := []struct {
		password string
		score    int
	}{
		{password: "", score: 0},
		{password: "Ab1!", score: 0},
		{password: "abcdefgh", score: 0},
		{password: "abcdef12", score: 1},
		{password: "Abc123!@", score: 3},
		{password: "Abc123!@xyz9", score: 4},
	}

	for _, tt := range tests {
		t.Run(tt.password, func(t *testing.T) {
			s := p.Score(tt.password)
			assert.Equal(t, tt.score, s.Score)
			assert.Equal(t, StrengthLabels[tt.score], s.Label)
		})
	}
}

func TestProperty_RejectedPasswordsScoreLow(t *testing.T) {
	p := DefaultPasswordPolicy()
	rapid.Check(t, func(t *rapid.T) {
		password := rapid.String().Draw(t, "password")
		s := p.Score(password)
		if s.Score < 0 || s.Score > 4 {
			t.Fatalf("score %d out of range", s.Score)
		}
		if _, ok := p.Check(password); !ok && s.Score > 1 {
			t.Fatalf("rejected password %q scored %d", password, s.Score)
		}
	})
}
