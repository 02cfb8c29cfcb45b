package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
auth_service:
  provider: local
  jwt_secret: secret
registration:
  navigation_delay: 2s
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "local", cfg.AuthService.Provider)
	assert.Equal(t, "2s", cfg.Registration.NavigationDelay)
	// untouched defaults survive
	assert.Equal(t, []string{"ashesi.edu.gh", "aucampus.onmicrosoft.com"}, cfg.Registration.AllowedEmailDomains)
	assert.Equal(t, "/dashboard/student", cfg.Registration.StudentDestination)
	assert.Equal(t, "/dashboard/admin", cfg.Registration.StaffDestination)
}

func TestLoadConfig_EnvironmentWins(t *testing.T) {
	path := writeConfig(t, `
auth_service:
  provider: remote
  base_url: https://file.example
  api_key: from-file
`)
	t.Setenv("AUTH_BASE_URL", "https://env.example")
	t.Setenv("REGISTRATION_ALLOWED_EMAIL_DOMAINS", "ashesi.edu.gh")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.AuthService.BaseURL)
	assert.Equal(t, "from-file", cfg.AuthService.APIKey)
	assert.Equal(t, []string{"ashesi.edu.gh"}, cfg.Registration.AllowedEmailDomains)
}

func TestLoadConfig_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "local")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "[managed by auth service]", cfg.Registration.PasswordPlaceholder)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "remote without base url",
			body: "auth_service:\n  provider: remote\n  api_key: k\n",
			want: "base URL is required",
		},
		{
			name: "local without secret",
			body: "auth_service:\n  provider: local\n",
			want: "JWT secret is required",
		},
		{
			name: "unknown provider",
			body: "auth_service:\n  provider: ldap\n",
			want: `unknown auth provider "ldap"`,
		},
		{
			name: "bad navigation delay",
			body: "auth_service:\n  provider: local\n  jwt_secret: s\nregistration:\n  navigation_delay: soon\n",
			want: "navigation delay",
		},
		{
			name: "no domains",
			body: "auth_service:\n  provider: local\n  jwt_secret: s\nregistration:\n  allowed_email_domains: []\n",
			want: "allowed email domain",
		},
		{
			name: "bad timeout",
			body: "auth_service:\n  provider: local\n  jwt_secret: s\n  timeout: forever\n",
			want: "auth service timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "server: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestLoadRegistrationConfig_IgnoresBackendSettings(t *testing.T) {
	// Would fail LoadConfig: remote provider with no base URL.
	path := writeConfig(t, "registration:\n  password_min_length: 10\n")

	reg, err := LoadRegistrationConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 10, reg.PasswordMinLength)

	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5433", User: "u", Password: "p", DBName: "careers",
	}}
	assert.Equal(t, "postgres://u:p@db:5433/careers?sslmode=disable", cfg.GetPostgresConnectionString())
}
