package repositories

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/careerhub/internal/app/migrations"
	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

func TestProfileInsertQuery(t *testing.T) {
	repo := NewProfileRepository(nil)
	studentID := "12342023"

	sql, args, err := repo.insertQuery(&models.Profile{
		ID:        "acc-1",
		FirstName: "Ama",
		LastName:  "Mensah",
		Email:     "ama@ashesi.edu.gh",
		RoleID:    models.RoleIDStudent,
		StudentID: &studentID,
		Password:  "[managed by auth service]",
	})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO users (id,fname,lname,email,role_id,student_id,password) VALUES ($1,$2,$3,$4,$5,$6,$7) RETURNING created_at",
		sql)
	assert.Equal(t, []interface{}{"acc-1", "Ama", "Mensah", "ama@ashesi.edu.gh", int16(3), &studentID, "[managed by auth service]"}, args)
}

// testPool connects to CAREERS_TEST_DATABASE_URL and applies the migrations.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("CAREERS_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("CAREERS_TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	_, err = migrations.NewMigrator(pool, migrations.Files()).Up(ctx)
	require.NoError(t, err)
	return pool
}

func TestProfileRepository_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewProfileRepository(pool)

	email := uuid.NewString() + "@ashesi.edu.gh"
	profile := &models.Profile{
		ID:        uuid.NewString(),
		FirstName: "Kofi",
		LastName:  "Owusu",
		Email:     email,
		RoleID:    models.RoleIDStaff,
		Password:  "[managed by auth service]",
	}
	require.NoError(t, repo.InsertProfile(ctx, profile))
	assert.False(t, profile.CreatedAt.IsZero())

	var (
		gotEmail     string
		gotRole      int16
		gotStudentID *string
	)
	err := pool.QueryRow(ctx, `SELECT email, role_id, student_id FROM users WHERE id = $1`, profile.ID).
		Scan(&gotEmail, &gotRole, &gotStudentID)
	require.NoError(t, err)
	assert.Equal(t, email, gotEmail)
	assert.Equal(t, models.RoleIDStaff, models.RoleID(gotRole))
	assert.Nil(t, gotStudentID)

	dup := *profile
	dup.ID = uuid.NewString()
	err = repo.InsertProfile(ctx, &dup)
	var serviceErr *apperrors.ServiceError
	require.True(t, errors.As(err, &serviceErr))
	assert.Equal(t, "23505", serviceErr.Code)
	assert.Contains(t, serviceErr.Message, "users_email_key")
}

func TestAuthUserRepository_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewAuthUserRepository(pool)

	user := &models.AuthUser{
		Email:        uuid.NewString() + "@ashesi.edu.gh",
		PasswordHash: "hash",
		Metadata:     map[string]interface{}{"role_id": 3, "student_id": "12342023"},
	}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEmpty(t, user.ID)

	var gotID, gotStudentID string
	err := pool.QueryRow(ctx, `SELECT id::text, metadata->>'student_id' FROM auth_users WHERE email = $1`, user.Email).
		Scan(&gotID, &gotStudentID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, gotID)
	assert.Equal(t, "12342023", gotStudentID)

	again := &models.AuthUser{Email: user.Email, PasswordHash: "other", Metadata: map[string]interface{}{}}
	assert.ErrorIs(t, repo.Create(ctx, again), ErrAuthEmailTaken)
}

func TestOrphanRepository_Postgres(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := NewOrphanRepository(pool)

	orphan := &models.OrphanedSignup{AccountID: uuid.NewString(), Email: "ama@ashesi.edu.gh", Message: "permission denied for table users"}
	require.NoError(t, repo.Record(ctx, orphan))
	assert.NotZero(t, orphan.ID)

	before, err := repo.CountUnresolved(ctx)
	require.NoError(t, err)
	assert.Positive(t, before)

	list, err := repo.ListUnresolved(ctx, 0, 1000)
	require.NoError(t, err)
	assert.Contains(t, accountIDs(list), orphan.AccountID)

	require.NoError(t, repo.Resolve(ctx, orphan.ID))
	list, err = repo.ListUnresolved(ctx, 0, 1000)
	require.NoError(t, err)
	assert.NotContains(t, accountIDs(list), orphan.AccountID)

	after, err := repo.CountUnresolved(ctx)
	require.NoError(t, err)
	assert.Less(t, after, before)

	// already resolved
	assert.ErrorIs(t, repo.Resolve(ctx, orphan.ID), apperrors.ErrResourceNotFound)
}

func accountIDs(orphans []models.OrphanedSignup) []string {
	ids := make([]string, 0, len(orphans))
	for _, o := range orphans {
		ids = append(ids, o.AccountID)
	}
	return ids
}
