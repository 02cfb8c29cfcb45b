package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/careerhub/internal/app/models"
	"github.com/yigit/careerhub/internal/app/services"
	"github.com/yigit/careerhub/internal/pkg/apperrors"
)

type stubOrphanStore struct {
	orphans  []models.OrphanedSignup
	offset   uint64
	limit    uint64
	resolved []int64
}

func (s *stubOrphanStore) ListUnresolved(ctx context.Context, offset, limit uint64) ([]models.OrphanedSignup, error) {
	s.offset, s.limit = offset, limit
	return s.orphans, nil
}

func (s *stubOrphanStore) CountUnresolved(ctx context.Context) (int64, error) {
	return 12, nil
}

func (s *stubOrphanStore) Resolve(ctx context.Context, id int64) error {
	if id != 7 {
		return apperrors.NewResourceNotFoundError("no open orphaned signup with id 8")
	}
	s.resolved = append(s.resolved, id)
	return nil
}

func newOrphanRouter(store *stubOrphanStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := NewOrphanController(services.NewOrphanService(store, zerolog.Nop()), zerolog.Nop())

	router := gin.New()
	router.GET("/admin/orphaned-signups", ctrl.ListOrphanedSignups)
	router.POST("/admin/orphaned-signups/:id/resolve", ctrl.ResolveOrphanedSignup)
	return router
}

func TestListOrphanedSignups(t *testing.T) {
	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	store := &stubOrphanStore{orphans: []models.OrphanedSignup{
		{ID: 7, AccountID: "acc-7", Email: "ama@ashesi.edu.gh", Message: "insert failed", CreatedAt: created},
	}}
	router := newOrphanRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/orphaned-signups?page=2&size=5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, uint64(5), store.offset)
	assert.Equal(t, uint64(5), store.limit)

	var body struct {
		Data struct {
			Items []struct {
				ID        int64  `json:"id"`
				AccountID string `json:"accountId"`
			} `json:"items"`
			Pagination struct {
				CurrentPage int   `json:"currentPage"`
				TotalPages  int   `json:"totalPages"`
				TotalItems  int64 `json:"totalItems"`
			} `json:"pagination"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data.Items, 1)
	assert.Equal(t, "acc-7", body.Data.Items[0].AccountID)
	assert.Equal(t, 2, body.Data.Pagination.CurrentPage)
	assert.Equal(t, 3, body.Data.Pagination.TotalPages)
	assert.Equal(t, int64(12), body.Data.Pagination.TotalItems)
}

func TestResolveOrphanedSignup(t *testing.T) {
	store := &stubOrphanStore{}
	router := newOrphanRouter(store)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/orphaned-signups/7/resolve", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{7}, store.resolved)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/orphaned-signups/8/resolve", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/orphaned-signups/abc/resolve", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
