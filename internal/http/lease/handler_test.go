package lease

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dmarins/rently/internal/lease"
)

func newTestRouter(t *testing.T) (*lease.MockRepository, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := lease.NewMockRepository(ctrl)
	svc := lease.NewService(repo,
		lease.NewMockPropertyDirectory(ctrl),
		lease.NewMockTenantDirectory(ctrl),
		lease.NewMockBiller(ctrl))

	router := chi.NewRouter()
	NewHandler(svc).Routes(router)

	return repo, router
}

func patchLease(t *testing.T, router http.Handler, id uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/"+id.String(), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))

	return envelope.Message
}

func TestHandler_Terminate_BlockedByDebt_ReportsUnsettledCount(t *testing.T) {
	repo, router := newTestRouter(t)

	id := uuid.New()

	repo.EXPECT().GetLease(gomock.Any(), id).
		Return(&lease.Lease{ID: id, Status: lease.StatusActive}, nil)
	repo.EXPECT().CountUnsettledPayments(gomock.Any(), id).Return(2, nil)

	rec := patchLease(t, router, id,
		`{"status": "TERMINATED", "termination_date": "2026-01-31"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t,
		"lease cannot be terminated: 2 payment(s) still pending or overdue",
		decodeMessage(t, rec))
}

func TestHandler_Terminate_ValidationFailureMessageIsDistinct(t *testing.T) {
	_, router := newTestRouter(t)

	rec := patchLease(t, router, uuid.New(), `{"status": "CANCELLED"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, decodeMessage(t, rec), "cannot be terminated")
}

func TestHandler_Update_TerminatedLeaseRejected(t *testing.T) {
	repo, router := newTestRouter(t)

	id := uuid.New()

	repo.EXPECT().GetLease(gomock.Any(), id).
		Return(&lease.Lease{ID: id, Status: lease.StatusTerminated}, nil)

	rec := patchLease(t, router, id, `{"status": "ACTIVE"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "lease already terminated", decodeMessage(t, rec))
}
