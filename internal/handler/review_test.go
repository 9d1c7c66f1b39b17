package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jpeder/gamevault/internal/domain"
)

// ============================================================================
// MOCKS
// ============================================================================

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) Submit(ctx context.Context, sub domain.ReviewSubmission) (*domain.Review, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) Get(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) List(ctx context.Context) ([]domain.Review, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) Update(ctx context.Context, id uuid.UUID, sub domain.ReviewSubmission) (*domain.Review, error) {
	args := m.Called(ctx, id, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// reviewRouter mounts the review handlers the way the server does, so path
// parameters resolve in tests
func reviewRouter(svc *MockReviewService) http.Handler {
	r := chi.NewRouter()
	r.Post("/reviews", HandleSubmitReview(svc))
	r.Get("/reviews", HandleListReviews(svc))
	r.Get("/reviews/{id}", HandleGetReview(svc))
	r.Put("/reviews/{id}", HandleUpdateReview(svc))
	r.Delete("/reviews/{id}", HandleDeleteReview(svc))
	return r
}

func validReviewBody() map[string]any {
	return map[string]any{
		"title":       "Worth the wait",
		"game_name":   "Silksong",
		"review_text": "Demanding but fair",
		"rating":      9.0,
	}
}

func postJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleSubmitReview_Success(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	want := &domain.Review{ID: uuid.New(), GameName: "Silksong", Title: "Worth the wait", Rating: 9}
	svc.On("Submit", mock.Anything, mock.MatchedBy(func(sub domain.ReviewSubmission) bool {
		return sub.GameName == "Silksong" && sub.Rating == 9
	})).Return(want, nil)

	w := postJSON(t, router, "POST", "/reviews", validReviewBody())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), want.ID.String())
	svc.AssertExpectations(t)
}

func TestHandleSubmitReview_MissingFields(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	tests := []struct {
		name   string
		remove string
	}{
		{"missing title", "title"},
		{"missing game name", "game_name"},
		{"missing review text", "review_text"},
		{"missing rating", "rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validReviewBody()
			delete(body, tt.remove)

			w := postJSON(t, router, "POST", "/reviews", body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), ErrMsgInvalidRequestSummary)
		})
	}

	svc.AssertNotCalled(t, "Submit")
}

func TestHandleSubmitReview_BlankTitle(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	body := validReviewBody()
	body["title"] = "   "

	w := postJSON(t, router, "POST", "/reviews", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Submit")
}

func TestHandleSubmitReview_InvalidJSON(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	req := httptest.NewRequest("POST", "/reviews", bytes.NewBufferString(`{not json`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidRequest)
}

func TestHandleGetReview(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	id := uuid.New()
	want := &domain.Review{ID: id, Title: "One"}
	svc.On("Get", mock.Anything, id).Return(want, nil)

	req := httptest.NewRequest("GET", "/reviews/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestHandleGetReview_NotFound(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	id := uuid.New()
	svc.On("Get", mock.Anything, id).Return(nil, domain.ErrReviewNotFound)

	req := httptest.NewRequest("GET", "/reviews/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgReviewNotFoundError)
}

func TestHandleGetReview_InvalidID(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	req := httptest.NewRequest("GET", "/reviews/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgInvalidReviewID)
	svc.AssertNotCalled(t, "Get")
}

func TestHandleListReviews_EmptyIsArray(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	svc.On("List", mock.Anything).Return([]domain.Review(nil), nil)

	req := httptest.NewRequest("GET", "/reviews", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestHandleUpdateReview(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	id := uuid.New()
	want := &domain.Review{ID: id, Title: "Worth the wait"}
	svc.On("Update", mock.Anything, id, mock.Anything).Return(want, nil)

	w := postJSON(t, router, "PUT", "/reviews/"+id.String(), validReviewBody())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), id.String())
}

func TestHandleDeleteReview(t *testing.T) {
	svc := new(MockReviewService)
	router := reviewRouter(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil)

	req := httptest.NewRequest("DELETE", "/reviews/"+id.String(), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgReviewDeletedSuccess)
}
