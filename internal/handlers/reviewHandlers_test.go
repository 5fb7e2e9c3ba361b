package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"portfolio/internal/models"
)

type stubReviewService struct {
	reviews []models.Review
	err     error
}

func (s *stubReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews, s.err
}

func TestGetReviewsReturnsBareArray(t *testing.T) {
	svc := &stubReviewService{reviews: []models.Review{
		{Name: "Client A", Message: "Great", Rating: 5},
		{Name: "Client B", Message: "Solid", Rating: 4},
	}}

	rr := httptest.NewRecorder()
	NewReviewHandler(svc).GetReviews(rr, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	assert.Equal(t, http.StatusOK, rr.Code)

	var got []models.Review
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Len(t, got, 2)
	assert.Equal(t, "Client A", got[0].Name)
}

func TestGetReviewsEmpty(t *testing.T) {
	svc := &stubReviewService{reviews: []models.Review{}}

	rr := httptest.NewRecorder()
	NewReviewHandler(svc).GetReviews(rr, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGetReviewsError(t *testing.T) {
	svc := &stubReviewService{err: errors.New("failed to fetch reviews: db down")}

	rr := httptest.NewRecorder()
	NewReviewHandler(svc).GetReviews(rr, httptest.NewRequest(http.MethodGet, "/api/reviews", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
}
