package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"portfolio/internal/metrics"
	"portfolio/internal/models"
	"portfolio/internal/repositories"
)

type ReviewService interface {
	ListReviews(ctx context.Context) ([]models.Review, error)
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	metrics.ReviewsServedTotal.Inc()
	log.Debug().Int("count", len(reviews)).Msg("Reviews listed")
	return reviews, nil
}
