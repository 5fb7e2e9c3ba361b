package repositories

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio/internal/database"
	"portfolio/internal/models"
	"portfolio/internal/utils"
)

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]models.Review, error)
}

type reviewRepository struct {
	db database.Service
}

func NewReviewRepository(db database.Service) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]models.Review, error) {
	queryType := "findAll"
	repository := "review"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	collection := r.db.Client().Database("portfolio").Collection("reviews")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to query reviews")
		return nil, fmt.Errorf("failed to fetch reviews: %w", err)
	}
	defer cursor.Close(ctx)

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		log.Error().Err(err).Msg("Failed to decode reviews")
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	return reviews, nil
}
