package repositories

import (
	"context"
	"regexp"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"portfolio/internal/database"
	"portfolio/internal/models"
	"portfolio/internal/utils"
)

// AdminRepository is the lookup surface over the admin_account collection.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindByEmailFold(ctx context.Context, email string) (*models.Admin, error)
	FindByID(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error)
}

type adminRepository struct {
	db database.Service
}

func NewAdminRepository(db database.Service) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) collection() *mongo.Collection {
	return r.db.Client().Database("portfolio").Collection("admin_account")
}

func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	queryType := "findByEmail"
	repository := "admin"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var admin models.Admin
	err := r.collection().FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err // Can be mongo.ErrNoDocuments
	}
	return &admin, nil
}

// FindByEmailFold matches the email case-insensitively. The input is quoted
// so regex metacharacters match literally, and the pattern is anchored at
// both ends.
func (r *adminRepository) FindByEmailFold(ctx context.Context, email string) (*models.Admin, error) {
	queryType := "findByEmailFold"
	repository := "admin"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	pattern := primitive.Regex{Pattern: "^" + regexp.QuoteMeta(email) + "$", Options: "i"}

	var admin models.Admin
	err := r.collection().FindOne(ctx, bson.M{"email": pattern}).Decode(&admin)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) FindByID(ctx context.Context, adminID primitive.ObjectID) (*models.Admin, error) {
	queryType := "findById"
	repository := "admin"
	status := "success"
	timer := prometheus.NewTimer(prometheus.ObserverFunc(func(v float64) {
		utils.DBQueryDurationSeconds.WithLabelValues(queryType, repository, status).Observe(v)
	}))
	defer timer.ObserveDuration()

	var admin models.Admin
	err := r.collection().FindOne(ctx, bson.M{"_id": adminID}).Decode(&admin)
	if err != nil {
		status = "error"
		utils.DBQueryErrorsTotal.WithLabelValues(queryType, repository).Inc()
		return nil, err
	}
	return &admin, nil
}
