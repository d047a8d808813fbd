package bookingRepo

import (
	"context"
	"log"

	"tablebook/database"
	"tablebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ListFilter narrows and paginates booking queries.
type ListFilter struct {
	Status  string
	Cuisine string
	Date    string // "YYYY-MM-DD"; matches the whole day
	Limit   int64
	Page    int64
}

type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	List(ctx context.Context, filter ListFilter) ([]models.Booking, int64, error)
	Upcoming(ctx context.Context) ([]models.Booking, error)
	UpdateFields(ctx context.Context, bookingID string, fields map[string]interface{}) (*models.Booking, error)
	UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) (*models.Booking, error)
	Stats(ctx context.Context) (*models.BookingStats, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo(dbName string) BookingRepository {
	db := database.MongoClient.Database(dbName)
	repo := &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		log.Printf("failed to ensure booking indexes: %v", err)
	}
	return repo
}
