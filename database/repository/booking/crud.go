package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when no booking matches the given identifier.
var ErrNotFound = errors.New("booking not found")

// newBookingID generates identifiers of the form BK<millis><3 digits>,
// matching the wire format clients already display.
func newBookingID() string {
	return fmt.Sprintf("BK%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// Create inserts a new booking and returns it with its generated ID.
func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	if booking.BookingID == "" {
		booking.BookingID = newBookingID()
	}
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

// GetByID returns a booking by its booking ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, bson.M{"booking_id": bookingID}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateFields applies the given field updates and returns the updated
// booking.
func (r *mongoBookingRepo) UpdateFields(ctx context.Context, bookingID string, fields map[string]interface{}) (*models.Booking, error) {
	set := bson.M{"updated_at": time.Now()}
	for k, v := range fields {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var booking models.Booking
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"booking_id": bookingID}, bson.M{"$set": set}, opts).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus transitions a booking to the given status.
func (r *mongoBookingRepo) UpdateStatus(ctx context.Context, bookingID, status string) (*models.Booking, error) {
	return r.UpdateFields(ctx, bookingID, map[string]interface{}{"status": status})
}

// Cancel soft-deletes a booking by marking it cancelled.
func (r *mongoBookingRepo) Cancel(ctx context.Context, bookingID string) (*models.Booking, error) {
	return r.UpdateStatus(ctx, bookingID, models.StatusCancelled)
}
