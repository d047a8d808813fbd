package bookingRepo

import (
	"context"
	"time"

	"tablebook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// List returns bookings matching the filter, sorted by date and time, plus
// the total match count for pagination.
func (r *mongoBookingRepo) List(ctx context.Context, filter ListFilter) ([]models.Booking, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Cuisine != "" {
		query["cuisine_preference"] = filter.Cuisine
	}
	if filter.Date != "" {
		start, err := time.Parse("2006-01-02", filter.Date)
		if err == nil {
			end := start.Add(24*time.Hour - time.Millisecond)
			query["booking_date"] = bson.M{"$gte": start, "$lte": end}
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	page := filter.Page
	if page <= 0 {
		page = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "booking_date", Value: 1}, {Key: "booking_time", Value: 1}}).
		SetLimit(limit).
		SetSkip((page - 1) * limit)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// Upcoming returns pending and confirmed bookings from today onward.
func (r *mongoBookingRepo) Upcoming(ctx context.Context) ([]models.Booking, error) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	query := bson.M{
		"booking_date": bson.M{"$gte": today},
		"status":       bson.M{"$in": []string{models.StatusPending, models.StatusConfirmed}},
	}
	opts := options.Find().SetSort(bson.D{{Key: "booking_date", Value: 1}, {Key: "booking_time", Value: 1}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// Stats aggregates booking counts by status plus cuisine and seating
// breakdowns.
func (r *mongoBookingRepo) Stats(ctx context.Context) (*models.BookingStats, error) {
	stats := &models.BookingStats{}

	countByStatus := func(status string) (int, error) {
		query := bson.M{}
		if status != "" {
			query["status"] = status
		}
		n, err := r.coll.CountDocuments(ctx, query)
		return int(n), err
	}

	var err error
	if stats.Total, err = countByStatus(""); err != nil {
		return nil, err
	}
	if stats.Confirmed, err = countByStatus(models.StatusConfirmed); err != nil {
		return nil, err
	}
	if stats.Pending, err = countByStatus(models.StatusPending); err != nil {
		return nil, err
	}
	if stats.Cancelled, err = countByStatus(models.StatusCancelled); err != nil {
		return nil, err
	}
	if stats.Completed, err = countByStatus(models.StatusCompleted); err != nil {
		return nil, err
	}

	cuisinePipeline := []bson.M{
		{"$group": bson.M{"_id": "$cuisine_preference", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
		{"$limit": 5},
	}
	cursor, err := r.coll.Aggregate(ctx, cuisinePipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &stats.PopularCuisines); err != nil {
		return nil, err
	}

	seatingPipeline := []bson.M{
		{"$group": bson.M{"_id": "$seating_preference", "count": bson.M{"$sum": 1}}},
	}
	cursor, err = r.coll.Aggregate(ctx, seatingPipeline)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &stats.SeatingPreferences); err != nil {
		return nil, err
	}

	return stats, nil
}
