package timeslotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"playfield/models"
)

const defaultPageLimit = 20

func (r *MongoTimeSlotRepo) List(ctx context.Context, filter models.SlotFilter) ([]models.TimeSlot, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{}
	if filter.FacilityID != "" {
		query["facilityId"] = filter.FacilityID
	}
	if filter.ServiceID != "" {
		query["serviceId"] = filter.ServiceID
	}
	if filter.Date != "" {
		query["date"] = filter.Date
	} else if filter.DateFrom != "" || filter.DateTo != "" {
		dateRange := bson.M{}
		if filter.DateFrom != "" {
			dateRange["$gte"] = filter.DateFrom
		}
		if filter.DateTo != "" {
			dateRange["$lte"] = filter.DateTo
		}
		query["date"] = dateRange
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}
	if filter.IsBooked != nil {
		query["isBooked"] = *filter.IsBooked
	}

	total, err := r.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count timeslots: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	sortDir := 1
	if filter.SortDesc {
		sortDir = -1
	}

	opts := options.Find().
		SetSkip((page - 1) * limit).
		SetLimit(limit).
		SetSort(bson.D{{Key: "date", Value: sortDir}, {Key: "startTime", Value: sortDir}})

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, 0, fmt.Errorf("error decoding timeslots: %w", err)
	}
	return slots, total, nil
}

func (r *MongoTimeSlotRepo) GetByFacilityAndDate(ctx context.Context, facilityID, date string) ([]models.TimeSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"facilityId": facilityID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch timeslots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.TimeSlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding timeslots: %w", err)
	}
	return slots, nil
}
