// File: database/repository/occupancy/occupancy_mongo.go
package occupancyRepo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"paguro/models"
)

func (r *mongoOccupancyRepo) ListApartments(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	raw, err := r.coll.Distinct(ctx, "apartment", bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list apartments: %w", err)
	}

	names := make([]string, 0, len(raw))
	for _, v := range raw {
		if name, ok := v.(string); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}

func (r *mongoOccupancyRepo) ListOccupancy(ctx context.Context, apartment, rangeStart, rangeEnd string) ([]models.OccupancyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// ISO dates compare lexicographically, so string comparison is
	// chronological comparison here.
	filter := bson.M{
		"apartment": apartment,
		"checkIn":   bson.M{"$lte": rangeEnd},
		"checkOut":  bson.M{"$gte": rangeStart},
	}
	opts := options.Find().SetSort(bson.D{{Key: "checkIn", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query occupancy for %q: %w", apartment, err)
	}
	defer cursor.Close(ctx)

	var records []models.OccupancyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode occupancy for %q: %w", apartment, err)
	}
	return records, nil
}

func (r *mongoOccupancyRepo) ListAll(ctx context.Context, limit int64) ([]models.OccupancyRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "apartment", Value: 1}, {Key: "checkIn", Value: 1}}).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list occupancy records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.OccupancyRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode occupancy records: %w", err)
	}
	return records, nil
}

func (r *mongoOccupancyRepo) Insert(ctx context.Context, records []models.OccupancyRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		docs[i] = rec
	}

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert occupancy records: %w", err)
	}
	return nil
}
