// File: database/repository/occupancy/interface.go
package occupancyRepo

import (
	"context"

	"paguro/database"
	"paguro/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the read-mostly query contract over stored occupancy
// intervals. The conversation engine never writes through it; Insert
// exists for seeding and admin tooling only.
type Repository interface {
	// ListApartments returns the distinct apartment names, sorted.
	ListApartments(ctx context.Context) ([]string, error)
	// ListOccupancy returns the records for one apartment whose interval
	// intersects [rangeStart, rangeEnd] (inclusive overlap), ordered by
	// check-in. Dates are ISO YYYY-MM-DD strings.
	ListOccupancy(ctx context.Context, apartment, rangeStart, rangeEnd string) ([]models.OccupancyRecord, error)
	// ListAll returns up to limit records ordered by apartment then check-in.
	ListAll(ctx context.Context, limit int64) ([]models.OccupancyRecord, error)
	Insert(ctx context.Context, records []models.OccupancyRecord) error
}

type mongoOccupancyRepo struct {
	coll *mongo.Collection
}

// NewMongoOccupancyRepo constructs a MongoDB-backed occupancy Repository.
func NewMongoOccupancyRepo() Repository {
	db := database.MongoClient.Database("paguro")
	return &mongoOccupancyRepo{
		coll: db.Collection("occupancy"),
	}
}
