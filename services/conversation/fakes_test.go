package conversation

import (
	"context"
	"errors"

	"paguro/models"
)

var errStore = errors.New("store unavailable")

// fakeOccupancyRepo serves canned apartment and occupancy data. The
// apartment list is derived from the record keys, mirroring how the
// real store derives it from distinct occupancy rows.
type fakeOccupancyRepo struct {
	apartments []string
	records    map[string][]models.OccupancyRecord
	listErr    error
	occErr     error
}

func (f *fakeOccupancyRepo) ListApartments(ctx context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.apartments, nil
}

func (f *fakeOccupancyRepo) ListOccupancy(ctx context.Context, apartment, rangeStart, rangeEnd string) ([]models.OccupancyRecord, error) {
	if f.occErr != nil {
		return nil, f.occErr
	}
	var out []models.OccupancyRecord
	for _, rec := range f.records[apartment] {
		if rec.CheckIn <= rangeEnd && rec.CheckOut >= rangeStart {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeOccupancyRepo) ListAll(ctx context.Context, limit int64) ([]models.OccupancyRecord, error) {
	var out []models.OccupancyRecord
	for _, apt := range f.apartments {
		out = append(out, f.records[apt]...)
	}
	return out, nil
}

func (f *fakeOccupancyRepo) Insert(ctx context.Context, records []models.OccupancyRecord) error {
	return errors.New("read-only fake")
}

// fakeGenerator records whether it was called and returns fixed output.
type fakeGenerator struct {
	text   string
	err    error
	called bool
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}
