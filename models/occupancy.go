package models

// OccupancyRecord is one stored interval during which an apartment is
// taken, as a half-open [CheckIn, CheckOut) range. Dates are ISO
// calendar dates (YYYY-MM-DD) and CheckIn < CheckOut.
type OccupancyRecord struct {
	ID        string `bson:"id,omitempty" json:"id,omitempty"`
	Apartment string `bson:"apartment" json:"appartamento"`
	CheckIn   string `bson:"checkIn" json:"check_in"`
	CheckOut  string `bson:"checkOut" json:"check_out"`
}
