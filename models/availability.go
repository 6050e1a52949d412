package models

// AvailabilityWeek is one free Saturday-to-Saturday week computed for a
// single availability query. Weeks are never persisted; they only live
// in the reply and, for booking selection, in the session store.
// Index is 1-based and unique within one result set.
type AvailabilityWeek struct {
	Index             int    `json:"index"`
	Apartment         string `json:"appartamento"`
	CheckIn           string `json:"check_in"`
	CheckOut          string `json:"check_out"`
	CheckInFormatted  string `json:"check_in_formatted"`
	CheckOutFormatted string `json:"check_out_formatted"`
}
