package models

// ChatRequest is the payload coming from the widget into /api/chat.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ResponseType is the closed set of reply kinds the engine can produce.
// The embedding widget switches on this value, so it is part of the
// wire contract.
type ResponseType string

const (
	TypePredefined      ResponseType = "predefined_response"
	TypeAvailability    ResponseType = "availability_list"
	TypeNoAvailability  ResponseType = "no_availability"
	TypePromptForInfo   ResponseType = "prompt_for_info"
	TypeBookingRedirect ResponseType = "booking_redirect"
	TypeGreeting        ResponseType = "greeting"
	TypeTest            ResponseType = "test"
	TypeAIResponse      ResponseType = "ai_response"
	TypeFallback        ResponseType = "fallback_response"
	TypeError           ResponseType = "error"
)

// BookingData carries the selected week to the booking form, plus the
// redirect target for price/booking hand-offs.
type BookingData struct {
	Apartment         string `json:"appartamento,omitempty"`
	CheckIn           string `json:"check_in,omitempty"`
	CheckOut          string `json:"check_out,omitempty"`
	CheckInFormatted  string `json:"check_in_formatted,omitempty"`
	CheckOutFormatted string `json:"check_out_formatted,omitempty"`
	RedirectURL       string `json:"redirect_url,omitempty"`
}

// ChatResponse is what the chat endpoint returns to the widget.
type ChatResponse struct {
	Message           string             `json:"message"`
	Type              ResponseType       `json:"type"`
	SessionID         string             `json:"session_id,omitempty"`
	Timestamp         string             `json:"timestamp,omitempty"`
	BookingData       *BookingData       `json:"booking_data,omitempty"`
	AvailabilityCount int                `json:"availability_count,omitempty"`
	AvailabilityData  []AvailabilityWeek `json:"availability_data,omitempty"`
}
