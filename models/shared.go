package models

// Envelope is the uniform response body for every API endpoint.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ReminderPayload is the asynq task payload for booking reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	UserID    string `json:"userId"`
	SlotDate  string `json:"slotDate"`
	SlotStart string `json:"slotStart"`
	Facility  string `json:"facility"`
	Service   string `json:"service"`
}
