package domain

import "time"

// Inquiry is a one-off question a user leaves on a listing, outside the
// chat threads. Inquiries are immutable and never answered in place;
// the owner follows up through messaging.
type Inquiry struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ListingID string    `json:"propiedad_id" bson:"propiedad_id"`
	UserID    string    `json:"usuario_id" bson:"usuario_id"`
	Body      string    `json:"mensaje" bson:"mensaje"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
