package domain

import (
	"errors"
	"time"
)

var ErrThreadNotFound = errors.New("thread not found")

// Message is a single chat message between two users, optionally tied to
// a listing. Messages are immutable once created; a thread is the set of
// messages between a participant pair, ordered ascending by SentAt.
type Message struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SenderID    string    `json:"emisor_id" bson:"emisor_id"`
	RecipientID string    `json:"receptor_id" bson:"receptor_id"`
	ListingID   string    `json:"propiedad_id,omitempty" bson:"propiedad_id,omitempty"`
	Body        string    `json:"contenido" bson:"contenido"`
	SentAt      time.Time `json:"fecha_envio" bson:"fecha_envio"`
}

// Participant reports whether userID is one of the two ends of the message.
func (m *Message) Participant(userID string) bool {
	return m.SenderID == userID || m.RecipientID == userID
}

// PairKey returns a canonical key for the (participant pair, listing)
// thread identity: the same key regardless of who initiates.
func PairKey(userA, userB, listingID string) string {
	if userB < userA {
		userA, userB = userB, userA
	}
	key := userA + ":" + userB
	if listingID != "" {
		key += ":" + listingID
	}
	return key
}
