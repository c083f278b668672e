package domain

import (
	"errors"
	"time"
)

// SubmissionStatus is the review state of a verification document.
type SubmissionStatus string

const (
	SubmissionPending  SubmissionStatus = "pendiente"
	SubmissionApproved SubmissionStatus = "aprobado"
	SubmissionRejected SubmissionStatus = "rechazado"
)

// validReviews defines the allowed review transitions. Reviewed
// submissions are final; only an administrator moves a submission out
// of pendiente.
var validReviews = map[SubmissionStatus][]SubmissionStatus{
	SubmissionPending: {SubmissionApproved, SubmissionRejected},
}

var ErrInvalidReview = errors.New("invalid review transition")
var ErrSubmissionNotFound = errors.New("verification submission not found")

// CanTransitionTo reports whether a review moving status s to next is valid.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range validReviews[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// VerificationSubmission is a user-provided identity document awaiting
// administrator approval. The submitting user never mutates it.
type VerificationSubmission struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	UserID      string           `json:"user_id" bson:"user_id"`
	Label       string           `json:"documento_tipo" bson:"documento_tipo"`
	ObjectKey   string           `json:"ruta_archivo" bson:"ruta_archivo"`
	Status      SubmissionStatus `json:"estado" bson:"estado"`
	SubmittedAt time.Time        `json:"created_at" bson:"created_at"`
}
