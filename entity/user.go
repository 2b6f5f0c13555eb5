package entity

import "go.mongodb.org/mongo-driver/bson/primitive"

// User lives in the document store. The identifier is assigned by the store
// on insert and never changes afterwards.
type User struct {
	ID    primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Nome  string             `json:"nome" bson:"nome"`
	Email string             `json:"email" bson:"email"`
}

// UserPatch is a partial update: only non-nil fields are merged onto the
// stored record, untouched fields keep their value.
type UserPatch struct {
	Nome  *string
	Email *string
}

// IsEmpty reports whether the patch changes anything at all.
func (p UserPatch) IsEmpty() bool {
	return p.Nome == nil && p.Email == nil
}
