package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkRecord is a worksheet entry submitted by an employee. The same shape
// backs both the worksheet and the progress endpoints; all records live in
// the tasks collection.
type WorkRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Task      string             `bson:"task" json:"task"`
	Date      string             `bson:"date" json:"date"` // "YYYY-MM-DD"
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// GetID implements generic.Entity.
func (w *WorkRecord) GetID() primitive.ObjectID { return w.ID }

// SetID implements generic.Entity.
func (w *WorkRecord) SetID(id primitive.ObjectID) { w.ID = id }

// WorkRecordRequest is the payload for creating or replacing a work record.
type WorkRecordRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Task  string `json:"task" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

// WorkRecordFilter narrows progress listings. Empty fields mean "no filter".
type WorkRecordFilter struct {
	Email string
	Name  string
	Month string // matches the "YYYY-MM" prefix of Date
}
