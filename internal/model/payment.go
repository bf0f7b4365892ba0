package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentRecord is the immutable audit entry written when a payroll record is
// marked paid. It is created exactly once per transition and never updated.
type PaymentRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	PayrollID   primitive.ObjectID `bson:"payrollId" json:"payrollId"`
	Email       string             `bson:"email" json:"email"`
	Amount      float64            `bson:"amount" json:"amount"`
	Month       string             `bson:"month" json:"month"`
	Year        int                `bson:"year" json:"year"`
	PaymentDate time.Time          `bson:"paymentDate" json:"paymentDate"`
	ApprovedBy  string             `bson:"approvedBy" json:"approvedBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
