package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PayrollStatus is the lifecycle state of a payroll record.
// The only legal transition is Pending -> Paid.
type PayrollStatus string

const (
	PayrollPending PayrollStatus = "Pending"
	PayrollPaid    PayrollStatus = "Paid"
)

// PayrollRecord is one pay obligation for an employee in a given period.
type PayrollRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID  primitive.ObjectID `bson:"employeeId" json:"employeeId"`
	Email       string             `bson:"email" json:"email"`
	Month       string             `bson:"month" json:"month"` // "01".."12"
	Year        int                `bson:"year" json:"year"`
	Amount      float64            `bson:"amount" json:"amount"`
	Status      PayrollStatus      `bson:"status" json:"status"`
	PaymentDate *time.Time         `bson:"paymentDate,omitempty" json:"paymentDate,omitempty"`
	ApprovedBy  string             `bson:"approvedBy,omitempty" json:"approvedBy,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// CreatePayrollRequest is the payload accepted by POST /payroll.
type CreatePayrollRequest struct {
	EmployeeID string  `json:"employeeId"`
	Email      string  `json:"email" binding:"required"`
	Month      string  `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
	Salary     float64 `json:"salary" binding:"required"`
}

// PayrollFilter narrows payroll listings. Zero values mean "no filter".
type PayrollFilter struct {
	Status PayrollStatus
	Month  string
	Year   int
}

// PayrollView is a payroll record joined with the employee's display fields,
// produced by the listing aggregation.
type PayrollView struct {
	PayrollRecord `bson:",inline"`
	EmployeeName  string `bson:"employeeName" json:"employeeName"`
	Designation   string `bson:"designation" json:"designation"`
	PhotoURL      string `bson:"photoURL" json:"photoURL"`
}
