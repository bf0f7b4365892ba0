package service

import (
	"context"
	"testing"
	"time"

	"staffhub/internal/mocks"
	"staffhub/internal/model"
	"staffhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func pendingRecord(id primitive.ObjectID) *model.PayrollRecord {
	return &model.PayrollRecord{
		ID:     id,
		Email:  "a@x.com",
		Month:  "03",
		Year:   2024,
		Amount: 1000,
		Status: model.PayrollPending,
	}
}

func TestPayTransitionsPendingRecord(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	id := primitive.NewObjectID()

	payroll.On("FindByID", mock.Anything, id).Return(pendingRecord(id), nil)
	payroll.On("CountPaidForPeriod", mock.Anything, "a@x.com", "03", 2024, id).Return(int64(0), nil)
	payroll.On("MarkPaid", mock.Anything, id, mock.AnythingOfType("time.Time"), "admin@x.com").Return(nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	paymentDate, err := svc.Pay(context.Background(), id.Hex(), "admin@x.com")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), paymentDate, 5*time.Second)

	payroll.AssertNumberOfCalls(t, "MarkPaid", 1)
	payroll.AssertExpectations(t)
}

func TestPayMissingRecord(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	id := primitive.NewObjectID()
	payroll.On("FindByID", mock.Anything, id).Return(nil, nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.Pay(context.Background(), id.Hex(), "admin@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	payroll.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayIsIdempotent(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	id := primitive.NewObjectID()
	paid := pendingRecord(id)
	paid.Status = model.PayrollPaid

	payroll.On("FindByID", mock.Anything, id).Return(paid, nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.Pay(context.Background(), id.Hex(), "admin@x.com")
	assert.ErrorIs(t, err, repository.ErrAlreadyPaid)
	// The second attempt must not write anything.
	payroll.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayRejectsDuplicatePeriod(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	id := primitive.NewObjectID()

	payroll.On("FindByID", mock.Anything, id).Return(pendingRecord(id), nil)
	payroll.On("CountPaidForPeriod", mock.Anything, "a@x.com", "03", 2024, id).Return(int64(1), nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.Pay(context.Background(), id.Hex(), "admin@x.com")
	assert.ErrorIs(t, err, repository.ErrDuplicatePeriod)
	payroll.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaySurfacesLostRace(t *testing.T) {
	// The repository re-validates the guards atomically with the write; a
	// transition that lost the race reports ErrAlreadyPaid from MarkPaid.
	payroll := new(mocks.PayrollRepository)
	id := primitive.NewObjectID()

	payroll.On("FindByID", mock.Anything, id).Return(pendingRecord(id), nil)
	payroll.On("CountPaidForPeriod", mock.Anything, "a@x.com", "03", 2024, id).Return(int64(0), nil)
	payroll.On("MarkPaid", mock.Anything, id, mock.AnythingOfType("time.Time"), "admin@x.com").
		Return(repository.ErrAlreadyPaid)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.Pay(context.Background(), id.Hex(), "admin@x.com")
	assert.ErrorIs(t, err, repository.ErrAlreadyPaid)
}

func TestPayRejectsInvalidID(t *testing.T) {
	svc := NewPayrollService(new(mocks.PayrollRepository), new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.Pay(context.Background(), "not-an-id", "admin@x.com")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreatePayrollRecord(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	users := new(mocks.UserRepository)

	employee := &model.User{ID: primitive.NewObjectID(), Email: "a@x.com", Role: model.RoleEmployee}
	users.On("FindByEmail", mock.Anything, "a@x.com").Return(employee, nil)
	payroll.On("Create", mock.Anything, mock.MatchedBy(func(r *model.PayrollRecord) bool {
		return r.Email == "a@x.com" && r.Month == "03" && r.Year == 2024 && r.Amount == 1000
	})).Return(&model.PayrollRecord{Status: model.PayrollPending}, nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), users)

	record, err := svc.Create(context.Background(), &model.CreatePayrollRequest{
		Email:  "a@x.com",
		Month:  "3", // single digit normalizes to "03"
		Year:   2024,
		Salary: 1000,
	})
	require.NoError(t, err)
	assert.Equal(t, model.PayrollPending, record.Status)
	payroll.AssertExpectations(t)
}

func TestCreateRejectsUnknownEmployee(t *testing.T) {
	users := new(mocks.UserRepository)
	users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(nil, nil)

	svc := NewPayrollService(new(mocks.PayrollRepository), new(mocks.PaymentRepository), users)

	_, err := svc.Create(context.Background(), &model.CreatePayrollRequest{
		Email:  "ghost@x.com",
		Month:  "03",
		Year:   2024,
		Salary: 1000,
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestCreateRejectsBadMonth(t *testing.T) {
	svc := NewPayrollService(new(mocks.PayrollRepository), new(mocks.PaymentRepository), new(mocks.UserRepository))

	for _, month := range []string{"0", "13", "March", ""} {
		_, err := svc.Create(context.Background(), &model.CreatePayrollRequest{
			Email:  "a@x.com",
			Month:  month,
			Year:   2024,
			Salary: 1000,
		})
		assert.ErrorIs(t, err, ErrValidation, "month %q", month)
	}
}

func TestListNormalizesMonthFilter(t *testing.T) {
	payroll := new(mocks.PayrollRepository)
	payroll.On("List", mock.Anything, model.PayrollFilter{Status: model.PayrollPending, Month: "03"}).
		Return([]*model.PayrollView{}, nil)

	svc := NewPayrollService(payroll, new(mocks.PaymentRepository), new(mocks.UserRepository))

	_, err := svc.List(context.Background(), model.PayrollFilter{Status: model.PayrollPending, Month: "3"})
	require.NoError(t, err)
	payroll.AssertExpectations(t)
}

func TestPaymentHistory(t *testing.T) {
	payments := new(mocks.PaymentRepository)
	history := []*model.PaymentRecord{
		{Email: "a@x.com", Month: "02", Year: 2024},
		{Email: "a@x.com", Month: "03", Year: 2024},
	}
	payments.On("FindByEmail", mock.Anything, "a@x.com").Return(history, nil)

	svc := NewPayrollService(new(mocks.PayrollRepository), payments, new(mocks.UserRepository))

	records, err := svc.PaymentHistory(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
