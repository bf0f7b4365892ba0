package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"staffhub/internal/model"
	"staffhub/internal/repository"
	"staffhub/pkg/timer"
	"staffhub/pkg/util"
)

// PayrollService governs the payroll lifecycle: Pending records are created
// per employee per period and an admin transitions them to Paid exactly once.
type PayrollService struct {
	payroll  repository.IPayrollRepository
	payments repository.IPaymentRepository
	users    repository.IUserRepository
}

// NewPayrollService creates a new payroll service
func NewPayrollService(payroll repository.IPayrollRepository, payments repository.IPaymentRepository, users repository.IUserRepository) *PayrollService {
	return &PayrollService{payroll: payroll, payments: payments, users: users}
}

// Create inserts a Pending payroll record for an existing employee.
func (s *PayrollService) Create(ctx context.Context, req *model.CreatePayrollRequest) (*model.PayrollRecord, error) {
	month, err := normalizeMonth(req.Month)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if req.Year < 2000 || req.Year > 2200 {
		return nil, fmt.Errorf("%w: year %d out of range", ErrValidation, req.Year)
	}
	if req.Salary <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	email, err := util.NormalizeEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee: %w", err)
	}
	if user == nil {
		return nil, repository.ErrNotFound
	}

	record := &model.PayrollRecord{
		EmployeeID: user.ID,
		Email:      email,
		Month:      month,
		Year:       req.Year,
		Amount:     req.Salary,
	}
	created, err := s.payroll.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create payroll record: %w", err)
	}
	return created, nil
}

// List returns payroll records joined with employee display fields,
// optionally narrowed by status, month, and year.
func (s *PayrollService) List(ctx context.Context, filter model.PayrollFilter) ([]*model.PayrollView, error) {
	if filter.Month != "" {
		month, err := normalizeMonth(filter.Month)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		filter.Month = month
	}
	views, err := s.payroll.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll: %w", err)
	}
	return views, nil
}

// Pay transitions a payroll record from Pending to Paid on behalf of
// approver and records the audit payment entry. The pre-checks here give
// precise errors; the repository re-validates both guards atomically with
// the write, so concurrent attempts cannot both succeed.
func (s *PayrollService) Pay(ctx context.Context, idHex, approver string) (time.Time, error) {
	defer timer.Track("payroll.Pay")()

	id, err := util.ParseObjectID(idHex)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	record, err := s.payroll.FindByID(ctx, id)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to look up payroll record: %w", err)
	}
	if record == nil {
		return time.Time{}, repository.ErrNotFound
	}
	if record.Status == model.PayrollPaid {
		return time.Time{}, repository.ErrAlreadyPaid
	}

	paid, err := s.payroll.CountPaidForPeriod(ctx, record.Email, record.Month, record.Year, id)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to check period: %w", err)
	}
	if paid > 0 {
		return time.Time{}, repository.ErrDuplicatePeriod
	}

	paymentDate := time.Now()
	if err := s.payroll.MarkPaid(ctx, id, paymentDate, approver); err != nil {
		return time.Time{}, err
	}
	return paymentDate, nil
}

// PaymentHistory returns the caller's audit entries sorted by period.
func (s *PayrollService) PaymentHistory(ctx context.Context, email string) ([]*model.PaymentRecord, error) {
	records, err := s.payments.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment history: %w", err)
	}
	return records, nil
}

// normalizeMonth accepts "3" or "03" and returns the canonical two-digit form.
func normalizeMonth(m string) (string, error) {
	n, err := strconv.Atoi(m)
	if err != nil || n < 1 || n > 12 {
		return "", fmt.Errorf("month must be between 01 and 12")
	}
	return fmt.Sprintf("%02d", n), nil
}
