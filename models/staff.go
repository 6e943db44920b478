package models

import (
	"errors"
	"time"
)

// RoleSalaries is the fixed salary table. The client shows salary as a
// read-only field derived from role; the server re-derives it on every
// write so a hand-crafted request cannot set an arbitrary salary.
var RoleSalaries = map[string]int{
	"Manager": 30000,
	"Chef":    15000,
	"Waiter":  6000,
	"Cleaner": 4000,
}

const (
	PaymentPaid    = "Paid"
	PaymentNonPaid = "Non-Paid"

	// PaidSalaryThreshold decides the initial payment status.
	PaidSalaryThreshold = 5000

	// MaxStaffCount caps the roster size.
	MaxStaffCount = 4

	MinStaffAge = 18
	MaxStaffAge = 60
)

var (
	ErrStaffNameRequired    = errors.New("staff name is required")
	ErrStaffRoleRequired    = errors.New("staff role is required")
	ErrUnknownRole          = errors.New("unknown staff role")
	ErrStaffAgeRequired     = errors.New("staff age is required")
	ErrStaffAgeOutOfRange   = errors.New("age must be between 18 and 60")
	ErrUnknownPaymentStatus = errors.New("payment status must be Paid or Non-Paid")
	ErrStaffLimitReached    = errors.New("only 4 staff members are allowed")
)

type Staff struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	Role          string    `gorm:"type:varchar(50);not null" json:"role"`
	Age           int       `gorm:"not null" json:"age"`
	Salary        int       `gorm:"not null" json:"salary"`
	PaymentStatus string    `gorm:"type:varchar(20);not null" json:"paymentStatus"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

// SalaryForRole returns the table salary for a role.
func SalaryForRole(role string) (int, bool) {
	salary, ok := RoleSalaries[role]
	return salary, ok
}

// DefaultPaymentStatus derives the initial payment status from salary.
func DefaultPaymentStatus(salary int) string {
	if salary >= PaidSalaryThreshold {
		return PaymentPaid
	}
	return PaymentNonPaid
}

func (s *Staff) Validate() error {
	if s.Name == "" {
		return ErrStaffNameRequired
	}
	if s.Role == "" {
		return ErrStaffRoleRequired
	}
	if _, ok := RoleSalaries[s.Role]; !ok {
		return ErrUnknownRole
	}
	if s.Age < MinStaffAge || s.Age > MaxStaffAge {
		return ErrStaffAgeOutOfRange
	}
	if s.PaymentStatus != PaymentPaid && s.PaymentStatus != PaymentNonPaid {
		return ErrUnknownPaymentStatus
	}
	return nil
}
