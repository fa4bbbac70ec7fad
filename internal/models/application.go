package models

import "time"

// Application statuses
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
)

// ApplicationTerms is the fixed set of selectable terms, in months.
var ApplicationTerms = []int{12, 24, 36, 48, 60}

// CreditApplication is a user's request for a specific credit product.
// Records are written once at submission; nothing in this flow updates
// or deletes them, and Status never transitions here.
type CreditApplication struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	FullName       string    `gorm:"not null" json:"fullName"`
	NationalID     string    `gorm:"not null" json:"nationalId"`
	Email          string    `gorm:"not null;index" json:"email"`
	Phone          string    `gorm:"not null" json:"phone"`
	Company        string    `json:"company"`
	Position       string    `json:"position"`
	MonthlyIncome  float64   `gorm:"not null" json:"monthlyIncome"`
	CreditType     string    `gorm:"not null;index" json:"creditType"`
	Amount         float64   `gorm:"not null" json:"amount"`
	TermMonths     int       `gorm:"not null" json:"term"`
	Purpose        string    `json:"purpose"`
	MonthlyPayment float64   `gorm:"not null" json:"monthlyPayment"` // computed once at submit
	Status         string    `gorm:"not null;default:'pending';index" json:"status"`
	IdempotencyKey string    `gorm:"uniqueIndex" json:"-"`
	Date           time.Time `gorm:"not null;index" json:"date"`
}

// SubmitApplicationInput is the raw application form payload.
type SubmitApplicationInput struct {
	FullName       string  `json:"fullName"`
	NationalID     string  `json:"nationalId"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Company        string  `json:"company"`
	Position       string  `json:"position"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	CreditType     string  `json:"creditType"`
	Amount         float64 `json:"amount"`
	TermMonths     int     `json:"term"`
	Purpose        string  `json:"purpose"`
	IdempotencyKey string  `json:"idempotencyKey"`
}

// ApplicationStats aggregates the full application set, independent of
// any active filter selection.
type ApplicationStats struct {
	TotalApplications int      `json:"totalApplications"`
	TotalAmount       float64  `json:"totalAmount"`
	AverageAmount     float64  `json:"averageAmount"`
	PendingCount      int      `json:"pendingCount"`
	ApprovedCount     int      `json:"approvedCount"`
	UniqueApplicants  int      `json:"uniqueApplicants"`
	Emails            []string `json:"emails"`
	CreditTypes       []string `json:"creditTypes"`
	Statuses          []string `json:"statuses"`
}
