package commons

import "errors"

var (
	ErrRecordNotFound      = errors.New("Record not found")
	ErrInsufficientBalance = errors.New("Insufficient balance")
	ErrForbidden           = errors.New("Not authorized")
	ErrInvalidAmount       = errors.New("Amount must be greater than zero")
	ErrSelfTransfer        = errors.New("Cannot transfer to the same account")
	ErrLoanNotOpen         = errors.New("Loan is not open for repayment")
	ErrDuplicateRecord     = errors.New("Record already exists")
)
