package apperrors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller does not own the resource it is acting on.
var ErrForbidden = errors.New("forbidden")

// ErrTimeout indicates that a bounded external call did not finish in time.
var ErrTimeout = errors.New("operation timed out")

// ErrRateNotFound indicates that no rate is known for the requested currency pair.
var ErrRateNotFound = errors.New("exchange rate not found")

// ErrProviderUnavailable indicates that the remote FX provider could not be reached
// or answered with a malformed or unsuccessful response.
var ErrProviderUnavailable = errors.New("exchange rate provider unavailable")

// ErrConversionFailed is matched by every ConversionError.
var ErrConversionFailed = errors.New("currency conversion failed")

// ErrBulkUpdatePartialFailure is matched by every BulkUpdateError.
var ErrBulkUpdatePartialFailure = errors.New("bulk update partially failed")

// ErrShippingDataUnavailable indicates that shipping zones/methods cannot be read,
// typically because the store never provisioned them.
var ErrShippingDataUnavailable = errors.New("shipping data unavailable")

// ErrShippingMisconfigured indicates shipping data that exists but is inconsistent.
var ErrShippingMisconfigured = errors.New("shipping configuration invalid")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError returns an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewValidationError returns an AppError that matches ErrValidation.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// ConversionError reports a failed conversion together with its inputs so callers
// can show "price unavailable" for the right amount.
type ConversionError struct {
	Amount decimal.Decimal
	From   string
	To     string
	Err    error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s %s to %s: %v", e.Amount.String(), e.From, e.To, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

func (e *ConversionError) Is(target error) bool {
	return target == ErrConversionFailed
}

// BulkUpdateError lists the records a best-effort bulk update could not write.
type BulkUpdateError struct {
	FailedIDs []string
	Succeeded int
	Causes    map[string]error
}

func (e *BulkUpdateError) Error() string {
	return fmt.Sprintf("%d record(s) failed to update, %d succeeded: %s",
		len(e.FailedIDs), e.Succeeded, strings.Join(e.FailedIDs, ", "))
}

func (e *BulkUpdateError) Is(target error) bool {
	return target == ErrBulkUpdatePartialFailure
}

// FromContext maps an expired deadline onto ErrTimeout and leaves other errors alone.
func FromContext(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) && !errors.Is(err, ErrTimeout) {
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	}
	return err
}
