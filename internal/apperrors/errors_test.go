package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConversionError_MatchesSentinelAndCause(t *testing.T) {
	err := fmt.Errorf("pricing product: %w", &ConversionError{
		Amount: decimal.RequireFromString("1000"),
		From:   "XOF",
		To:     "ZZZ",
		Err:    ErrRateNotFound,
	})

	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.ErrorIs(t, err, ErrRateNotFound)
	assert.NotErrorIs(t, err, ErrProviderUnavailable)
	assert.Contains(t, err.Error(), "cannot convert 1000 XOF to ZZZ")
}

func TestBulkUpdateError(t *testing.T) {
	err := &BulkUpdateError{FailedIDs: []string{"p2", "o7"}, Succeeded: 10}

	assert.ErrorIs(t, err, ErrBulkUpdatePartialFailure)
	assert.Equal(t, "2 record(s) failed to update, 10 succeeded: p2, o7", err.Error())
}

func TestFromContext(t *testing.T) {
	assert.Nil(t, FromContext(nil))

	timedOut := FromContext(fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.ErrorIs(t, timedOut, ErrTimeout)
	assert.ErrorIs(t, timedOut, context.DeadlineExceeded)

	again := FromContext(timedOut)
	assert.Same(t, timedOut, again)

	other := errors.New("boom")
	assert.Same(t, other, FromContext(other))
}

func TestAppError(t *testing.T) {
	assert.ErrorIs(t, NewNotFoundError("store not found"), ErrNotFound)
	assert.ErrorIs(t, NewValidationError("bad country"), ErrValidation)
	assert.Equal(t, "store not found: resource not found", NewNotFoundError("store not found").Error())
}
