package escrow

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidGoal ...
var ErrInvalidGoal = errors.New("campaign goal must be greater than 0")

// ErrNonIntegerGoal amounts are counted in the smallest indivisible unit
var ErrNonIntegerGoal = errors.New("campaign goal must be a whole number of units")

// ErrInvalidDuration ...
var ErrInvalidDuration = errors.New("campaign duration must be positive")

// ErrEmptyCreator ...
var ErrEmptyCreator = errors.New("campaign creator must not be empty")

// ErrEmptyContributor ...
var ErrEmptyContributor = errors.New("contributor address must not be empty")

// ErrZeroContribution ...
var ErrZeroContribution = errors.New("contribution must be greater than 0")

// ErrNonIntegerContribution ...
var ErrNonIntegerContribution = errors.New("contribution must be a whole number of units")

// ErrCampaignNotFound ...
var ErrCampaignNotFound = errors.New("campaign not found")

// ErrCampaignEnded ...
var ErrCampaignEnded = errors.New("campaign has ended")

// ErrCampaignNotEnded ...
var ErrCampaignNotEnded = errors.New("campaign not ended yet")

// ErrAlreadySettled ...
var ErrAlreadySettled = errors.New("funds already released")

// ErrReentrantCall ...
var ErrReentrantCall = errors.New("reentrant call rejected")

// TransferError aborts a settlement, the campaign state is kept
// exactly as before the call
type TransferError struct {
	To     string
	Amount decimal.Decimal
	Err    error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s to %q failed: %v", e.Amount, e.To, e.Err)
}

// Unwrap ...
func (e *TransferError) Unwrap() error {
	return e.Err
}
