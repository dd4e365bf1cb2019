package accounting

import (
	"fmt"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/SscSPs/general_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPlaces is the precision, in decimal places, that entry totals are compared at.
const AmountPlaces int32 = 2

// LinePlaces is the most decimal places a line amount may carry; journal_lines stores NUMERIC(20,6).
const LinePlaces int32 = 6

var (
	ErrTooFewLines     = fmt.Errorf("%w: journal entry requires at least 2 lines", apperrors.ErrValidation)
	ErrNegativeAmount  = fmt.Errorf("%w: negative amounts are not allowed", apperrors.ErrValidation)
	ErrBothSides       = fmt.Errorf("%w: line has both debit and credit", apperrors.ErrValidation)
	ErrNeitherSide     = fmt.Errorf("%w: line has neither debit nor credit", apperrors.ErrValidation)
	ErrUnbalancedEntry = fmt.Errorf("%w: debits ≠ credits", apperrors.ErrValidation)
	ErrTooPrecise      = fmt.Errorf("%w: amount has more than %d decimal places", apperrors.ErrValidation, LinePlaces)
	ErrZeroTotal       = fmt.Errorf("%w: entry total rounds to zero", apperrors.ErrValidation)
)

// ValidationResult is the outcome of checking a candidate set of journal lines.
type ValidationResult struct {
	Valid       bool
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// ValidateLines checks structure and balance of journal lines before anything is persisted.
// Totals are rounded half-up to AmountPlaces before they are compared; since amounts are
// never negative, decimal.Round (half away from zero) is half-up here.
func ValidateLines(lines []domain.JournalLineInput) (ValidationResult, error) {
	if len(lines) < 2 {
		return ValidationResult{}, ErrTooFewLines
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, line := range lines {
		switch {
		case line.Debit.IsNegative() || line.Credit.IsNegative():
			return ValidationResult{}, fmt.Errorf("%w (line %d)", ErrNegativeAmount, i+1)
		case line.Debit.IsPositive() && line.Credit.IsPositive():
			return ValidationResult{}, fmt.Errorf("%w (line %d)", ErrBothSides, i+1)
		case line.Debit.IsZero() && line.Credit.IsZero():
			return ValidationResult{}, fmt.Errorf("%w (line %d)", ErrNeitherSide, i+1)
		case !line.Debit.Equal(line.Debit.Truncate(LinePlaces)) || !line.Credit.Equal(line.Credit.Truncate(LinePlaces)):
			return ValidationResult{}, fmt.Errorf("%w (line %d)", ErrTooPrecise, i+1)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	totalDebit = totalDebit.Round(AmountPlaces)
	totalCredit = totalCredit.Round(AmountPlaces)
	if !totalDebit.Equal(totalCredit) {
		return ValidationResult{}, fmt.Errorf("%w: debits %s, credits %s",
			ErrUnbalancedEntry, totalDebit.StringFixed(AmountPlaces), totalCredit.StringFixed(AmountPlaces))
	}
	if totalDebit.IsZero() {
		return ValidationResult{}, ErrZeroTotal
	}

	return ValidationResult{Valid: true, TotalDebit: totalDebit, TotalCredit: totalCredit}, nil
}

// SignedAmount returns the effect of a debit/credit pair on an account balance of the given nature.
// DEBIT-natured accounts grow with debits, CREDIT-natured accounts with credits.
func SignedAmount(debit, credit decimal.Decimal, nature domain.AccountNature) (decimal.Decimal, error) {
	switch nature {
	case domain.NatureDebit:
		return debit.Sub(credit), nil
	case domain.NatureCredit:
		return credit.Sub(debit), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account nature '%s'", nature)
	}
}
