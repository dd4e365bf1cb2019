package validation

import (
	"testing"
	"time"

	"github.com/SscSPs/general_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestIsAccountCode(t *testing.T) {
	valid := []string{"1", "1.1", "1.1.02", "1.1.02.001"}
	for _, c := range valid {
		assert.True(t, IsAccountCode(c), c)
	}
	invalid := []string{"", ".", "1.", ".1", "1..2", "1.a", "A", "1 .1", "1-1"}
	for _, c := range invalid {
		assert.False(t, IsAccountCode(c), c)
	}
}

type sample struct {
	Code string    `validate:"required,account_code"`
	Date time.Time `validate:"required"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Code: "1.1", Date: time.Now()}))

	err := Struct(sample{Code: "1.x"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "Code failed on 'account_code'")
	assert.Contains(t, err.Error(), "Date failed on 'required'")
}
