package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCodeHelpers(t *testing.T) {
	assert.Equal(t, 4, CodeLevel("1.1.02.001"))
	assert.Equal(t, 1, CodeLevel("3"))
	assert.Equal(t, 0, CodeLevel(""))
	assert.Equal(t, "1.1.02", ParentCode("1.1.02.001"))
	assert.Equal(t, "", ParentCode("1"))
}

func TestCompareCodes(t *testing.T) {
	assert.Negative(t, CompareCodes("1.2", "1.10"))
	assert.Negative(t, CompareCodes("1", "1.1"))
	assert.Positive(t, CompareCodes("2", "1.9.99"))
	assert.Zero(t, CompareCodes("1.1.02.001", "1.1.02.001"))
	assert.Negative(t, CompareCodes("1.1.02.001", "1.1.02.002"))
}

func TestDefaultNatureAndPostable(t *testing.T) {
	assert.Equal(t, NatureDebit, Asset.DefaultNature())
	assert.Equal(t, NatureDebit, Cost.DefaultNature())
	assert.Equal(t, NatureDebit, Expense.DefaultNature())
	assert.Equal(t, NatureCredit, Liability.DefaultNature())
	assert.Equal(t, NatureCredit, Equity.DefaultNature())
	assert.Equal(t, NatureCredit, Revenue.DefaultNature())
	assert.False(t, AccountType("INCOME").IsValid())

	acc := Account{AcceptsEntries: true, IsActive: true}
	assert.True(t, acc.IsPostable())
	acc.IsActive = false
	assert.False(t, acc.IsPostable())
}

func TestPeriodBounds(t *testing.T) {
	start, end := PeriodBounds(2024, 2)
	assert.Equal(t, "2024-02-01", start.Format("2006-01-02"))
	assert.Equal(t, "2024-02-29", end.Format("2006-01-02"))
	_, end = PeriodBounds(2026, 12)
	assert.Equal(t, "2026-12-31", end.Format("2006-01-02"))
	assert.Equal(t, "2026-03", PeriodLabel(2026, 3))
}

func TestAccountRoleTableFor(t *testing.T) {
	table := AccountRoleTable{
		Default: DefaultAccountRoles(),
		Tenants: map[string]AccountRoles{"acme": {ServiceRevenue: "4.1.09"}},
	}
	assert.Equal(t, DefaultAccountRoles(), table.For("other"))
	acme := table.For("acme")
	assert.Equal(t, "4.1.09", acme.ServiceRevenue)
	assert.Equal(t, "1.1.02.001", acme.AccountsReceivable)
}
