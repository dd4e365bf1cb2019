package domain

// AccountRoles maps the logical roles the auto-entry builder needs to account codes.
type AccountRoles struct {
	AccountsReceivable string `mapstructure:"accounts_receivable" json:"accountsReceivable"`
	AccountsPayable    string `mapstructure:"accounts_payable" json:"accountsPayable"`
	InputVAT           string `mapstructure:"input_vat" json:"inputVAT"`
	OutputVAT          string `mapstructure:"output_vat" json:"outputVAT"`
	ServiceRevenue     string `mapstructure:"service_revenue" json:"serviceRevenue"`
}

// merge fills empty roles of r from fallback.
func (r AccountRoles) merge(fallback AccountRoles) AccountRoles {
	if r.AccountsReceivable == "" {
		r.AccountsReceivable = fallback.AccountsReceivable
	}
	if r.AccountsPayable == "" {
		r.AccountsPayable = fallback.AccountsPayable
	}
	if r.InputVAT == "" {
		r.InputVAT = fallback.InputVAT
	}
	if r.OutputVAT == "" {
		r.OutputVAT = fallback.OutputVAT
	}
	if r.ServiceRevenue == "" {
		r.ServiceRevenue = fallback.ServiceRevenue
	}
	return r
}

// AccountRoleTable holds the default role codes plus per-tenant overrides.
type AccountRoleTable struct {
	Default AccountRoles
	Tenants map[string]AccountRoles
}

// For returns the role codes in effect for a tenant.
func (t AccountRoleTable) For(tenantID string) AccountRoles {
	if override, ok := t.Tenants[tenantID]; ok {
		return override.merge(t.Default)
	}
	return t.Default
}

// DefaultAccountRoles are the role codes of the seeded default chart of accounts.
func DefaultAccountRoles() AccountRoles {
	return AccountRoles{
		AccountsReceivable: "1.1.02.001",
		AccountsPayable:    "2.1.01.001",
		InputVAT:           "1.1.03.001",
		OutputVAT:          "2.1.02.001",
		ServiceRevenue:     "4.1.01.001",
	}
}
