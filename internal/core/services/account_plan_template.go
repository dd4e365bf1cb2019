package services

import "github.com/SscSPs/general_ledger/internal/core/domain"

// planTemplateRow is one account of the default chart. Rows are declared parents first.
type planTemplateRow struct {
	Code           string
	ParentCode     string
	Name           string
	Type           domain.AccountType
	Nature         domain.AccountNature // empty means the type's default
	AcceptsEntries bool
	TaxCode        string
}

// defaultPlanTemplate is the jurisdiction-default chart of accounts (Chilean SME layout).
// Only level-4 accounts accept entries. The codes used by the default account roles
// (1.1.02.001, 1.1.03.001, 2.1.01.001, 2.1.02.001, 4.1.01.001) must stay in it.
var defaultPlanTemplate = []planTemplateRow{
	{Code: "1", Name: "Activo", Type: domain.Asset},
	{Code: "1.1", ParentCode: "1", Name: "Activo Corriente", Type: domain.Asset},
	{Code: "1.1.01", ParentCode: "1.1", Name: "Efectivo y Equivalentes", Type: domain.Asset},
	{Code: "1.1.01.001", ParentCode: "1.1.01", Name: "Caja", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.1.01.002", ParentCode: "1.1.01", Name: "Banco", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.1.02", ParentCode: "1.1", Name: "Deudores Comerciales", Type: domain.Asset},
	{Code: "1.1.02.001", ParentCode: "1.1.02", Name: "Clientes", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.1.02.002", ParentCode: "1.1.02", Name: "Documentos por Cobrar", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.1.03", ParentCode: "1.1", Name: "Impuestos por Recuperar", Type: domain.Asset},
	{Code: "1.1.03.001", ParentCode: "1.1.03", Name: "IVA Crédito Fiscal", Type: domain.Asset, AcceptsEntries: true, TaxCode: "IVA"},
	{Code: "1.1.03.002", ParentCode: "1.1.03", Name: "PPM por Recuperar", Type: domain.Asset, AcceptsEntries: true, TaxCode: "PPM"},
	{Code: "1.2", ParentCode: "1", Name: "Activo No Corriente", Type: domain.Asset},
	{Code: "1.2.01", ParentCode: "1.2", Name: "Propiedades, Planta y Equipo", Type: domain.Asset},
	{Code: "1.2.01.001", ParentCode: "1.2.01", Name: "Equipos Computacionales", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.2.01.002", ParentCode: "1.2.01", Name: "Muebles y Útiles", Type: domain.Asset, AcceptsEntries: true},
	{Code: "1.2.01.003", ParentCode: "1.2.01", Name: "Depreciación Acumulada", Type: domain.Asset, Nature: domain.NatureCredit, AcceptsEntries: true},

	{Code: "2", Name: "Pasivo", Type: domain.Liability},
	{Code: "2.1", ParentCode: "2", Name: "Pasivo Corriente", Type: domain.Liability},
	{Code: "2.1.01", ParentCode: "2.1", Name: "Cuentas por Pagar", Type: domain.Liability},
	{Code: "2.1.01.001", ParentCode: "2.1.01", Name: "Proveedores", Type: domain.Liability, AcceptsEntries: true},
	{Code: "2.1.01.002", ParentCode: "2.1.01", Name: "Honorarios por Pagar", Type: domain.Liability, AcceptsEntries: true},
	{Code: "2.1.02", ParentCode: "2.1", Name: "Impuestos por Pagar", Type: domain.Liability},
	{Code: "2.1.02.001", ParentCode: "2.1.02", Name: "IVA Débito Fiscal", Type: domain.Liability, AcceptsEntries: true, TaxCode: "IVA"},
	{Code: "2.1.02.002", ParentCode: "2.1.02", Name: "Retenciones por Pagar", Type: domain.Liability, AcceptsEntries: true},
	{Code: "2.1.03", ParentCode: "2.1", Name: "Obligaciones Laborales", Type: domain.Liability},
	{Code: "2.1.03.001", ParentCode: "2.1.03", Name: "Remuneraciones por Pagar", Type: domain.Liability, AcceptsEntries: true},
	{Code: "2.1.03.002", ParentCode: "2.1.03", Name: "Cotizaciones Previsionales por Pagar", Type: domain.Liability, AcceptsEntries: true},

	{Code: "3", Name: "Patrimonio", Type: domain.Equity},
	{Code: "3.1", ParentCode: "3", Name: "Capital", Type: domain.Equity},
	{Code: "3.1.01", ParentCode: "3.1", Name: "Capital Social", Type: domain.Equity},
	{Code: "3.1.01.001", ParentCode: "3.1.01", Name: "Capital Pagado", Type: domain.Equity, AcceptsEntries: true},
	{Code: "3.2", ParentCode: "3", Name: "Resultados", Type: domain.Equity},
	{Code: "3.2.01", ParentCode: "3.2", Name: "Resultados Acumulados", Type: domain.Equity},
	{Code: "3.2.01.001", ParentCode: "3.2.01", Name: "Utilidades Retenidas", Type: domain.Equity, AcceptsEntries: true},
	{Code: "3.2.01.002", ParentCode: "3.2.01", Name: "Resultado del Ejercicio", Type: domain.Equity, AcceptsEntries: true},

	{Code: "4", Name: "Ingresos", Type: domain.Revenue},
	{Code: "4.1", ParentCode: "4", Name: "Ingresos Operacionales", Type: domain.Revenue},
	{Code: "4.1.01", ParentCode: "4.1", Name: "Ventas", Type: domain.Revenue},
	{Code: "4.1.01.001", ParentCode: "4.1.01", Name: "Ingresos por Servicios", Type: domain.Revenue, AcceptsEntries: true},
	{Code: "4.1.01.002", ParentCode: "4.1.01", Name: "Ventas de Productos", Type: domain.Revenue, AcceptsEntries: true},
	{Code: "4.2", ParentCode: "4", Name: "Ingresos No Operacionales", Type: domain.Revenue},
	{Code: "4.2.01", ParentCode: "4.2", Name: "Otros Ingresos", Type: domain.Revenue},
	{Code: "4.2.01.001", ParentCode: "4.2.01", Name: "Ingresos Financieros", Type: domain.Revenue, AcceptsEntries: true},

	{Code: "5", Name: "Costos", Type: domain.Cost},
	{Code: "5.1", ParentCode: "5", Name: "Costos de Explotación", Type: domain.Cost},
	{Code: "5.1.01", ParentCode: "5.1", Name: "Costo de Ventas", Type: domain.Cost},
	{Code: "5.1.01.001", ParentCode: "5.1.01", Name: "Costo de Servicios", Type: domain.Cost, AcceptsEntries: true},
	{Code: "5.1.01.002", ParentCode: "5.1.01", Name: "Costo de Productos", Type: domain.Cost, AcceptsEntries: true},

	{Code: "6", Name: "Gastos", Type: domain.Expense},
	{Code: "6.1", ParentCode: "6", Name: "Gastos de Administración", Type: domain.Expense},
	{Code: "6.1.01", ParentCode: "6.1", Name: "Gastos de Personal", Type: domain.Expense},
	{Code: "6.1.01.001", ParentCode: "6.1.01", Name: "Remuneraciones", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.1.01.002", ParentCode: "6.1.01", Name: "Leyes Sociales", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.1.02", ParentCode: "6.1", Name: "Gastos Generales", Type: domain.Expense},
	{Code: "6.1.02.001", ParentCode: "6.1.02", Name: "Arriendos", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.1.02.002", ParentCode: "6.1.02", Name: "Servicios Básicos", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.1.02.003", ParentCode: "6.1.02", Name: "Honorarios", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.1.02.004", ParentCode: "6.1.02", Name: "Depreciación del Ejercicio", Type: domain.Expense, AcceptsEntries: true},
	{Code: "6.2", ParentCode: "6", Name: "Gastos Financieros", Type: domain.Expense},
	{Code: "6.2.01", ParentCode: "6.2", Name: "Intereses y Comisiones", Type: domain.Expense},
	{Code: "6.2.01.001", ParentCode: "6.2.01", Name: "Comisiones Bancarias", Type: domain.Expense, AcceptsEntries: true},
}

// DefaultPlanSize is the number of accounts a seed creates.
func DefaultPlanSize() int {
	return len(defaultPlanTemplate)
}
