package models

import "github.com/shopspring/decimal"

// TaxProfile holds the user-supplied deduction inputs. All fields are
// optional and default to zero. The profile is owned by the user's settings;
// the tax calculation only reads it.
type TaxProfile struct {
	AnnualRent      decimal.Decimal `json:"annual_rent" yaml:"annual_rent" mapstructure:"annual_rent"`
	AnnualEPF       decimal.Decimal `json:"annual_epf" yaml:"annual_epf" mapstructure:"annual_epf"`
	HealthInsurance decimal.Decimal `json:"health_insurance" yaml:"health_insurance" mapstructure:"health_insurance"`
}

// TaxSummary is the derived fiscal-year tax estimate. It is recomputed on
// demand and never stored as authoritative state.
type TaxSummary struct {
	TotalIncome    decimal.Decimal `json:"total_income" yaml:"total_income"`
	Investments80C decimal.Decimal `json:"investments_80c" yaml:"investments_80c"`
	Capped80C      decimal.Decimal `json:"capped_80c" yaml:"capped_80c"`
	Insurance80D   decimal.Decimal `json:"insurance_80d" yaml:"insurance_80d"`
	Capped80D      decimal.Decimal `json:"capped_80d" yaml:"capped_80d"`
	TaxableIncome  decimal.Decimal `json:"taxable_income" yaml:"taxable_income"`
	FiscalYear     string          `json:"fiscal_year" yaml:"fiscal_year"`
}
