package config

import (
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

// InputFile is a YAML calculation request. A file carries one or more
// sections; each populated section drives the corresponding calculator.
type InputFile struct {
	Tax           *TaxInput                   `yaml:"tax,omitempty"`
	Affordability *domain.AffordabilityInputs `yaml:"affordability,omitempty"`
	Purchase      *domain.PurchaseInputs      `yaml:"purchase,omitempty"`
	TFSA          *TFSAInput                  `yaml:"tfsa,omitempty"`
	Amortization  *AmortizationInput          `yaml:"amortization,omitempty"`
}

// TaxInput describes a combined federal and provincial tax request.
type TaxInput struct {
	Province        string          `yaml:"province"`
	AnnualIncome    decimal.Decimal `yaml:"annual_income"`
	OtherDeductions decimal.Decimal `yaml:"other_deductions"`
}

// TFSAInput describes a contribution-room request: the holder's profile
// plus the ledger of recorded contributions and withdrawals.
type TFSAInput struct {
	Profile       domain.TFSAProfile          `yaml:"profile"`
	Contributions []domain.ContributionRecord `yaml:"contributions,omitempty"`
	Withdrawals   []domain.WithdrawalRecord   `yaml:"withdrawals,omitempty"`
}

// AmortizationInput describes a standalone loan payment request.
type AmortizationInput struct {
	Principal         decimal.Decimal `yaml:"principal"`
	AnnualRatePercent decimal.Decimal `yaml:"annual_rate_percent"`
	TermYears         int             `yaml:"term_years"`
	Frequency         string          `yaml:"frequency"`
}

// InputParser loads and validates calculation input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile reads and parses an input file from the given path.
func (p *InputParser) LoadFromFile(path string) (*InputFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer file.Close()
	return p.Parse(file)
}

// Parse reads and validates an input file from the reader.
func (p *InputParser) Parse(r io.Reader) (*InputFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	var input InputFile
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := p.Validate(&input); err != nil {
		return nil, fmt.Errorf("input validation failed: %w", err)
	}
	return &input, nil
}

// Validate checks every populated section of the input for out-of-range
// values. Calculators assume validated inputs, so all range screening
// happens here.
func (p *InputParser) Validate(input *InputFile) error {
	if input.Tax == nil && input.Affordability == nil && input.Purchase == nil &&
		input.TFSA == nil && input.Amortization == nil {
		return fmt.Errorf("input file has no calculation sections")
	}
	if input.Tax != nil {
		if err := validateTaxInput(input.Tax); err != nil {
			return fmt.Errorf("tax: %w", err)
		}
	}
	if input.Affordability != nil {
		if err := ValidateAffordabilityInputs(input.Affordability); err != nil {
			return fmt.Errorf("affordability: %w", err)
		}
	}
	if input.Purchase != nil {
		if err := ValidatePurchaseInputs(input.Purchase); err != nil {
			return fmt.Errorf("purchase: %w", err)
		}
	}
	if input.TFSA != nil {
		if err := ValidateTFSAInput(input.TFSA); err != nil {
			return fmt.Errorf("tfsa: %w", err)
		}
	}
	if input.Amortization != nil {
		if err := validateAmortizationInput(input.Amortization); err != nil {
			return fmt.Errorf("amortization: %w", err)
		}
	}
	return nil
}

func validateTaxInput(in *TaxInput) error {
	if in.Province == "" {
		return fmt.Errorf("province is required")
	}
	if in.AnnualIncome.IsNegative() {
		return fmt.Errorf("annual income cannot be negative")
	}
	if in.OtherDeductions.IsNegative() {
		return fmt.Errorf("other deductions cannot be negative")
	}
	return nil
}

// ValidateAffordabilityInputs screens a home affordability request.
func ValidateAffordabilityInputs(in *domain.AffordabilityInputs) error {
	if !in.HomePrice.IsPositive() {
		return fmt.Errorf("home price must be positive")
	}
	if err := percentInRange("annual rate", in.AnnualRatePercent); err != nil {
		return err
	}
	if err := percentInRange("down payment percent", in.DownPaymentPercent); err != nil {
		return err
	}
	if in.TermYears <= 0 || in.TermYears > 50 {
		return fmt.Errorf("term years must be between 1 and 50, got %d", in.TermYears)
	}
	for _, f := range []struct {
		name  string
		value decimal.Decimal
	}{
		{"utilities and taxes", in.UtilitiesAndTaxes},
		{"current rent", in.CurrentRent},
		{"insurance", in.Insurance},
		{"annual income", in.AnnualIncome},
		{"current savings", in.CurrentSavings},
	} {
		if f.value.IsNegative() {
			return fmt.Errorf("%s cannot be negative", f.name)
		}
	}
	return nil
}

// ValidatePurchaseInputs screens a large-purchase comparison request.
func ValidatePurchaseInputs(in *domain.PurchaseInputs) error {
	if !in.PurchaseAmount.IsPositive() {
		return fmt.Errorf("purchase amount must be positive")
	}
	if in.DownPayment.IsNegative() {
		return fmt.Errorf("down payment cannot be negative")
	}
	if in.DownPayment.GreaterThan(in.PurchaseAmount) {
		return fmt.Errorf("down payment cannot exceed purchase amount")
	}
	if err := percentInRange("loan rate", in.LoanRate); err != nil {
		return err
	}
	if err := percentInRange("expected return", in.ExpectedReturn); err != nil {
		return err
	}
	if err := percentInRange("inflation rate", in.InflationRate); err != nil {
		return err
	}
	if in.LoanTermYears <= 0 || in.LoanTermYears > 50 {
		return fmt.Errorf("loan term years must be between 1 and 50, got %d", in.LoanTermYears)
	}
	if in.MonthlySavings.IsNegative() {
		return fmt.Errorf("monthly savings cannot be negative")
	}
	return nil
}

// ValidateTFSAInput screens a contribution-room request.
func ValidateTFSAInput(in *TFSAInput) error {
	if in.Profile.BirthYear < 1900 || in.Profile.BirthYear > in.Profile.CurrentYear {
		return fmt.Errorf("birth year %d is out of range", in.Profile.BirthYear)
	}
	if in.Profile.CurrentYear < 2009 {
		return fmt.Errorf("current year %d precedes the TFSA program", in.Profile.CurrentYear)
	}
	if in.Profile.RoomOverride != nil && in.Profile.RoomOverride.IsNegative() {
		return fmt.Errorf("room override cannot be negative")
	}
	for _, c := range in.Contributions {
		if !c.Amount.IsPositive() {
			return fmt.Errorf("contribution amounts must be positive")
		}
		if c.Year > in.Profile.CurrentYear {
			return fmt.Errorf("contribution year %d is in the future", c.Year)
		}
	}
	for _, w := range in.Withdrawals {
		if !w.Amount.IsPositive() {
			return fmt.Errorf("withdrawal amounts must be positive")
		}
		if w.Year > in.Profile.CurrentYear {
			return fmt.Errorf("withdrawal year %d is in the future", w.Year)
		}
	}
	return nil
}

func validateAmortizationInput(in *AmortizationInput) error {
	if !in.Principal.IsPositive() {
		return fmt.Errorf("principal must be positive")
	}
	if err := percentInRange("annual rate", in.AnnualRatePercent); err != nil {
		return err
	}
	if in.TermYears <= 0 || in.TermYears > 50 {
		return fmt.Errorf("term years must be between 1 and 50, got %d", in.TermYears)
	}
	switch in.Frequency {
	case "", "monthly", "biweekly":
	default:
		return fmt.Errorf("unknown payment frequency %q", in.Frequency)
	}
	return nil
}

func percentInRange(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("%s must be between 0 and 100, got %s", name, v)
	}
	return nil
}
