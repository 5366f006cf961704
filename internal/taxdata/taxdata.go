// Package taxdata carries the versioned statutory tables: federal and
// provincial tax brackets and TFSA annual limits. Tables are data, not logic;
// a future tax-year update touches only the embedded YAML files.
package taxdata

import (
	"embed"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
)

//go:embed data/*.yaml
var dataFS embed.FS

// FirstProgramYear is the year the TFSA program started. Nobody accrues room
// before it regardless of age or residency.
const FirstProgramYear = 2009

// Tables bundles every statutory table the engine needs.
type Tables struct {
	Year       int
	Federal    []domain.TaxBracket
	Provinces  map[string]domain.ProvincialTaxTable
	TFSALimits map[int]decimal.Decimal
}

type federalFile struct {
	Year     int                `yaml:"year"`
	Brackets []domain.TaxBracket `yaml:"brackets"`
}

type provincesFile struct {
	Year      int                          `yaml:"year"`
	Provinces []domain.ProvincialTaxTable  `yaml:"provinces"`
}

type tfsaFile struct {
	FirstProgramYear int                     `yaml:"first_program_year"`
	Limits           map[int]decimal.Decimal `yaml:"limits"`
}

// Load parses and validates the embedded tables.
func Load() (*Tables, error) {
	var fed federalFile
	if err := unmarshalFile("data/federal.yaml", &fed); err != nil {
		return nil, err
	}
	if err := ValidateBrackets(fed.Brackets); err != nil {
		return nil, fmt.Errorf("federal brackets: %w", err)
	}

	var prov provincesFile
	if err := unmarshalFile("data/provinces.yaml", &prov); err != nil {
		return nil, err
	}
	provinces := make(map[string]domain.ProvincialTaxTable, len(prov.Provinces))
	for _, p := range prov.Provinces {
		if err := ValidateBrackets(p.Brackets); err != nil {
			return nil, fmt.Errorf("province %s brackets: %w", p.Code, err)
		}
		if err := validatePremiumBands(p.HealthPremium); err != nil {
			return nil, fmt.Errorf("province %s health premium: %w", p.Code, err)
		}
		if p.Surtax != nil && p.Surtax.Rate.IsNegative() {
			return nil, fmt.Errorf("province %s surtax: rate cannot be negative", p.Code)
		}
		provinces[p.Code] = p
	}

	var tfsa tfsaFile
	if err := unmarshalFile("data/tfsa_limits.yaml", &tfsa); err != nil {
		return nil, err
	}
	if tfsa.FirstProgramYear != FirstProgramYear {
		return nil, fmt.Errorf("tfsa limits: first program year %d does not match %d", tfsa.FirstProgramYear, FirstProgramYear)
	}
	for year, limit := range tfsa.Limits {
		if year < FirstProgramYear {
			return nil, fmt.Errorf("tfsa limits: year %d precedes the program", year)
		}
		if limit.IsNegative() {
			return nil, fmt.Errorf("tfsa limits: year %d limit cannot be negative", year)
		}
	}

	return &Tables{
		Year:       fed.Year,
		Federal:    fed.Brackets,
		Provinces:  provinces,
		TFSALimits: tfsa.Limits,
	}, nil
}

// MustLoad is Load for program initialization paths where a broken embedded
// table is unrecoverable.
func MustLoad() *Tables {
	t, err := Load()
	if err != nil {
		panic(fmt.Sprintf("taxdata: %v", err))
	}
	return t
}

// ProvinceCodes returns the known province codes in sorted order.
func (t *Tables) ProvinceCodes() []string {
	codes := make([]string, 0, len(t.Provinces))
	for code := range t.Provinces {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func unmarshalFile(name string, v any) error {
	data, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// ValidateBrackets enforces the bracket-table invariants: ascending by min,
// contiguous and non-overlapping, rates in [0,1], and exactly one open-ended
// top bracket.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("no brackets defined")
	}
	for i, b := range brackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("bracket %d: rate %s outside [0,1]", i, b.Rate)
		}
		last := i == len(brackets)-1
		if last {
			if b.Max != nil {
				return fmt.Errorf("bracket %d: top bracket must be open-ended", i)
			}
			continue
		}
		if b.Max == nil {
			return fmt.Errorf("bracket %d: only the top bracket may be open-ended", i)
		}
		if b.Max.LessThanOrEqual(b.Min) {
			return fmt.Errorf("bracket %d: max %s not above min %s", i, b.Max, b.Min)
		}
		if !brackets[i+1].Min.Equal(*b.Max) {
			return fmt.Errorf("bracket %d: next bracket starts at %s, expected %s", i, brackets[i+1].Min, b.Max)
		}
	}
	if !brackets[0].Min.IsZero() {
		return fmt.Errorf("first bracket must start at 0, got %s", brackets[0].Min)
	}
	return nil
}

func validatePremiumBands(bands []domain.PremiumBand) error {
	for i, b := range bands {
		if b.Amount.IsNegative() {
			return fmt.Errorf("band %d: amount cannot be negative", i)
		}
		if i < len(bands)-1 {
			if b.Max == nil {
				return fmt.Errorf("band %d: only the top band may be open-ended", i)
			}
			if !bands[i+1].Min.Equal(*b.Max) {
				return fmt.Errorf("band %d: next band starts at %s, expected %s", i, bands[i+1].Min, b.Max)
			}
		}
	}
	return nil
}
