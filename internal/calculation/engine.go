// Package calculation implements the financial projection engine: bracket
// tax evaluation, amortization, federal+provincial tax composition, TFSA
// contribution-room tracking, and the affordability and purchase-comparison
// engines. Everything here is a pure transform over plain inputs; the only
// stateful component is the TFSA ledger.
package calculation

import (
	"github.com/braydenmay123/mclaughlin-toolkit/internal/taxdata"
)

// Engine bundles the statutory tables with the calculators that need them.
// It holds no mutable state; calling any method twice with identical inputs
// yields identical results.
type Engine struct {
	tables *taxdata.Tables
	logger Logger
}

// NewEngine creates an engine over the given statutory tables.
func NewEngine(tables *taxdata.Tables, logger Logger) *Engine {
	if logger == nil {
		logger = NopLogger{}
	}
	return &Engine{tables: tables, logger: logger}
}

// Tables exposes the statutory tables for display layers.
func (e *Engine) Tables() *taxdata.Tables {
	return e.tables
}
