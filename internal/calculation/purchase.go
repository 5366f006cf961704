package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/braydenmay123/mclaughlin-toolkit/internal/domain"
	"github.com/braydenmay123/mclaughlin-toolkit/pkg/moneyutil"
)

// minimumSaveYears floors the save-first timeline; nobody saves up a large
// purchase in less than half a year.
var minimumSaveYears = decimal.NewFromFloat(0.5)

// ComparePurchase evaluates the three purchase strategies independently and
// selects the one with the strictly greatest net-worth impact. Evaluation
// order is lump sum, finance, save first; the earliest scenario wins ties.
func (e *Engine) ComparePurchase(in domain.PurchaseInputs) domain.PurchaseCalculation {
	lumpSum := e.lumpSumScenario(in)
	finance := e.financeScenario(in)
	saveFirst := e.saveFirstScenario(in)

	best := lumpSum
	if finance.NetWorthImpact.GreaterThan(best.NetWorthImpact) {
		best = finance
	}
	if saveFirst.NetWorthImpact.GreaterThan(best.NetWorthImpact) {
		best = saveFirst
	}

	// The implied annual return at which finance-and-invest breaks even with
	// paying cash. Informational only; never used in scenario selection.
	breakEven := decimal.Zero
	if in.PurchaseAmount.IsPositive() && in.LoanTermYears > 0 {
		ratio := finance.NetCost.Div(in.PurchaseAmount)
		breakEven = moneyutil.NthRoot(ratio, decimal.NewFromInt(int64(in.LoanTermYears))).Sub(one)
	}

	e.logger.Debugf("purchase: best=%q lump=%s finance=%s save=%s",
		best.Name, lumpSum.NetWorthImpact, finance.NetWorthImpact, saveFirst.NetWorthImpact)

	return domain.PurchaseCalculation{
		LumpSum:       lumpSum,
		Finance:       finance,
		SaveFirst:     saveFirst,
		BestScenario:  best.Name,
		BreakEvenRate: breakEven,
	}
}

// lumpSumScenario: pay cash today. The cost to net worth is the investment
// growth forgone on the cash spent.
func (e *Engine) lumpSumScenario(in domain.PurchaseInputs) domain.PurchaseScenario {
	futureValue := moneyutil.CompoundGrowth(in.PurchaseAmount, in.ExpectedReturn, in.LoanTermYears)
	forgone := futureValue.Sub(in.PurchaseAmount)
	return domain.PurchaseScenario{
		Name:           domain.ScenarioLumpSum,
		NetCost:        in.PurchaseAmount,
		NetWorthImpact: forgone.Neg(),
	}
}

// financeScenario: put the down payment in, finance the rest, and keep the
// deferred cash invested at the expected return for the loan term.
func (e *Engine) financeScenario(in domain.PurchaseInputs) domain.PurchaseScenario {
	loan := in.PurchaseAmount.Sub(in.DownPayment)
	monthly := PeriodicPayment(loan, moneyutil.ToPercent(in.LoanRate), in.LoanTermYears, FrequencyMonthly)
	totalPayments := moneyutil.Annual(monthly).Mul(decimal.NewFromInt(int64(in.LoanTermYears)))
	invested := moneyutil.CompoundGrowth(loan, in.ExpectedReturn, in.LoanTermYears)

	return domain.PurchaseScenario{
		Name:             domain.ScenarioFinance,
		NetCost:          in.DownPayment.Add(totalPayments),
		NetWorthImpact:   invested.Sub(totalPayments),
		MonthlyPayment:   monthly,
		InvestmentGrowth: invested,
	}
}

// saveFirstScenario: delay the purchase until savings cover it, eating the
// inflated price. With no savings rate the loan term stands in as the
// horizon, which makes waiting price-inflation-expensive rather than free.
func (e *Engine) saveFirstScenario(in domain.PurchaseInputs) domain.PurchaseScenario {
	var years decimal.Decimal
	if in.MonthlySavings.IsPositive() {
		years = in.PurchaseAmount.Div(moneyutil.Annual(in.MonthlySavings))
	} else {
		years = decimal.NewFromInt(int64(in.LoanTermYears))
	}
	years = moneyutil.Max(years, minimumSaveYears)

	futureCost := moneyutil.CompoundGrowthFractional(in.PurchaseAmount, in.InflationRate, years)
	premium := futureCost.Sub(in.PurchaseAmount)

	return domain.PurchaseScenario{
		Name:            domain.ScenarioSaveFirst,
		NetCost:         futureCost,
		NetWorthImpact:  premium.Neg(),
		TimeToSaveYears: years,
	}
}
