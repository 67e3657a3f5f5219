package payment

import (
	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/shopspring/decimal"
)

// Working-time assumptions behind rate derivation: 26 paid working days per
// month, 8 hours per workday. Business constants, not configuration.
var (
	workingDaysPerMonth = decimal.NewFromInt(26)
	hoursPerWorkday     = decimal.NewFromInt(8)
)

// Calculator derives pay rates and monthly breakdowns. Every method is a pure
// function of its arguments; nothing is cached or stored.
type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// DailyRate is the employee's pay per working day: salary / 26.
func (c *Calculator) DailyRate(salary decimal.Decimal) decimal.Decimal {
	return salary.Div(workingDaysPerMonth)
}

// HourlyRate is the pay per hour: dailyRate / 8.
func (c *Calculator) HourlyRate(salary decimal.Decimal) decimal.Decimal {
	return c.DailyRate(salary).Div(hoursPerWorkday)
}

// Impacts prices one record against the given rates, keeping the sign of the
// adjustment. Positive impacts read as commission, negative as deduction.
func (c *Calculator) Impacts(record presence.PresenceRecord, dailyRate, hourlyRate decimal.Decimal) (dayImpact, hourImpact decimal.Decimal) {
	return record.DaysAdj.Mul(dailyRate), record.HoursAdj.Mul(hourlyRate)
}

// BuildBreakdown combines the base salary with the month's presence records.
// Each record is decomposed per field: its day impact and hour impact are
// accumulated independently, so one record with daysAdj > 0 and hoursAdj < 0
// contributes to both commission and deduction. Magnitudes are not capped;
// the result is a linear function of the inputs.
//
// Net is intentionally absent: the record lifecycle derives it from the
// breakdown, the calculator only reports the audit view.
func (c *Calculator) BuildBreakdown(salary decimal.Decimal, records []presence.PresenceRecord) payment.Breakdown {
	dailyRate := c.DailyRate(salary)
	hourlyRate := c.HourlyRate(salary)

	commission := decimal.Zero
	deduction := decimal.Zero
	for _, record := range records {
		dayImpact, hourImpact := c.Impacts(record, dailyRate, hourlyRate)
		commission, deduction = accumulate(commission, deduction, dayImpact)
		commission, deduction = accumulate(commission, deduction, hourImpact)
	}

	return payment.Breakdown{
		Basic:      salary,
		DailyRate:  dailyRate,
		HourlyRate: hourlyRate,
		Commission: commission,
		Deduction:  deduction,
	}
}

func accumulate(commission, deduction, impact decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if impact.IsPositive() {
		return commission.Add(impact), deduction
	}
	if impact.IsNegative() {
		return commission, deduction.Add(impact.Neg())
	}
	return commission, deduction
}

// Derive applies the lifecycle rule for the payment type and returns the
// stored amounts. For every type the result satisfies
// net = basic + commission - deduction.
//
//   - Salaire: amounts pass through, net is their combination.
//   - Avance:  the amount becomes the deduction, net is its negation.
//   - Prime:   the amount becomes the commission, net equals it.
func (c *Calculator) Derive(t payment.PaymentType, basic, commission, deduction, amount decimal.Decimal) (b, com, ded, net decimal.Decimal) {
	switch t {
	case payment.TypeAvance:
		return decimal.Zero, decimal.Zero, amount, amount.Neg()
	case payment.TypePrime:
		return decimal.Zero, amount, decimal.Zero, amount
	default: // Salaire
		return basic, commission, deduction, basic.Add(commission).Sub(deduction)
	}
}
