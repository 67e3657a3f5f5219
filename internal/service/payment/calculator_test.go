package payment

import (
	"testing"
	"time"

	"github.com/cosmedis/backoffice-go/internal/domain/payment"
	"github.com/cosmedis/backoffice-go/internal/domain/presence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(daysAdj, hoursAdj string) presence.PresenceRecord {
	empID := "emp-1"
	return presence.PresenceRecord{
		ID:         "rec-1",
		EmployeeID: &empID,
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		DaysAdj:    dec(daysAdj),
		HoursAdj:   dec(hoursAdj),
	}
}

func TestCalculator_Rates(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name       string
		salary     string
		dailyRate  float64
		hourlyRate float64
	}{
		{"standard salary", "12000", 461.5384615, 57.6923077},
		{"round salary", "5200", 200, 25},
		{"zero salary", "0", 0, 0},
		{"small salary", "26", 1, 0.125},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			salary := dec(tt.salary)
			assert.InDelta(t, tt.dailyRate, calc.DailyRate(salary).InexactFloat64(), 0.0001)
			assert.InDelta(t, tt.hourlyRate, calc.HourlyRate(salary).InexactFloat64(), 0.0001)
		})
	}
}

func TestCalculator_RatesRoundTrip(t *testing.T) {
	calc := NewCalculator()

	// hourlyRate * 8 * 26 must reconstruct the salary within tolerance.
	for _, salary := range []string{"0", "1", "3500", "12000", "99999.99", "123456.78"} {
		s := dec(salary)
		roundTrip := calc.HourlyRate(s).Mul(decimal.NewFromInt(8)).Mul(decimal.NewFromInt(26))
		assert.InDelta(t, s.InexactFloat64(), roundTrip.InexactFloat64(), 0.0001, "salary %s", salary)
	}
}

func TestCalculator_BuildBreakdown_EmptyMonth(t *testing.T) {
	calc := NewCalculator()

	b := calc.BuildBreakdown(dec("8000"), nil)

	assert.True(t, b.Commission.IsZero())
	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.Basic.Equal(dec("8000")))
}

func TestCalculator_BuildBreakdown_MixedSigns(t *testing.T) {
	calc := NewCalculator()

	// salary 12000: dailyRate 461.54, hourlyRate 57.69; a record with
	// daysAdj 2 and hoursAdj -1 contributes to both sides.
	b := calc.BuildBreakdown(dec("12000"), []presence.PresenceRecord{record("2", "-1")})

	assert.InDelta(t, 923.08, b.Commission.InexactFloat64(), 0.01)
	assert.InDelta(t, 57.69, b.Deduction.InexactFloat64(), 0.01)
	assert.InDelta(t, 461.54, b.DailyRate.InexactFloat64(), 0.01)
	assert.InDelta(t, 57.69, b.HourlyRate.InexactFloat64(), 0.01)
}

func TestCalculator_BuildBreakdown_OnlyPositive(t *testing.T) {
	calc := NewCalculator()

	b := calc.BuildBreakdown(dec("12000"), []presence.PresenceRecord{
		record("1", "2"),
		record("0.5", "0"),
	})

	assert.True(t, b.Deduction.IsZero())
	assert.True(t, b.Commission.IsPositive())
}

func TestCalculator_BuildBreakdown_OnlyNegative(t *testing.T) {
	calc := NewCalculator()

	b := calc.BuildBreakdown(dec("12000"), []presence.PresenceRecord{
		record("-1", "-2"),
		record("0", "-0.5"),
	})

	assert.True(t, b.Commission.IsZero())
	assert.True(t, b.Deduction.IsPositive())
}

func TestCalculator_BuildBreakdown_ExtremeMagnitudes(t *testing.T) {
	calc := NewCalculator()

	// The seed data carries outliers like daysAdj 120 and hoursAdj -300.
	// The breakdown is a pure linear function, no caps apply.
	b := calc.BuildBreakdown(dec("2600"), []presence.PresenceRecord{
		record("120", "0"),
		record("0", "-300"),
	})

	// dailyRate 100, hourlyRate 12.5
	assert.InDelta(t, 12000, b.Commission.InexactFloat64(), 0.0001)
	assert.InDelta(t, 3750, b.Deduction.InexactFloat64(), 0.0001)
}

func TestCalculator_BuildBreakdown_MultipleRecordsSameDate(t *testing.T) {
	calc := NewCalculator()

	// Records are not unique per employee/date; both must count.
	b := calc.BuildBreakdown(dec("2600"), []presence.PresenceRecord{
		record("1", "0"),
		record("1", "0"),
	})

	assert.InDelta(t, 200, b.Commission.InexactFloat64(), 0.0001)
}

func TestCalculator_BuildBreakdown_Idempotent(t *testing.T) {
	calc := NewCalculator()
	records := []presence.PresenceRecord{record("2", "-1"), record("-3", "4.5")}

	first := calc.BuildBreakdown(dec("9750"), records)
	second := calc.BuildBreakdown(dec("9750"), records)

	assert.True(t, first.Basic.Equal(second.Basic))
	assert.True(t, first.Commission.Equal(second.Commission))
	assert.True(t, first.Deduction.Equal(second.Deduction))
}

func TestCalculator_Derive_Salaire(t *testing.T) {
	calc := NewCalculator()

	basic, com, ded, net := calc.Derive(payment.TypeSalaire, dec("12000"), dec("923.08"), dec("57.69"), decimal.Zero)

	assert.True(t, basic.Equal(dec("12000")))
	assert.True(t, net.Equal(basic.Add(com).Sub(ded)))
	assert.InDelta(t, 12865.39, net.InexactFloat64(), 0.01)
}

func TestCalculator_Derive_Avance(t *testing.T) {
	calc := NewCalculator()

	basic, com, ded, net := calc.Derive(payment.TypeAvance, decimal.Zero, decimal.Zero, decimal.Zero, dec("500"))

	assert.True(t, basic.IsZero())
	assert.True(t, com.IsZero())
	assert.True(t, ded.Equal(dec("500")))
	assert.True(t, net.Equal(dec("-500")))
	assert.True(t, net.Equal(basic.Add(com).Sub(ded)))
}

func TestCalculator_Derive_Prime(t *testing.T) {
	calc := NewCalculator()

	basic, com, ded, net := calc.Derive(payment.TypePrime, decimal.Zero, decimal.Zero, decimal.Zero, dec("300"))

	assert.True(t, basic.IsZero())
	assert.True(t, ded.IsZero())
	assert.True(t, com.Equal(dec("300")))
	assert.True(t, net.Equal(dec("300")))
	assert.True(t, net.Equal(basic.Add(com).Sub(ded)))
}

func TestCalculator_Derive_NetInvariant(t *testing.T) {
	calc := NewCalculator()

	// net = basic + commission - deduction holds for every type.
	types := []payment.PaymentType{payment.TypeSalaire, payment.TypeAvance, payment.TypePrime}
	for _, typ := range types {
		basic, com, ded, net := calc.Derive(typ, dec("4100"), dec("250"), dec("75.50"), dec("640"))
		assert.True(t, net.Equal(basic.Add(com).Sub(ded)), "type %s", typ)
	}
}
