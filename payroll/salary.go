/*
salary.go - Per-variant salary rules

PURPOSE:
  Implements CalculateSalary for each employee variant. The rules are the
  contract of this system and are reproduced exactly:

  FullTime:
    base = monthly_salary * months
    bonus: extra = min(floor(years_of_service/3) * 0.01, 0.05)
           rate  = bonus_percent + extra
           pay   = round(base + base*rate, 2)

  PartTime:
    base = hourly_rate * hours_worked
    bonus of 2% of base iff apply_bonus and hours_worked >= 80
    SIDE EFFECT: hours_worked is stored into MonthlyHours

  Intern:
    pay = stipend, +10% allowance iff requested and Completed

  Generic:
    no salary rule; returns ErrUnsupportedOperation

ROUNDING:
  decimal.Round(2), i.e. round half away from zero.
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

var (
	bonusStep        = decimal.New(1, -2)  // +1% per full 3 years of service
	bonusExtraCap    = decimal.New(5, -2)  // capped at +5%
	partTimeBonus    = decimal.New(2, -2)  // 2% performance bonus
	completionRate   = decimal.New(1, -1)  // 10% completion allowance
	partTimeBonusMin = decimal.NewFromInt(80)
)

// CalculateSalary pays months of salary (default 1). With ApplyBonus, the
// annual bonus is added as a lump sum: the base rate plus +1% for each full
// 3 years of service, the extra capped at +5%.
func (e *FullTime) CalculateSalary(in PayInput) (decimal.Decimal, error) {
	base := e.MonthlySalary.Mul(decimal.NewFromInt(int64(in.months())))

	if in.ApplyBonus {
		steps := e.YearsOfService(in.asOf()) / 3
		extra := bonusStep.Mul(decimal.NewFromInt(int64(steps)))
		if extra.GreaterThan(bonusExtraCap) {
			extra = bonusExtraCap
		}
		rate := e.BonusPercent.Add(extra)
		return base.Add(base.Mul(rate)).Round(2), nil
	}
	return base.Round(2), nil
}

// CalculateSalary pays HoursWorked at the hourly rate. With ApplyBonus and
// at least 80 hours, a 2% performance bonus is included. The hours worked
// are stored into MonthlyHours as an observable mutation of the record.
func (e *PartTime) CalculateSalary(in PayInput) (decimal.Decimal, error) {
	base := e.HourlyRate.Mul(in.HoursWorked)

	bonus := decimal.Zero
	if in.ApplyBonus && in.HoursWorked.GreaterThanOrEqual(partTimeBonusMin) {
		bonus = base.Mul(partTimeBonus)
	}

	// last computed hours, kept for the record
	e.MonthlyHours = in.HoursWorked

	return base.Add(bonus).Round(2), nil
}

// CalculateSalary returns the stipend. With ApplyCompletionAllowance and a
// completed internship, a 10% allowance is added. No mutation.
func (e *Intern) CalculateSalary(in PayInput) (decimal.Decimal, error) {
	base := e.Stipend

	allowance := decimal.Zero
	if in.ApplyCompletionAllowance && e.Completed {
		allowance = base.Mul(completionRate)
	}
	return base.Add(allowance).Round(2), nil
}

// CalculateSalary is not supported for generic records.
func (e *Generic) CalculateSalary(PayInput) (decimal.Decimal, error) {
	return decimal.Decimal{}, &UnsupportedOperationError{ID: e.id, Role: e.role}
}
