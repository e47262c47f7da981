/*
Package payroll provides the employee registry and salary computation core.

PURPOSE:
  This package contains the domain model for a single-process employee
  record keeper: a closed set of employee variants (full-time, part-time,
  intern, generic), each with its own salary rule, plus an in-memory
  registry keyed by employee ID.

KEY CONCEPTS IN THIS FILE (types.go):
  - Role: The string tag that selects an employee variant
  - Employee: Interface implemented by every variant
  - PayInput: Parameters for a salary calculation (variant-specific fields)
  - FullTime/PartTime/Intern/Generic: The concrete variants

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal for all monetary math
  2. Closed variants: Role dispatch happens at construction and load time,
     never through open-ended subtyping
  3. Immutability of identity: An employee's ID never changes after creation
  4. Loose extras: Unrecognized columns from the persisted file are kept in
     an ordered side-table, separate from the typed core fields

ROUNDING:
  Monetary results are rounded to 2 decimal places using round half away
  from zero (decimal.Round semantics).

SEE ALSO:
  - salary.go: The per-variant salary rules
  - registry.go: The in-memory keyed registry
  - factory.go: Row-to-variant construction used by the CSV loader
*/
package payroll

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ROLE - Variant tag
// =============================================================================

type Role string

const (
	RoleFullTime Role = "Full-Time"
	RolePartTime Role = "Part-Time"
	RoleIntern   Role = "Intern"

	// RoleGeneric is the default tag for records whose role is not one of
	// the recognized variants. Unrecognized tags are preserved verbatim.
	RoleGeneric Role = "Employee"
)

// Column names of the persisted tabular format. Every field that is not one
// of the common four is variant-specific or an extra.
const (
	ColEmpID    = "emp_id"
	ColName     = "name"
	ColJoinDate = "join_date"
	ColRole     = "role"
)

// =============================================================================
// EMPLOYEE - Interface implemented by every variant
// =============================================================================

// Employee is the common surface of all record variants. Salary computation
// is polymorphic: each variant reads the PayInput fields it cares about and
// ignores the rest. The generic variant has no salary rule and returns
// ErrUnsupportedOperation.
type Employee interface {
	// ID returns the unique employee identifier. Immutable after creation.
	ID() string
	Name() string
	Role() Role
	JoinDate() Date

	// YearsOfService returns whole years between the join date and asOf,
	// counting a year as complete only once the anniversary month/day has
	// been reached.
	YearsOfService(asOf Date) int

	// CalculateSalary computes the pay amount for this variant, rounded to
	// 2 decimal places. Never negative for domain-valid inputs.
	CalculateSalary(in PayInput) (decimal.Decimal, error)

	// Fields returns the record's serializable column->cell mapping:
	// the common fields, the variant's declared fields, and any extras.
	Fields() map[string]string

	// Extras exposes the loosely-typed side-table of unrecognized columns.
	Extras() *Extras
}

// =============================================================================
// PAY INPUT - Salary calculation parameters
// =============================================================================

// PayInput bundles the variant-specific salary parameters. Zero values match
// the defaults of each rule: Months <= 0 is treated as 1, a zero AsOf date
// means "today".
type PayInput struct {
	// Months to pay (full-time). Defaults to 1.
	Months int

	// HoursWorked in the pay period (part-time).
	HoursWorked decimal.Decimal

	// ApplyBonus enables the bonus rule (full-time, part-time).
	ApplyBonus bool

	// ApplyCompletionAllowance enables the completion allowance (intern).
	ApplyCompletionAllowance bool

	// AsOf anchors years-of-service for the full-time bonus tiers.
	AsOf Date
}

func (in PayInput) months() int {
	if in.Months <= 0 {
		return 1
	}
	return in.Months
}

func (in PayInput) asOf() Date {
	if in.AsOf.IsZero() {
		return Today()
	}
	return in.AsOf
}

// =============================================================================
// BASE RECORD - Common fields shared by every variant
// =============================================================================

type base struct {
	id       string
	name     string
	joinDate Date
	role     Role
	extras   Extras
}

func (b *base) ID() string     { return b.id }
func (b *base) Name() string   { return b.name }
func (b *base) Role() Role     { return b.role }
func (b *base) JoinDate() Date { return b.joinDate }

func (b *base) YearsOfService(asOf Date) int {
	return YearsBetween(b.joinDate, asOf)
}

func (b *base) Extras() *Extras { return &b.extras }

// commonFields returns the four common columns plus the extras.
func (b *base) commonFields() map[string]string {
	m := map[string]string{
		ColEmpID: b.id,
		ColName:  b.name,
		ColRole:  string(b.role),
	}
	if b.joinDate.IsZero() {
		m[ColJoinDate] = ""
	} else {
		m[ColJoinDate] = b.joinDate.String()
	}
	b.extras.each(func(key string, v ExtraValue) {
		m[key] = v.String()
	})
	return m
}

// =============================================================================
// VARIANTS
// =============================================================================

// FullTime is paid a fixed monthly salary with a tiered annual bonus.
type FullTime struct {
	base
	MonthlySalary decimal.Decimal
	BonusPercent  decimal.Decimal // base bonus rate, default 0.05
}

// PartTime is paid hourly. MonthlyHours records the hours of the last
// completed salary calculation.
type PartTime struct {
	base
	HourlyRate   decimal.Decimal
	MonthlyHours decimal.Decimal
}

// Intern receives a fixed stipend, plus a completion allowance once the
// internship is marked completed.
type Intern struct {
	base
	Stipend   decimal.Decimal
	Completed bool
}

// Generic carries only the common fields. It has no salary rule.
type Generic struct {
	base
}

var defaultBonusPercent = decimal.New(5, -2) // 0.05

func NewFullTime(id, name string, joinDate Date, monthlySalary decimal.Decimal) *FullTime {
	return &FullTime{
		base:          base{id: id, name: name, joinDate: joinDate, role: RoleFullTime},
		MonthlySalary: monthlySalary,
		BonusPercent:  defaultBonusPercent,
	}
}

func NewPartTime(id, name string, joinDate Date, hourlyRate decimal.Decimal) *PartTime {
	return &PartTime{
		base:       base{id: id, name: name, joinDate: joinDate, role: RolePartTime},
		HourlyRate: hourlyRate,
	}
}

func NewIntern(id, name string, joinDate Date, stipend decimal.Decimal) *Intern {
	return &Intern{
		base:    base{id: id, name: name, joinDate: joinDate, role: RoleIntern},
		Stipend: stipend,
	}
}

// NewGeneric creates a record for an unrecognized role tag. The tag is
// preserved verbatim; an empty tag falls back to RoleGeneric.
func NewGeneric(id, name string, joinDate Date, role Role) *Generic {
	if role == "" {
		role = RoleGeneric
	}
	return &Generic{base: base{id: id, name: name, joinDate: joinDate, role: role}}
}

// Compile-time checks that every variant implements Employee.
var (
	_ Employee = (*FullTime)(nil)
	_ Employee = (*PartTime)(nil)
	_ Employee = (*Intern)(nil)
	_ Employee = (*Generic)(nil)
)

// =============================================================================
// SERIALIZABLE FIELD SETS
// =============================================================================

func (e *FullTime) Fields() map[string]string {
	m := e.commonFields()
	m["monthly_salary"] = e.MonthlySalary.String()
	m["bonus_percent"] = e.BonusPercent.String()
	return m
}

func (e *PartTime) Fields() map[string]string {
	m := e.commonFields()
	m["hourly_rate"] = e.HourlyRate.String()
	m["monthly_hours"] = e.MonthlyHours.String()
	return m
}

func (e *Intern) Fields() map[string]string {
	m := e.commonFields()
	m["stipend"] = e.Stipend.String()
	if e.Completed {
		m["completed"] = "True"
	} else {
		m["completed"] = "False"
	}
	return m
}

func (e *Generic) Fields() map[string]string {
	return e.commonFields()
}
