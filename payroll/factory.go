/*
factory.go - Row-to-variant construction

PURPOSE:
  Turns one row of the persisted tabular format into the right employee
  variant. This is where role dispatch happens at load time:

    "Full-Time" -> FullTime   (monthly_salary, bonus_percent)
    "Part-Time" -> PartTime   (hourly_rate, monthly_hours)
    "Intern"    -> Intern     (stipend, completed)
    anything else -> Generic, role preserved verbatim

  Columns outside the common four and the variant's declared set are
  coerced into the record's extras table. Empty cells are skipped.

ERROR POLICY:
  A malformed declared numeric or a malformed non-empty join date is a load
  error; the codec surfaces it and callers fall back to an empty registry.
  Extras never error: coercion falls back to the raw string.
*/
package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// declaredColumns lists the typed, variant-specific columns consumed during
// dispatch. They are excluded from generic extras coercion.
var declaredColumns = map[Role]map[string]bool{
	RoleFullTime: {"monthly_salary": true, "bonus_percent": true},
	RolePartTime: {"hourly_rate": true, "monthly_hours": true},
	RoleIntern:   {"stipend": true, "completed": true},
}

// FromRow builds an employee record from a row mapping. columns gives the
// file's column order so extras keep a stable order; pass nil for sorted
// key order.
func FromRow(row map[string]string, columns []string) (Employee, error) {
	role := Role(row[ColRole])
	id := row[ColEmpID]
	name := row[ColName]

	joinDate, err := parseJoinDate(row[ColJoinDate])
	if err != nil {
		return nil, fmt.Errorf("employee %q: %w", id, err)
	}

	var emp Employee
	switch role {
	case RoleFullTime:
		salary, err := parseDecimalCell(row, "monthly_salary")
		if err != nil {
			return nil, fmt.Errorf("employee %q: %w", id, err)
		}
		ft := NewFullTime(id, name, joinDate, salary)
		if raw := row["bonus_percent"]; raw != "" {
			pct, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("employee %q: bad bonus_percent %q", id, raw)
			}
			ft.BonusPercent = pct
		}
		emp = ft

	case RolePartTime:
		rate, err := parseDecimalCell(row, "hourly_rate")
		if err != nil {
			return nil, fmt.Errorf("employee %q: %w", id, err)
		}
		pt := NewPartTime(id, name, joinDate, rate)
		if raw := row["monthly_hours"]; raw != "" {
			hours, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, fmt.Errorf("employee %q: bad monthly_hours %q", id, raw)
			}
			pt.MonthlyHours = hours
		}
		emp = pt

	case RoleIntern:
		stipend, err := parseDecimalCell(row, "stipend")
		if err != nil {
			return nil, fmt.Errorf("employee %q: %w", id, err)
		}
		in := NewIntern(id, name, joinDate, stipend)
		switch row["completed"] {
		case "True", "true", "1":
			in.Completed = true
		}
		emp = in

	default:
		// The unrecognized tag is preserved verbatim, even when empty.
		emp = &Generic{base: base{id: id, name: name, joinDate: joinDate, role: role}}
	}

	// Permissive pass: keep every other non-empty column as an extra.
	declared := declaredColumns[role]
	if columns == nil {
		columns = sortedKeys(row)
	}
	for _, col := range columns {
		switch col {
		case ColEmpID, ColName, ColJoinDate, ColRole:
			continue
		}
		if declared[col] {
			continue
		}
		raw, ok := row[col]
		if !ok || raw == "" {
			continue
		}
		emp.Extras().Set(col, Coerce(raw))
	}

	return emp, nil
}

func parseJoinDate(raw string) (Date, error) {
	if raw == "" {
		return Date{}, nil
	}
	d, err := ParseDate(raw)
	if err != nil {
		return Date{}, fmt.Errorf("bad join_date %q", raw)
	}
	return d, nil
}

// parseDecimalCell reads a declared numeric column, defaulting to zero when
// missing or empty.
func parseDecimalCell(row map[string]string, col string) (decimal.Decimal, error) {
	raw := row[col]
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad %s %q", col, raw)
	}
	return d, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
