package payroll_test

import (
	"testing"
	"time"

	"github.com/warp/payroll-engine/payroll"
)

func newStaff(t *testing.T) *payroll.Registry {
	t.Helper()
	reg := payroll.NewRegistry()
	reg.Add(payroll.NewFullTime("FT001", "Alice Kumar", date(2018, time.June, 15), dec("80000")))
	reg.Add(payroll.NewPartTime("PT101", "Bikash Singh", date(2022, time.January, 10), dec("500")))
	reg.Add(payroll.NewIntern("IN900", "Charu Rai", date(2024, time.July, 1), dec("15000")))
	return reg
}

func TestRegistry_AddAndGet(t *testing.T) {
	reg := newStaff(t)

	e, ok := reg.Get("PT101")
	if !ok {
		t.Fatal("PT101 should exist")
	}
	if e.Name() != "Bikash Singh" {
		t.Errorf("Name = %q", e.Name())
	}
	if reg.Len() != 3 {
		t.Errorf("Len = %d, want 3", reg.Len())
	}
}

func TestRegistry_GetMissing_IsNotAnError(t *testing.T) {
	reg := payroll.NewRegistry()

	e, ok := reg.Get("nope")
	if ok || e != nil {
		t.Errorf("Get(nope) = (%v, %v), want (nil, false)", e, ok)
	}
}

func TestRegistry_Add_OverwriteKeepsPosition(t *testing.T) {
	// GIVEN: three records
	// WHEN:  re-adding the middle ID with a new record
	// THEN:  the new record wins, iteration order is unchanged
	reg := newStaff(t)

	reg.Add(payroll.NewPartTime("PT101", "Bikash S.", date(2023, time.February, 1), dec("550")))

	if reg.Len() != 3 {
		t.Fatalf("Len = %d, want 3", reg.Len())
	}
	ids := reg.IDs()
	want := []string{"FT001", "PT101", "IN900"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("IDs = %v, want %v", ids, want)
		}
	}
	e, _ := reg.Get("PT101")
	if e.Name() != "Bikash S." {
		t.Errorf("overwrite did not take: Name = %q", e.Name())
	}
}

func TestRegistry_RemoveAbsent_IsNoOp(t *testing.T) {
	reg := newStaff(t)

	reg.Remove("does-not-exist")
	if reg.Len() != 3 {
		t.Errorf("Len = %d, want 3", reg.Len())
	}

	reg.Remove("FT001")
	if reg.Len() != 2 {
		t.Errorf("Len = %d, want 2", reg.Len())
	}
	if _, ok := reg.Get("FT001"); ok {
		t.Error("FT001 should be gone")
	}
}

func TestRegistry_ListAll_FieldSetsInInsertionOrder(t *testing.T) {
	reg := newStaff(t)

	all := reg.ListAll()
	if len(all) != 3 {
		t.Fatalf("ListAll returned %d rows", len(all))
	}
	if all[0]["emp_id"] != "FT001" || all[2]["emp_id"] != "IN900" {
		t.Errorf("unexpected order: %v, %v", all[0]["emp_id"], all[2]["emp_id"])
	}
	if all[0]["monthly_salary"] != "80000" {
		t.Errorf("monthly_salary = %q", all[0]["monthly_salary"])
	}
	if all[2]["completed"] != "False" {
		t.Errorf("completed = %q", all[2]["completed"])
	}
}
