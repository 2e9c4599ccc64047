package quadrant

import (
	"testing"
	"time"
)

func day(value string) time.Time {
	t, err := time.Parse(ISODate, value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAbsenceIndexMatchesBareAndTimestampedDates(t *testing.T) {
	ix := NewAbsenceIndex([]AbsenceRecord{
		{EmployeeID: 1, Date: "2025-12-24", Type: "vacation"},
		{EmployeeID: 1, Date: "2025-12-25T00:00:00Z", Type: "vacation"},
		{EmployeeID: 2, Date: "2025-12-24 09:30:00", Type: "sick"},
	})

	tests := []struct {
		name       string
		employeeID uint
		day        string
		want       bool
	}{
		{"bare date matches", 1, "2025-12-24", true},
		{"timestamped record matches its day", 1, "2025-12-25", true},
		{"space-separated timestamp matches", 2, "2025-12-24", true},
		{"other employee's day does not leak", 2, "2025-12-25", false},
		{"adjacent day is not absent", 1, "2025-12-26", false},
		{"unknown employee", 99, "2025-12-24", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ix.IsAbsent(tt.employeeID, day(tt.day)); got != tt.want {
				t.Errorf("IsAbsent(%d, %s) = %v, want %v", tt.employeeID, tt.day, got, tt.want)
			}
		})
	}
}

func TestAbsenceIndexCountFor(t *testing.T) {
	ix := NewAbsenceIndex([]AbsenceRecord{
		{EmployeeID: 1, Date: "2025-12-24"},
		{EmployeeID: 1, Date: "2025-12-24T12:00:00Z"}, // same day, counted once
		{EmployeeID: 1, Date: "2025-12-25"},
	})

	if got := ix.CountFor(1); got != 2 {
		t.Errorf("CountFor(1) = %d, want 2", got)
	}
	if got := ix.CountFor(2); got != 0 {
		t.Errorf("CountFor(2) = %d, want 0", got)
	}
}

func TestAbsenceIndexAddRemove(t *testing.T) {
	ix := NewAbsenceIndex(nil)
	d := day("2025-06-20")

	if ix.IsAbsent(1, d) {
		t.Fatal("empty index should report nothing absent")
	}

	ix.Add(1, d)
	if !ix.IsAbsent(1, d) {
		t.Error("day should be absent after Add")
	}
	ix.Add(1, d) // idempotent
	if got := ix.CountFor(1); got != 1 {
		t.Errorf("CountFor = %d after double Add, want 1", got)
	}

	ix.Remove(1, d)
	if ix.IsAbsent(1, d) {
		t.Error("day should be free after Remove")
	}
	ix.Remove(1, d) // idempotent
	ix.Remove(42, d)
}
