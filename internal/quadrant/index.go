package quadrant

import "time"

// AbsenceRecord is one employee-day of absence as delivered by the
// collaborator. Date is ISO YYYY-MM-DD, possibly with a trailing time
// component that the index must tolerate.
type AbsenceRecord struct {
	EmployeeID uint
	Date       string
	Type       string
}

// AbsenceIndex answers point-in-time membership tests over a set of absence
// records. Stored dates are normalized to the calendar day at ingestion, so a
// record carrying a timestamp suffix still matches its bare day. The index is
// always rebuilt in full from a fresh query, never patched from stale data.
type AbsenceIndex struct {
	days map[uint]map[string]struct{}
}

func NewAbsenceIndex(records []AbsenceRecord) *AbsenceIndex {
	ix := &AbsenceIndex{days: make(map[uint]map[string]struct{})}
	for _, rec := range records {
		ix.add(rec.EmployeeID, dayKey(rec.Date))
	}
	return ix
}

// IsAbsent reports whether an absence record exists for the employee whose
// date, truncated to the day, equals the queried day.
func (ix *AbsenceIndex) IsAbsent(employeeID uint, day time.Time) bool {
	set, ok := ix.days[employeeID]
	if !ok {
		return false
	}
	_, absent := set[day.Format(ISODate)]
	return absent
}

// CountFor is the number of distinct absent days recorded for the employee.
func (ix *AbsenceIndex) CountFor(employeeID uint) int {
	return len(ix.days[employeeID])
}

// Add marks a single day absent. Used by the mutation controller when a
// toggle is acknowledged; idempotent.
func (ix *AbsenceIndex) Add(employeeID uint, day time.Time) {
	ix.add(employeeID, day.Format(ISODate))
}

// Remove clears a single day. Idempotent.
func (ix *AbsenceIndex) Remove(employeeID uint, day time.Time) {
	if set, ok := ix.days[employeeID]; ok {
		delete(set, day.Format(ISODate))
	}
}

func (ix *AbsenceIndex) add(employeeID uint, key string) {
	set, ok := ix.days[employeeID]
	if !ok {
		set = make(map[string]struct{})
		ix.days[employeeID] = set
	}
	set[key] = struct{}{}
}

// dayKey truncates a wire date to its calendar-day portion. The collaborator
// may send either bare dates or timestamps; comparing anything beyond the
// first ten characters would make equality depend on the representation.
func dayKey(date string) string {
	if len(date) > len(ISODate) {
		return date[:len(ISODate)]
	}
	return date
}
