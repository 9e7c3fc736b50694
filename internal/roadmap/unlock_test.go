package roadmap

import "testing"

func TestWeekStatuses_SequentialUnlock(t *testing.T) {
	// Scenario: 4 weeks, week 1 complete, weeks 2-4 untouched.
	weeks := []Week{week(1, "a"), week(2, "a"), week(3, "a"), week(4, "a")}
	records := []ProgressRecord{
		recordWith(1, 1, "task-0"),
		recordWith(2, 1),
		recordWith(3, 1),
		recordWith(4, 1),
	}

	statuses := WeekStatuses(weeks, records)

	if statuses[0].Locked {
		t.Error("week 1 must never be locked")
	}
	if statuses[1].Locked || !statuses[1].Current {
		t.Errorf("week 2 should be unlocked and current, got %+v", statuses[1])
	}
	if !statuses[2].Locked {
		t.Error("week 3 should be locked")
	}
	if !statuses[3].Locked {
		t.Error("week 4 should be locked")
	}
	if !statuses[3].Final {
		t.Error("week 4 should carry the final tag")
	}
}

func TestWeekStatuses_LockRule(t *testing.T) {
	weeks := []Week{week(1, "a"), week(2, "a"), week(3, "a")}
	records := []ProgressRecord{
		recordWith(1, 1, "task-0"),
		recordWith(2, 1, "task-0"),
		recordWith(3, 1),
	}
	statuses := WeekStatuses(weeks, records)
	for i := 1; i < len(weeks); i++ {
		prevDone := records[i-1].Complete()
		if statuses[i].Locked == prevDone {
			t.Errorf("week %d: locked=%v with predecessor complete=%v", i+1, statuses[i].Locked, prevDone)
		}
	}
}

func TestWeekStatuses_AllComplete(t *testing.T) {
	// Everything at 100%: the last week is both current and final.
	weeks := []Week{week(1, "a"), week(2, "a")}
	records := []ProgressRecord{
		recordWith(1, 1, "task-0"),
		recordWith(2, 1, "task-0"),
	}
	statuses := WeekStatuses(weeks, records)
	last := statuses[len(statuses)-1]
	if !last.Current || !last.Final || last.Locked {
		t.Errorf("last week should be current+final, got %+v", last)
	}
}

func TestWeekStatuses_SingleWeek(t *testing.T) {
	weeks := []Week{week(1, "a")}
	statuses := WeekStatuses(weeks, nil)
	s := statuses[0]
	if s.Locked {
		t.Error("a single-week plan is never locked")
	}
	if !s.Final || !s.Current {
		t.Errorf("single week should be current and final, got %+v", s)
	}
}

func TestWeekStatuses_Empty(t *testing.T) {
	if got := WeekStatuses(nil, nil); len(got) != 0 {
		t.Errorf("empty plan should yield no statuses, got %d", len(got))
	}
}

func TestWeekStatusTagPrecedence(t *testing.T) {
	tests := []struct {
		status WeekStatus
		want   string
	}{
		{WeekStatus{Locked: true, Final: true}, "locked"},
		{WeekStatus{Current: true, Final: true}, "current"},
		{WeekStatus{Final: true}, "final"},
		{WeekStatus{}, "normal"},
	}
	for _, tt := range tests {
		if got := tt.status.Tag(); got != tt.want {
			t.Errorf("%+v: got %q, want %q", tt.status, got, tt.want)
		}
	}
}

func TestWeekStatusInteractive(t *testing.T) {
	if (WeekStatus{Locked: true}).Interactive() {
		t.Error("locked weeks must be inert")
	}
	if !(WeekStatus{Current: true}).Interactive() {
		t.Error("unlocked weeks must be interactive")
	}
}
