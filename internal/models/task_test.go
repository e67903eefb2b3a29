package models

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"taskledger/internal/ledger"
)

func TestParsePriority(t *testing.T) {
	cases := []struct {
		name string
		want ledger.Priority
	}{
		{PriorityLow, ledger.PriorityLow},
		{PriorityMedium, ledger.PriorityMedium},
		{PriorityHigh, ledger.PriorityHigh},
	}
	for _, tc := range cases {
		got, err := ParsePriority(tc.name)
		if err != nil {
			t.Fatalf("ParsePriority(%q) err=%v", tc.name, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePriority(%q)=%d, want %d", tc.name, got, tc.want)
		}
		if name := PriorityName(tc.want); name != tc.name {
			t.Fatalf("PriorityName(%d)=%q, want %q", tc.want, name, tc.name)
		}
	}

	if _, err := ParsePriority("urgent"); err == nil {
		t.Fatalf("ParsePriority(urgent) err=nil, want non-nil")
	}
}

func TestTaskFromLedger_NormalizesTimestamps(t *testing.T) {
	owner := uuid.New()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	due := created.Add(time.Hour)

	out := TaskFromLedger(ledger.Task{
		ID:        7,
		Title:     "T",
		Owner:     owner,
		Priority:  ledger.PriorityHigh,
		DueDate:   due.Unix(),
		CreatedAt: created.Unix(),
	})

	if out.Priority != PriorityHigh {
		t.Fatalf("Priority=%q, want %q", out.Priority, PriorityHigh)
	}
	if !out.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt=%v, want %v", out.CreatedAt, created)
	}
	if out.DueDate == nil || !out.DueDate.Equal(due) {
		t.Fatalf("DueDate=%v, want %v", out.DueDate, due)
	}
}

func TestTaskFromLedger_UnsetDueDateOmitted(t *testing.T) {
	out := TaskFromLedger(ledger.Task{ID: 1, Title: "T", CreatedAt: time.Now().Unix()})

	if out.DueDate != nil {
		t.Fatalf("DueDate=%v, want nil for the unset sentinel", out.DueDate)
	}
}
