package appointment

import "testing"

func TestStatusIsValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.IsValid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if Status("no-show").IsValid() {
		t.Error("unrecognized status should be invalid")
	}
}

func TestStatusInfo(t *testing.T) {
	tests := []struct {
		status    Status
		wantLabel string
		wantTone  string
	}{
		{StatusScheduled, "Scheduled", "info"},
		{StatusConfirmed, "Confirmed", "success"},
		{StatusInProgress, "In Progress", "warning"},
		{StatusCompleted, "Completed", "neutral"},
		{StatusCancelled, "Cancelled", "error"},
	}
	for _, tt := range tests {
		info := tt.status.Info()
		if info.Label != tt.wantLabel || info.Tone != tt.wantTone {
			t.Errorf("%s.Info() = %+v, want {%s %s}", tt.status, info, tt.wantLabel, tt.wantTone)
		}
	}
}

func TestStatusInfoFallback(t *testing.T) {
	info := Status("no-show").Info()
	if info.Label != "no-show" || info.Tone != "muted" {
		t.Errorf("fallback Info() = %+v, want {no-show muted}", info)
	}
}
