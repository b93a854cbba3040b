package domain

import (
	"strings"
	"testing"
	"time"
)

func TestNewRecordIDFormat(t *testing.T) {
	before := time.Now().UnixMilli()
	id := NewRecordID(PatientIDPrefix)
	after := time.Now().UnixMilli()

	if !strings.HasPrefix(id, "PAT-") {
		t.Fatalf("id %q missing prefix", id)
	}

	created, ok := CreatedFromID(id)
	if !ok {
		t.Fatalf("CreatedFromID(%q) not recoverable", id)
	}
	ms := created.UnixMilli()
	if ms < before || ms > after {
		t.Errorf("embedded millis %d outside [%d, %d]", ms, before, after)
	}
}

func TestCreatedFromID(t *testing.T) {
	tests := []struct {
		id string
		ok bool
	}{
		{"APT-1704067200000", true},
		{"DEPT-1704067200001", true},
		{"PAT-abc", false},
		{"noseparator", false},
		{"PAT-0", false},
		{"PAT--5", false},
	}
	for _, tt := range tests {
		if _, ok := CreatedFromID(tt.id); ok != tt.ok {
			t.Errorf("CreatedFromID(%q) ok = %v, want %v", tt.id, ok, tt.ok)
		}
	}
}

func TestCreatedFromIDValue(t *testing.T) {
	created, ok := CreatedFromID("APT-1704067200000")
	if !ok {
		t.Fatal("expected recoverable id")
	}
	if want := time.UnixMilli(1704067200000); !created.Equal(want) {
		t.Errorf("created = %v, want %v", created, want)
	}
}
