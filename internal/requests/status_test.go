package requests

import (
	"errors"
	"testing"
	"time"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

func TestDecideSend(t *testing.T) {
	tests := []struct {
		name     string
		existing *database.CollaborationRequest
		want     SendAction
		wantErr  error
	}{
		{"no previous request", nil, SendCreate, nil},
		{"pending", &database.CollaborationRequest{Status: database.RequestPending}, 0, ErrAlreadyPending},
		{"accepted", &database.CollaborationRequest{Status: database.RequestAccepted}, 0, ErrAlreadyAccepted},
		{"declined", &database.CollaborationRequest{Status: database.RequestDeclined}, SendRenew, nil},
		{"cancelled", &database.CollaborationRequest{Status: database.RequestCancelled}, SendRenew, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecideSend(tt.existing)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("DecideSend() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("DecideSend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		current database.RequestStatus
		event   Event
		actor   database.Role
		want    database.RequestStatus
		wantErr bool
	}{
		{"professor accepts", database.RequestPending, EventAccept, database.RoleProfessor, database.RequestAccepted, false},
		{"professor declines", database.RequestPending, EventDecline, database.RoleProfessor, database.RequestDeclined, false},
		{"student cancels", database.RequestPending, EventCancel, database.RoleStudent, database.RequestCancelled, false},
		{"student cannot accept", database.RequestPending, EventAccept, database.RoleStudent, database.RequestPending, true},
		{"professor cannot cancel", database.RequestPending, EventCancel, database.RoleProfessor, database.RequestPending, true},
		{"accepted is final", database.RequestAccepted, EventDecline, database.RoleProfessor, database.RequestAccepted, true},
		{"declined cannot be cancelled", database.RequestDeclined, EventCancel, database.RoleStudent, database.RequestDeclined, true},
		{"unknown event", database.RequestPending, Event("archive"), database.RoleProfessor, database.RequestPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.current, tt.event, tt.actor)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidTransition) {
				t.Errorf("expected ErrInvalidTransition, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Transition() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseEvent(t *testing.T) {
	if e, err := ParseEvent("accept"); err != nil || e != EventAccept {
		t.Errorf("ParseEvent(accept) = %v, %v", e, err)
	}
	if _, err := ParseEvent("maybe"); err == nil {
		t.Error("expected error for unknown response")
	}
}

func TestGroupByStatus(t *testing.T) {
	now := time.Now()
	view := func(id string, status database.RequestStatus, age time.Duration) database.RequestView {
		return database.RequestView{CollaborationRequest: database.CollaborationRequest{
			ID: id, Status: status, UpdatedAt: now.Add(-age),
		}}
	}

	groups := GroupByStatus([]database.RequestView{
		view("d1", database.RequestDeclined, time.Hour),
		view("p1", database.RequestPending, 2*time.Hour),
		view("p2", database.RequestPending, time.Hour),
		view("a1", database.RequestAccepted, time.Hour),
	})

	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Status != database.RequestPending || groups[1].Status != database.RequestAccepted || groups[2].Status != database.RequestDeclined {
		t.Errorf("unexpected group order: %s, %s, %s", groups[0].Status, groups[1].Status, groups[2].Status)
	}
	if groups[0].Requests[0].ID != "p2" {
		t.Errorf("expected newest pending first, got %s", groups[0].Requests[0].ID)
	}

	if GroupByStatus(nil) != nil {
		t.Error("expected no groups for no requests")
	}
}

func TestAgeSummary(t *testing.T) {
	now := time.Now()
	tests := []struct {
		age  time.Duration
		want string
	}{
		{time.Hour, "Today - pending"},
		{25 * time.Hour, "Yesterday - pending"},
		{3 * 24 * time.Hour, "3 days ago - pending"},
		{8 * 24 * time.Hour, "1 week ago - pending"},
		{15 * 24 * time.Hour, "2 weeks ago - pending"},
		{45 * 24 * time.Hour, "45 days ago - pending"},
	}

	for _, tt := range tests {
		r := database.CollaborationRequest{Status: database.RequestPending, UpdatedAt: now.Add(-tt.age)}
		if got := AgeSummary(r, now); got != tt.want {
			t.Errorf("AgeSummary(%v) = %q, want %q", tt.age, got, tt.want)
		}
	}
}
