// Package requests holds the collaboration request state machine.
package requests

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/vijay-prabhu/research-connect/internal/database"
)

var (
	ErrAlreadyPending    = errors.New("a pending request already exists")
	ErrAlreadyAccepted   = errors.New("already collaborating")
	ErrInvalidTransition = errors.New("invalid request transition")
)

// Event is something a participant does to a request
type Event string

const (
	EventAccept  Event = "accept"
	EventDecline Event = "decline"
	EventCancel  Event = "cancel"
)

// ParseEvent converts a CLI or API response word to an Event
func ParseEvent(s string) (Event, error) {
	switch Event(s) {
	case EventAccept, EventDecline, EventCancel:
		return Event(s), nil
	}
	return "", fmt.Errorf("unknown response '%s' (expected accept or decline)", s)
}

// SendAction is what happens when a student sends a request to a professor
type SendAction int

const (
	SendCreate SendAction = iota // no previous request for the pair
	SendRenew                    // a closed request is reopened as pending
)

// DecideSend determines how a new request interacts with the existing one
func DecideSend(existing *database.CollaborationRequest) (SendAction, error) {
	if existing == nil {
		return SendCreate, nil
	}

	switch existing.Status {
	case database.RequestPending:
		return 0, ErrAlreadyPending
	case database.RequestAccepted:
		return 0, ErrAlreadyAccepted
	default:
		return SendRenew, nil
	}
}

// Transition computes the next status for an event. Only pending requests can
// move, and only the professor may accept or decline while only the student
// may cancel.
func Transition(current database.RequestStatus, event Event, actor database.Role) (database.RequestStatus, error) {
	if current != database.RequestPending {
		return current, fmt.Errorf("%w: request is %s", ErrInvalidTransition, current)
	}

	switch event {
	case EventAccept, EventDecline:
		if actor != database.RoleProfessor {
			return current, fmt.Errorf("%w: only the professor can %s", ErrInvalidTransition, event)
		}
		if event == EventAccept {
			return database.RequestAccepted, nil
		}
		return database.RequestDeclined, nil
	case EventCancel:
		if actor != database.RoleStudent {
			return current, fmt.Errorf("%w: only the student can cancel", ErrInvalidTransition)
		}
		return database.RequestCancelled, nil
	default:
		return current, fmt.Errorf("%w: unknown event %s", ErrInvalidTransition, event)
	}
}

// StatusGroup is a set of requests sharing a status
type StatusGroup struct {
	Status   database.RequestStatus `json:"status"`
	Requests []database.RequestView `json:"requests"`
}

var groupOrder = []database.RequestStatus{
	database.RequestPending,
	database.RequestAccepted,
	database.RequestDeclined,
	database.RequestCancelled,
}

// GroupByStatus splits requests into pending, accepted, declined and
// cancelled groups, newest first within each group. Empty groups are omitted.
func GroupByStatus(views []database.RequestView) []StatusGroup {
	byStatus := make(map[database.RequestStatus][]database.RequestView)
	for _, v := range views {
		byStatus[v.Status] = append(byStatus[v.Status], v)
	}

	var groups []StatusGroup
	for _, status := range groupOrder {
		reqs := byStatus[status]
		if len(reqs) == 0 {
			continue
		}
		sorted := make([]database.RequestView, len(reqs))
		copy(sorted, reqs)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
		groups = append(groups, StatusGroup{Status: status, Requests: sorted})
	}
	return groups
}

// AgeSummary returns a short human-readable age for a request
func AgeSummary(r database.CollaborationRequest, now time.Time) string {
	days := int(now.Sub(r.UpdatedAt).Hours() / 24)
	status := string(r.Status)

	switch {
	case days <= 0:
		return "Today - " + status
	case days == 1:
		return "Yesterday - " + status
	case days < 7:
		return formatDays(days) + " ago - " + status
	case days < 30:
		return formatWeeks(days/7) + " ago - " + status
	default:
		return formatDays(days) + " ago - " + status
	}
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func formatWeeks(weeks int) string {
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
