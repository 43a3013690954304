// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package port holds the port operations domain model.
package port

import "time"

// =============================================================================
// DATE RANGE
// =============================================================================

// DateRange is an optional, inclusive calendar date range. A zero Start
// means open-start; a zero End means open-end; a zero range matches
// everything.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// IsZero reports whether neither bound is set.
func (r DateRange) IsZero() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether the calendar date of t falls inside the range.
// Comparison is by date, not instant: an alert at 23:59 on the end date is
// still included.
func (r DateRange) Contains(t time.Time) bool {
	day := truncateToDay(t)
	if !r.Start.IsZero() && day.Before(truncateToDay(r.Start)) {
		return false
	}
	if !r.End.IsZero() && day.After(truncateToDay(r.End)) {
		return false
	}
	return true
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// =============================================================================
// VESSELS AND BERTHS
// =============================================================================

// VesselStatus describes where a vessel is in its port call.
type VesselStatus string

const (
	StatusApproaching VesselStatus = "approaching"
	StatusWaiting     VesselStatus = "waiting"
	StatusDocked      VesselStatus = "docked"
	StatusDelayed     VesselStatus = "delayed"
	StatusDeparted    VesselStatus = "departed"
)

// Vessel is a ship known to the port.
type Vessel struct {
	ID      string       `toml:"id"`
	Name    string       `toml:"name"`
	Type    string       `toml:"type"`
	Status  VesselStatus `toml:"status"`
	ETA     string       `toml:"eta"`
	Berth   string       `toml:"berth"`
	Cargo   string       `toml:"cargo"`
	Flag    string       `toml:"flag"`
	Remarks string       `toml:"remarks"`
}

// BerthSlot is one scheduled occupancy window at a berth.
type BerthSlot struct {
	VesselID string `toml:"vessel_id"`
	Vessel   string `toml:"vessel"`
	From     string `toml:"from"`
	To       string `toml:"to"`
}

// Berth is a mooring position with its schedule.
type Berth struct {
	ID       string      `toml:"id"`
	Name     string      `toml:"name"`
	Status   string      `toml:"status"` // occupied, available, maintenance
	Occupant string      `toml:"occupant"`
	Schedule []BerthSlot `toml:"schedule"`
}

// =============================================================================
// COMMUNICATIONS
// =============================================================================

// Channel names a communication channel feeding the dashboard.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelRadio    Channel = "radio"
	ChannelAIS      Channel = "ais"
)

// Channels lists all channels in display order.
var Channels = []Channel{ChannelEmail, ChannelWhatsApp, ChannelRadio, ChannelAIS}

// Message is one inbound communication.
type Message struct {
	ID         string  `toml:"id"`
	Channel    Channel `toml:"channel"`
	Sender     string  `toml:"sender"`
	SenderRole string  `toml:"sender_role"`
	Subject    string  `toml:"subject"`
	Body       string  `toml:"body"`
	Timestamp  string  `toml:"timestamp"`
	Vessel     string  `toml:"vessel"`
	Category   string  `toml:"category"`
	Unread     bool    `toml:"unread"`
}

// =============================================================================
// ALERTS
// =============================================================================

// Severity levels for alerts.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Alert is one AI-generated alert derived from port communications.
// Timestamp is a display string like "Nov 7, 13:47"; ParseAlertDate turns
// it into a calendar date for filtering.
type Alert struct {
	ID          string `toml:"id"`
	Severity    string `toml:"severity"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Timestamp   string `toml:"timestamp"`
	Vessel      string `toml:"vessel"`
	Category    string `toml:"category"`

	// RelatedEntities names the vessels, berths, and services the alert
	// touches beyond the primary vessel.
	RelatedEntities []string `toml:"related_entities"`

	Insight         string `toml:"insight"`
	SuggestedAction string `toml:"suggested_action"`
}

// =============================================================================
// WORKFLOWS
// =============================================================================

// WorkflowStatus describes an automated workflow ticket's state.
type WorkflowStatus string

const (
	WorkflowPending   WorkflowStatus = "pending"
	WorkflowRunning   WorkflowStatus = "running"
	WorkflowCompleted WorkflowStatus = "completed"
	WorkflowFailed    WorkflowStatus = "failed"
)

// Workflow is one automated workflow ticket.
type Workflow struct {
	ID          string         `toml:"id"`
	Title       string         `toml:"title"`
	Status      WorkflowStatus `toml:"status"`
	Vessel      string         `toml:"vessel"`
	Trigger     string         `toml:"trigger"`
	Description string         `toml:"description"`
	CreatedAt   string         `toml:"created_at"`
}

// =============================================================================
// FLEET
// =============================================================================

// Fleet aggregates the full port dataset shown by the dashboard.
type Fleet struct {
	Vessels   []Vessel   `toml:"vessels"`
	Berths    []Berth    `toml:"berths"`
	Messages  []Message  `toml:"messages"`
	Alerts    []Alert    `toml:"alerts"`
	Workflows []Workflow `toml:"workflows"`
}

// VesselByID returns the vessel with the given id, or nil.
func (f *Fleet) VesselByID(id string) *Vessel {
	for i := range f.Vessels {
		if f.Vessels[i].ID == id {
			return &f.Vessels[i]
		}
	}
	return nil
}

// BerthByID returns the berth with the given id, or nil.
func (f *Fleet) BerthByID(id string) *Berth {
	for i := range f.Berths {
		if f.Berths[i].ID == id {
			return &f.Berths[i]
		}
	}
	return nil
}

// MessagesForChannel returns the messages on one channel, in order.
func (f *Fleet) MessagesForChannel(ch Channel) []Message {
	var out []Message
	for _, m := range f.Messages {
		if m.Channel == ch {
			out = append(out, m)
		}
	}
	return out
}
