// Package client provides the HTTP client for the Meeting Summarizer backend API.
// This file contains the meeting resource methods.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Meeting statuses as stored by the backend.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
)

// Meeting is the server-side record representing one transcript and its
// derived summary artifacts.
type Meeting struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Transcript   string    `json:"transcript"`
	Summary      string    `json:"summary,omitempty"`
	ActionItems  string    `json:"actionItems,omitempty"`
	CustomPrompt string    `json:"customPrompt,omitempty"`
	Date         time.Time `json:"date"`
	Participants []string  `json:"participants"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// CreateMeetingData holds the fields for creating a meeting.
type CreateMeetingData struct {
	Title        string     `json:"title"`
	Transcript   string     `json:"transcript"`
	CustomPrompt string     `json:"customPrompt,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Participants []string   `json:"participants,omitempty"`
	Status       string     `json:"status,omitempty"`
}

// UpdateMeetingData holds a partial update; nil fields are left unchanged.
type UpdateMeetingData struct {
	Title        *string    `json:"title,omitempty"`
	Transcript   *string    `json:"transcript,omitempty"`
	CustomPrompt *string    `json:"customPrompt,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	Participants []string   `json:"participants,omitempty"`
	Status       *string    `json:"status,omitempty"`
}

// CreateMeeting creates a new meeting and returns the full record
// including the server-assigned identifier.
func (c *APIClient) CreateMeeting(ctx context.Context, data CreateMeetingData) (*Meeting, error) {
	var meeting Meeting
	if err := c.doJSON(ctx, http.MethodPost, "/meetings", data, &meeting); err != nil {
		return nil, fmt.Errorf("creating meeting: %w", err)
	}
	return &meeting, nil
}

// ListMeetings retrieves all meetings.
func (c *APIClient) ListMeetings(ctx context.Context) ([]Meeting, error) {
	var meetings []Meeting
	if err := c.doJSON(ctx, http.MethodGet, "/meetings", nil, &meetings); err != nil {
		return nil, fmt.Errorf("listing meetings: %w", err)
	}
	return meetings, nil
}

// GetMeeting retrieves a single meeting by ID.
func (c *APIClient) GetMeeting(ctx context.Context, id string) (*Meeting, error) {
	var meeting Meeting
	if err := c.doJSON(ctx, http.MethodGet, "/meetings/"+pathEscape(id), nil, &meeting); err != nil {
		return nil, fmt.Errorf("getting meeting %s: %w", id, err)
	}
	return &meeting, nil
}

// UpdateMeeting applies a partial update and returns the updated record.
func (c *APIClient) UpdateMeeting(ctx context.Context, id string, data UpdateMeetingData) (*Meeting, error) {
	var meeting Meeting
	if err := c.doJSON(ctx, http.MethodPut, "/meetings/"+pathEscape(id), data, &meeting); err != nil {
		return nil, fmt.Errorf("updating meeting %s: %w", id, err)
	}
	return &meeting, nil
}

// DeleteMeeting removes a meeting.
func (c *APIClient) DeleteMeeting(ctx context.Context, id string) error {
	if err := c.doJSON(ctx, http.MethodDelete, "/meetings/"+pathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("deleting meeting %s: %w", id, err)
	}
	return nil
}

// GenerateSummary triggers server-side summarization for the meeting and
// returns the updated record. The backend uses its default instructions
// when customPrompt is empty. Whether the returned record actually carries
// a summary is the caller's concern, not this layer's.
func (c *APIClient) GenerateSummary(ctx context.Context, id, customPrompt string) (*Meeting, error) {
	body := struct {
		CustomPrompt string `json:"customPrompt,omitempty"`
	}{CustomPrompt: customPrompt}

	var meeting Meeting
	if err := c.doJSON(ctx, http.MethodPost, "/meetings/"+pathEscape(id)+"/summary", body, &meeting); err != nil {
		return nil, fmt.Errorf("generating summary for meeting %s: %w", id, err)
	}
	return &meeting, nil
}

// ShareSummary triggers server-side email dispatch of the meeting summary
// to the given recipients. Addresses are passed through uninterpreted.
func (c *APIClient) ShareSummary(ctx context.Context, id string, recipients []string) error {
	body := struct {
		Recipients []string `json:"recipients"`
	}{Recipients: recipients}

	if err := c.doJSON(ctx, http.MethodPost, "/meetings/"+pathEscape(id)+"/share", body, nil); err != nil {
		return fmt.Errorf("sharing meeting %s: %w", id, err)
	}
	return nil
}
