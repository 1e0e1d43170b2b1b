package model

import "strings"

type CopyStatus string

const (
	CopyStatusApproved CopyStatus = "approved"
	CopyStatusPending  CopyStatus = "pending"
	CopyStatusRejected CopyStatus = "rejected"
)

const UnnamedCopy = "Unnamed Copy"

func (s CopyStatus) Valid() bool {
	switch s {
	case CopyStatusApproved, CopyStatusPending, CopyStatusRejected:
		return true
	}
	return false
}

// Icon is the glyph shown next to the status badge.
func (s CopyStatus) Icon() string {
	switch s {
	case CopyStatusApproved:
		return "✓"
	case CopyStatusPending:
		return "⏳"
	default:
		return "✗"
	}
}

// Rank orders statuses approved, pending, rejected, then anything else.
func (s CopyStatus) Rank() int {
	switch s {
	case CopyStatusApproved:
		return 0
	case CopyStatusPending:
		return 1
	case CopyStatusRejected:
		return 2
	}
	return 3
}

// swagger:model Copy
type Copy struct {
	ID      int        `json:"id"`
	Name    string     `json:"name,omitempty"`
	Creator string     `json:"creator"`
	Status  CopyStatus `json:"status"`
	Reason  string     `json:"reason,omitempty"`
	Tags    []string   `json:"tags,omitempty"`
}

func (c Copy) Validate() error {
	if strings.TrimSpace(c.Creator) == "" {
		return &ValidationError{Field: "creator", Message: "copy creator is required"}
	}
	if !c.Status.Valid() {
		return &ValidationError{Field: "status", Message: "status must be one of approved, pending, rejected"}
	}
	return nil
}

func (c *Copy) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Creator = strings.TrimSpace(c.Creator)
	c.Reason = strings.TrimSpace(c.Reason)
	c.Status = CopyStatus(strings.ToLower(strings.TrimSpace(string(c.Status))))
}

func (c Copy) DisplayName() string {
	if c.Name == "" {
		return UnnamedCopy
	}
	return c.Name
}

func (c Copy) HasReason() bool {
	return strings.TrimSpace(c.Reason) != ""
}

func (c Copy) Clone() Copy {
	out := c
	if c.Tags != nil {
		out.Tags = append([]string(nil), c.Tags...)
	}
	return out
}
