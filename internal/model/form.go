package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LevelForm is the raw level dialog input. ID arrives as text, like a form field.
type LevelForm struct {
	ID          FormID `json:"id" binding:"required,numeric"`
	Name        string `json:"name" binding:"required"`
	Creator     string `json:"creator" binding:"required"`
	Description string `json:"description"`
}

type CopyForm struct {
	ID      FormID     `json:"id" binding:"required,numeric"`
	Name    string     `json:"name"`
	Creator string     `json:"creator" binding:"required"`
	Status  FormStatus `json:"status" binding:"required,oneof=approved pending rejected"`
	Reason  string     `json:"reason"`
	Tags    []string   `json:"tags"`
}

// FormID is an id as typed into a form. JSON bodies may carry it as a string
// or as a number, so documents read from the catalog can be posted back.
type FormID string

func (id *FormID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = FormID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a number or a string")
	}
	*id = FormID(n.String())
	return nil
}

// FormStatus is a copy status as typed; it is trimmed and lowercased on decode.
type FormStatus string

func (s *FormStatus) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("status must be a string")
	}
	*s = FormStatus(strings.ToLower(strings.TrimSpace(raw)))
	return nil
}

// ParseID parses a decimal integer id after trimming whitespace.
func ParseID(field, raw string) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, &ValidationError{Field: field, Message: field + " is required"}
	}
	id, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &ValidationError{Field: field, Message: field + " must be a valid integer"}
	}
	return id, nil
}

// Level converts the form into a validated level without copies.
func (f LevelForm) Level() (Level, error) {
	id, err := ParseID("id", string(f.ID))
	if err != nil {
		return Level{}, err
	}
	level := Level{
		ID:          id,
		Name:        f.Name,
		Creator:     f.Creator,
		Description: f.Description,
	}
	level.Normalize()
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

func (f CopyForm) Copy() (Copy, error) {
	id, err := ParseID("id", string(f.ID))
	if err != nil {
		return Copy{}, err
	}
	c := Copy{
		ID:      id,
		Name:    f.Name,
		Creator: f.Creator,
		Status:  CopyStatus(f.Status),
		Reason:  f.Reason,
		Tags:    cleanTags(f.Tags),
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		return Copy{}, err
	}
	return c, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// LevelFormFrom fills a form from an existing level, the way the edit dialog opens.
func LevelFormFrom(l Level) LevelForm {
	return LevelForm{
		ID:          FormID(strconv.Itoa(l.ID)),
		Name:        l.Name,
		Creator:     l.Creator,
		Description: l.Description,
	}
}

func CopyFormFrom(c Copy) CopyForm {
	return CopyForm{
		ID:      FormID(strconv.Itoa(c.ID)),
		Name:    c.Name,
		Creator: c.Creator,
		Status:  FormStatus(c.Status),
		Reason:  c.Reason,
		Tags:    append([]string(nil), c.Tags...),
	}
}
