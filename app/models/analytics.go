package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/firelovers/storefront/pkg/validate"
)

// View is a page view event in the document store.
type View struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Source    string                 `bson:"source"        json:"source"`
	URL       string                 `bson:"url"           json:"url"`
	Visitor   string                 `bson:"visitor"       json:"visitor"`
	CreatedAt time.Time              `bson:"createdAt"     json:"createdAt"`
	Meta      map[string]interface{} `bson:"meta"          json:"meta"`
}

// Action is a user interaction event in the document store.
type Action struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Source    string                 `bson:"source"        json:"source"`
	URL       string                 `bson:"url"           json:"url"`
	Action    string                 `bson:"action"        json:"action"`
	Visitor   string                 `bson:"visitor"       json:"visitor"`
	CreatedAt time.Time              `bson:"createdAt"     json:"createdAt"`
	Meta      map[string]interface{} `bson:"meta"          json:"meta"`
}

// Goal is a conversion event in the document store.
type Goal struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"_id"`
	Source    string                 `bson:"source"        json:"source"`
	URL       string                 `bson:"url"           json:"url"`
	Goal      string                 `bson:"goal"          json:"goal"`
	Visitor   string                 `bson:"visitor"       json:"visitor"`
	CreatedAt time.Time              `bson:"createdAt"     json:"createdAt"`
	Meta      map[string]interface{} `bson:"meta"          json:"meta"`
}

// GoalDetails joins a goal with every view and action recorded for the same
// visitor across the whole event history.
type GoalDetails struct {
	Goal    Goal     `json:"goal"`
	Views   []View   `json:"views"`
	Actions []Action `json:"actions"`
}

// FlexTime accepts the timestamp formats analytics clients actually send:
// RFC3339 strings, plain dates, and unix epochs in seconds or milliseconds.
// It is an input-only type; stored documents hold plain time.Time.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		// Heuristic: epochs past the year 33658 mean milliseconds.
		if n > 1e12 {
			t.Time = time.UnixMilli(n).UTC()
		} else {
			t.Time = time.Unix(n, 0).UTC()
		}
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := validate.ParseDate(str)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// CreateViewInput is the body of POST /views.
type CreateViewInput struct {
	Source    string                 `json:"source"    validate:"required"`
	URL       string                 `json:"url"       validate:"required"`
	Visitor   string                 `json:"visitor"   validate:"required"`
	CreatedAt FlexTime               `json:"createdAt"`
	Meta      map[string]interface{} `json:"meta"      validate:"nullable"`
}

// CreateActionInput is the body of POST /actions.
type CreateActionInput struct {
	Source    string                 `json:"source"    validate:"required"`
	URL       string                 `json:"url"       validate:"required"`
	Action    string                 `json:"action"    validate:"required"`
	Visitor   string                 `json:"visitor"   validate:"required"`
	CreatedAt FlexTime               `json:"createdAt"`
	Meta      map[string]interface{} `json:"meta"      validate:"nullable"`
}

// CreateGoalInput is the body of POST /goals.
type CreateGoalInput struct {
	Source    string                 `json:"source"    validate:"required"`
	URL       string                 `json:"url"       validate:"required"`
	Goal      string                 `json:"goal"      validate:"required"`
	Visitor   string                 `json:"visitor"   validate:"required"`
	CreatedAt FlexTime               `json:"createdAt"`
	Meta      map[string]interface{} `json:"meta"      validate:"nullable"`
}
