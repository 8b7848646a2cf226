// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model: the persisted session record,
// typed answer views per mode, style preference resolution, and the stage
// documents produced by composition.
package types

import (
	"fmt"
	"time"
)

// Mode selects which questionnaire a session runs.
type Mode string

const (
	// ModeGeneration collects SDK details to generate quickstart prompts.
	ModeGeneration Mode = "generation"

	// ModeAnalysis collects an existing document to generate improvement prompts.
	ModeAnalysis Mode = "analysis"
)

// StepComplete is the terminal value of Session.CurrentStep once every
// visible step has a valid answer.
const StepComplete = "complete"

// Session is the persisted record of one questionnaire run. The JSON tags are
// the on-disk schema; answers hold raw normalized values keyed by step key and
// are decoded into typed views at the composition boundary.
type Session struct {
	Mode        Mode           `json:"mode"`
	CurrentStep string         `json:"current_step"`
	History     []string       `json:"history"`
	Answers     map[string]any `json:"answers"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

// NewSession returns an empty session for the given mode, positioned before
// the first step.
func NewSession(mode Mode) *Session {
	return &Session{
		Mode:      mode,
		History:   []string{},
		Answers:   map[string]any{},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

// Complete reports whether the questionnaire reached its terminal step.
func (s *Session) Complete() bool {
	return s.CurrentStep == StepComplete
}

// StringAnswer returns the answer for key as a string, or "" when absent or
// not a string.
func (s *Session) StringAnswer(key string) string {
	if v, ok := s.Answers[key].(string); ok {
		return v
	}
	return ""
}

// ListAnswer returns the answer for key as a string slice. JSON decoding
// produces []any, so both representations are accepted.
func (s *Session) ListAnswer(key string) []string {
	switch v := s.Answers[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if str, ok := e.(string); ok {
				out = append(out, str)
			}
		}
		return out
	}
	return nil
}

// Summary returns a short human-readable description of the session for the
// existing-session decision prompt.
func (s *Session) Summary() string {
	switch s.Mode {
	case ModeAnalysis:
		return fmt.Sprintf("Document: %s\nSDK: %s (%s)\nReferences: %d document(s)",
			orNotSet(s.StringAnswer(KeyDocumentSource)),
			orNotSet(s.StringAnswer(KeySDKName)),
			orNotSet(s.StringAnswer(KeySDKLanguage)),
			len(s.ListAnswer(KeyAdditionalReferences)))
	default:
		return fmt.Sprintf("SDK: %s (%s)\nReferences: %d document(s)\nTarget: %s",
			orNotSet(s.StringAnswer(KeySDKName)),
			orNotSet(s.StringAnswer(KeySDKLanguage)),
			len(s.ListAnswer(KeyReferenceLinks)),
			orNotSet(s.StringAnswer(KeyTargetFramework)))
	}
}

func orNotSet(v string) string {
	if v == "" {
		return "not set"
	}
	return v
}
