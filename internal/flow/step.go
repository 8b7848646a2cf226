// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package flow drives the questionnaire: declarative step definitions with
// validators and visibility predicates, and the state machine that walks them
// with NEXT/BACK and durable per-answer commits.
package flow

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// InputKind selects how the controller collects raw input for a step.
type InputKind int

const (
	// KindText collects one required line.
	KindText InputKind = iota

	// KindOptionalText collects one line that may be empty.
	KindOptionalText

	// KindMultiLineList collects lines until an empty line; zero entries are
	// allowed and order is preserved.
	KindMultiLineList
)

// ValidationError reports bad input for a single step. The flow re-prompts
// the same step; nothing else is retried.
type ValidationError struct {
	Step   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input for %s: %s", e.Step, e.Reason)
}

// Answers is the immutable snapshot a visibility predicate or validator sees.
// It is the session answers map; predicates must not mutate it.
type Answers map[string]any

func (a Answers) list(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Step is one immutable question definition. Validate normalizes raw input or
// returns a *ValidationError; Visible is evaluated fresh against the current
// answers on every transition, never cached.
type Step struct {
	Key      string
	Prompt   string
	Kind     InputKind
	Validate func(raw string, answers Answers) (any, error)
	Visible  func(answers Answers) bool

	// ValidateList normalizes a collected list for KindMultiLineList steps.
	ValidateList func(entries []string, answers Answers) (any, error)

	// Required marks steps that must hold an answer before composition.
	Required bool
}

func alwaysVisible(Answers) bool { return true }

func requiredText(key, name string) func(string, Answers) (any, error) {
	return func(raw string, _ Answers) (any, error) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			return nil, &ValidationError{Step: key, Reason: name + " is required"}
		}
		return raw, nil
	}
}

func optionalText(raw string, _ Answers) (any, error) {
	return strings.TrimSpace(raw), nil
}

// trimmedList keeps non-empty trimmed entries in input order.
func trimmedList(key string) func([]string, Answers) (any, error) {
	return func(entries []string, _ Answers) (any, error) {
		out := make([]string, 0, len(entries))
		for _, e := range entries {
			if e = strings.TrimSpace(e); e != "" {
				out = append(out, e)
			}
		}
		return out, nil
	}
}

// styleValidator checks a style preference answer against the reference list
// stored under refKey: an integer within [1, n] or the literal "blend".
func styleValidator(refKey string) func(string, Answers) (any, error) {
	return func(raw string, answers Answers) (any, error) {
		refs := answers.list(refKey)
		pref, err := types.ResolveStylePreference(raw, refs)
		if err != nil {
			return nil, &ValidationError{Step: types.KeyStylePreference, Reason: err.Error()}
		}
		if pref.Kind == types.StyleBlend {
			return string(types.StyleBlend), nil
		}
		return strconv.Itoa(pref.Index), nil
	}
}

// styleVisible shows the style preference step only when there is a real
// choice to make.
func styleVisible(refKey string) func(Answers) bool {
	return func(answers Answers) bool {
		return len(answers.list(refKey)) > 1
	}
}

// validateFocusAreas parses a comma-separated selection of 1-based indices
// into the focus area catalog. Empty input or "all" selects every category.
// Duplicates collapse and the stored order always follows the catalog.
func validateFocusAreas(raw string, _ Answers) (any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "all") {
		names := make([]string, len(types.FocusAreaCatalog))
		for i, fa := range types.FocusAreaCatalog {
			names[i] = fa.Name
		}
		return names, nil
	}

	selected := make(map[int]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, &ValidationError{
				Step:   types.KeyFocusAreas,
				Reason: fmt.Sprintf("%q is not a number: enter comma-separated numbers between 1 and %d, or \"all\"", part, len(types.FocusAreaCatalog)),
			}
		}
		if n < 1 || n > len(types.FocusAreaCatalog) {
			return nil, &ValidationError{
				Step:   types.KeyFocusAreas,
				Reason: fmt.Sprintf("%d out of range: categories are numbered 1 to %d", n, len(types.FocusAreaCatalog)),
			}
		}
		selected[n] = true
	}
	if len(selected) == 0 {
		return nil, &ValidationError{Step: types.KeyFocusAreas, Reason: "no categories selected"}
	}

	var names []string
	for i, fa := range types.FocusAreaCatalog {
		if selected[i+1] {
			names = append(names, fa.Name)
		}
	}
	return names, nil
}

// Steps returns the ordered step definitions for a mode.
func Steps(mode types.Mode) []Step {
	if mode == types.ModeAnalysis {
		return analysisSteps()
	}
	return generationSteps()
}

func generationSteps() []Step {
	return []Step{
		{
			Key:      types.KeySDKName,
			Prompt:   "Which SDK/library are you using?",
			Kind:     KindText,
			Validate: requiredText(types.KeySDKName, "the SDK name"),
			Visible:  alwaysVisible,
			Required: true,
		},
		{
			Key:      types.KeySDKLanguage,
			Prompt:   "What is the SDK language?",
			Kind:     KindText,
			Validate: requiredText(types.KeySDKLanguage, "the SDK language"),
			Visible:  alwaysVisible,
			Required: true,
		},
		{
			Key:      types.KeySDKRepository,
			Prompt:   "SDK repository or documentation link? (optional)",
			Kind:     KindOptionalText,
			Validate: optionalText,
			Visible:  alwaysVisible,
		},
		{
			Key:          types.KeyReferenceLinks,
			Prompt:       "Enter reference quickstart links or file paths (one per line, empty line to finish)",
			Kind:         KindMultiLineList,
			ValidateList: trimmedList(types.KeyReferenceLinks),
			Visible:      alwaysVisible,
		},
		{
			Key:      types.KeyStylePreference,
			Prompt:   "Which documentation style would you like to primarily emulate? Enter a number or 'blend' to combine all styles",
			Kind:     KindText,
			Validate: styleValidator(types.KeyReferenceLinks),
			Visible:  styleVisible(types.KeyReferenceLinks),
			Required: true,
		},
		{
			Key:      types.KeyTargetFramework,
			Prompt:   "Which framework/platform is your target? (or 'standalone' for pure SDK usage)",
			Kind:     KindText,
			Validate: requiredText(types.KeyTargetFramework, "the target framework"),
			Visible:  alwaysVisible,
			Required: true,
		},
	}
}

func analysisSteps() []Step {
	return []Step{
		{
			Key:      types.KeyDocumentSource,
			Prompt:   "URL or file path of the quickstart to analyze?",
			Kind:     KindText,
			Validate: requiredText(types.KeyDocumentSource, "the document source"),
			Visible:  alwaysVisible,
			Required: true,
		},
		{
			Key:      types.KeySDKName,
			Prompt:   "Which SDK/library does this documentation cover?",
			Kind:     KindText,
			Validate: requiredText(types.KeySDKName, "the SDK name"),
			Visible:  alwaysVisible,
			Required: true,
		},
		{
			Key:      types.KeySDKLanguage,
			Prompt:   "What is the SDK language?",
			Kind:     KindText,
			Validate: requiredText(types.KeySDKLanguage, "the SDK language"),
			Visible:  alwaysVisible,
			Required: true,
		},
		{
			Key:      types.KeyFocusAreas,
			Prompt:   "Select focus areas (comma-separated numbers, or 'all')",
			Kind:     KindOptionalText,
			Validate: validateFocusAreas,
			Visible:  alwaysVisible,
		},
		{
			Key:          types.KeyAdditionalReferences,
			Prompt:       "Enter reference \"good\" quickstarts for comparison (one per line, empty line to finish)",
			Kind:         KindMultiLineList,
			ValidateList: trimmedList(types.KeyAdditionalReferences),
			Visible:      alwaysVisible,
		},
		{
			Key:      types.KeyStylePreference,
			Prompt:   "Which reference style should the improvements lean toward? Enter a number or 'blend'",
			Kind:     KindText,
			Validate: styleValidator(types.KeyAdditionalReferences),
			Visible:  styleVisible(types.KeyAdditionalReferences),
			Required: true,
		},
	}
}
