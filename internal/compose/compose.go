// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package compose turns a completed session into the ordered list of stage
// documents. Composition is a pure function of the finalized answers: no I/O,
// no side effects, identical output for identical input.
//
// The only non-trivial branching is how reference documents and the style
// preference shape the reference section; that rule lives in
// referenceSection so every branch stays enumerable and testable.
package compose

import (
	"fmt"
	"strings"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// IncompleteSessionError reports composition attempted before the
// questionnaire reached its terminal step. Missing names every required key
// that has no valid answer.
type IncompleteSessionError struct {
	Missing []string
}

func (e *IncompleteSessionError) Error() string {
	if len(e.Missing) == 0 {
		return "session is incomplete"
	}
	return fmt.Sprintf("session is incomplete: missing %s", strings.Join(e.Missing, ", "))
}

// Compose builds the stage documents for a completed session. Generation mode
// produces analysis/style/synthesis; analysis mode produces stage1/2/3.
func Compose(sess *types.Session) ([]types.StageDocument, error) {
	if missing := missingKeys(sess); len(missing) > 0 || !sess.Complete() {
		return nil, &IncompleteSessionError{Missing: missing}
	}

	if sess.Mode == types.ModeAnalysis {
		a := types.AnalysisAnswersFrom(sess)
		pref, err := types.ResolveStylePreference(a.StylePreference, a.AdditionalReferences)
		if err != nil {
			return nil, &ValidationFailure{Step: types.KeyStylePreference, Err: err}
		}
		return []types.StageDocument{
			buildStageOne(a),
			buildStageTwo(a, pref),
			buildStageThree(a),
		}, nil
	}

	g := types.GenerationAnswersFrom(sess)
	pref, err := types.ResolveStylePreference(g.StylePreference, g.ReferenceLinks)
	if err != nil {
		return nil, &ValidationFailure{Step: types.KeyStylePreference, Err: err}
	}
	return []types.StageDocument{
		buildAnalysis(g),
		buildStyle(g, pref),
		buildSynthesis(g),
	}, nil
}

// ValidationFailure reports a persisted answer that no longer validates, such
// as a primary style index outside the reference list.
type ValidationFailure struct {
	Step string
	Err  error
}

func (e *ValidationFailure) Error() string {
	return fmt.Sprintf("invalid answer for %s: %v", e.Step, e.Err)
}

func (e *ValidationFailure) Unwrap() error { return e.Err }

// missingKeys lists required keys without answers, in step order. The style
// preference is only required when more than one reference was given.
func missingKeys(sess *types.Session) []string {
	var required []string
	switch sess.Mode {
	case types.ModeAnalysis:
		required = []string{types.KeyDocumentSource, types.KeySDKName, types.KeySDKLanguage}
		if len(sess.ListAnswer(types.KeyAdditionalReferences)) > 1 {
			required = append(required, types.KeyStylePreference)
		}
	default:
		required = []string{types.KeySDKName, types.KeySDKLanguage}
		if len(sess.ListAnswer(types.KeyReferenceLinks)) > 1 {
			required = append(required, types.KeyStylePreference)
		}
		required = append(required, types.KeyTargetFramework)
	}

	var missing []string
	for _, key := range required {
		if strings.TrimSpace(sess.StringAnswer(key)) == "" {
			missing = append(missing, key)
		}
	}
	return missing
}

// primaryAnnotation marks the primary reference in the numbered list.
const primaryAnnotation = " ← **PRIMARY STYLE TO EMULATE**"

// referenceSection renders the reference block of a style-sensitive document.
// This is the composition rule in full:
//
//	0 refs            → no list; analyze documentation pasted below the prompt
//	1 ref             → single-reference instruction, no primary/blend language
//	≥2 refs, blend    → numbered list, combine the best elements of all
//	≥2 refs, primary  → numbered list, i-th entry annotated as primary
func referenceSection(refs []string, pref types.StylePreference) string {
	switch {
	case len(refs) == 0:
		return "*No reference links provided - please analyze any quickstart documentation I provide below this prompt.*"

	case len(refs) == 1:
		return "Please analyze this reference quickstart document:\n\n1. " + refs[0]

	case pref.Kind == types.StyleBlend:
		var b strings.Builder
		b.WriteString("Please analyze these reference quickstart documents and blend the best aspects of each:\n\n")
		writeNumberedList(&b, refs, 0)
		b.WriteString("\n**Style Instruction**: Extract and combine the best elements from all these sources to create a hybrid approach that leverages the strengths of each documentation style.")
		return b.String()

	default:
		var b strings.Builder
		fmt.Fprintf(&b, "Please analyze these reference quickstart documents, with **primary focus** on emulating the style of: **%s**\n\n", refs[pref.Index-1])
		b.WriteString("All reference documents:\n\n")
		writeNumberedList(&b, refs, pref.Index)
		b.WriteString("\n**Style Instruction**: Focus primarily on matching the writing style, tone, structure, and approach of the marked primary reference. Use other references for additional context but prioritize the primary style.")
		return b.String()
	}
}

// writeNumberedList writes refs as a 1-based numbered list, annotating the
// primary entry when primary > 0.
func writeNumberedList(b *strings.Builder, refs []string, primary int) {
	for i, ref := range refs {
		fmt.Fprintf(b, "%d. %s", i+1, ref)
		if i+1 == primary {
			b.WriteString(primaryAnnotation)
		}
		b.WriteString("\n")
	}
}
