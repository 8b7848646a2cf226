// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// Step keys shared between the flow and composition layers. These double as
// the keys of the persisted answers map.
const (
	KeySDKName         = "sdk_name"
	KeySDKLanguage     = "sdk_language"
	KeySDKRepository   = "sdk_repository"
	KeyReferenceLinks  = "reference_links"
	KeyStylePreference = "style_preference"
	KeyTargetFramework = "target_framework"

	KeyDocumentSource       = "document_source"
	KeyFocusAreas           = "focus_areas"
	KeyAdditionalReferences = "additional_references"
)

// TargetStandalone is the target_framework value meaning pure SDK usage with
// no framework integration. Matched case-insensitively.
const TargetStandalone = "standalone"

// GenerationAnswers is the typed view of a generation-mode answers map.
type GenerationAnswers struct {
	SDKName         string
	SDKLanguage     string
	SDKRepository   string
	ReferenceLinks  []string
	StylePreference string
	TargetFramework string

	// Standalone is true when the target framework is the standalone keyword.
	Standalone bool
}

// GenerationAnswersFrom decodes the generic answers map into the typed view.
func GenerationAnswersFrom(s *Session) GenerationAnswers {
	target := s.StringAnswer(KeyTargetFramework)
	return GenerationAnswers{
		SDKName:         s.StringAnswer(KeySDKName),
		SDKLanguage:     s.StringAnswer(KeySDKLanguage),
		SDKRepository:   s.StringAnswer(KeySDKRepository),
		ReferenceLinks:  s.ListAnswer(KeyReferenceLinks),
		StylePreference: s.StringAnswer(KeyStylePreference),
		TargetFramework: target,
		Standalone:      strings.EqualFold(target, TargetStandalone),
	}
}

// AnalysisAnswers is the typed view of an analysis-mode answers map.
type AnalysisAnswers struct {
	DocumentSource       string
	SDKName              string
	SDKLanguage          string
	FocusAreas           []FocusArea
	AdditionalReferences []string
	StylePreference      string
}

// AnalysisAnswersFrom decodes the generic answers map into the typed view.
// Focus areas are persisted by name; unknown names are dropped and the result
// always follows catalog order.
func AnalysisAnswersFrom(s *Session) AnalysisAnswers {
	return AnalysisAnswers{
		DocumentSource:       s.StringAnswer(KeyDocumentSource),
		SDKName:              s.StringAnswer(KeySDKName),
		SDKLanguage:          s.StringAnswer(KeySDKLanguage),
		FocusAreas:           FocusAreasByName(s.ListAnswer(KeyFocusAreas)),
		AdditionalReferences: s.ListAnswer(KeyAdditionalReferences),
		StylePreference:      s.StringAnswer(KeyStylePreference),
	}
}

// FocusArea is one improvement category of the analysis rubric.
type FocusArea struct {
	Name   string
	Rubric string
}

// FocusAreaCatalog is the fixed, ordered list of improvement categories. The
// order defines both the selection numbering shown to the user and the order
// of rubric sections in the stage-1 document.
var FocusAreaCatalog = []FocusArea{
	{"Writing Style & Tone", "Clarity, use of active/second-person voice, personality and assumed prior knowledge. Judge against industry best practices (concise, instructive, friendly tone)."},
	{"Content Structure & Flow", "Presence and logical sequence of introduction, prerequisites, setup, installation, implementation, testing and next steps."},
	{"Code Example Quality", "Correctness, completeness, use of modern syntax, in-code comments and clear context."},
	{"Developer Guidance & UX", "Detail and clarity of installation/setup instructions, troubleshooting guidance, and helpful next steps."},
	{"Visual & Formatting Elements", "Use of headings, call-outs, lists and other formatting to aid comprehension."},
	{"Prerequisites & Environment Setup", "Coverage of required tools, accounts and environment configuration, including version requirements."},
	{"Configuration & External Service Setup", "Completeness and clarity of API key, dashboard and configuration instructions."},
	{"Technology Currency & Practices", "Use of current commands, avoidance of deprecated patterns, alignment with modern tooling and framework conventions."},
	{"Error Prevention & Troubleshooting", "Anticipation of common issues, organization of troubleshooting steps and inclusion of validation checkpoints."},
	{"Completeness & Accuracy", "Whether the quickstart allows a developer to go from zero to a working implementation, including all required steps and accurate integration."},
}

// FocusAreasByName maps persisted names back onto catalog entries, preserving
// catalog order regardless of input order.
func FocusAreasByName(names []string) []FocusArea {
	selected := make(map[string]bool, len(names))
	for _, n := range names {
		selected[n] = true
	}
	var out []FocusArea
	for _, fa := range FocusAreaCatalog {
		if selected[fa.Name] {
			out = append(out, fa)
		}
	}
	return out
}
