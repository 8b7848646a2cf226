// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

func generationSession(answers map[string]any) *types.Session {
	sess := types.NewSession(types.ModeGeneration)
	sess.Answers = answers
	sess.CurrentStep = types.StepComplete
	return sess
}

func analysisSession(answers map[string]any) *types.Session {
	sess := types.NewSession(types.ModeAnalysis)
	sess.Answers = answers
	sess.CurrentStep = types.StepComplete
	return sess
}

func TestReferenceSection(t *testing.T) {
	refs := []string{"https://a", "https://b", "https://c"}

	tests := []struct {
		name        string
		refs        []string
		pref        types.StylePreference
		contains    []string
		notContains []string
	}{
		{
			name:        "no references",
			refs:        nil,
			pref:        types.StylePreference{Kind: types.StyleNone},
			contains:    []string{"analyze any quickstart documentation I provide below"},
			notContains: []string{"1.", "PRIMARY STYLE", "blend"},
		},
		{
			name:        "single reference",
			refs:        []string{"https://a"},
			pref:        types.StylePreference{Kind: types.StyleNone},
			contains:    []string{"1. https://a"},
			notContains: []string{"PRIMARY STYLE", "blend", "combine"},
		},
		{
			name: "blend",
			refs: refs,
			pref: types.StylePreference{Kind: types.StyleBlend},
			contains: []string{
				"1. https://a\n2. https://b\n3. https://c",
				"combine the best elements from all these sources",
			},
			notContains: []string{"PRIMARY STYLE"},
		},
		{
			name: "primary second of three",
			refs: refs,
			pref: types.StylePreference{Kind: types.StylePrimary, Index: 2},
			contains: []string{
				"**primary focus** on emulating the style of: **https://b**",
				"2. https://b" + primaryAnnotation,
				"prioritize the primary style",
			},
			notContains: []string{
				"1. https://a" + primaryAnnotation,
				"3. https://c" + primaryAnnotation,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := referenceSection(tt.refs, tt.pref)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("section missing %q:\n%s", want, got)
				}
			}
			for _, avoid := range tt.notContains {
				if strings.Contains(got, avoid) {
					t.Errorf("section unexpectedly contains %q:\n%s", avoid, got)
				}
			}
		})
	}
}

func TestPrimaryAnnotationAppearsOnce(t *testing.T) {
	pref := types.StylePreference{Kind: types.StylePrimary, Index: 2}
	got := referenceSection([]string{"https://a", "https://b", "https://c"}, pref)
	if n := strings.Count(got, primaryAnnotation); n != 1 {
		t.Errorf("primary annotation appears %d times, want exactly 1", n)
	}
}

func TestComposeGeneration(t *testing.T) {
	sess := generationSession(map[string]any{
		types.KeySDKName:         "auth0-spa-js",
		types.KeySDKLanguage:     "JavaScript",
		types.KeySDKRepository:   "https://github.com/auth0/auth0-spa-js",
		types.KeyReferenceLinks:  []string{"https://a", "https://b"},
		types.KeyStylePreference: "2",
		types.KeyTargetFramework: "Svelte",
	})

	docs, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}

	wantKeys := []string{types.StageAnalysis, types.StageStyle, types.StageSynthesis}
	for i, doc := range docs {
		if doc.Key != wantKeys[i] {
			t.Errorf("document %d key = %q, want %q", i, doc.Key, wantKeys[i])
		}
		if doc.Title == "" || doc.Instruction == "" || doc.Body == "" {
			t.Errorf("document %q has empty fields", doc.Key)
		}
	}

	analysis := docs[0].Body
	for _, want := range []string{"auth0-spa-js", "JavaScript", "https://github.com/auth0/auth0-spa-js", "Svelte"} {
		if !strings.Contains(analysis, want) {
			t.Errorf("analysis document missing %q", want)
		}
	}

	style := docs[1].Body
	if !strings.Contains(style, "2. https://b"+primaryAnnotation) {
		t.Error("style document does not mark https://b as the primary reference")
	}
	if strings.Contains(style, "1. https://a"+primaryAnnotation) {
		t.Error("style document marks the wrong reference as primary")
	}

	synthesis := docs[2].Body
	for _, want := range []string{
		"auth0-spa-js",
		"JavaScript",
		"Svelte",
		"Paste the complete output from Stage 1",
		"Paste the complete style guide from Stage 2",
	} {
		if !strings.Contains(synthesis, want) {
			t.Errorf("synthesis document missing %q", want)
		}
	}
	if strings.Contains(synthesis, "https://a") || strings.Contains(synthesis, "https://b") {
		t.Error("synthesis document must not embed reference links")
	}
}

func TestComposeStandaloneTarget(t *testing.T) {
	sess := generationSession(map[string]any{
		types.KeySDKName:         "stripe-go",
		types.KeySDKLanguage:     "Go",
		types.KeyTargetFramework: "Standalone",
	})

	docs, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	synthesis := docs[2].Body
	if !strings.Contains(synthesis, "Standalone SDK usage (pure Go)") {
		t.Error("synthesis document missing the standalone framing")
	}
	if !strings.Contains(synthesis, "Go developers can follow") {
		t.Error("standalone target label should be the SDK language")
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	sess := generationSession(map[string]any{
		types.KeySDKName:         "auth0-spa-js",
		types.KeySDKLanguage:     "JavaScript",
		types.KeyReferenceLinks:  []string{"https://a", "https://b"},
		types.KeyStylePreference: "blend",
		types.KeyTargetFramework: "React",
	})

	first, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	second, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical sessions produced different documents")
	}
}

func TestComposeIncompleteSession(t *testing.T) {
	tests := []struct {
		name    string
		sess    *types.Session
		missing []string
	}{
		{
			name: "mid questionnaire",
			sess: func() *types.Session {
				s := types.NewSession(types.ModeGeneration)
				s.Answers[types.KeySDKName] = "auth0-spa-js"
				s.CurrentStep = types.KeySDKLanguage
				return s
			}(),
			missing: []string{types.KeySDKLanguage, types.KeyTargetFramework},
		},
		{
			name: "style preference required with two references",
			sess: generationSession(map[string]any{
				types.KeySDKName:         "auth0-spa-js",
				types.KeySDKLanguage:     "JavaScript",
				types.KeyReferenceLinks:  []string{"https://a", "https://b"},
				types.KeyTargetFramework: "React",
			}),
			missing: []string{types.KeyStylePreference},
		},
		{
			name:    "analysis missing document source",
			sess:    analysisSession(map[string]any{types.KeySDKName: "x", types.KeySDKLanguage: "Go"}),
			missing: []string{types.KeyDocumentSource},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := Compose(tt.sess)
			if docs != nil {
				t.Error("incomplete session produced documents")
			}
			var incErr *IncompleteSessionError
			if !errors.As(err, &incErr) {
				t.Fatalf("error type = %T, want *IncompleteSessionError", err)
			}
			if !reflect.DeepEqual(incErr.Missing, tt.missing) {
				t.Errorf("missing = %v, want %v", incErr.Missing, tt.missing)
			}
		})
	}
}

func TestComposeStaleStyleIndex(t *testing.T) {
	// A persisted primary index can fall outside the list if the references
	// were edited afterwards; composition must reject it, not pick silently.
	sess := generationSession(map[string]any{
		types.KeySDKName:         "auth0-spa-js",
		types.KeySDKLanguage:     "JavaScript",
		types.KeyReferenceLinks:  []string{"https://a", "https://b"},
		types.KeyStylePreference: "5",
		types.KeyTargetFramework: "React",
	})

	_, err := Compose(sess)
	var vErr *ValidationFailure
	if !errors.As(err, &vErr) {
		t.Fatalf("error type = %T, want *ValidationFailure", err)
	}
	if vErr.Step != types.KeyStylePreference {
		t.Errorf("failing step = %q, want %q", vErr.Step, types.KeyStylePreference)
	}
}

func TestComposeAnalysis(t *testing.T) {
	sess := analysisSession(map[string]any{
		types.KeyDocumentSource:       "https://docs.example.com/quickstart",
		types.KeySDKName:              "auth0-spa-js",
		types.KeySDKLanguage:          "JavaScript",
		types.KeyFocusAreas:           []string{"Code Example Quality"},
		types.KeyAdditionalReferences: []string{"https://good-a", "https://good-b"},
		types.KeyStylePreference:      "1",
	})

	docs, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if len(docs) != 3 {
		t.Fatalf("got %d documents, want 3", len(docs))
	}
	wantKeys := []string{types.StageOne, types.StageTwo, types.StageThree}
	for i, doc := range docs {
		if doc.Key != wantKeys[i] {
			t.Errorf("document %d key = %q, want %q", i, doc.Key, wantKeys[i])
		}
	}

	stage1 := docs[0].Body
	if !strings.Contains(stage1, "1. **Code Example Quality**") {
		t.Error("stage 1 rubric does not renumber the selected focus area from 1")
	}
	if strings.Contains(stage1, "Completeness & Accuracy") {
		t.Error("stage 1 rubric includes an unselected focus area")
	}

	stage2 := docs[1].Body
	if !strings.Contains(stage2, "1. https://good-a"+primaryAnnotation) {
		t.Error("stage 2 does not mark the primary reference")
	}

	stage3 := docs[2].Body
	if !strings.Contains(stage3, "https://docs.example.com/quickstart") {
		t.Error("stage 3 missing the document source")
	}
}

func TestStageOneDefaultsToFullRubric(t *testing.T) {
	sess := analysisSession(map[string]any{
		types.KeyDocumentSource: "https://docs.example.com/quickstart",
		types.KeySDKName:        "auth0-spa-js",
		types.KeySDKLanguage:    "JavaScript",
	})

	docs, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	stage1 := docs[0].Body
	for _, fa := range types.FocusAreaCatalog {
		if !strings.Contains(stage1, "**"+fa.Name+"**") {
			t.Errorf("full rubric missing %q", fa.Name)
		}
	}
}

func TestStageTwoWithoutReferences(t *testing.T) {
	sess := analysisSession(map[string]any{
		types.KeyDocumentSource: "https://docs.example.com/quickstart",
		types.KeySDKName:        "auth0-spa-js",
		types.KeySDKLanguage:    "JavaScript",
	})

	docs, err := Compose(sess)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	stage2 := docs[1].Body
	if strings.Contains(stage2, "## Reference Documentation Examples") {
		t.Error("stage 2 renders a reference section with no references")
	}
}

func TestRubricSectionNumbering(t *testing.T) {
	areas := []types.FocusArea{
		{Name: "First", Rubric: "first rubric"},
		{Name: "Second", Rubric: "second rubric"},
	}
	got := rubricSection(areas)
	want := "1. **First** - first rubric\n\n2. **Second** - second rubric"
	if got != want {
		t.Errorf("rubricSection = %q, want %q", got, want)
	}
}
