// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package flow

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

func stepByKey(t *testing.T, mode types.Mode, key string) Step {
	t.Helper()
	for _, s := range Steps(mode) {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("no step %q in %s mode", key, mode)
	return Step{}
}

func TestRequiredTextValidator(t *testing.T) {
	step := stepByKey(t, types.ModeGeneration, types.KeySDKName)

	if _, err := step.Validate("   ", nil); err == nil {
		t.Error("expected error for blank required input")
	}

	got, err := step.Validate("  auth0-spa-js  ", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "auth0-spa-js" {
		t.Errorf("Validate = %q, want trimmed %q", got, "auth0-spa-js")
	}
}

func TestStylePreferenceValidator(t *testing.T) {
	answers := Answers{types.KeyReferenceLinks: []string{"https://a", "https://b", "https://c"}}
	step := stepByKey(t, types.ModeGeneration, types.KeyStylePreference)

	tests := []struct {
		name    string
		raw     string
		want    any
		wantErr bool
	}{
		{name: "index in range", raw: "2", want: "2"},
		{name: "index trimmed", raw: " 3 ", want: "3"},
		{name: "blend lowercase", raw: "blend", want: "blend"},
		{name: "blend mixed case", raw: "BlEnD", want: "blend"},
		{name: "index zero", raw: "0", wantErr: true},
		{name: "index too large", raw: "4", wantErr: true},
		{name: "junk", raw: "primary", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := step.Validate(tt.raw, answers)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Fatalf("error type = %T, want *ValidationError", err)
				}
				if vErr.Step != types.KeyStylePreference {
					t.Errorf("error step = %q, want %q", vErr.Step, types.KeyStylePreference)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestStylePreferenceVisibility(t *testing.T) {
	step := stepByKey(t, types.ModeGeneration, types.KeyStylePreference)

	tests := []struct {
		name string
		refs []string
		want bool
	}{
		{"no references", nil, false},
		{"one reference", []string{"https://a"}, false},
		{"two references", []string{"https://a", "https://b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := Answers{}
			if tt.refs != nil {
				answers[types.KeyReferenceLinks] = tt.refs
			}
			if got := step.Visible(answers); got != tt.want {
				t.Errorf("Visible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFocusAreasValidator(t *testing.T) {
	step := stepByKey(t, types.ModeAnalysis, types.KeyFocusAreas)
	allNames := make([]string, len(types.FocusAreaCatalog))
	for i, fa := range types.FocusAreaCatalog {
		allNames[i] = fa.Name
	}

	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "empty selects all", raw: "", want: allNames},
		{name: "all keyword", raw: "all", want: allNames},
		{name: "all uppercase", raw: "ALL", want: allNames},
		{
			name: "subset in order",
			raw:  "1,3",
			want: []string{"Writing Style & Tone", "Code Example Quality"},
		},
		{
			name: "input order does not matter",
			raw:  "3, 1",
			want: []string{"Writing Style & Tone", "Code Example Quality"},
		},
		{
			name: "duplicates collapse",
			raw:  "2,2,2",
			want: []string{"Content Structure & Flow"},
		},
		{name: "zero index", raw: "0", wantErr: true},
		{name: "index past catalog", raw: "11", wantErr: true},
		{name: "non-numeric", raw: "style", wantErr: true},
		{name: "only commas", raw: ",,,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := step.Validate(tt.raw, nil)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Validate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestTrimmedListValidator(t *testing.T) {
	step := stepByKey(t, types.ModeGeneration, types.KeyReferenceLinks)

	got, err := step.ValidateList([]string{" https://a ", "", "https://b", "   "}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"https://a", "https://b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValidateList = %v, want %v", got, want)
	}
}

func TestStepOrder(t *testing.T) {
	var genKeys []string
	for _, s := range Steps(types.ModeGeneration) {
		genKeys = append(genKeys, s.Key)
	}
	wantGen := []string{
		types.KeySDKName, types.KeySDKLanguage, types.KeySDKRepository,
		types.KeyReferenceLinks, types.KeyStylePreference, types.KeyTargetFramework,
	}
	if !reflect.DeepEqual(genKeys, wantGen) {
		t.Errorf("generation step order = %v, want %v", genKeys, wantGen)
	}

	var anaKeys []string
	for _, s := range Steps(types.ModeAnalysis) {
		anaKeys = append(anaKeys, s.Key)
	}
	wantAna := []string{
		types.KeyDocumentSource, types.KeySDKName, types.KeySDKLanguage,
		types.KeyFocusAreas, types.KeyAdditionalReferences, types.KeyStylePreference,
	}
	if !reflect.DeepEqual(anaKeys, wantAna) {
		t.Errorf("analysis step order = %v, want %v", anaKeys, wantAna)
	}
}

func TestValidationErrorNamesStep(t *testing.T) {
	err := &ValidationError{Step: types.KeySDKName, Reason: "the SDK name is required"}
	if !strings.Contains(err.Error(), types.KeySDKName) {
		t.Errorf("error %q does not name the step", err.Error())
	}
}
