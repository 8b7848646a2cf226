// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// stageOneTmpl is the analysis-mode Stage 1 prompt: a rubric evaluation of an
// existing quickstart, restricted to the selected focus areas.
var stageOneTmpl = template.Must(template.New(types.StageOne).Parse(`# Existing Quickstart Documentation Analysis

I need your help analyzing an existing quickstart documentation to identify its strengths, weaknesses, and areas for improvement.

## Documentation to Analyze
**Source**: {{.DocumentSource}}

If you cannot directly access this source, please ask me to paste the complete documentation content (including all code examples, setup instructions, and text) and then analyze it.

## SDK Context
- **Name**: {{.SDKName}}
- **Language**: {{.SDKLanguage}}

## Evaluation Request

You are an expert developer-advocate and technical writer. Evaluate this quickstart documentation using the structured rubric below, comparing it against widely accepted quickstart best practices.

### Evaluation Rubric
For each criterion below, assign a score from **0** (missing/very poor) to **5** (exemplary) and justify the score with concrete observations from the document:

{{.RubricSection}}

### Output Format
1. Produce a structured list showing each criterion, its 0-5 score and a short justification.
2. Calculate and report the overall average score.
3. Provide a concise summary of the quickstart's key strengths and weaknesses.
4. List at least five specific, prioritized recommendations for improvement based on the lowest-scoring areas.`))

// stageTwoTmpl is the analysis-mode Stage 2 prompt: gap analysis against the
// additional reference documents, when any were given.
var stageTwoTmpl = template.Must(template.New(types.StageTwo).Parse(`# Quickstart Documentation Gap Analysis

Based on the analysis of the existing {{.SDKName}} documentation, I need you to identify gaps compared to industry best practices and high-quality reference documentation.

## Current Documentation Analysis
*[Paste the output from Stage 1: Documentation Analysis here]*
{{- if .ReferenceSection}}

## Reference Documentation Examples
{{.ReferenceSection}}
{{- end}}

## Gap Analysis Request

Compare the current documentation against industry best practices and identify:

### 1. Content Gaps
- **Missing Prerequisites**: What assumptions are made about developer knowledge?
- **Setup Gaps**: Are environment setup steps complete?
- **Use Case Coverage**: What common scenarios are not addressed?

### 2. Structural Gaps
- **Getting Started**: Is there a clear "Hello World" example?
- **Progressive Complexity**: Does complexity increase appropriately?
- **Troubleshooting**: Is there a debugging/FAQ section?

### 3. Developer Experience Gaps
- **Copy-Paste Ready**: Are examples immediately runnable?
- **Error Prevention**: Are common pitfalls highlighted?
- **Success Validation**: How do users know it's working?

### 4. Modern Standards Gaps
- **Authentication**: Are security best practices covered?
- **Error Handling**: Is robust error handling demonstrated?
- **Production Readiness**: Is deployment guidance included?

For each gap identified, please:
- Explain why it matters for developer success
- Rate the priority (High/Medium/Low)
- Suggest specific content that should be added

Focus especially on gaps that would prevent developers from successfully implementing {{.SDKName}} in their {{.SDKLanguage}} projects.`))

// stageThreeTmpl is the analysis-mode Stage 3 prompt: the prioritized
// remediation plan built on the first two stages' outputs.
var stageThreeTmpl = template.Must(template.New(types.StageThree).Parse(`# Quickstart Documentation Improvement Recommendations

Based on the documentation analysis and gap analysis, provide specific, actionable recommendations to improve the {{.SDKName}} quickstart documentation at {{.DocumentSource}}.

## Previous Analysis Results

### Current State Analysis
*[Paste the Stage 1 documentation analysis results here]*

### Gap Analysis Results
*[Paste the Stage 2 gap analysis results here]*

## Improvement Synthesis Request

Generate a comprehensive improvement plan with specific recommendations:

### 1. High-Priority Fixes
Identify the top 3-5 issues that should be addressed first:
- **Issue**: [Specific problem]
- **Impact**: [Why this matters for developers]
- **Solution**: [Detailed fix with examples]
- **Effort**: [Estimated work required]

### 2. Content Improvements
For each section that needs work:
- **Current Problem**: [What's wrong now]
- **Recommended Change**: [Specific improvement]
- **New Content**: [Actual text/code to add or replace, in {{.SDKLanguage}}]

### 3. New Sections to Add
For missing content areas:
- **Section Title**: [Proposed heading]
- **Purpose**: [What problem this solves]
- **Content Outline**: [Key points to cover]

### 4. Implementation Roadmap
Prioritize improvements by impact and effort:

**Phase 1 (Quick Wins - 1-2 weeks)**
**Phase 2 (Major Content - 2-4 weeks)**
**Phase 3 (Advanced Features - 1-2 months)**

Provide specific, actionable recommendations that the documentation team can implement immediately. Include actual content suggestions, not just abstract advice.`))

// analysisData is the typed input shared by the analysis-mode templates.
type analysisData struct {
	SDKName          string
	SDKLanguage      string
	DocumentSource   string
	RubricSection    string
	ReferenceSection string
}

func buildStageOne(a types.AnalysisAnswers) types.StageDocument {
	areas := a.FocusAreas
	if len(areas) == 0 {
		areas = types.FocusAreaCatalog
	}
	return types.StageDocument{
		Key:         types.StageOne,
		Title:       "Stage 1: Documentation Analysis",
		Instruction: "Copy this prompt + your existing documentation to analyze current state.",
		Body: render(stageOneTmpl, analysisData{
			SDKName:        a.SDKName,
			SDKLanguage:    a.SDKLanguage,
			DocumentSource: a.DocumentSource,
			RubricSection:  rubricSection(areas),
		}),
	}
}

func buildStageTwo(a types.AnalysisAnswers, pref types.StylePreference) types.StageDocument {
	refSection := ""
	if len(a.AdditionalReferences) > 0 {
		refSection = referenceSection(a.AdditionalReferences, pref)
	}
	return types.StageDocument{
		Key:         types.StageTwo,
		Title:       "Stage 2: Gap Analysis",
		Instruction: "Copy this prompt + output from stage 1 to identify improvement opportunities.",
		Body: render(stageTwoTmpl, analysisData{
			SDKName:          a.SDKName,
			SDKLanguage:      a.SDKLanguage,
			DocumentSource:   a.DocumentSource,
			ReferenceSection: refSection,
		}),
	}
}

func buildStageThree(a types.AnalysisAnswers) types.StageDocument {
	return types.StageDocument{
		Key:         types.StageThree,
		Title:       "Stage 3: Improvement Recommendations",
		Instruction: "Copy this prompt + outputs from stages 1 & 2 to get specific improvement suggestions.",
		Body: render(stageThreeTmpl, analysisData{
			SDKName:        a.SDKName,
			SDKLanguage:    a.SDKLanguage,
			DocumentSource: a.DocumentSource,
		}),
	}
}

// rubricSection renders the numbered rubric for the selected focus areas.
// Numbering restarts from 1 over the selection; order follows the catalog.
func rubricSection(areas []types.FocusArea) string {
	var b strings.Builder
	for i, fa := range areas {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. **%s** - %s", i+1, fa.Name, fa.Rubric)
	}
	return b.String()
}
