// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package compose

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/kishore7snehil/quickstart-prompt-generator/pkg/types"
)

// analysisTmpl is the Stage 1 prompt: a deep analysis of the SDK itself.
var analysisTmpl = template.Must(template.New(types.StageAnalysis).Parse(`# SDK Deep Analysis Request

I'm working on creating quickstart documentation for developers and need your help analyzing an SDK/library to understand its core capabilities, structure, and developer workflow.

## SDK Information
- **Name**: {{.SDKName}}
- **Language**: {{.SDKLanguage}}
{{- if .SDKRepository}}
- **Repository/Documentation**: {{.SDKRepository}}
{{- end}}

## Analysis Request

Please provide a comprehensive analysis of this SDK covering the following areas:

### 1. Core Purpose & Value Proposition
- What is the primary purpose of this SDK?
- What specific problems does it solve for developers?

### 2. Architecture & Core Components
- What are the main modules, classes, or components?
- What is the typical developer workflow when using this SDK?

### 3. Key Features & Capabilities
- List the most important features developers use
- What are the main use cases this SDK supports?

### 4. Authentication & Configuration
- How do developers authenticate or configure the SDK?
- What credentials, API keys, or setup steps are typically required?

### 5. Common Integration Patterns
{{- if .Standalone}}
- What are the core standalone usage patterns for {{.SDKLanguage}}?
- How do developers typically structure projects using this SDK directly?
{{- else}}
- Are there framework-specific considerations for {{.TargetFramework}}?
- How does this SDK work within {{.TargetFramework}} applications?
{{- end}}

### 6. Error Handling & Best Practices
- What are common error scenarios developers encounter?
- Are there performance or security considerations?

### 7. Prerequisites & Development Environment
- What system-level prerequisites are required (runtime, SDK, package manager)?
- What are the exact version requirements for critical dependencies?
- Are there common environment setup issues that block developers?

### 8. Current vs Deprecated Approaches
- What are the current, recommended installation and setup methods?
- Are there deprecated commands, patterns, or approaches to avoid?
- How does this SDK work with modern {{.SDKLanguage}} tooling and conventions?

### 9. External Service & Configuration Requirements
- Does this SDK require external service setup (APIs, dashboards, accounts)?
- What configuration values need to be obtained and from where?
- What are the most common configuration errors and how to prevent them?

## Output Format
Structure your analysis clearly with headers and bullet points. Focus on information that would be valuable for creating developer quickstart documentation. Be comprehensive but practical - emphasize what developers need to know to get started successfully.

---
**Next Steps**: After you provide this analysis, I'll use it along with reference documentation styles to generate a targeted quickstart guide for {{.TargetLabel}}.`))

// styleTmpl is the Stage 2 prompt: extracting writing style from references.
// ReferenceSection is pre-rendered by referenceSection.
var styleTmpl = template.Must(template.New(types.StageStyle).Parse(`# Reference Documentation Style Analysis

I need to analyze existing quickstart documentation to extract the writing style, structure, and approach that works well for developers. This will help me maintain consistency when creating new quickstart documentation.

## Task Overview
Please analyze the following reference quickstart documentation and extract:
1. **Writing Style & Tone**
2. **Content Structure & Flow**
3. **Code Example Patterns**
4. **Developer Guidance Approach**

## Reference Documentation
{{.ReferenceSection}}

## Analysis Framework

### 1. Writing Style & Tone Analysis
- **Voice & Perspective**: Is it written in first person, second person, or instructional tone?
- **Technical Level**: How technical vs. beginner-friendly is the language?
- **Assumptions**: What level of prior knowledge does it assume from developers?

### 2. Content Structure & Organization
- **Opening Approach**: How does the documentation begin? (overview, prerequisites, direct setup?)
- **Section Flow**: What is the typical progression of topics?
- **Length & Depth**: How comprehensive vs. concise is the content?

### 3. Code Example Patterns
- **Code Style**: How are code examples formatted and presented?
- **Example Complexity**: Are examples minimal/focused or comprehensive/realistic?
- **Code Comments**: How much explanation is provided within code?

### 4. Developer Guidance & UX
- **Setup Instructions**: How detailed are installation and setup steps?
- **Troubleshooting**: How does it handle potential issues or errors?
- **Next Steps**: How does it guide developers beyond the basic example?

### 5. Visual & Formatting Elements
- **Headers & Sections**: What heading hierarchy and section structure is used?
- **Callouts & Highlights**: Are there special formatting elements (tips, warnings, notes)?

### 6. Prerequisites & Environment Setup Coverage
- How thoroughly does the documentation cover system requirements and prerequisites?
- How are version requirements and compatibility issues communicated?

### 7. Configuration & External Service Setup Patterns
- How does the documentation guide users through external service setup?
- How are configuration values and authentication setup explained?

### 8. Error Prevention & Troubleshooting Approach
- How comprehensively does the documentation address potential issues?
- How does the documentation help developers verify successful setup?

## Output Format
Provide a detailed style guide based on your analysis, formatted as:

` + "```markdown" + `
# Style Guide Extract

## Writing Style
[Key characteristics of the writing approach]

## Structure Pattern
[Typical content flow and organization]

## Code Example Style
[How code is presented and explained]

## Developer Experience Focus
[How the documentation guides and supports developers]

## Formatting Conventions
[Visual and structural elements used]
` + "```" + `

## Context for Application
{{- if .Standalone}}
This style analysis will be used to create standalone quickstart documentation for {{.SDKName}} ({{.SDKLanguage}}) for pure SDK usage. The goal is to maintain consistency with established patterns while creating effective developer onboarding experiences for direct SDK integration.
{{- else}}
This style analysis will be used to create quickstart documentation for {{.SDKName}} ({{.SDKLanguage}}) targeting {{.TargetFramework}} developers. The goal is to maintain consistency with established patterns while creating effective developer onboarding experiences.
{{- end}}

---
**Next Steps**: I'll combine this style analysis with SDK technical details to generate a quickstart guide that matches the established documentation patterns.`))

// synthesisTmpl is the Stage 3 prompt. It instructs the user to paste the
// outputs of stages 1 and 2; those outputs come from an external LLM run and
// are never embedded here.
var synthesisTmpl = template.Must(template.New(types.StageSynthesis).Parse(`# Quickstart Documentation Generation Request

{{- if .Standalone}}
I need you to create comprehensive quickstart documentation that combines technical SDK analysis with established documentation style patterns. This will help developers quickly get started with {{.SDKName}} for direct, standalone usage.

## Context & Goals
- **SDK**: {{.SDKName}} ({{.SDKLanguage}})
- **Target**: Standalone SDK usage (pure {{.SDKLanguage}})
- **Goal**: Create developer-friendly quickstart documentation for direct SDK integration
{{- else}}
I need you to create comprehensive quickstart documentation that combines technical SDK analysis with established documentation style patterns. This will help {{.TargetFramework}} developers quickly get started with {{.SDKName}}.

## Context & Goals
- **SDK**: {{.SDKName}} ({{.SDKLanguage}})
- **Target Framework**: {{.TargetFramework}}
- **Goal**: Create developer-friendly quickstart documentation that follows proven patterns
{{- end}}

## Inputs to Synthesize

### 1. SDK Technical Analysis
*[Paste the complete output from Stage 1: SDK Deep Analysis here]*

### 2. Reference Style Guide
*[Paste the complete style guide from Stage 2: Reference Style Extraction here]*

## Generation Requirements

### Content Requirements
1. **Follow the extracted style patterns** - match the tone, structure, and approach from the reference analysis
2. **Complete Workflow** - cover setup through first successful implementation
3. **Practical Examples** - provide working code that developers can copy and run
4. **Clear Prerequisites** - specify what developers need before starting

### Technical Requirements
1. **Accurate Integration** - ensure all code examples work with {{.TargetLabel}}
2. **Best Practices** - incorporate SDK best practices and security considerations
3. **Error Prevention** - address common pitfalls and setup issues

### Documentation Structure
**IMPORTANT: Follow the exact structure and organization patterns identified in the Style Extraction analysis above.** Do NOT use a generic structure - adapt to the specific patterns found in the reference documentation.

## Quality Criteria
The final quickstart should:
{{- if .Standalone}}
- Allow a {{.SDKLanguage}} developer to go from zero to a working SDK implementation
{{- else}}
- Allow a {{.TargetFramework}} developer to go from zero to a working implementation
{{- end}}
- Match the style and approach of the reference documentation
- Include all necessary setup and configuration steps
- Provide working, copy-paste code examples
- Maintain consistency with {{.SDKName}} best practices

## Critical Quality Assurance Requirements

### Prerequisites & Environment Setup (MANDATORY)
- **Complete prerequisites listed** - all system requirements, runtimes, tools, and versions specified
- **Package/dependency management** - correct installation methods for the target ecosystem

### Language & Framework Compatibility (MANDATORY)
- **Language conventions followed** - code follows established patterns and idioms for {{.SDKLanguage}}
{{- if .Standalone}}
- **Standalone integration verified** - examples work with standard {{.SDKLanguage}} project structure
{{- else}}
- **Framework integration verified** - examples work with current {{.TargetFramework}} patterns and structure
{{- end}}
- **Import/dependency statements complete** - all necessary imports or includes provided

### Current Practices & Command Accuracy (MANDATORY)
- **Current commands used** - no deprecated installation, build, or setup commands
- **Ecosystem best practices** - follows current recommended approaches for the technology stack

### Configuration & External Service Setup (MANDATORY)
- **External service configuration complete** - step-by-step setup for any required external services
- **Configuration examples provided** - sample values showing expected format and structure

**QUALITY GATE**: The quickstart should be rejected if it fails any MANDATORY requirement above.

---
**Final Goal**: Create quickstart documentation that {{.TargetLabel}} developers can follow to successfully integrate {{.SDKName}} in under 30 minutes, following established documentation patterns for optimal developer experience.`))

// generationData is the typed input shared by the generation-mode templates.
type generationData struct {
	SDKName          string
	SDKLanguage      string
	SDKRepository    string
	TargetFramework  string
	TargetLabel      string
	Standalone       bool
	ReferenceSection string
}

func newGenerationData(g types.GenerationAnswers) generationData {
	label := g.TargetFramework
	if g.Standalone {
		label = g.SDKLanguage
	}
	return generationData{
		SDKName:         g.SDKName,
		SDKLanguage:     g.SDKLanguage,
		SDKRepository:   g.SDKRepository,
		TargetFramework: g.TargetFramework,
		TargetLabel:     label,
		Standalone:      g.Standalone,
	}
}

func buildAnalysis(g types.GenerationAnswers) types.StageDocument {
	return types.StageDocument{
		Key:         types.StageAnalysis,
		Title:       "Stage 1: SDK Deep Analysis",
		Instruction: "Copy this prompt to your LLM to analyze the SDK capabilities and structure.",
		Body:        render(analysisTmpl, newGenerationData(g)),
	}
}

func buildStyle(g types.GenerationAnswers, pref types.StylePreference) types.StageDocument {
	data := newGenerationData(g)
	data.ReferenceSection = referenceSection(g.ReferenceLinks, pref)
	return types.StageDocument{
		Key:         types.StageStyle,
		Title:       "Stage 2: Reference Style Extraction",
		Instruction: "Copy this prompt + your reference documents to extract writing style and structure.",
		Body:        render(styleTmpl, data),
	}
}

func buildSynthesis(g types.GenerationAnswers) types.StageDocument {
	return types.StageDocument{
		Key:         types.StageSynthesis,
		Title:       "Stage 3: Quickstart Synthesis",
		Instruction: "Copy this prompt + outputs from stages 1 & 2 to generate your final quickstart.",
		Body:        render(synthesisTmpl, newGenerationData(g)),
	}
}

// render executes a template with its typed data. The templates are static
// and the data is plain strings, so execution cannot fail at runtime; a panic
// here means a template bug caught by the tests.
func render(t *template.Template, data any) string {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("rendering %s template: %v", t.Name(), err))
	}
	return buf.String()
}
