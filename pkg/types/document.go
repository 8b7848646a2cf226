// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Stage keys in generation mode.
const (
	StageAnalysis  = "analysis"
	StageStyle     = "style"
	StageSynthesis = "synthesis"
)

// Stage keys in analysis mode.
const (
	StageOne   = "stage1"
	StageTwo   = "stage2"
	StageThree = "stage3"
)

// StageDocument is one generated prompt document. Body is the prompt text the
// user copies into an LLM; Instruction is the one-line usage hint shown by the
// output formatter.
type StageDocument struct {
	Key         string
	Title       string
	Instruction string
	Body        string
}
