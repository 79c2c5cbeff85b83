package domain

import "context"

// HarmCategory names a content-safety category of the LLM vendor.
type HarmCategory string

const (
	HarmCategory_Harassment       HarmCategory = "HARM_CATEGORY_HARASSMENT"
	HarmCategory_HateSpeech       HarmCategory = "HARM_CATEGORY_HATE_SPEECH"
	HarmCategory_SexuallyExplicit HarmCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	HarmCategory_DangerousContent HarmCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// SafetyThreshold is the blocking threshold applied to a HarmCategory.
type SafetyThreshold string

const (
	SafetyThreshold_BlockNone SafetyThreshold = "BLOCK_NONE"
)

// SafetySetting pairs a harm category with its threshold.
type SafetySetting struct {
	Category  HarmCategory
	Threshold SafetyThreshold
}

// CompletionOptions tunes a single completion request.
// Zero values leave the vendor defaults in place.
type CompletionOptions struct {
	Temperature *float64
	TopP        *float64
	TopK        *int
	MaxTokens   *int
	Safety      []SafetySetting
}

// PermissiveSafetySettings disables vendor-side blocking for every known category.
func PermissiveSafetySettings() []SafetySetting {
	return []SafetySetting{
		{Category: HarmCategory_Harassment, Threshold: SafetyThreshold_BlockNone},
		{Category: HarmCategory_HateSpeech, Threshold: SafetyThreshold_BlockNone},
		{Category: HarmCategory_SexuallyExplicit, Threshold: SafetyThreshold_BlockNone},
		{Category: HarmCategory_DangerousContent, Threshold: SafetyThreshold_BlockNone},
	}
}

// LLMCompleter is the opaque text-completion capability of the language model.
type LLMCompleter interface {
	// Complete sends a single prompt and returns the generated text.
	Complete(ctx context.Context, prompt string, opts CompletionOptions) (string, error)
}
