// Package openai implements the [ai.Provider] interface for the OpenAI chat
// completions API. Any OpenAI-compatible endpoint can be targeted via
// OPENAI_API_BASE_URL or [OpenAIProvider.WithBaseURL].
package openai
