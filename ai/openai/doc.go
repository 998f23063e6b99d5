// Package openai implements ai.AnswerService against any OpenAI-compatible
// chat completion API (OpenAI, Ollama, LocalAI, vLLM, DeepSeek, etc).
package openai
