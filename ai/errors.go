package ai

import "errors"

var (
	// ErrEmptyResponse indicates the model returned no usable content.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrAnswerTooLong indicates the optimized reply exceeded the
	// configured length cap relative to the original reply.
	ErrAnswerTooLong = errors.New("optimized answer exceeds length limit")
)
