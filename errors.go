package goweft

import "fmt"

// TranslationError is the base error type for translation failures.
type TranslationError struct {
	Message string
	Cause   error
}

func (e *TranslationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// ProviderError indicates a machine-translation provider failure
// (API error, rate limit, etc.).
type ProviderError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the orchestrator may retry the operation
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("provider error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("provider error: %s", e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// MemoryError indicates a translation-memory store failure.
type MemoryError struct {
	Message string
	Cause   error
}

func (e *MemoryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("memory error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("memory error: %s", e.Message)
}

func (e *MemoryError) Unwrap() error {
	return e.Cause
}

// SegmentError indicates a segmentation setup failure, such as no
// segmenter being registered. Malformed markup is never an error: the
// segmenter degrades to zero extraction instead.
type SegmentError struct {
	Message string
	Cause   error
}

func (e *SegmentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("segment error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("segment error: %s", e.Message)
}

func (e *SegmentError) Unwrap() error {
	return e.Cause
}

// CountMismatchError indicates the provider returned a different number
// of translations than requested.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("translation count mismatch: expected %d, got %d", e.Expected, e.Got)
}
