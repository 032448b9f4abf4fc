package common

import (
	"errors"
	"fmt"
)

// Error taxonomy. None of these is fatal to the process.
var (
	ErrValidation       = errors.New("input failed validation")
	ErrCapacityExceeded = errors.New("payload exceeds symbol capacity")
	ErrRenderFailure    = errors.New("render failed")
	ErrExportFailure    = errors.New("export failed")
	ErrUnknownPreset    = errors.New("unknown preset")
	ErrUnknownShape     = errors.New("unknown shape")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrNoImage          = errors.New("no generated image")
	ErrNotReady         = errors.New("services not initialized")
)

// RenderError wraps a failed render attempt
type RenderError struct {
	Operation string
	Err       error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s failed: %v", e.Operation, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new render error
func NewRenderError(operation string, err error) *RenderError {
	return &RenderError{
		Operation: operation,
		Err:       err,
	}
}

// ExportError represents export-specific errors
type ExportError struct {
	Operation string
	FilePath  string
	Err       error
}

func (e *ExportError) Error() string {
	if e.FilePath != "" {
		return fmt.Sprintf("export %s failed for file %s: %v", e.Operation, e.FilePath, e.Err)
	}
	return fmt.Sprintf("export %s failed: %v", e.Operation, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// Is lets callers match any export error against ErrExportFailure.
func (e *ExportError) Is(target error) bool {
	return target == ErrExportFailure
}

// NewExportError creates a new export error
func NewExportError(operation, filePath string, err error) *ExportError {
	return &ExportError{
		Operation: operation,
		FilePath:  filePath,
		Err:       err,
	}
}
