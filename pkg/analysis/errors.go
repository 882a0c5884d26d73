package analysis

import (
	"fmt"

	"github.com/pkg/errors"
)

// EmptyDocumentError is returned when the text to analyze is empty or whitespace
type EmptyDocumentError struct{}

func (e *EmptyDocumentError) Error() string {
	return "document is empty or could not be read"
}

// ErrEmptyDocument is the shared EmptyDocumentError value
var ErrEmptyDocument error = &EmptyDocumentError{}

// AnalysisFailedError wraps the failure of a required stage
type AnalysisFailedError struct {
	Stage string
	Err   error
}

func (e *AnalysisFailedError) Error() string {
	return fmt.Sprintf("analysis failed in stage %s: %v", e.Stage, e.Err)
}

func (e *AnalysisFailedError) Unwrap() error {
	return e.Err
}

// Cause lets pkg/errors.Cause walk through the wrapper
func (e *AnalysisFailedError) Cause() error {
	return e.Err
}

// IsEmptyDocument reports whether err is, or wraps, an EmptyDocumentError
func IsEmptyDocument(err error) bool {
	var target *EmptyDocumentError
	return errors.As(err, &target)
}

// IsAnalysisFailed reports whether err is, or wraps, an AnalysisFailedError
func IsAnalysisFailed(err error) bool {
	var target *AnalysisFailedError
	return errors.As(err, &target)
}
