package table

import "fmt"

// InvalidDatasetError reports a dataset that failed validation before any
// drawing work began.
type InvalidDatasetError struct {
	Reason string
}

func (e *InvalidDatasetError) Error() string {
	return fmt.Sprintf("invalid dataset: %s", e.Reason)
}

// MissingResourceError reports a chrome resource (the logo image) that does
// not exist on disk.
type MissingResourceError struct {
	Path string
	Err  error
}

func (e *MissingResourceError) Error() string {
	return fmt.Sprintf("missing resource %q: %v", e.Path, e.Err)
}

func (e *MissingResourceError) Unwrap() error { return e.Err }

// ChromeRenderError reports a failure drawing one of the per-page chrome
// elements, named by element ("header" or "footer").
type ChromeRenderError struct {
	Element string
	Err     error
}

func (e *ChromeRenderError) Error() string {
	return fmt.Sprintf("failed to draw page %s: %v", e.Element, e.Err)
}

func (e *ChromeRenderError) Unwrap() error { return e.Err }

// DocumentBuildError wraps a failure during final document assembly.
type DocumentBuildError struct {
	Err error
}

func (e *DocumentBuildError) Error() string {
	return fmt.Sprintf("failed to build table document: %v", e.Err)
}

func (e *DocumentBuildError) Unwrap() error { return e.Err }
