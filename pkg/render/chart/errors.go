package chart

import "fmt"

// ChartBuildError reports a failure building the grouped bar chart artifact.
type ChartBuildError struct {
	Reason string
	Err    error
}

func (e *ChartBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to build cycle times chart: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to build cycle times chart: %s", e.Reason)
}

func (e *ChartBuildError) Unwrap() error { return e.Err }

// PivotError reports peer data that could not be pivoted into the fixed
// twelve-month shape.
type PivotError struct {
	Reason string
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("failed to pivot peer records: %s", e.Reason)
}

// ListBuildError reports peer input from which no table rows could be built.
type ListBuildError struct {
	Reason string
}

func (e *ListBuildError) Error() string {
	return fmt.Sprintf("failed to build peers table data: %s", e.Reason)
}

// TransferTableBuildError reports a failure building the transfer-type
// table artifact.
type TransferTableBuildError struct {
	Reason string
	Err    error
}

func (e *TransferTableBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to build transfer type table: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to build transfer type table: %s", e.Reason)
}

func (e *TransferTableBuildError) Unwrap() error { return e.Err }

// UsersTableBuildError reports a failure building the users table artifact.
type UsersTableBuildError struct {
	Reason string
	Err    error
}

func (e *UsersTableBuildError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to build users table: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("failed to build users table: %s", e.Reason)
}

func (e *UsersTableBuildError) Unwrap() error { return e.Err }
