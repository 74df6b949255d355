package build

// NotFoundError reports an entry file that exists neither as given nor under
// the configured source root.
type NotFoundError struct {
	File string
}

func (e *NotFoundError) Error() string {
	return "file not found: " + e.File
}

// CompileError carries the enriched diagnostic report of a failed compiler
// invocation. The report is already formatted for the terminal.
type CompileError struct {
	Report string
}

func (e *CompileError) Error() string {
	return e.Report
}
