package errors

import "strings"

// Convenience functions for the fatal conditions of a navigation build

// Input errors

func InputUnreadable(path string, cause error) *NavError {
	return Wrap(cause, CategoryInput, SeverityFatal, "input file unreadable").
		WithContext("path", path)
}

func MissingFields(line int, fields []string, record map[string]string) *NavError {
	return New(CategoryValidation, SeverityFatal, "missing required column(s) "+strings.Join(fields, ", ")).
		WithContext("line", line).
		WithContext("record", record)
}

// ContentUnreadable reports a content record file that exists but could not
// be read. The run continues without content records.
func ContentUnreadable(path string, cause error) *NavError {
	return Wrap(cause, CategoryInput, SeverityWarning, "content records unreadable; continuing without them").
		WithContext("path", path)
}

// Tree errors

func DuplicateID(id string, line int) *NavError {
	return New(CategoryValidation, SeverityFatal, "duplicate node id").
		WithContext("id", id).
		WithContext("line", line)
}

func UnknownParent(id, parentID string, line int) *NavError {
	return New(CategoryValidation, SeverityFatal, "parent_id not found").
		WithContext("id", id).
		WithContext("parent_id", parentID).
		WithContext("line", line)
}

func UnknownKind(id, kind string, line int) *NavError {
	return New(CategoryValidation, SeverityFatal, "unknown node kind (want navbar, landing, section, item or external)").
		WithContext("id", id).
		WithContext("kind", kind).
		WithContext("line", line)
}

func NoRoots() *NavError {
	return New(CategoryValidation, SeverityFatal, "no root navbar nodes found (kind=navbar and empty parent_id)")
}

// Config errors

func ConfigInvalid(field, reason string) *NavError {
	return New(CategoryConfig, SeverityFatal, "invalid configuration").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Output errors

func WriteFailed(path string, cause error) *NavError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "write failed").
		WithContext("path", path)
}

func ReadFailed(path string, cause error) *NavError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "read failed").
		WithContext("path", path)
}

func PathEscapesRoot(path string) *NavError {
	return New(CategoryFileSystem, SeverityFatal, "page path escapes project root").
		WithContext("path", path)
}

// Internal errors

func InternalError(message string, cause error) *NavError {
	return Wrap(cause, CategoryInternal, SeverityFatal, message)
}

func ParentCycle(id string, line int) *NavError {
	return New(CategoryValidation, SeverityFatal, "parent_id chain forms a cycle").
		WithContext("id", id).
		WithContext("line", line)
}
