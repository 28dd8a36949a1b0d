package errors

import (
	"errors"
	"sort"
	"sync"
)

// ErrorCollector gathers errors from concurrent jobs.
type ErrorCollector struct {
	errors []error
	mutex  sync.Mutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{}
}

// AddError adds err to the collector. Nil errors are ignored.
func (ec *ErrorCollector) AddError(err error) {
	if err == nil {
		return
	}
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.errors = append(ec.errors, err)
}

// GetAllErrors returns the collected errors ordered by message, so the
// output does not depend on goroutine scheduling.
func (ec *ErrorCollector) GetAllErrors() []error {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()

	result := make([]error, len(ec.errors))
	copy(result, ec.errors)
	sort.SliceStable(result, func(i, j int) bool { return result[i].Error() < result[j].Error() })
	return result
}

// Err joins the collected errors, or returns nil.
func (ec *ErrorCollector) Err() error {
	return errors.Join(ec.GetAllErrors()...)
}
