package loader

import "fmt"

// ModuleError reports a fatal module fault: resolution failure, duplicate
// or cyclic load, or an I/O failure opening a module.
type ModuleError struct {
	Target  string // the loadin spec or canonical path at fault
	Message string
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("module error: %s: %s", e.Target, e.Message)
}

// CapacityError reports a fixed loader limit being exceeded.
type CapacityError struct {
	Message string
}

func (e *CapacityError) Error() string {
	return "capacity error: " + e.Message
}
