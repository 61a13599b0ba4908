package netlist

import "fmt"

// StructuralError reports a defect of the whole input document, e.g. a
// missing modules container. It aborts the entire parse.
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "netlist: " + e.Reason
}

// ModuleError reports a defect confined to one module. The module is
// rejected; sibling modules are unaffected.
type ModuleError struct {
	Module string
	Reason string
}

func (e *ModuleError) Error() string {
	return fmt.Sprintf("netlist: module %q: %s", e.Module, e.Reason)
}

func moduleErrorf(module, format string, args ...interface{}) *ModuleError {
	return &ModuleError{Module: module, Reason: fmt.Sprintf(format, args...)}
}
