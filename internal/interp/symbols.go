package interp

import (
	"fmt"
	"sort"

	"github.com/adriyanbasu0/zr-sharp/pkg/value"
)

// MaxSymbols is the fixed capacity of the symbol table.
const MaxSymbols = 256

// CapacityError reports a fixed evaluator limit being exceeded. It is
// fatal: the run aborts instead of producing an Error value.
type CapacityError struct {
	Message string
}

func (e *CapacityError) Error() string {
	return "capacity error: " + e.Message
}

// SymbolTable is the flat, session-lifetime variable store. There are no
// nested scopes: re-binding a name overwrites the previous entry.
type SymbolTable struct {
	symbols map[string]value.Value
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]value.Value)}
}

// Define binds a name to a value, overwriting any existing binding.
// Defining a new name in a full table is a CapacityError.
func (s *SymbolTable) Define(name string, v value.Value) error {
	if _, exists := s.symbols[name]; !exists && len(s.symbols) >= MaxSymbols {
		return &CapacityError{Message: fmt.Sprintf("symbol table full (%d entries)", MaxSymbols)}
	}
	s.symbols[name] = v
	return nil
}

// Lookup returns the value bound to name.
func (s *SymbolTable) Lookup(name string) (value.Value, bool) {
	v, ok := s.symbols[name]
	return v, ok
}

// Len returns the number of bindings.
func (s *SymbolTable) Len() int {
	return len(s.symbols)
}

// Names returns all bound names in sorted order.
func (s *SymbolTable) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
