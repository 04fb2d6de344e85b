package function

import (
	"fmt"

	"wavegraph/internal/core"
)

// Entry pairs a name with its function.
type Entry struct {
	Name Name
	Func Func
}

// Table is an immutable name-keyed set of functions. Every declared Name has
// exactly one entry.
type Table struct {
	funcs [numNames]Func
}

// NewTable builds a table from entries. It panics if a name is out of range,
// registered twice, or missing, since that means the table and the Name
// declarations have drifted apart.
func NewTable(entries ...Entry) *Table {
	t := &Table{}
	for _, e := range entries {
		if !e.Name.Valid() {
			panic(fmt.Sprintf("function: entry for undeclared %v", e.Name))
		}
		if e.Func == nil {
			panic(fmt.Sprintf("function: nil func for %v", e.Name))
		}
		if t.funcs[e.Name] != nil {
			panic(fmt.Sprintf("function: duplicate entry for %v", e.Name))
		}
		t.funcs[e.Name] = e.Func
	}
	for n, f := range t.funcs {
		if f == nil {
			panic(fmt.Sprintf("function: no entry for %v", Name(n)))
		}
	}
	return t
}

var standard = NewTable(
	Entry{Sine, sine},
	Entry{Sine2D, sine2D},
	Entry{MultiSine, multiSine},
	Entry{MultiSine2D, multiSine2D},
	Entry{Ripple, ripple},
	Entry{Cylinder, cylinder},
	Entry{Sphere, sphere},
	Entry{PulsingSphere, pulsingSphere},
)

// Standard returns the built-in table. It is shared and read-only.
func Standard() *Table { return standard }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.funcs) }

// Func returns the function registered for name. It panics for names that
// were never declared.
func (t *Table) Func(name Name) Func {
	if !name.Valid() {
		panic(fmt.Sprintf("function: invalid name %d", int(name)))
	}
	return t.funcs[name]
}

// Evaluate applies the function registered for name to (u, v, t).
func (t *Table) Evaluate(name Name, u, v, tm float32) core.Vec3 {
	return t.Func(name)(u, v, tm)
}

// Evaluate applies a function from the standard table.
func Evaluate(name Name, u, v, t float32) core.Vec3 {
	return standard.Evaluate(name, u, v, t)
}
