package app

import "wavegraph/internal/function"

// Title is the window title for the active function.
func Title(name function.Name) string {
	return "wavegraph - " + name.String()
}
