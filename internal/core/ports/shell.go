// internal/core/ports/shell.go
package ports

// Navigator is implemented by the shell hosting the controllers. Controllers
// call it after successful create/delete flows; the shell decides what a
// route change means (render another view, print, etc.).
type Navigator interface {
	Navigate(path string)
}

// Confirmer gates destructive actions behind an explicit user confirmation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }
