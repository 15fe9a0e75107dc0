// Package ctx holds the types shared by everything that puts values into a context.Context.
package ctx

// CTXKey is the type used by all keys put in a context.
// Using an own type prevents collisions with keys of other packages, see context.WithValue.
type CTXKey string

const (
	// CtxLogAttrs holds the slog.Attr collected by alog.AddAttr.
	CtxLogAttrs CTXKey = "users.log.attrs"

	// CtxValidated is set by the validation decorators of package app.
	CtxValidated CTXKey = "users.validated"
)
