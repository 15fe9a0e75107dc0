package app

import (
	"context"

	"github.com/go-playground/validator/v10"

	ctx2 "github.com/go-arrower/users/ctx"
)

// PassedValidation reports whether ctx went through one of the validation decorators.
// Use it in a use case that must not run on unvalidated input,
// as a safeguard against a wrong setup of dependencies.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(ctx2.CtxValidated).(bool); ok {
		return v
	}

	return false
}

// NewValidatedRequest validates the struct tags of each request before calling req.
// If validate is nil, a default validator.Validate is used.
func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	return newValidatingDecorator(validate, req)
}

func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return newValidatingDecorator[Q, Res](validate, query)
}

func NewValidatedCommand[C any](validate *validator.Validate, cmd Command[C]) Command[C] {
	return asCommand[C](newValidatingDecorator[C, struct{}](validate, asRequest[C](cmd)))
}

func newValidatingDecorator[Req any, Res any](
	validate *validator.Validate,
	base Request[Req, Res],
) *validatingDecorator[Req, Res] {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &validatingDecorator[Req, Res]{validate: validate, base: base}
}

type validatingDecorator[Req any, Res any] struct {
	validate *validator.Validate
	base     Request[Req, Res]
}

func (d *validatingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	if err := d.validate.StructCtx(ctx, req); err != nil {
		return *new(Res), err //nolint:wrapcheck // validation error is returned on purpose
	}

	return d.base.H(context.WithValue(ctx, ctx2.CtxValidated, true), req) //nolint:wrapcheck // decorate but not change anything
}
