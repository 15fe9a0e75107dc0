package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers to test calling code relying on the use case pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] { //nolint:ireturn // test helper
	return RequestFunc[Req, Res](func(context.Context, Req) (Res, error) {
		return *new(Res), nil
	})
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] { //nolint:ireturn // test helper
	return RequestFunc[Req, Res](func(context.Context, Req) (Res, error) {
		return *new(Res), ErrUseCaseFailed
	})
}

func TestSuccessCommandHandler[C any]() Command[C] { //nolint:ireturn // test helper
	return CommandFunc[C](func(context.Context, C) error { return nil })
}

func TestFailureCommandHandler[C any]() Command[C] { //nolint:ireturn // test helper
	return CommandFunc[C](func(context.Context, C) error { return ErrUseCaseFailed })
}
