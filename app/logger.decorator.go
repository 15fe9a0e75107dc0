package app

import (
	"context"
	"log/slog"

	"github.com/go-arrower/users/alog"
)

func NewLoggedRequest[Req any, Res any](logger alog.Logger, req Request[Req, Res]) Request[Req, Res] {
	return &loggingDecorator[Req, Res]{logger: logger, kind: kindRequest, base: req}
}

func NewLoggedQuery[Q any, Res any](logger alog.Logger, query Query[Q, Res]) Query[Q, Res] {
	return &loggingDecorator[Q, Res]{logger: logger, kind: kindQuery, base: query}
}

func NewLoggedCommand[C any](logger alog.Logger, cmd Command[C]) Command[C] {
	return asCommand[C](&loggingDecorator[C, struct{}]{logger: logger, kind: kindCommand, base: asRequest[C](cmd)})
}

type loggingDecorator[Req any, Res any] struct {
	logger alog.Logger
	kind   string
	base   Request[Req, Res]
}

func (d *loggingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	cmdName := commandName(req)

	d.logger.DebugContext(ctx, "executing "+d.kind,
		slog.String("command", cmdName),
	)

	res, err := d.base.H(ctx, req)
	if err != nil {
		d.logger.DebugContext(ctx, "failed to execute "+d.kind,
			slog.String("command", cmdName),
			slog.String("error", err.Error()),
		)

		return res, err //nolint:wrapcheck // decorate but not change anything
	}

	d.logger.DebugContext(ctx, d.kind+" executed successfully",
		slog.String("command", cmdName),
	)

	return res, nil
}
