package stepform

import (
	"log/slog"
)

// WithLogger logs every accepted transition at debug level, every rejected step
// and the final submission at info level. Each record carries the session id.
func (f *Form) WithLogger(l *slog.Logger) *Form {
	if l == nil {
		return f
	}

	f.OnTransition(func(from, to Step, action Action, ctx *Context) error {
		l.Debug("step transition",
			slog.String("session", ctx.ID.String()),
			slog.String("from", string(from)),
			slog.String("to", string(to)),
			slog.String("action", string(action)),
		)
		return nil
	})

	f.OnReject(func(ctx *Context, errs ErrorSet) {
		fields := make([]string, 0, len(errs))
		for field := range errs.Fields().Iter() {
			fields = append(fields, string(field))
		}

		l.Info("step rejected",
			slog.String("session", ctx.ID.String()),
			slog.String("step", string(ctx.Step)),
			slog.String("action", string(ctx.Action)),
			slog.Any("fields", fields),
		)
	})

	f.OnEnter(StepSubmitted, func(ctx *Context) error {
		l.Info("form submitted", slog.String("session", ctx.ID.String()))
		return nil
	})

	return f
}
