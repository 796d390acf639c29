package middleware

import tele "gopkg.in/telebot.v4"

// OperatorOptions defines how operator-only checks should behave.
type OperatorOptions struct {
	// Operators is the allow-list of identities permitted to act.
	Operators map[int64]struct{}
	// OnReject runs for a denied sender; nil means silent drop.
	OnReject tele.HandlerFunc
}

// OperatorSet builds the allow-list lookup from a flat id slice.
func OperatorSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// IsOperator reports whether the id belongs to the allow-list.
func (o OperatorOptions) IsOperator(id int64) bool {
	_, ok := o.Operators[id]
	return ok
}

// OperatorOnlyMiddleware ensures that only allow-listed users can invoke downstream handlers.
func OperatorOnlyMiddleware(opts OperatorOptions) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if len(opts.Operators) != 0 && !opts.IsOperator(c.Sender().ID) {
				if opts.OnReject != nil {
					return opts.OnReject(c)
				}
				return nil
			}
			return next(c)
		}
	}
}
