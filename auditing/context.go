package auditing

import (
	"context"

	"github.com/Reactman/wakanda/utils/strutil"
)

type auditorKey struct{}

// WithAuditor returns a copy of ctx carrying who.
func WithAuditor(ctx context.Context, who string) context.Context {
	return context.WithValue(ctx, auditorKey{}, who)
}

// AuditorFrom returns the auditor stored by WithAuditor; blank counts as absent.
func AuditorFrom(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	who, ok := ctx.Value(auditorKey{}).(string)
	if !ok || strutil.IsBlank(who) {
		return "", false
	}
	return who, true
}
