// Package identity resolves the caller behind a request: it extracts the
// bearer credential from call metadata and validates it against the auth
// service. Resolution failures are never surfaced as errors; the caller is
// simply treated as anonymous.
package identity

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/proto/authpb"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"google.golang.org/grpc/metadata"
)

type Resolver struct {
	auth authpb.AuthClient
}

func NewResolver(auth authpb.AuthClient) *Resolver {
	return &Resolver{auth: auth}
}

type ctxKey string

const callerKey ctxKey = "caller"

// WithCaller stashes an already resolved caller in the context so later
// resolutions within the same request skip the auth roundtrip.
func WithCaller(ctx context.Context, c models.Caller) context.Context {
	return context.WithValue(ctx, callerKey, c)
}

// CallerFromContext returns a caller previously stored with WithCaller.
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	c, ok := ctx.Value(callerKey).(models.Caller)
	return c, ok
}

// Resolve maps the incoming call metadata to a caller identity. A caller
// already resolved upstream (see WithCaller) is returned as is. Without a
// credential it returns Anonymous immediately, making no outbound call. With
// a credential it asks the auth service; any failure (unknown, expired,
// unreachable) also folds into Anonymous.
func (r *Resolver) Resolve(ctx context.Context) models.Caller {
	if c, ok := CallerFromContext(ctx); ok {
		return c
	}

	token := TokenFromContext(ctx)
	if token == "" {
		return models.Anonymous
	}

	user, err := r.auth.GetCurrentUser(ctx, &authpb.SessionData{SessionID: token})
	if err != nil {
		return models.Anonymous
	}

	return models.Caller{UserID: user.GetID(), Authenticated: true}
}

// TokenFromContext extracts the session token from the authorization
// metadata entry, stripping the Bearer prefix when present.
func TokenFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AuthHeaderName)
	if len(values) == 0 {
		return ""
	}
	return strings.TrimPrefix(values[0], common.BearerPrefix)
}
