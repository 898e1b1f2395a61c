package middlewares

import (
	"context"
	"medintake-service/internal/pkg/constvars"
	"medintake-service/internal/pkg/exceptions"
	"medintake-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate requires a bearer token and puts it, with its decoded claims,
// on the request context. The token itself is verified by the backend on
// every forwarded call.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		header := r.Header.Get(constvars.HeaderAuthorization)
		token, found := strings.CutPrefix(header, constvars.AuthorizationBearerPrefix)
		token = strings.TrimSpace(token)
		if !found || token == "" {
			m.Log.Warn("Middlewares.Authenticate bearer token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrBearerTokenMissing(nil))
			return
		}

		claims, err := utils.DecodeTokenClaims(token)
		if err != nil {
			utils.LogSecurityEvent(m.Log, "invalid_bearer_token", requestID, "medium",
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrBearerTokenInvalid(err))
			return
		}
		if claims.Expired(m.Clock()) {
			m.Log.Info("Middlewares.Authenticate bearer token expired",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSubjectKey, claims.Subject),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrBearerTokenExpired(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_BEARER_TOKEN_KEY, token)
		ctx = context.WithValue(ctx, constvars.CONTEXT_TOKEN_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSuperuser must run after Authenticate.
func (m *Middlewares) RequireSuperuser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := utils.GetTokenClaims(r.Context())
		if claims == nil || !claims.IsSuperuser {
			subject := ""
			if claims != nil {
				subject = claims.Subject
			}
			utils.LogSecurityEvent(m.Log, "superuser_required", utils.GetRequestID(r.Context()), "low",
				zap.String(constvars.LoggingSubjectKey, subject),
				zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotSuperuser(nil))
			return
		}
		next.ServeHTTP(w, r)
	})
}
