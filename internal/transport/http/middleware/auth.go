package middleware

import (
	"context"
	"net/http"
	"strings"

	"motorph/internal/domain/auth"
)

type ctxKey string

const ctxKeyClaims ctxKey = "claims"

// Auth attaches the claims of a valid bearer token. Requests without one pass
// through anonymously; RequirePermission rejects them where needed.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
			if !ok || !strings.EqualFold(scheme, "bearer") || token == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyClaims, *claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetClaims(ctx context.Context) (auth.Claims, bool) {
	claims, ok := ctx.Value(ctxKeyClaims).(auth.Claims)
	return claims, ok
}
