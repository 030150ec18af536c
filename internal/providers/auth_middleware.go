package providers

import (
	"context"
	json "github.com/goccy/go-json"
	"net/http"
	"strings"
)

type userIDKey struct{}

// TokenVerifier resolves a bearer token to the id of its user.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}

type AuthMiddleware struct {
	verifier TokenVerifier
	cache    CacheProviderInterface
	logger   Logger
}

func NewAuthMiddleware(verifier TokenVerifier, cache CacheProviderInterface, logger Logger) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier, cache: cache, logger: logger}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// Wrap rejects requests without a valid bearer token and stores the caller
// id in the request context. Verified tokens are cached.
func (a *AuthMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			unauthorized(w)
			return
		}

		cacheKey := "token:" + token
		userID := ""
		if cached, ok := a.cache.Get(cacheKey); ok {
			userID = string(cached)
		} else {
			id, err := a.verifier.VerifyToken(r.Context(), token)
			if err != nil {
				a.logger.Debugf(GetLogTypeByRequestType(r.Method), "Rejected token for %s: %s", r.URL.Path, err)
				unauthorized(w)
				return
			}
			userID = id
			a.cache.Set(cacheKey, []byte(id))
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Could not validate credentials"})
}
