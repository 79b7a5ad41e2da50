package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/coaching-scheduler/internal/api/handlers"
	"github.com/m04kA/coaching-scheduler/internal/domain"
)

// Заголовки, которые выставляет шлюз авторизации
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidRole   = "некорректная роль пользователя"
	msgAdminOnly     = "доступно только администратору"
)

type identityKey struct{}

// WithIdentity кладет личность пользователя в контекст
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// GetIdentity достает личность пользователя из контекста
// Если middleware не отработал, возвращается анонимный пользователь
func GetIdentity(ctx context.Context) domain.Identity {
	id, _ := ctx.Value(identityKey{}).(domain.Identity)
	return id
}

// GetUserID возвращает ID авторизованного пользователя
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	id := GetIdentity(ctx)
	if id.IsAnonymous() {
		return uuid.Nil, false
	}
	return id.UserID, true
}

// parseIdentity разбирает заголовки шлюза. ok=false, если X-User-ID отсутствует
func parseIdentity(r *http.Request) (domain.Identity, bool, string) {
	raw := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if raw == "" {
		return domain.Identity{}, false, ""
	}

	userID, err := uuid.Parse(raw)
	if err != nil || userID == uuid.Nil {
		return domain.Identity{}, true, msgInvalidUserID
	}

	role := domain.RoleClient
	switch strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole))) {
	case "", string(domain.RoleClient):
	case string(domain.RoleAdmin):
		role = domain.RoleAdmin
	default:
		return domain.Identity{}, true, msgInvalidRole
	}

	return domain.Identity{UserID: userID, Role: role}, true, ""
}

// Auth требует заголовок X-User-ID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, present, problem := parseIdentity(r)
		if !present {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if problem != "" {
			handlers.RespondUnauthorized(w, problem)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// OptionalAuth пропускает анонимные запросы, но отклоняет некорректные заголовки
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, present, problem := parseIdentity(r)
		if present && problem != "" {
			handlers.RespondUnauthorized(w, problem)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// AdminOnly пропускает только администратора. Ставится после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !GetIdentity(r.Context()).IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
