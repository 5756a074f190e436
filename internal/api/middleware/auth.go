package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-AuditoriumService/internal/api/handlers"
)

// Роли, проставляемые платформенным шлюзом
const (
	RoleTeacher   = "teacher"
	RolePrincipal = "principal"
)

// Заголовки, которыми шлюз школьной платформы передаёт личность вызывающего
// Аутентификация и выдача ролей выполняются снаружи; сервис доверяет заголовкам
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

type userEmailKey struct{}
type userRoleKey struct{}

// Auth извлекает личность вызывающего из заголовков и кладет её в контекст
// Запросы без X-User-Email отклоняются: анонимных заявок не бывает,
// уведомление о решении адресовать было бы некому
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := r.Header.Get(HeaderUserEmail)
		if email == "" {
			handlers.RespondUnauthorized(w, "отсутствует идентификатор пользователя")
			return
		}

		ctx := context.WithValue(r.Context(), userEmailKey{}, email)
		if role := r.Header.Get(HeaderUserRole); role != "" {
			ctx = context.WithValue(ctx, userRoleKey{}, role)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole пропускает только вызовы с указанной ролью
// Навешивается после Auth
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			callerRole, ok := GetUserRole(r.Context())
			if !ok || callerRole != role {
				handlers.RespondForbidden(w, "недостаточно прав для выполнения операции")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetUserEmail возвращает email вызывающего из контекста
func GetUserEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(userEmailKey{}).(string)
	return email, ok
}

// GetUserRole возвращает роль вызывающего из контекста
func GetUserRole(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(userRoleKey{}).(string)
	return role, ok
}
