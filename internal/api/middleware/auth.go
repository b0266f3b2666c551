package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/ShareIt-RentalService/internal/api/handlers"
)

// UserIDHeader заголовок, через который шлюз передает идентификатор
// пользователя, от имени которого выполняется запрос
const UserIDHeader = "X-Sharer-User-Id"

type userIDKey struct{}

// Auth извлекает идентификатор пользователя из заголовка и кладет его
// в контекст запроса. Запрос без корректного заголовка отклоняется.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+UserIDHeader)
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "некорректный заголовок "+UserIDHeader)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает идентификатор пользователя из контекста запроса.
// Второе значение false, если запрос прошел мимо Auth.
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
