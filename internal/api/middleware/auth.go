package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-HotelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

const (
	msgMissingToken = "отсутствует bearer токен"
	msgInvalidToken = "некорректный токен"
	msgAdminOnly    = "требуются права администратора"
)

var (
	errUnexpectedMethod = errors.New("unexpected signing method")
	errInvalidSubject   = errors.New("invalid sub claim")
	errInvalidRole      = errors.New("invalid role claim")
)

// Claims полезная нагрузка токена: sub - ID пользователя, role - client|admin
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticator проверяет HS256 токены из заголовка Authorization
type Authenticator struct {
	secret []byte
	logger Logger
}

func NewAuthenticator(secret string, logger Logger) *Authenticator {
	return &Authenticator{
		secret: []byte(secret),
		logger: logger,
	}
}

// Auth требует валидный Bearer токен и кладёт domain.Identity в контекст
func (a *Authenticator) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			a.logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		identity, err := a.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			a.logger.Warn("Auth: invalid token for %s %s: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// Parse разбирает и проверяет токен
func (a *Authenticator) Parse(raw string) (domain.Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", errUnexpectedMethod, t.Header["alg"])
		}
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Identity{}, err
	}
	if !token.Valid {
		return domain.Identity{}, jwt.ErrTokenInvalidClaims
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return domain.Identity{}, errInvalidSubject
	}

	role := domain.Role(claims.Role)
	if !role.IsValid() {
		return domain.Identity{}, errInvalidRole
	}

	return domain.Identity{UserID: userID, Role: role}, nil
}

// Issue подписывает токен для пользователя; используется в тестах и локальной отладке
func (a *Authenticator) Issue(identity domain.Identity, claims jwt.RegisteredClaims) (string, error) {
	claims.Subject = strconv.FormatInt(identity.UserID, 10)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             string(identity.Role),
		RegisteredClaims: claims,
	})
	return token.SignedString(a.secret)
}

// RequireAdmin пропускает только администраторов, ставится после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}
		if !identity.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}
