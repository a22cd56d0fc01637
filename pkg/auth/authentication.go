package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vetcare-app/vetcare-backend/pkg/auth/jwt"
	"github.com/vetcare-app/vetcare-backend/pkg/communication"
)

// RoleStaff is the role every staff self-service route requires
const RoleStaff = "staff"

// AuthenticationMiddleware checks if the user login token is valid and responds with an error if it's not the case
type AuthenticationMiddleware struct {
	ResponseManager *communication.ResponseManager
	Secret          string
}

type key string

const (
	// KeyUserID the key for the request variable for getting the user id
	KeyUserID key = "userID"
	// KeyRoles the key for the request variable holding the roles of the user
	KeyRoles key = "roles"
)

// Middleware gets called when a request needs to be authenticated
func (m *AuthenticationMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, r *http.Request) {
		extractedToken, err := extractTokenStringFromHeader(r)
		if err != nil {
			m.ResponseManager.RespondWithError(writer, http.StatusUnauthorized, "No authorization", err)
			return
		}

		claims, err := jwt.Verify(extractedToken, jwt.TokenTypeAccess, m.Secret)
		if err != nil {
			m.ResponseManager.RespondWithError(writer, http.StatusUnauthorized, "Token invalid", err)
			return
		}

		ctx := context.WithValue(r.Context(), KeyUserID, claims.Subject)
		ctx = context.WithValue(ctx, KeyRoles, claims.Roles)
		next.ServeHTTP(writer, r.WithContext(ctx))
	})
}

// RequireRole only lets requests through whose token carries role
func (m *AuthenticationMiddleware) RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, r *http.Request) {
			roles, _ := r.Context().Value(KeyRoles).([]string)
			for _, granted := range roles {
				if granted == role {
					next.ServeHTTP(writer, r)
					return
				}
			}

			m.ResponseManager.RespondWithError(writer, http.StatusForbidden, "Not authorized as "+role, nil)
		})
	}
}

// UserID returns the authenticated user id of a request
func UserID(r *http.Request) string {
	userID, _ := r.Context().Value(KeyUserID).(string)
	return userID
}

func extractTokenStringFromHeader(r *http.Request) (string, error) {
	nonformatted := r.Header.Get("Authorization")
	if strings.TrimSpace(nonformatted) == "" {
		return "", errors.New("no authorization token specified")
	}

	tokenParts := strings.Fields(nonformatted)
	if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
		return "", errors.New("token must be a bearer token")
	}

	return tokenParts[1], nil
}
