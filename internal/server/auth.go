package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nhle/planner/internal/model"
	"github.com/nhle/planner/internal/store"
)

const userIDKey = "userId"

// IdentityClaims are the claims carried by a bearer identity token. The
// subject is the user id.
type IdentityClaims struct {
	Email           string `json:"email,omitempty"`
	FirstName       string `json:"first_name,omitempty"`
	LastName        string `json:"last_name,omitempty"`
	ProfileImageURL string `json:"profile_image_url,omitempty"`
	jwt.RegisteredClaims
}

var errUnauthorized = echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")

// authenticate verifies the bearer token, upserts the caller's User row
// from its claims and stores the user id on the context.
func (s *Server) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return errUnauthorized
		}

		claims := &IdentityClaims{}
		_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
			return s.secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
		if err != nil || claims.Subject == "" {
			s.logger.WithError(err).Debug("rejected identity token")
			return errUnauthorized
		}

		_, err = s.store.UpsertUser(c.Request().Context(), model.UpsertUser{
			ID:              claims.Subject,
			Email:           optional(claims.Email),
			FirstName:       optional(claims.FirstName),
			LastName:        optional(claims.LastName),
			ProfileImageURL: optional(claims.ProfileImageURL),
		})
		if err != nil {
			return err
		}

		c.Set(userIDKey, claims.Subject)
		return next(c)
	}
}

func userID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// getAuthUser returns the caller's User record, seeding default data on
// the first call. Seeding failures are logged and do not fail the request.
func (s *Server) getAuthUser(c echo.Context) error {
	ctx := c.Request().Context()
	id := userID(c)

	if err := s.seeder.SeedUserData(ctx, id); err != nil {
		s.logger.WithError(err).WithField("userId", id).Error("seeding user data")
	}

	user, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
