package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/identity"
)

type stubVerifier struct {
	tokens map[string]identity.Identity
	err    error
}

func (s stubVerifier) Verify(ctx context.Context, token string) (identity.Identity, error) {
	if s.err != nil {
		return identity.Identity{}, s.err
	}
	id, ok := s.tokens[token]
	if !ok {
		return identity.Identity{}, identity.ErrInvalidToken
	}
	return id, nil
}

func newAuthRouter(v identity.Verifier, resolve ResolveUser) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Auth(v, resolve))
	router.GET("/api/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": UserIDFromContext(c),
			"email":  UserEmailFromContext(c),
			"name":   UserNameFromContext(c),
		})
	})
	router.OPTIONS("/api/me", func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router
}

func TestAuthAllowsOptionsWithoutIdentity(t *testing.T) {
	router := newAuthRouter(stubVerifier{}, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
}

func TestAuthRejectsMissingOrInvalidToken(t *testing.T) {
	router := newAuthRouter(stubVerifier{tokens: map[string]identity.Identity{}}, func(ctx context.Context, id identity.Identity) (string, error) {
		t.Fatalf("resolve must not be called")
		return "", nil
	})

	for name, header := range map[string]string{
		"missing":   "",
		"no bearer": "Token abc",
		"empty":     "Bearer   ",
		"unknown":   "Bearer nope",
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)
			if resp.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", resp.Code)
			}
		})
	}
}

func TestAuthResolvesUserAndStoresIdentity(t *testing.T) {
	var seen identity.Identity
	router := newAuthRouter(
		stubVerifier{tokens: map[string]identity.Identity{"good": {UID: "fb-1", Email: "a@example.com", Name: "Ada"}}},
		func(ctx context.Context, id identity.Identity) (string, error) {
			seen = id
			return "internal-7", nil
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "bearer good")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if seen.UID != "fb-1" {
		t.Fatalf("resolver received %+v", seen)
	}
	body := resp.Body.String()
	for _, want := range []string{`"userId":"internal-7"`, `"email":"a@example.com"`, `"name":"Ada"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}

func TestAuthResolveFailureIs500(t *testing.T) {
	router := newAuthRouter(
		stubVerifier{tokens: map[string]identity.Identity{"good": {UID: "fb-1"}}},
		func(ctx context.Context, id identity.Identity) (string, error) {
			return "", errors.New("db down")
		},
	)
	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer good")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
