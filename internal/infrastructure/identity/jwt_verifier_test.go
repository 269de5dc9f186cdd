package identity

import (
	"errors"
	"mercado_audiovisual/internal/domain/entities"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key any, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func validClaims(userID, role string) Claims {
	return Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "cuentas",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestJWTVerifier_Verify(t *testing.T) {
	v := NewJWTVerifier(testSecret, "cuentas")

	t.Run("user token", func(t *testing.T) {
		actor, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("1", "user")))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if actor.UserID != "1" || actor.Rol != entities.RolUser {
			t.Fatalf("unexpected actor: %+v", actor)
		}
	})

	t.Run("admin token", func(t *testing.T) {
		actor, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("99", "ADMIN")))
		if err != nil || !actor.IsAdmin() {
			t.Fatalf("expected admin, got %+v err=%v", actor, err)
		}
	})

	t.Run("subject fallback", func(t *testing.T) {
		c := validClaims("", "")
		c.Subject = "7"
		actor, err := v.Verify(sign(t, jwt.SigningMethodHS256, []byte(testSecret), c))
		if err != nil || actor.UserID != "7" || actor.Rol != entities.RolUser {
			t.Fatalf("unexpected actor: %+v err=%v", actor, err)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		expired := validClaims("1", "user")
		expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

		noExp := validClaims("1", "user")
		noExp.ExpiresAt = nil

		otherIssuer := validClaims("1", "user")
		otherIssuer.Issuer = "someone-else"

		cases := map[string]string{
			"empty":        "",
			"garbage":      "not.a.token",
			"wrong secret": sign(t, jwt.SigningMethodHS256, []byte("other"), validClaims("1", "user")),
			"wrong alg":    sign(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims("1", "user")),
			"expired":      sign(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			"no exp":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), noExp),
			"issuer":       sign(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer),
			"no subject":   sign(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("", "user")),
		}
		for name, token := range cases {
			if _, err := v.Verify(token); err == nil {
				t.Fatalf("%s: expected error", name)
			}
		}
	})
}

func TestBearerToken(t *testing.T) {
	if tok, err := BearerToken("Bearer abc.def.ghi"); err != nil || tok != "abc.def.ghi" {
		t.Fatalf("unexpected %q %v", tok, err)
	}
	if tok, err := BearerToken("bearer   xyz "); err != nil || tok != "xyz" {
		t.Fatalf("unexpected %q %v", tok, err)
	}
	if _, err := BearerToken(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
	if _, err := BearerToken("Basic dXNlcg=="); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := BearerToken("Bearer"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
