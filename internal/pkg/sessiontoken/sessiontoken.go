// Package sessiontoken verifies Shopify App Bridge session tokens. The
// embedded dashboard sends one per request; it is an HS256 JWT signed with the
// app's shared secret whose "dest" claim names the shop the request acts on.
package sessiontoken

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
	ErrWrongShop    = errors.New("session token issued for another shop")
)

type Claims struct {
	Dest string `json:"dest"`
	Sid  string `json:"sid,omitempty"`
	jwt.RegisteredClaims
}

type Verifier struct {
	sharedSecret []byte
	shopDomain   string
}

func NewVerifier(sharedSecret, shopDomain string) *Verifier {
	return &Verifier{
		sharedSecret: []byte(sharedSecret),
		shopDomain:   shopDomain,
	}
}

// Verify checks signature, expiry and that the token targets our shop, and
// returns the shop domain from the dest claim.
func (v *Verifier) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.sharedSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	shop := shopFromDest(claims.Dest)
	if shop == "" {
		return "", ErrInvalidToken
	}
	if shop != v.shopDomain {
		return "", ErrWrongShop
	}
	return shop, nil
}

// dest is a URL like "https://example.myshopify.com".
func shopFromDest(dest string) string {
	s := strings.TrimPrefix(dest, "https://")
	s = strings.TrimPrefix(s, "http://")
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	return s
}
