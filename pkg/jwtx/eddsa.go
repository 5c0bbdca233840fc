package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs claims into compact JWTs.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier parses and verifies compact JWTs, returning the claims. Expiry
// is checked separately via Claims.ValidateExpiry so middleware can
// distinguish a bad signature from a stale token.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// Keypair holds a single Ed25519 key used for both signing and verifying
// session tokens. The key is ephemeral: restarting the service invalidates
// outstanding sessions, which is acceptable for a single-issuer service.
type Keypair struct {
	priv   ed25519.PrivateKey
	pub    ed25519.PublicKey
	issuer string
}

// NewKeypair generates a fresh Ed25519 keypair bound to issuer.
func NewKeypair(issuer string) (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate ed25519 key: %w", err)
	}
	return &Keypair{priv: priv, pub: pub, issuer: issuer}, nil
}

// Sign takes claims and turns them into a signed JWT string.
func (k *Keypair) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	return t.SignedString(k.priv)
}

// Verify parses the token, checks the EdDSA signature and the issuer.
func (k *Keypair) Verify(token string) (Claims, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("jwtx: unexpected signing method %q", t.Method.Alg())
		}
		return k.pub, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalid
	}

	if err := claims.ValidateIssuer(k.issuer); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
