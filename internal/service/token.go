package service

import (
	"time"

	"github.com/murmurapp/murmur/internal/domain"
	"github.com/murmurapp/murmur/pkg/jwtx"
)

// TokenService issues session tokens for verified accounts. Verification
// of inbound tokens lives in the authn middleware; this service only
// signs.
type TokenService struct {
	Signer jwtx.Signer
	Issuer string
	TTL    time.Duration
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultSessionTTL
}

// Issue signs a session token for user. Returns the compact token and its
// lifetime in seconds.
func (s *TokenService) Issue(user domain.User) (string, int, error) {
	ttl := s.ttl()
	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", 0, err
	}
	return token, int(ttl.Seconds()), nil
}
