package service

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/aoicon/registration-auth/internal/core/domain"
)

// JWTSessionService signs session principals into HS256 tokens and parses
// them back. The claim set is fixed; tokens missing any claim are rejected
// so a claim can never be dropped silently between login and a later read.
type JWTSessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTSessionService(secret string, ttl time.Duration) *JWTSessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTSessionService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue embeds the principal's full claim set into a signed token. Mobile is
// carried as a string claim to keep it out of JSON number coercion.
func (s *JWTSessionService) Issue(p domain.SessionPrincipal) (string, error) {
	claims := jwt.MapClaims{
		"sub":      p.ID,
		"name":     p.Name,
		"email":    p.Email,
		"mobile":   strconv.FormatInt(p.Mobile, 10),
		"reg_no":   p.RegistrationNumber,
		"cert_url": p.CertURL,
		"exp":      s.now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Parse verifies the token and rehydrates the principal without touching
// the store. Every claim set at issuance must be present; cert_url may be
// empty but not absent.
func (s *JWTSessionService) Parse(token string) (domain.SessionPrincipal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.SessionPrincipal{}, domain.ErrInvalidSession
	}

	var p domain.SessionPrincipal
	var mobile string
	for claim, dst := range map[string]*string{
		"sub":      &p.ID,
		"name":     &p.Name,
		"email":    &p.Email,
		"mobile":   &mobile,
		"reg_no":   &p.RegistrationNumber,
		"cert_url": &p.CertURL,
	} {
		v, ok := claims[claim].(string)
		if !ok {
			return domain.SessionPrincipal{}, domain.ErrInvalidSession
		}
		*dst = v
	}
	n, err := strconv.ParseInt(mobile, 10, 64)
	if err != nil {
		return domain.SessionPrincipal{}, domain.ErrInvalidSession
	}
	p.Mobile = n

	return p, nil
}
