package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleLibrarian Role = "LIBRARIAN"
	RoleAdmin     Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleLibrarian, RoleAdmin:
		return true
	}
	return false
}

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
}

// Principal is the authenticated caller carried in the request context.
type Principal struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}

type Claims struct {
	Principal
	jwt.RegisteredClaims
}

var ErrInvalidToken = errors.New("invalid token")

type Issuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

func NewIssuer(cfg Config) *Issuer {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{key: []byte(cfg.Secret), ttl: ttl, now: time.Now}
}

func (i *Issuer) Issue(p Principal) (string, time.Time, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)
	claims := &Claims{
		Principal: p,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "sign token")
	}
	return token, expiresAt, nil
}

func (i *Issuer) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID == "" || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

type principalKey struct{}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

func IsAdmin(ctx context.Context) bool {
	p, ok := FromContext(ctx)
	return ok && p.Role == RoleAdmin
}
