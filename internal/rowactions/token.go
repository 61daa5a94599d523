package rowactions

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/rowactions/internal/platform/errors"
)

const (
	// defaultTokenTTL bounds how long a rendered action link stays usable.
	defaultTokenTTL = 12 * time.Hour
	// tokenIssuer identifies tokens minted by this module.
	tokenIssuer = "rowactions"
)

// TokenConfig defines how action tokens are minted and verified.
type TokenConfig struct {
	// Key is the HMAC-SHA256 signing key. Required.
	Key []byte
	// TTL bounds token validity. Zero uses the default.
	TTL time.Duration
	// Now overrides the clock for tests.
	Now func() time.Time
}

// Tokens mints and validates tokens bound to one (kind, subkind, action key,
// object id) tuple. The binding means a token replayed against a different
// object or action fails validation even when the signature is intact.
type Tokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// tokenClaims is the internal claims type used for JWT parsing.
type tokenClaims struct {
	jwt.RegisteredClaims
	ObjectType    string `json:"object_type"`
	ObjectSubtype string `json:"object_subtype"`
	ActionKey     string `json:"action_key"`
	ObjectID      string `json:"object_id"`
}

// NewTokens builds a token service from config.
func NewTokens(cfg TokenConfig) (*Tokens, error) {
	if len(cfg.Key) == 0 {
		return nil, errors.New("token signing key is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Tokens{key: cfg.Key, ttl: ttl, now: now}, nil
}

// Mint signs a token for the given action/object tuple.
func (t *Tokens) Mint(kind Kind, subkind, actionKey string, objectID int64) (string, error) {
	if t == nil {
		return "", errors.New("token service is not configured")
	}
	issuedAt := t.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(t.ttl)),
		},
		ObjectType:    string(kind),
		ObjectSubtype: subkind,
		ActionKey:     actionKey,
		ObjectID:      strconv.FormatInt(objectID, 10),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign action token: %w", err)
	}
	return signed, nil
}

// Validate verifies a token against the tuple derived from the request. A
// mismatch on any tuple element fails closed with a token error.
func (t *Tokens) Validate(token string, kind Kind, subkind, actionKey string, objectID int64) error {
	if t == nil {
		return errors.New("token service is not configured")
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return apperrors.New(apperrors.CodeTokenInvalid, "action token is required")
	}

	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(parsedToken *jwt.Token) (any, error) {
		if _, ok := parsedToken.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", parsedToken.Method.Alg())
		}
		return t.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return apperrors.Wrap(apperrors.CodeTokenExpired, "action token expired", err)
		}
		return apperrors.Wrap(apperrors.CodeTokenInvalid, "action token is invalid", err)
	}

	if parsed.ObjectType != string(kind) ||
		parsed.ObjectSubtype != subkind ||
		parsed.ActionKey != actionKey ||
		parsed.ObjectID != strconv.FormatInt(objectID, 10) {
		return apperrors.New(apperrors.CodeTokenInvalid, "action token does not match request")
	}
	return nil
}
