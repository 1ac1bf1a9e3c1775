package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"carecompanion.app/companion-service/pkg/common"
	"carecompanion.app/companion-service/pkg/models"
	"carecompanion.app/companion-service/pkg/storage"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrRevokedToken = errors.New("token has been revoked")
)

type Claims struct {
	Role models.Role `json:"role"`
	jwt.StandardClaims
}

const revokedIndexKey = "revoked_index"

// Issuer signs HS256 tokens for signed-in users and remembers revoked ones in the KV
// store until they would have expired anyway. Backends with key expiry drop the entries
// themselves; elsewhere expired entries are purged on every revocation.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	kv     storage.KV
	now    func() time.Time
	mu     sync.Mutex
}

func NewIssuer(secret string, ttl time.Duration, kv storage.KV) *Issuer {
	if secret == "" {
		common.GetLoggerWith("auth").Warn("No JWT secret configured, tokens will not survive a restart")
		secret = uuid.NewString() + uuid.NewString()
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		kv:     kv,
		now:    time.Now,
	}
}

func revokedKey(jti string) string {
	return "revoked_" + jti
}

func (i *Issuer) Issue(user *models.User) (string, *Claims, error) {
	now := i.now()
	claims := &Claims{
		Role: user.Role,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(i.ttl).Unix(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, claims, nil
}

func (i *Issuer) Verify(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	_, revoked, err := i.kv.GetItem(ctx, revokedKey(claims.Id))
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

func (i *Issuer) Revoke(ctx context.Context, claims *Claims) error {
	expiresAt := time.Unix(claims.ExpiresAt, 0).UTC()
	expiry := expiresAt.Format(time.RFC3339)

	if expiring, ok := i.kv.(storage.ExpiringKV); ok {
		ttl := max(time.Second, expiresAt.Sub(i.now()))
		if err := expiring.SetItemWithTTL(ctx, revokedKey(claims.Id), expiry, ttl); err != nil {
			return err
		}
	} else if err := i.remember(ctx, claims.Id, expiresAt); err != nil {
		return err
	}

	common.GetLoggerWith("auth").Info("Revoked token", zap.String("user_id", claims.Subject), zap.String("jti", claims.Id))
	return nil
}

// remember stores the revocation and lists it in the index, dropping entries whose token
// has expired since.
func (i *Issuer) remember(ctx context.Context, jti string, expiresAt time.Time) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	index := map[string]int64{}
	if _, err := storage.GetJSON(ctx, i.kv, revokedIndexKey, &index); err != nil {
		return err
	}

	now := i.now().Unix()
	purged := 0
	for id, exp := range index {
		if exp > now {
			continue
		}
		if err := i.kv.RemoveItem(ctx, revokedKey(id)); err != nil {
			return err
		}
		delete(index, id)
		purged++
	}

	if err := i.kv.SetItem(ctx, revokedKey(jti), expiresAt.Format(time.RFC3339)); err != nil {
		return err
	}
	index[jti] = expiresAt.Unix()
	if err := storage.SetJSON(ctx, i.kv, revokedIndexKey, index); err != nil {
		return err
	}

	if purged > 0 {
		common.GetLoggerWith("auth").Debug("Purged expired revocations", zap.Int("count", purged))
	}
	return nil
}
