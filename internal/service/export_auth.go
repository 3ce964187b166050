package service

import (
	"context"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"multichain-custody/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for the static export credential.
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64MB
	argon2Threads = 4
	argon2KeyLen  = 32
)

const exportTokenScope = "key-export"

// StaticCredentialAuthorizer implements ports.ExportAuthorizer against a
// pre-shared admin credential stored as an argon2id hash. The plaintext
// credential never touches configuration or logs.
type StaticCredentialAuthorizer struct {
	encodedHash string
}

// NewStaticCredentialAuthorizer creates an authorizer for the given
// encoded argon2id hash. An empty hash rejects every request.
func NewStaticCredentialAuthorizer(encodedHash string) *StaticCredentialAuthorizer {
	return &StaticCredentialAuthorizer{encodedHash: encodedHash}
}

// Authorize verifies the presented credential against the stored hash.
func (a *StaticCredentialAuthorizer) Authorize(_ context.Context, credential string) error {
	if a.encodedHash == "" || credential == "" {
		return apperror.ErrExportUnauthorized()
	}

	salt, hash, params, err := decodeArgon2Hash(a.encodedHash)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("malformed export credential hash: %w", err))
	}

	other := argon2.IDKey([]byte(credential), salt, params.time, params.memory, params.threads, params.keyLen)
	if subtle.ConstantTimeCompare(hash, other) != 1 {
		return apperror.ErrExportUnauthorized()
	}
	return nil
}

// HashExportCredential produces the encoded argon2id hash stored in
// configuration for a new admin credential.
// Format: $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>
func HashExportCredential(credential string, salt []byte) string {
	hash := argon2.IDKey([]byte(credential), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argon2Memory, argon2Time, argon2Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
}

type argon2Params struct {
	memory  uint32
	time    uint32
	threads uint8
	keyLen  uint32
}

// decodeArgon2Hash parses the encoded hash string.
func decodeArgon2Hash(encodedHash string) (salt, hash []byte, params argon2Params, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, params, fmt.Errorf("invalid hash format: expected 6 parts, got %d", len(parts))
	}

	if parts[1] != "argon2id" {
		return nil, nil, params, fmt.Errorf("unsupported algorithm: %s", parts[1])
	}

	var version int
	_, err = fmt.Sscanf(parts[2], "v=%d", &version)
	if err != nil {
		return nil, nil, params, fmt.Errorf("parsing version: %w", err)
	}

	_, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.memory, &params.time, &params.threads)
	if err != nil {
		return nil, nil, params, fmt.Errorf("parsing params: %w", err)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding salt: %w", err)
	}

	hash, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, params, fmt.Errorf("decoding hash: %w", err)
	}

	params.keyLen = uint32(len(hash))

	return salt, hash, params, nil
}

// ExportTokenAuthorizer implements ports.ExportAuthorizer using
// short-lived HS256 JWTs scoped to key export. Tokens are minted
// out-of-band with the shared secret and expire quickly, so a leaked
// token has a narrow window.
type ExportTokenAuthorizer struct {
	secret []byte
	ttl    time.Duration
}

// NewExportTokenAuthorizer creates a JWT-based export authorizer.
func NewExportTokenAuthorizer(secret string, ttl time.Duration) *ExportTokenAuthorizer {
	return &ExportTokenAuthorizer{secret: []byte(secret), ttl: ttl}
}

// Generate mints a short-lived export token.
func (a *ExportTokenAuthorizer) Generate() (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(a.ttl)

	claims := jwt.MapClaims{
		"scope": exportTokenScope,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing export token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// Authorize validates the token signature, expiry, and scope.
func (a *ExportTokenAuthorizer) Authorize(_ context.Context, credential string) error {
	if len(a.secret) == 0 || credential == "" {
		return apperror.ErrExportUnauthorized()
	}

	token, err := jwt.Parse(credential, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return apperror.ErrExportTokenExpired()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return apperror.ErrExportTokenExpired()
	}

	scope, _ := claims["scope"].(string)
	if scope != exportTokenScope {
		return apperror.ErrExportUnauthorized()
	}
	return nil
}

// MultiAuthorizer routes a presented credential to the token authorizer
// when it has JWT shape and to the static authorizer otherwise.
type MultiAuthorizer struct {
	static *StaticCredentialAuthorizer
	token  *ExportTokenAuthorizer
}

// NewMultiAuthorizer combines the static and token authorizers.
func NewMultiAuthorizer(static *StaticCredentialAuthorizer, token *ExportTokenAuthorizer) *MultiAuthorizer {
	return &MultiAuthorizer{static: static, token: token}
}

// Authorize dispatches on credential shape.
func (a *MultiAuthorizer) Authorize(ctx context.Context, credential string) error {
	if strings.Count(credential, ".") == 2 {
		return a.token.Authorize(ctx, credential)
	}
	return a.static.Authorize(ctx, credential)
}
