package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aussiebroadwan/connect/pkg/jwtx"
	"golang.org/x/crypto/hkdf"
)

// MinSecretSize is the shortest codec secret accepted.
const MinSecretSize = 16

var (
	// ErrTokenInvalid covers every way an opaque token can fail to open
	// other than expiry: bad encoding, tampering, wrong codec, bad payload.
	ErrTokenInvalid = errors.New("cryptox: invalid token")
	// ErrTokenExpired means the token was authentic but its lifetime passed.
	ErrTokenExpired = errors.New("cryptox: token expired")

	ErrWeakSecret = errors.New("cryptox: codec secret too short")
)

const (
	infoEncryption = "connect/codec/enc/v1"
	infoSignature  = "connect/codec/sig/v1"
)

// Codec turns a JSON-serialisable payload into an opaque, authenticated,
// expiring string and back. The payload is signed as an HS256 JWT and the
// compact JWT is then sealed with AES-256-GCM, so clients can neither read
// nor alter it.
type Codec struct {
	name string
	ttl  time.Duration
	now  func() time.Time

	aead   cipher.AEAD
	signer *jwtx.HS256
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithClock overrides the time source used for iat/exp.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCodec derives independent encryption and signing keys from secret.
// name is bound into every token, so two codecs with different names never
// accept each other's output.
func NewCodec(name string, secret []byte, ttl time.Duration, opts ...CodecOption) (*Codec, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("cryptox: codec name required")
	}
	if len(secret) < MinSecretSize {
		return nil, ErrWeakSecret
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("cryptox: codec ttl must be positive, got %s", ttl)
	}

	c := &Codec{
		name: name,
		ttl:  ttl,
		now:  func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(c)
	}

	encKey, err := deriveKey(secret, name, infoEncryption)
	if err != nil {
		return nil, err
	}
	sigKey, err := deriveKey(secret, name, infoSignature)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("cryptox: aes: %w", err)
	}
	c.aead, err = cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("cryptox: gcm: %w", err)
	}

	c.signer, err = jwtx.NewHS256(sigKey, func() time.Time { return c.now() })
	if err != nil {
		return nil, err
	}

	return c, nil
}

func deriveKey(secret []byte, name, info string) ([]byte, error) {
	key := make([]byte, 32)
	r := hkdf.New(sha256.New, secret, []byte(name), []byte(info))
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("cryptox: derive key: %w", err)
	}
	return key, nil
}

// Name returns the codec name bound into its tokens.
func (c *Codec) Name() string { return c.name }

// TTL returns how long tokens from this codec stay valid.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encrypt seals payload into a URL-safe opaque token.
func (c *Codec) Encrypt(payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("cryptox: encode payload: %w", err)
	}

	signed, err := c.signer.Sign(jwtx.NewClaims(c.name, data, c.ttl, c.now()))
	if err != nil {
		return "", fmt.Errorf("cryptox: sign payload: %w", err)
	}

	nonce := make([]byte, c.aead.NonceSize(), c.aead.NonceSize()+len(signed)+c.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("cryptox: nonce: %w", err)
	}
	sealed := c.aead.Seal(nonce, nonce, []byte(signed), []byte(c.name))

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens token into out. It returns ErrTokenExpired for authentic
// tokens past their expiry and ErrTokenInvalid for everything else.
func (c *Codec) Decrypt(token string, out any) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: empty", ErrTokenInvalid)
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return fmt.Errorf("%w: encoding", ErrTokenInvalid)
	}

	ns := c.aead.NonceSize()
	if len(raw) < ns+c.aead.Overhead() {
		return fmt.Errorf("%w: too short", ErrTokenInvalid)
	}

	plain, err := c.aead.Open(nil, raw[:ns], raw[ns:], []byte(c.name))
	if err != nil {
		return fmt.Errorf("%w: authentication failed", ErrTokenInvalid)
	}

	claims, err := c.signer.Verify(string(plain))
	if err != nil {
		if errors.Is(err, jwtx.ErrExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if err := claims.ValidateIssuer(c.name); err != nil {
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if len(claims.Data) == 0 {
		return fmt.Errorf("%w: no payload", ErrTokenInvalid)
	}
	if err := json.Unmarshal(claims.Data, out); err != nil {
		return fmt.Errorf("%w: payload: %v", ErrTokenInvalid, err)
	}
	return nil
}
