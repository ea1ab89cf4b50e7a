// Package encoding turns arbitrary values into compact, URL-safe tokens
// that can travel through hx-vals and come back in a later request.
package encoding

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Sentinel errors returned by Decode.
var (
	ErrInvalidFormat    = errors.New("encoding: invalid token format")
	ErrSignatureInvalid = errors.New("encoding: signature verification failed")
	ErrDecryptFailed    = errors.New("encoding: decryption failed")
	ErrExpired          = errors.New("encoding: token expired")
)

// Codec encodes values as tokens. It supports two modes:
//   - Signed: msgpack + base64 + HMAC signature - visible but tamper-proof
//   - Sensitive: AES-256-GCM - fully opaque
//
// A Codec is safe for concurrent use.
type Codec struct {
	key    []byte
	gcm    cipher.AEAD
	maxAge time.Duration
	now    func() time.Time
}

// Option configures a Codec.
type Option func(*Codec)

// WithMaxAge makes tokens expire d after they were issued. Zero disables
// expiry, which is the default.
func WithMaxAge(d time.Duration) Option {
	return func(c *Codec) {
		c.maxAge = d
	}
}

// WithClock overrides the time source used for expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) {
		c.now = now
	}
}

// envelope is the msgpack frame around every encoded value.
type envelope struct {
	Value    msgpack.RawMessage `msgpack:"v"`
	IssuedAt int64              `msgpack:"t,omitempty"`
}

// NewCodec creates a codec with the given key. Keys shorter than 32
// bytes are stretched with SHA-256.
func NewCodec(key []byte, opts ...Option) (*Codec, error) {
	if len(key) < 32 {
		h := sha256.Sum256(key)
		key = h[:]
	}

	block, err := aes.NewCipher(key[:32])
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	c := &Codec{
		key: key,
		gcm: gcm,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Encode serializes v and returns a token.
// If sensitive is true, the data is encrypted; otherwise it's signed.
func (c *Codec) Encode(v any, sensitive bool) (string, error) {
	value, err := msgpack.Marshal(v)
	if err != nil {
		return "", err
	}

	env := envelope{Value: value}
	if c.maxAge > 0 {
		env.IssuedAt = c.now().Unix()
	}

	packed, err := msgpack.Marshal(&env)
	if err != nil {
		return "", err
	}

	if sensitive {
		return c.encrypt(packed)
	}
	return c.sign(packed), nil
}

// Decode verifies (or decrypts) token and unmarshals it into v, which
// must be a pointer.
func (c *Codec) Decode(token string, sensitive bool, v any) error {
	var packed []byte
	var err error

	if sensitive {
		packed, err = c.decrypt(token)
	} else {
		packed, err = c.verify(token)
	}
	if err != nil {
		return err
	}

	var env envelope
	if err := msgpack.Unmarshal(packed, &env); err != nil {
		return ErrInvalidFormat
	}

	if c.maxAge > 0 {
		issued := time.Unix(env.IssuedAt, 0)
		if env.IssuedAt == 0 || c.now().Sub(issued) > c.maxAge {
			return ErrExpired
		}
	}

	if err := msgpack.Unmarshal(env.Value, v); err != nil {
		return ErrInvalidFormat
	}
	return nil
}

// sign creates a signed (but visible) encoding: base64.signature
func (c *Codec) sign(data []byte) string {
	b64 := base64.RawURLEncoding.EncodeToString(data)
	sig := base64.RawURLEncoding.EncodeToString(c.mac(data))
	return b64 + "." + sig
}

// mac returns the first 16 bytes (128 bits) of HMAC-SHA256(data).
func (c *Codec) mac(data []byte) []byte {
	m := hmac.New(sha256.New, c.key)
	m.Write(data)
	return m.Sum(nil)[:16]
}

func (c *Codec) verify(token string) ([]byte, error) {
	payload, signature, ok := strings.Cut(token, ".")
	if !ok {
		return nil, ErrInvalidFormat
	}

	data, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	sig, err := base64.RawURLEncoding.DecodeString(signature)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if !hmac.Equal(sig, c.mac(data)) {
		return nil, ErrSignatureInvalid
	}
	return data, nil
}

func (c *Codec) encrypt(data []byte) (string, error) {
	nonce := make([]byte, c.gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	ciphertext := c.gcm.Seal(nonce, nonce, data, nil)
	return base64.RawURLEncoding.EncodeToString(ciphertext), nil
}

func (c *Codec) decrypt(token string) ([]byte, error) {
	ciphertext, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, ErrInvalidFormat
	}

	if len(ciphertext) < c.gcm.NonceSize() {
		return nil, ErrInvalidFormat
	}

	nonce := ciphertext[:c.gcm.NonceSize()]
	ciphertext = ciphertext[c.gcm.NonceSize():]

	data, err := c.gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptFailed
	}
	return data, nil
}
