package hxattr

import (
	"errors"

	"github.com/pthm/hxattr/lib/encoding"
)

// Sentinel errors for signed values.
var (
	ErrInvalidFormat    = errors.New("hxattr: invalid value format")
	ErrSignatureInvalid = errors.New("hxattr: signature verification failed")
	ErrDecryptFailed    = errors.New("hxattr: value decryption failed")
	ErrExpired          = errors.New("hxattr: value expired")
)

// IsDecryptionError checks if err is a decryption or signature error.
func IsDecryptionError(err error) bool {
	return errors.Is(err, ErrDecryptFailed) || errors.Is(err, ErrSignatureInvalid)
}

// IsExpired checks if err reports an expired value.
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}

// wrapEncodingError maps encoding package errors to hxattr sentinel errors.
func wrapEncodingError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, encoding.ErrInvalidFormat):
		return ErrInvalidFormat
	case errors.Is(err, encoding.ErrSignatureInvalid):
		return ErrSignatureInvalid
	case errors.Is(err, encoding.ErrDecryptFailed):
		return ErrDecryptFailed
	case errors.Is(err, encoding.ErrExpired):
		return ErrExpired
	}
	return err
}
