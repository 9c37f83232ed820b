// Package signer provides a reference implementation of the metadata.Signer
// contract. It is meant for development and tests; production signatures
// come from a wallet or key service injected by the caller.
package signer

import (
	"context"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/blake2b"

	"github.com/reoring/lensmeta/metadata"
)

// ErrKeyLength is returned for keys longer than 64 bytes.
var ErrKeyLength = errors.New("signer: blake2b key must be at most 64 bytes")

// Blake2b returns a Signer computing a keyed BLAKE2b-256 MAC of the message,
// rendered as 0x-prefixed lowercase hex. An empty key yields a plain hash.
func Blake2b(key []byte) (metadata.Signer, error) {
	if len(key) > blake2b.Size {
		return nil, ErrKeyLength
	}
	key = append([]byte(nil), key...)
	return func(ctx context.Context, message string) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		h, err := blake2b.New256(key)
		if err != nil {
			return "", err
		}
		h.Write([]byte(message))
		return "0x" + hex.EncodeToString(h.Sum(nil)), nil
	}, nil
}

// Blake2bHex is Blake2b with a hex encoded key, optionally 0x-prefixed.
func Blake2bHex(key string) (metadata.Signer, error) {
	if len(key) >= 2 && key[:2] == "0x" {
		key = key[2:]
	}
	b, err := hex.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("signer: invalid hex key: %w", err)
	}
	return Blake2b(b)
}

// Verify recomputes the signature of message and compares it with sig.
func Verify(ctx context.Context, s metadata.Signer, message, sig string) (bool, error) {
	want, err := s(ctx, message)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare([]byte(want), []byte(sig)) == 1, nil
}
