package metadata

import (
	"context"
	"fmt"

	"github.com/reoring/lensmeta"
	"github.com/reoring/lensmeta/primitives"
)

// Signer signs the exact message it is given. Implementations live outside
// this package; see the signer package for a reference one.
type Signer func(ctx context.Context, message string) (string, error)

// Sign canonicalizes m.Lens, asks signer for a signature and returns a copy
// of m carrying it. m itself is left untouched.
func Sign[D any](ctx context.Context, m Metadata[D], signer Signer) (Metadata[D], error) {
	sig, err := signLens(ctx, m.Lens, signer)
	if err != nil {
		return m, err
	}
	return m.WithSignature(sig).(Metadata[D]), nil
}

// SignAny is Sign for documents returned by Parse.
func SignAny(ctx context.Context, m AnyMetadata, signer Signer) (AnyMetadata, error) {
	sig, err := signLens(ctx, m.LensDetails(), signer)
	if err != nil {
		return m, err
	}
	return m.WithSignature(sig), nil
}

func signLens(ctx context.Context, lens any, signer Signer) (primitives.Signature, error) {
	if signer == nil {
		return "", fmt.Errorf("metadata: nil signer")
	}
	msg, err := Canonicalize(lens)
	if err != nil {
		return "", err
	}
	raw, err := signer(ctx, msg)
	if err != nil {
		return "", fmt.Errorf("metadata: sign: %w", err)
	}
	res := primitives.ParseSignature(raw)
	if !res.Success() {
		return "", res.Issues.WithPrefix(lensmeta.PathOf("signature"))
	}
	log.Debugf("metadata: signed %d byte message", len(msg))
	return res.Value, nil
}
