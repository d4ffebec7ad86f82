package guard

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"time"
)

// codeChars is Steam's confirmation-code alphabet: 26 characters with the
// visually confusable ones (0/O, 1/I/L, etc.) removed.
const codeChars = "23456789BCDFGHJKMNPQRTVWXY"

const (
	codeLength    = 5
	windowSeconds = 30
)

//go:generate mockgen -source=guard.go -destination=mock_guard.go -package=guard

// TimeOffsetSource reports the difference between the time authority's clock
// and the local one. Implementations must never fail: on sync problems they
// return the last known (or zero) offset.
type TimeOffsetSource interface {
	Offset(ctx context.Context) time.Duration
}

// Generator produces Steam Guard codes from shared secrets.
type Generator struct {
	timeSource TimeOffsetSource
	now        func() time.Time
}

func New(timeSource TimeOffsetSource) *Generator {
	return &Generator{
		timeSource: timeSource,
		now:        time.Now,
	}
}

// Code generates the Guard code for the current 30-second window.
func (g *Generator) Code(ctx context.Context, sharedSecret string) (string, error) {
	offset := g.timeSource.Offset(ctx)
	window := (g.now().Add(offset).Unix()) / windowSeconds
	return CodeAt(sharedSecret, window)
}

// CodeFor loads the credential bundle at bundlePath and generates a code
// from its shared secret.
func (g *Generator) CodeFor(ctx context.Context, bundlePath string) (string, error) {
	bundle, err := LoadBundle(bundlePath)
	if err != nil {
		return "", err
	}
	return g.Code(ctx, bundle.SharedSecret)
}

// CodeAt computes the Guard code for an explicit time window. Deterministic:
// the same secret and window always yield the same code.
func CodeAt(sharedSecret string, window int64) (string, error) {
	key, err := base64.StdEncoding.DecodeString(sharedSecret)
	if err != nil {
		return "", fmt.Errorf("%w: shared secret is not valid base64: %v", ErrBadBundle, err)
	}
	if len(key) == 0 {
		return "", fmt.Errorf("%w: shared secret is empty", ErrBadBundle)
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], uint64(window))

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	digest := mac.Sum(nil)

	start := digest[len(digest)-1] & 0xF
	value := binary.BigEndian.Uint32(digest[start:start+4]) & 0x7FFFFFFF

	code := make([]byte, codeLength)
	for i := range code {
		code[i] = codeChars[value%uint32(len(codeChars))]
		value /= uint32(len(codeChars))
	}
	return string(code), nil
}
