package http

import (
	"bytes"
	"crypto/ed25519"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/Sigi3012/Midnight/internal/logger"
)

const (
	signatureHeader = "X-Signature-Ed25519"
	timestampHeader = "X-Signature-Timestamp"
)

// verifySignature rejects interaction requests that were not signed with the
// application key. Discord signs the timestamp header followed by the body.
func (h *Handler) verifySignature(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			log.Err(err).Str("func", "*Handler.verifySignature").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if err = verify(h.publicKey, r.Header.Get(signatureHeader), r.Header.Get(timestampHeader), body); err != nil {
			log.Warn().Err(err).Str("func", "*Handler.verifySignature").Msg("rejected interaction")
			http.Error(w, "invalid request signature", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func verify(key ed25519.PublicKey, signature, timestamp string, body []byte) error {
	if signature == "" || timestamp == "" {
		return ErrMissingSignature
	}

	sig, err := hex.DecodeString(signature)
	if err != nil || len(sig) != ed25519.SignatureSize || len(key) != ed25519.PublicKeySize {
		return ErrInvalidSignature
	}

	msg := make([]byte, 0, len(timestamp)+len(body))
	msg = append(msg, timestamp...)
	msg = append(msg, body...)
	if !ed25519.Verify(key, msg, sig) {
		return ErrInvalidSignature
	}

	return nil
}
