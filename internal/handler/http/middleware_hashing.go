package http

import (
	"bytes"
	"encoding/hex"
	"io"
	"net/http"

	"github.com/dterekhov/go-mem-sync/internal/utils"
)

// integrityHeader carries the hex-encoded HMAC-SHA256 signature of the raw
// request body, keyed with the relay's secret hash key.
const integrityHeader = "HashSHA256"

// withIntegrity verifies the body signature on unauthenticated mutating
// routes. Register and login run before any session token exists, so the
// shared hash key is the only thing tying a request to a legitimate client.
// When no hash key is configured the check is disabled.
func (h *Handler) withIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		requestHash := r.Header.Get(integrityHeader)
		if requestHash == "" {
			h.logger.Error().Str("func", "*Handler.withIntegrity").
				Msg("request carries no body signature")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.withIntegrity").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		hashedBody := hex.EncodeToString(utils.Hash(body))
		if hashedBody != requestHash {
			h.logger.Error().Str("func", "*Handler.withIntegrity").
				Str("hash from request", requestHash).
				Str("hashed body", hashedBody).
				Msg("hashes are not equal")
			http.Error(w, "Integrity check failed", http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
