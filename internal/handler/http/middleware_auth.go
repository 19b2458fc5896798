package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-nexus-keeper/internal/logger"
	"github.com/MKhiriev/go-nexus-keeper/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// The token must be an HS256 JWT signed with the server key, carry the
// configured issuer and not be expired. On success the node name from the
// subject claim is stored under [utils.NodeCtxKey] and added to the
// request logger. Every rejection is answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.tokens.TokenSignKey, h.tokens.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, ErrInvalidToken.Error(), http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.NodeCtxKey, token.Node)

		l := log.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("node", token.Node)
		})

		next.ServeHTTP(w, r.WithContext(l.WithContext(ctx)))
	})
}
