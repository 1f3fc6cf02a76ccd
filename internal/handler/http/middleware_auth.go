package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/clip-keeper/internal/app"
	"github.com/MKhiriev/clip-keeper/internal/logger"
	"github.com/MKhiriev/clip-keeper/internal/service"
	"github.com/MKhiriev/clip-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the token subject in the
// request context under [utils.AccountIDCtxKey]. Every rejection is a 401
// with a JSON error body whose message tells the client whether the token
// is missing, expired or otherwise unusable.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Str("func", "*Handler.auth").Msg("no bearer token")
			utils.WriteError(w, app.MsgNoAuthorization, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
				utils.WriteError(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
			default:
				log.Err(err).Msg("error occurred during parsing token")
				utils.WriteError(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			}
			return
		}

		if token.AccountID == "" {
			log.Err(ErrNoAccountInToken).Send()
			utils.WriteError(w, app.MsgNoAccountID, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithAccountID(ctx, token.AccountID)))
	})
}
