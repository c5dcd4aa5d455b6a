package middleware

import (
	"net/http"

	"github.com/giftdash/giftdash-backend/api/responses"
	"github.com/giftdash/giftdash-backend/pkg/enums"
	pkgerrors "github.com/giftdash/giftdash-backend/pkg/errors"
	"github.com/giftdash/giftdash-backend/pkg/logger"
)

// RequireUserType rejects requests whose authenticated account is not one of
// the allowed types.
func RequireUserType(logg *logger.Logger, allowed ...enums.UserType) func(http.Handler) http.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, t := range allowed {
		allowedSet[string(t)] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := allowedSet[UserTypeFromContext(r.Context())]; !ok {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "account type not allowed"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
