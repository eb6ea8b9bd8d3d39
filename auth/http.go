package auth

import (
	"encoding/json"
	"net/http"

	"github.com/Yulian302/lfusys-services-files/apperror"
)

// Middleware resolves the Authorization header of every request and rejects
// the ones that fail.
func (r *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		owner, err := r.Resolve(req.Context(), req.Header.Get("Authorization"))
		if err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(apperror.HTTPStatus(err))
			_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}

		next.ServeHTTP(w, req.WithContext(WithOwner(req.Context(), owner)))
	})
}
