package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/tallerapp/finanzas-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// AdminKeyMiddleware protege las operaciones de escritura sobre tasas
// (resincronización forzada y tasa manual) con una clave administrativa
// adicional al rol. La clave viaja en el header y se compara contra el
// hash bcrypt configurado.
func AdminKeyMiddleware(adminKeyHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if adminKeyHash == "" {
				logrus.Warning("ADMIN_KEY_HASH no configurado; operación administrativa rechazada")
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminKey, "Clave administrativa no configurada", nil)
				return
			}

			key := r.Header.Get("X-Admin-Key")
			if key == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminKey, "Clave administrativa requerida", nil)
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(adminKeyHash), []byte(key)); err != nil {
				logrus.Warning("Clave administrativa inválida")
				apiErrors.WriteError(w, apiErrors.ErrInvalidAdminKey, "Clave administrativa inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
