package middleware

import (
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// ClientAddress : X-Forwarded-For и X-Real-IP учитываются только за доверенным прокси,
// иначе RemoteAddr остаётся адресом TCP соединения и клиент не может его подменить
func ClientAddress(trustProxyHeaders bool) func(http.Handler) http.Handler {
	if trustProxyHeaders {
		return chimiddleware.RealIP
	}
	return func(next http.Handler) http.Handler {
		return next
	}
}
