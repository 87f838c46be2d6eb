package middleware

import (
	"net/http"

	"github.com/2beens/gymenergy/internal/telemetry/tracing"
	"github.com/2beens/gymenergy/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const AdminSecretHeader = "X-Admin-Secret"

//go:generate mockgen -source=$GOFILE -destination=admin_auth_mocks_test.go -package=middleware_test

type secretChecker interface {
	CheckPasswordHash(password, hash string) bool
}

type bcryptChecker struct{}

func (bcryptChecker) CheckPasswordHash(password, hash string) bool {
	return pkg.CheckPasswordHash(password, hash)
}

type AdminAuthMiddlewareHandler struct {
	adminSecretHash string
	checker         secretChecker
}

// NewAdminAuthMiddlewareHandler guards admin routes with a secret, compared against its bcrypt hash.
// An empty hash locks the admin routes completely.
func NewAdminAuthMiddlewareHandler(adminSecretHash string) *AdminAuthMiddlewareHandler {
	return newAdminAuthMiddlewareHandler(adminSecretHash, bcryptChecker{})
}

func newAdminAuthMiddlewareHandler(adminSecretHash string, checker secretChecker) *AdminAuthMiddlewareHandler {
	return &AdminAuthMiddlewareHandler{
		adminSecretHash: adminSecretHash,
		checker:         checker,
	}
}

func (h *AdminAuthMiddlewareHandler) AdminOnly() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.admin_auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				span.SetStatus(codes.Ok, "options-ok")
				next.ServeHTTP(w, r)
				return
			}

			if h.adminSecretHash == "" {
				log.Warnf("[admin auth] admin secret not configured, rejecting %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "admin-secret-not-configured")
				return
			}

			secret := r.Header.Get(AdminSecretHeader)
			if secret == "" {
				log.Tracef("[missing secret] [admin auth] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-admin-secret")
				return
			}

			if !h.checker.CheckPasswordHash(secret, h.adminSecretHash) {
				reqIP, _ := pkg.ReadUserIP(r)
				log.Errorf("[invalid secret] [admin auth] unauthorized => %s from %s", r.URL.Path, reqIP)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-admin-secret")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
