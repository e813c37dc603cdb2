package web

import (
	"log"
	"net/http"

	"github.com/justinas/alice"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/docs"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/mw"
	authv1 "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/auth"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/health"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/keys"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/sign"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/verify"
)

type routerDeps struct {
	logger    *log.Logger
	auth      AuthDeps
	maxUpload int64

	health   *health.Handler
	register *authv1.HandlerRegister
	login    *authv1.HandlerLogin
	logout   *authv1.HandlerLogout
	keys     *keys.Handler
	sign     *sign.Handler
	verify   *verify.Handler
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()
	authd := mw.AuthDeps{Tokens: d.auth.Tokens, Blacklist: d.auth.Blacklist}

	// health
	mux.HandleFunc("GET /api/healthz", d.health.Liveness)
	mux.HandleFunc("GET /api/readyz", d.health.Readiness)

	// access gate
	mux.HandleFunc("POST /api/register", d.register.Register)
	mux.HandleFunc("POST /api/auth", d.login.Login)
	mux.HandleFunc("DELETE /api/auth/{token}", d.logout.Logout)

	// key custody (authenticated)
	mux.Handle("POST /api/keys", mw.RequireAuth(authd, http.HandlerFunc(d.keys.Create)))
	mux.Handle("GET /api/keys", mw.RequireAuth(authd, http.HandlerFunc(d.keys.List)))

	// signing (authenticated, upload capped)
	mux.Handle("POST /api/sign", mw.RequireAuth(authd, limitBody(d.maxUpload, d.sign.Sign)))

	// verification surface (public by design)
	mux.HandleFunc("POST /api/verify", d.verify.Verify)
	mux.HandleFunc("GET /api/documents/{id}", d.verify.GetDocument)

	// swagger
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	chain := alice.New(mw.WithRequestID, mw.Logging(d.logger))
	return chain.Then(mux)
}

func limitBody(n int64, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, n)
		h(w, r)
	}
}
