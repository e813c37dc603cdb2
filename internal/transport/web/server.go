package web

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/config"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/auth"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/health"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/keys"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/sign"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1/verify"
)

type Server struct {
	log    *log.Logger
	server *http.Server
	cfg    *config.Config
}

func New(logger *log.Logger, cfg *config.Config, repos Repos, authDeps AuthDeps, svcs Services, storage domain.BlobStorage, cache domain.Cache) *Server {
	sub := func(name string) *log.Logger {
		return log.New(logger.Writer(), logger.Prefix()+"["+name+"] ", logger.Flags())
	}

	healthHandler := &health.Handler{Log: sub("health"), DB: repos.Users, Cache: cache, Storage: storage}
	registerHandler := &auth.HandlerRegister{Log: sub("register"), Users: repos.Users, Hasher: authDeps.Hasher, AdminToken: authDeps.AdminToken}
	loginHandler := &auth.HandlerLogin{Log: sub("login"), Users: repos.Users, Hasher: authDeps.Hasher, Tokens: authDeps.Tokens}
	logoutHandler := &auth.HandlerLogout{Log: sub("logout"), Tokens: authDeps.Tokens, Blacklist: authDeps.Blacklist}
	keysHandler := &keys.Handler{Log: sub("keys"), Custody: svcs.Custody}
	signHandler := &sign.Handler{Log: sub("sign"), Signer: svcs.Signer}
	verifyHandler := &verify.Handler{Log: sub("verify"), Verifier: svcs.Verifier, Docs: repos.Docs, Cache: cache, DocTTL: 60}

	srv := &http.Server{
		Addr: cfg.AppPort,
		Handler: newRouter(routerDeps{
			logger:    logger,
			auth:      authDeps,
			maxUpload: cfg.MaxUploadBytes(),
			health:    healthHandler,
			register:  registerHandler,
			login:     loginHandler,
			logout:    logoutHandler,
			keys:      keysHandler,
			sign:      signHandler,
			verify:    verifyHandler,
		}),
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		MaxHeaderBytes:    1 << 20,
		ReadHeaderTimeout: 2 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &Server{server: srv, cfg: cfg, log: logger}
}

func (ws *Server) Run() {
	ws.log.Printf("started on %s", ws.server.Addr)
	if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		ws.log.Fatalf("error: %v", err)
	}
}

func (ws *Server) Close(ctx context.Context) {
	if err := ws.server.Shutdown(ctx); err != nil {
		ws.log.Printf("forced to shutdown: %v", err)
	}
	ws.log.Println("exited gracefully")
}
