package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/logx"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/mw"
	v1 "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1"
)

// HandlerRegister handles POST /api/register
type HandlerRegister struct {
	Log        *log.Logger
	Users      domain.UsersRepo
	Hasher     domain.PasswordHasher
	AdminToken string
}

type registerRequest struct {
	Token string `json:"token"` // admin token (from config)
	Email string `json:"email"`
	Pswd  string `json:"pswd"`
}

type registerResponse struct {
	Email string `json:"email"`
}

// Register godoc
// @Summary     Register new user
// @Description Creates an account; gated by the admin token from config.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "token, email, pswd"
// @Success     200 {object} domain.APIEnvelope{response=registerResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/register [post]
func (h *HandlerRegister) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	// JSON body, with form fallback for manual testing
	var req registerRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	} else {
		_ = r.ParseForm()
		req.Token = r.FormValue("token")
		req.Email = r.FormValue("email")
		req.Pswd = r.FormValue("pswd")
	}

	if req.Token == "" || req.Token != h.AdminToken {
		logx.Error(h.Log, reqID, op, "bad admin token", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	if !domain.ValidEmail(req.Email) || !domain.ValidPassword(req.Pswd) {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	hashStr, err := h.Hasher.Hash(req.Pswd)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), req.Email, []byte(hashStr))
	if err != nil {
		// possible unique conflict on email — map as bad params
		logx.Error(h.Log, reqID, op, "create user failed", err, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "email", u.Email)
	v1.WriteOKResponse(w, r, registerResponse{Email: u.Email})
}
