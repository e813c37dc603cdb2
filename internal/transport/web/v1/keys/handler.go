package keys

import (
	"log"
	"net/http"
	"time"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/signing"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/logx"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/mw"
	v1 "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1"
)

type Handler struct {
	Log     *log.Logger
	Custody *signing.Custody
}

type createKeyResponse struct {
	KeyID     domain.KeyID `json:"key_id"`
	PublicKey []byte       `json:"public_key"`
	// Returned exactly once, in this response. Signing never accepts
	// client-held private keys; this is a convenience export only.
	PrivateKey []byte    `json:"private_key"`
	CreatedAt  time.Time `json:"created_at"`
}

// Create godoc
// @Summary     Generate key pair
// @Description Generates an RSA-2048 pair under server custody. The private key appears in this response only and is never retrievable again.
// @Tags        keys
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{response=createKeyResponse}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /api/keys [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "keys.create"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	me, ok := mw.IdentityFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	kp, err := h.Custody.Generate(r.Context(), me)
	if err != nil {
		logx.Error(h.Log, reqID, op, "generate failed", err, "owner", me.UID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "key_id", kp.ID, "owner", me.UID)
	v1.WriteOKResponse(w, r, createKeyResponse{
		KeyID:      kp.ID,
		PublicKey:  kp.PublicKey,
		PrivateKey: kp.PrivateKey,
		CreatedAt:  kp.CreatedAt,
	})
}

// List godoc
// @Summary     List own key pairs
// @Description Lists the caller's key pairs, public halves only.
// @Tags        keys
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{data=[]domain.KeyPair}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /api/keys [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "keys.list"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	me, ok := mw.IdentityFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	list, err := h.Custody.ListByOwner(r.Context(), me.UID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "list failed", err, "owner", me.UID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "owner", me.UID, "count", len(list))
	v1.WriteOKData(w, r, list)
}
