package verify

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/signing"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/logx"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/mw"
	v1 "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1"
)

// Handler serves the public verification surface. No auth on purpose:
// holding a document id and a public key is the only credential needed to
// check (not forge) authenticity.
type Handler struct {
	Log      *log.Logger
	Verifier *signing.Verifier
	Docs     domain.DocumentsRepo
	Cache    domain.Cache

	DocTTL int // seconds, metadata cache
}

type verifyRequest struct {
	DocumentID string `json:"document_id"`
	PublicKey  string `json:"public_key"` // base64 SPKI DER
}

// Verify godoc
// @Summary     Verify a signed document
// @Description Re-fetches the stored file bytes server-side and checks the stored signature against the supplied public key. valid=false is a result, not an error.
// @Tags        verify
// @Accept      json
// @Produce     json
// @Param       request body verifyRequest true "document_id, public_key (base64 SPKI)"
// @Success     200 {object} domain.APIEnvelope{response=domain.VerificationResult}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /api/verify [post]
func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	const op = "verify.verify"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start")

	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	if req.DocumentID == "" || req.PublicKey == "" {
		logx.Error(h.Log, reqID, op, "missing fields", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	docID, err := uuid.Parse(req.DocumentID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad document id", err, "doc_id_raw", req.DocumentID)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	res, err := h.Verifier.Verify(r.Context(), docID, req.PublicKey)
	if err != nil {
		logx.Error(h.Log, reqID, op, "verify failed", err, "doc_id", docID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "doc_id", docID, "valid", res.Valid)
	v1.WriteOKResponse(w, r, res)
}

// GetDocument godoc
// @Summary     Fetch signed-document metadata
// @Description Public metadata for a signed document: name, signature, signer snapshot. Never includes file content or a download URL.
// @Tags        verify
// @Produce     json
// @Param       id path string true "document id"
// @Success     200 {object} domain.APIEnvelope{data=domain.SignedDocument}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /api/documents/{id} [get]
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	const op = "verify.get_document"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "path", r.URL.Path)

	docID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad document id", err, "doc_id_raw", r.PathValue("id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// metadata cache on the public read path; miss or cache failure falls
	// through to the DB
	if b, err := h.Cache.Get(r.Context(), domain.CacheKeyDocMeta(docID)); err == nil && len(b) > 0 {
		var cached domain.SignedDocument
		if err := json.Unmarshal(b, &cached); err == nil {
			logx.Info(h.Log, reqID, op, "cache hit", "doc_id", docID)
			v1.WriteOKData(w, r, cached)
			return
		}
	}

	doc, err := h.Docs.DocumentByID(r.Context(), docID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "lookup failed", err, "doc_id", docID)
		v1.WriteDomainError(w, r, err)
		return
	}

	if buf, err := json.Marshal(doc); err == nil {
		_ = h.Cache.Set(r.Context(), domain.CacheKeyDocMeta(doc.ID), buf, h.DocTTL)
	}

	logx.Info(h.Log, reqID, op, "ok", "doc_id", doc.ID)
	v1.WriteOKData(w, r, doc)
}
