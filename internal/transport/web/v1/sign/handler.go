package sign

import (
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/signing"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/logx"
	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/mw"
	v1 "github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/transport/web/v1"
)

type Handler struct {
	Log    *log.Logger
	Signer *signing.Signer
}

// Sign godoc
// @Summary     Sign an uploaded file
// @Description multipart: key_id + file. Signs the exact uploaded bytes with the caller's stored key, persists the bytes and the signed-document record.
// @Tags        sign
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       key_id formData string true "key pair id"
// @Param       file   formData file   true "file to sign"
// @Success     200 {object} domain.APIEnvelope{response=domain.SignedDocument}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     403 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Failure     503 {object} domain.APIEnvelope
// @Router      /api/sign [post]
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	const op = "sign.sign"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := mw.IdentityFromCtx(r.Context())
	if !ok {
		logx.Error(h.Log, reqID, op, "unauthorized", domain.ErrUnauth)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		logx.Error(h.Log, reqID, op, "parse form", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	keyID, err := uuid.Parse(r.FormValue("key_id"))
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad key id", err, "key_id_raw", r.FormValue("key_id"))
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	fh, hdr, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	defer fh.Close()

	// Buffer the whole file: the signature covers the exact byte sequence
	// and the same bytes go to storage. Bounded by MaxBytesReader upstream.
	data, err := io.ReadAll(fh)
	if err != nil {
		logx.Error(h.Log, reqID, op, "read file", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	mime := hdr.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	doc, err := h.Signer.Sign(r.Context(), me, keyID, hdr.Filename, mime, data)
	if err != nil {
		logx.Error(h.Log, reqID, op, "sign failed", err, "key_id", keyID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "doc_id", doc.ID, "key_id", keyID, "size", len(data))
	v1.WriteOKResponse(w, r, doc)
}
