package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/Rrrrein/FP-Kriptografi-Kelompok-5/internal/domain"
)

func (r *PGRepo) CreateDocument(ctx context.Context, doc domain.SignedDocument) (domain.SignedDocument, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.signed_documents", r.schema)).
		Columns("file_name", "storage_key", "signature", "signed_by_uid", "signed_by_email").
		Values(doc.FileName, doc.StorageKey, doc.Signature, doc.SignedBy.UID, doc.SignedBy.Email).
		Suffix("RETURNING id, file_name, storage_key, signature, signed_by_uid, signed_by_email, signed_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("CreateDocument", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.SignedDocument
	if err := row.Scan(
		&out.ID, &out.FileName, &out.StorageKey, &out.Signature,
		&out.SignedBy.UID, &out.SignedBy.Email, &out.SignedAt,
	); err != nil {
		r.logger.Printf("CreateDocument scan error after %s: %v", time.Since(start), err)
		return domain.SignedDocument{}, fmt.Errorf("%w: create document: %v", domain.ErrStorage, err)
	}
	r.logger.Printf("CreateDocument ok in %s id=%s name=%q", time.Since(start), out.ID, out.FileName)
	return out, nil
}

func (r *PGRepo) DocumentByID(ctx context.Context, id domain.DocID) (domain.SignedDocument, error) {
	q := r.qb().Select("id", "file_name", "storage_key", "signature", "signed_by_uid", "signed_by_email", "signed_at").
		From(fmt.Sprintf("%s.signed_documents", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("DocumentByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.SignedDocument
	if err := row.Scan(
		&out.ID, &out.FileName, &out.StorageKey, &out.Signature,
		&out.SignedBy.UID, &out.SignedBy.Email, &out.SignedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("DocumentByID not found in %s id=%s", time.Since(start), id)
			return domain.SignedDocument{}, domain.ErrDocNotFound
		}
		r.logger.Printf("DocumentByID scan error after %s: %v", time.Since(start), err)
		return domain.SignedDocument{}, fmt.Errorf("%w: document by id: %v", domain.ErrStorage, err)
	}
	r.logger.Printf("DocumentByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}
