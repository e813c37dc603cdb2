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

// Key pairs are insert-only: no UPDATE or DELETE statements exist for this
// table, which is what keeps the write-once private key invariant honest.

func (r *PGRepo) CreateKeyPair(ctx context.Context, kp domain.KeyPair) (domain.KeyPair, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.key_pairs", r.schema)).
		Columns("owner_id", "public_key", "private_key").
		Values(kp.OwnerID, kp.PublicKey, kp.PrivateKey).
		Suffix("RETURNING id, owner_id, public_key, private_key, created_at")

	sqlStr, args, _ := q.ToSql()
	r.logger.Printf("CreateKeyPair: insert owner=%s", kp.OwnerID) // key material stays out of logs

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.KeyPair
	if err := row.Scan(&out.ID, &out.OwnerID, &out.PublicKey, &out.PrivateKey, &out.CreatedAt); err != nil {
		r.logger.Printf("CreateKeyPair scan error after %s: %v", time.Since(start), err)
		return domain.KeyPair{}, fmt.Errorf("%w: create key pair: %v", domain.ErrStorage, err)
	}
	r.logger.Printf("CreateKeyPair ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

func (r *PGRepo) KeyPairByID(ctx context.Context, id domain.KeyID) (domain.KeyPair, error) {
	q := r.qb().Select("id", "owner_id", "public_key", "private_key", "created_at").
		From(fmt.Sprintf("%s.key_pairs", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logger.Printf("KeyPairByID: id=%s", id)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.KeyPair
	if err := row.Scan(&out.ID, &out.OwnerID, &out.PublicKey, &out.PrivateKey, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("KeyPairByID not found in %s id=%s", time.Since(start), id)
			return domain.KeyPair{}, domain.ErrKeyNotFound
		}
		r.logger.Printf("KeyPairByID scan error after %s: %v", time.Since(start), err)
		return domain.KeyPair{}, fmt.Errorf("%w: key pair by id: %v", domain.ErrStorage, err)
	}
	r.logger.Printf("KeyPairByID ok in %s id=%s", time.Since(start), out.ID)
	return out, nil
}

// KeyPairsByOwner never selects the private_key column.
func (r *PGRepo) KeyPairsByOwner(ctx context.Context, owner domain.UserID) ([]domain.KeyPair, error) {
	q := r.qb().Select("id", "owner_id", "public_key", "created_at").
		From(fmt.Sprintf("%s.key_pairs", r.schema)).
		Where(sq.Eq{"owner_id": owner}).
		OrderBy("created_at DESC")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("KeyPairsByOwner", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("KeyPairsByOwner query error after %s: %v", time.Since(start), err)
		return nil, fmt.Errorf("%w: key pairs by owner: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var res []domain.KeyPair
	for rows.Next() {
		var kp domain.KeyPair
		if err := rows.Scan(&kp.ID, &kp.OwnerID, &kp.PublicKey, &kp.CreatedAt); err != nil {
			r.logger.Printf("KeyPairsByOwner scan error: %v", err)
			return nil, fmt.Errorf("%w: key pairs by owner: %v", domain.ErrStorage, err)
		}
		res = append(res, kp)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("KeyPairsByOwner rows error: %v", err)
		return nil, fmt.Errorf("%w: key pairs by owner: %v", domain.ErrStorage, err)
	}
	r.logger.Printf("KeyPairsByOwner ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}
