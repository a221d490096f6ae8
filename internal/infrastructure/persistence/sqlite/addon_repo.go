package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dumber-addons/internal/domain/entity"
	"github.com/bnema/dumber-addons/internal/domain/repository"
	"github.com/bnema/dumber-addons/internal/logging"
)

const (
	getAddonQuery = `SELECT id, name, version, summary, homepage, author, allowed_in_private_browsing, updated_at
FROM addons WHERE id = ?`

	saveAddonQuery = `INSERT INTO addons (id, name, version, summary, homepage, author, allowed_in_private_browsing, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    version = excluded.version,
    summary = excluded.summary,
    homepage = excluded.homepage,
    author = excluded.author,
    allowed_in_private_browsing = excluded.allowed_in_private_browsing,
    updated_at = excluded.updated_at`

	setPrivateBrowsingQuery = `INSERT INTO addons (id, name, version, allowed_in_private_browsing, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
    name = CASE WHEN excluded.name <> '' THEN excluded.name ELSE addons.name END,
    version = CASE WHEN excluded.version <> '' THEN excluded.version ELSE addons.version END,
    allowed_in_private_browsing = excluded.allowed_in_private_browsing,
    updated_at = excluded.updated_at`

	listPrivateBrowsingQuery = `SELECT id, name, version, summary, homepage, author, allowed_in_private_browsing, updated_at
FROM addons WHERE allowed_in_private_browsing = 1
ORDER BY name COLLATE NOCASE, id`
)

type addonRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewAddonRepository creates a new SQLite-backed addon repository.
func NewAddonRepository(db *sql.DB) repository.AddonRepository {
	return &addonRepo{db: db, now: time.Now}
}

func (r *addonRepo) Get(ctx context.Context, id string) (*repository.AddonRecord, error) {
	logging.FromContext(ctx).Debug().Str("addon_id", id).Msg("getting addon")

	rec, err := scanAddon(r.db.QueryRowContext(ctx, getAddonQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrAddonNotFound
		}
		return nil, fmt.Errorf("get addon %s: %w", id, err)
	}
	return rec, nil
}

func (r *addonRepo) Save(ctx context.Context, record *repository.AddonRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot save nil addon record")
		return errors.New("cannot save nil addon record")
	}
	if record.ID == "" {
		return errors.New("addon record id cannot be empty")
	}

	record.UpdatedAt = r.now().Unix()
	log.Debug().Str("addon_id", record.ID).Msg("saving addon")

	_, err := r.db.ExecContext(ctx, saveAddonQuery,
		record.ID,
		record.Name,
		record.Version,
		record.Metadata.Summary,
		record.Metadata.Homepage,
		record.Metadata.Author,
		boolToInt(record.AllowedInPrivateBrowsing),
		record.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save addon %s: %w", record.ID, err)
	}
	return nil
}

func (r *addonRepo) SetAllowedInPrivateBrowsing(ctx context.Context, addon entity.Addon, allowed bool) error {
	if addon.ID == "" {
		return errors.New("addon id cannot be empty")
	}

	logging.FromContext(ctx).Debug().
		Str("addon_id", addon.ID).
		Bool("allowed", allowed).
		Msg("setting private browsing access")

	_, err := r.db.ExecContext(ctx, setPrivateBrowsingQuery,
		addon.ID,
		addon.Name,
		addon.Version,
		boolToInt(allowed),
		r.now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("set private browsing for %s: %w", addon.ID, err)
	}
	return nil
}

func (r *addonRepo) ListAllowedInPrivateBrowsing(ctx context.Context) ([]*repository.AddonRecord, error) {
	rows, err := r.db.QueryContext(ctx, listPrivateBrowsingQuery)
	if err != nil {
		return nil, fmt.Errorf("list private browsing addons: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []*repository.AddonRecord
	for rows.Next() {
		rec, err := scanAddon(rows)
		if err != nil {
			return nil, fmt.Errorf("scan addon: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAddon(row rowScanner) (*repository.AddonRecord, error) {
	var (
		rec     repository.AddonRecord
		allowed int64
	)
	err := row.Scan(
		&rec.ID,
		&rec.Name,
		&rec.Version,
		&rec.Metadata.Summary,
		&rec.Metadata.Homepage,
		&rec.Metadata.Author,
		&allowed,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Metadata.AddonID = rec.ID
	rec.AllowedInPrivateBrowsing = allowed != 0
	return &rec, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
