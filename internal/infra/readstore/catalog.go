package readstore

import (
	"context"
	"strconv"
	"strings"

	"cane-market/internal/domain/catalog"
	"cane-market/internal/infra"
	"cane-market/internal/infra/db"
	"cane-market/internal/pkg/pgconv"
	"cane-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

const selectVarietySQL = `
SELECT id, name, soil_type, pests, diseases, image_url, created_at, updated_at
FROM varieties`

// Search pushes the filter's set-membership predicates into SQL:
// soil_type IN (...), text[] overlap for pests/diseases, ILIKE for
// name. Filters are ANDed; absent keys add no predicate.
func (r *CatalogReadStore) Search(ctx context.Context, filter catalog.SearchFilter) ([]*queries.VarietyView, error) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if len(filter.SoilTypes) > 0 {
		conds = append(conds, "soil_type = ANY("+arg(filter.SoilTypes)+")")
	}
	if len(filter.Pests) > 0 {
		conds = append(conds, "pests && "+arg(filter.Pests))
	}
	if len(filter.Diseases) > 0 {
		conds = append(conds, "diseases && "+arg(filter.Diseases))
	}
	if filter.Name != "" {
		conds = append(conds, "name ILIKE "+arg("%"+escapeLike(filter.Name)+"%"))
	}

	sql := selectVarietySQL
	if len(conds) > 0 {
		sql += "\nWHERE " + strings.Join(conds, " AND ")
	}
	sql += "\nORDER BY created_at, id"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search varieties", err)
	}
	defer rows.Close()

	return collectVarietyViews(rows)
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.VarietyView, error) {
	row := r.db.QueryRow(ctx, selectVarietySQL+"\nWHERE id = $1", id)
	view, err := scanVarietyView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("variety not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find variety by ID", err)
	}
	return view, nil
}

func collectVarietyViews(rows pgx.Rows) ([]*queries.VarietyView, error) {
	result := []*queries.VarietyView{}
	for rows.Next() {
		view, err := scanVarietyView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan variety", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read varieties", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVarietyView(row rowScanner) (*queries.VarietyView, error) {
	var (
		view                 queries.VarietyView
		imageURL             pgtype.Text
		createdAt, updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.Name, &view.SoilType, &view.Pests, &view.Diseases, &imageURL, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}

// escapeLike neutralizes LIKE metacharacters so the name filter stays
// a plain substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

