package catalog

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// PostgresRepository stores plans in the pergola_plan table. Specs are kept
// as two parallel text[] columns so their order survives a round trip.
type PostgresRepository struct {
	db *sql.DB
}

const (
	createPlanTableQuery = `
		CREATE TABLE IF NOT EXISTS pergola_plan (
			plan_id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			slug TEXT NOT NULL,
			image TEXT,
			product_url TEXT,
			spec_labels TEXT[] NOT NULL DEFAULT '{}',
			spec_values TEXT[] NOT NULL DEFAULT '{}',
			position INT NOT NULL DEFAULT 0
		)
	`
	listPlansQuery = `
		SELECT plan_id, title, slug, image, product_url, spec_labels, spec_values
		FROM pergola_plan
		ORDER BY position, plan_id
	`
	getPlanByIDQuery = `
		SELECT plan_id, title, slug, image, product_url, spec_labels, spec_values
		FROM pergola_plan
		WHERE plan_id = $1
	`
	insertPlanQuery = `
		INSERT INTO pergola_plan (plan_id, title, slug, image, product_url, spec_labels, spec_values, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,(SELECT COALESCE(MAX(position), 0) + 1 FROM pergola_plan))
	`
	insertPlanAtQuery = `
		INSERT INTO pergola_plan (plan_id, title, slug, image, product_url, spec_labels, spec_values, position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`
	updatePlanQuery = `
		UPDATE pergola_plan
		SET title = $1,
			slug = $2,
			image = $3,
			product_url = $4,
			spec_labels = $5,
			spec_values = $6
		WHERE plan_id = $7
	`
	deletePlanQuery = `DELETE FROM pergola_plan WHERE plan_id = $1`
)

const uniqueViolation = "23505"

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the plan table when missing.
func (r *PostgresRepository) EnsureSchema() error {
	if _, err := r.db.Exec(createPlanTableQuery); err != nil {
		return fmt.Errorf("create pergola_plan: %w", err)
	}
	return nil
}

func (r *PostgresRepository) List() ([]Product, error) {
	rows, err := r.db.Query(listPlansQuery)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	out := make([]Product, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetByID(id string) (Product, error) {
	p, err := scanPlan(r.db.QueryRow(getPlanByIDQuery, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Product{}, ErrNotFound
		}
		return Product{}, fmt.Errorf("get plan %s: %w", id, err)
	}
	return p, nil
}

func (r *PostgresRepository) Create(p Product) (Product, error) {
	labels, values := splitSpecs(p.Specs)
	_, err := r.db.Exec(insertPlanQuery,
		p.ID,
		p.Title,
		p.Slug,
		nullString(p.Image),
		nullString(p.ProductURL),
		pq.Array(labels),
		pq.Array(values),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return Product{}, ErrDuplicate
		}
		return Product{}, fmt.Errorf("insert plan %s: %w", p.ID, err)
	}
	return p, nil
}

func (r *PostgresRepository) Update(id string, p Product) (Product, error) {
	labels, values := splitSpecs(p.Specs)
	result, err := r.db.Exec(updatePlanQuery,
		p.Title,
		p.Slug,
		nullString(p.Image),
		nullString(p.ProductURL),
		pq.Array(labels),
		pq.Array(values),
		id,
	)
	if err != nil {
		return Product{}, fmt.Errorf("update plan %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return Product{}, err
	}
	if affected == 0 {
		return Product{}, ErrNotFound
	}
	p.ID = id
	return p, nil
}

func (r *PostgresRepository) Delete(id string) error {
	result, err := r.db.Exec(deletePlanQuery, id)
	if err != nil {
		return fmt.Errorf("delete plan %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Reset deletes all plans and inserts the provided list in a single
// transaction, keeping the list order as catalog order.
func (r *PostgresRepository) Reset(plans []Product) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.Exec(`DELETE FROM pergola_plan`); err != nil {
		return fmt.Errorf("clear plans: %w", err)
	}
	for i, p := range plans {
		labels, values := splitSpecs(p.Specs)
		if _, err := tx.Exec(insertPlanAtQuery,
			p.ID,
			p.Title,
			p.Slug,
			nullString(p.Image),
			nullString(p.ProductURL),
			pq.Array(labels),
			pq.Array(values),
			i+1,
		); err != nil {
			return fmt.Errorf("insert plan %s: %w", p.ID, err)
		}
	}

	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(scanner rowScanner) (Product, error) {
	p := Product{}
	var (
		image      sql.NullString
		productURL sql.NullString
		labels     []string
		values     []string
	)
	if err := scanner.Scan(
		&p.ID,
		&p.Title,
		&p.Slug,
		&image,
		&productURL,
		pq.Array(&labels),
		pq.Array(&values),
	); err != nil {
		return Product{}, err
	}
	if image.Valid {
		p.Image = image.String
	}
	if productURL.Valid {
		p.ProductURL = productURL.String
	}
	p.Specs = joinSpecs(labels, values)
	return p, nil
}

func splitSpecs(specs []Spec) (labels, values []string) {
	labels = make([]string, len(specs))
	values = make([]string, len(specs))
	for i, s := range specs {
		labels[i] = s.Label
		values[i] = s.Value
	}
	return labels, values
}

// joinSpecs pairs labels with values; a short values column yields empty
// values rather than dropping labels.
func joinSpecs(labels, values []string) []Spec {
	specs := make([]Spec, len(labels))
	for i, l := range labels {
		specs[i].Label = l
		if i < len(values) {
			specs[i].Value = values[i]
		}
	}
	return specs
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
