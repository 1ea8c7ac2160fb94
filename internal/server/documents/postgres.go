package documents

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/gophdocs/internal/api"
	"github.com/dmitrijs2005/gophdocs/internal/dbx"
	"github.com/dmitrijs2005/gophdocs/internal/server/migrations"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const documentColumns = `company_sig_date, company_signature_name, document_name, document_status,
		document_type, employee_number, employee_sig_date, employee_signature_name`

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
// Rows keep their insertion order through the seq column.
type PostgresRepository struct {
	db    dbx.DBTX
	newID func() string
}

var _ Repository = (*PostgresRepository)(nil)

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db, newID: uuid.NewString}
}

func fieldArgs(f api.DocumentFields) []any {
	return []any{
		f.CompanySigDate, f.CompanySignatureName, f.DocumentName, f.DocumentStatus,
		f.DocumentType, f.EmployeeNumber, f.EmployeeSigDate, f.EmployeeSignatureName,
	}
}

// List returns the owner's documents, never nil.
func (r *PostgresRepository) List(ctx context.Context, owner string) ([]api.Document, error) {
	query := `SELECT id, ` + documentColumns + `
		FROM documents WHERE owner = $1 ORDER BY seq`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to select documents: %w", err)
	}
	defer rows.Close()

	result := []api.Document{}
	for rows.Next() {
		var d api.Document
		if err := rows.Scan(
			&d.ID, &d.CompanySigDate, &d.CompanySignatureName, &d.DocumentName, &d.DocumentStatus,
			&d.DocumentType, &d.EmployeeNumber, &d.EmployeeSigDate, &d.EmployeeSignatureName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate documents: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Create(ctx context.Context, owner string, fields api.DocumentFields) (api.Document, error) {
	query := `INSERT INTO documents (id, owner, ` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	doc := api.Document{ID: r.newID(), DocumentFields: fields}
	args := append([]any{doc.ID, owner}, fieldArgs(fields)...)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return api.Document{}, fmt.Errorf("db error: %w", err)
	}
	return doc, nil
}

// Update replaces every field of the document; the id stays.
func (r *PostgresRepository) Update(ctx context.Context, owner, id string, fields api.DocumentFields) (api.Document, error) {
	query := `UPDATE documents SET
			company_sig_date = $3, company_signature_name = $4, document_name = $5, document_status = $6,
			document_type = $7, employee_number = $8, employee_sig_date = $9, employee_signature_name = $10
		WHERE owner = $1 AND id = $2`

	args := append([]any{owner, id}, fieldArgs(fields)...)
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return api.Document{}, fmt.Errorf("db error: %w", err)
	}
	if err := oneRow(res); err != nil {
		return api.Document{}, err
	}
	return api.Document{ID: id, DocumentFields: fields}, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, owner, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE owner = $1 AND id = $2`, owner, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return oneRow(res)
}

// oneRow maps the affected row count of a by-id statement: none means the id
// is not in the owner's list.
func oneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return ErrNotFound
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded PostgreSQL migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return gooseUpContext(ctx, db, ".")
}

// OpenPostgres connects to dsn through the pgx driver and migrates the schema.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}
	return db, nil
}
