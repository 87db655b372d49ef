package library

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invalid_regular_expression
const pgInvalidRegex = "2201B"

// bookRows expands every author's books array, keeping document order.
const bookRows = `
	FROM authors a
	CROSS JOIN LATERAL jsonb_array_elements(COALESCE(a.doc->'books', '[]'::jsonb))
		WITH ORDINALITY AS e(b, ord)`

// PostgresRepo keeps author documents in a JSONB column, one row per author.
type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// EnsureSchema creates the authors table and its genre index when missing.
func (r *PostgresRepo) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			id  BIGSERIAL PRIMARY KEY,
			doc JSONB NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS authors_books_gin ON authors USING GIN ((doc->'books') jsonb_path_ops)`,
	}
	for _, s := range stmts {
		if _, err := r.db.Exec(ctx, s); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (r *PostgresRepo) BookNames(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT e.b->>'book_name' AS name` + bookRows + `
		WHERE e.b->>'book_name' IS NOT NULL
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

func (r *PostgresRepo) AllBooks(ctx context.Context) ([]Book, error) {
	query := `SELECT e.b` + bookRows + `
		ORDER BY a.id, e.ord`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []Book{}
	for rows.Next() {
		var b Book
		if err := rows.Scan(&b); err != nil {
			return nil, err
		}
		b.normalize()
		books = append(books, b)
	}
	return books, rows.Err()
}

func (r *PostgresRepo) FindBook(ctx context.Context, name string) (Match, error) {
	return r.firstBook(ctx, `e.b->>'book_name' = $1`, name)
}

func (r *PostgresRepo) SearchBook(ctx context.Context, pattern string) (Match, error) {
	return r.firstBook(ctx, `e.b->>'book_name' ~* $1`, pattern)
}

func (r *PostgresRepo) firstBook(ctx context.Context, cond string, arg string) (Match, error) {
	query := `SELECT COALESCE(a.doc->>'author_name', ''), e.b` + bookRows + `
		WHERE ` + cond + `
		ORDER BY a.id, e.ord
		LIMIT 1`

	var m Match
	err := r.db.QueryRow(ctx, query, arg).Scan(&m.AuthorName, &m.Book)
	if err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return Match{}, ErrNotFound
		case errors.As(err, &pgErr) && pgErr.Code == pgInvalidRegex:
			return Match{}, ErrNotFound
		}
		return Match{}, err
	}
	m.Book.normalize()
	return m, nil
}

func (r *PostgresRepo) AppendReview(ctx context.Context, name, review string) error {
	query := `
		WITH target AS (
			SELECT a.id, (e.ord - 1)::int AS idx` + bookRows + `
			WHERE e.b->>'book_name' = $1
			ORDER BY a.id, e.ord
			LIMIT 1
		)
		UPDATE authors u
		SET doc = jsonb_set(
			u.doc,
			ARRAY['books', t.idx::text, 'reviews'],
			COALESCE(u.doc->'books'->t.idx->'reviews', '[]'::jsonb) || jsonb_build_array($2::text)
		)
		FROM target t
		WHERE u.id = t.id`

	tag, err := r.db.Exec(ctx, query, name, review)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) AuthorsWithGenre(ctx context.Context, genre string) ([]Author, error) {
	const query = `
		SELECT doc FROM authors
		WHERE doc->'books' @> jsonb_build_array(jsonb_build_object('genres', jsonb_build_array($1::text)))
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, genre)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []Author
	for rows.Next() {
		var a Author
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}
		a.normalize()
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *PostgresRepo) InsertAuthors(ctx context.Context, authors []Author) (int, error) {
	if len(authors) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, a := range authors {
		batch.Queue(`INSERT INTO authors (doc) VALUES ($1)`, a.normalized())
	}

	br := r.db.SendBatch(ctx, batch)
	defer br.Close()

	inserted := 0
	for range authors {
		tag, err := br.Exec()
		if err != nil {
			return inserted, fmt.Errorf("insert authors: %w", err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

func (r *PostgresRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
