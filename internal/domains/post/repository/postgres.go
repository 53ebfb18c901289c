package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog-backend/internal/domains/post/model"
	"blog-backend/internal/shared/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const postColumns = `
	p.id, p.title, p.slug, p.content, p.excerpt, p.published,
	p.author_id, p.created_at, p.updated_at,
	u.name AS author_name, u.email AS author_email`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

// buildWhereClause turns a filter into SQL conditions plus bind args.
func buildWhereClause(filter model.PostFilter) (string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argIndex := 1

	if filter.Published != nil {
		conditions = append(conditions, fmt.Sprintf("p.published = $%d", argIndex))
		args = append(args, *filter.Published)
		argIndex++
	}

	if filter.AuthorID != "" {
		conditions = append(conditions, fmt.Sprintf("p.author_id = $%d", argIndex))
		args = append(args, filter.AuthorID)
		argIndex++
	}

	if search := strings.TrimSpace(filter.Search); search != "" {
		searchClause, searchArgs := buildSearchClause(search, argIndex)
		conditions = append(conditions, searchClause)
		args = append(args, searchArgs...)
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildSearchClause matches a query against title, content, and excerpt
// with case-insensitive substring matching. The whole phrase must match
// one of the fields, and additionally every individual word must match
// one of the fields, so multi-word queries narrow rather than widen.
// The term is trimmed so stray whitespace never lands in a pattern.
func buildSearchClause(search string, argIndex int) (string, []interface{}) {
	search = strings.TrimSpace(search)

	fieldMatch := func(idx int) string {
		return fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d OR p.excerpt ILIKE $%d)", idx, idx, idx)
	}

	clauses := []string{fieldMatch(argIndex)}
	args := []interface{}{"%" + search + "%"}
	argIndex++

	words := strings.Fields(search)
	if len(words) > 1 {
		for _, word := range words {
			clauses = append(clauses, fieldMatch(argIndex))
			args = append(args, "%"+word+"%")
			argIndex++
		}
	}

	return "(" + strings.Join(clauses, " AND ") + ")", args
}

// orderClause picks the sort order. Searches sort by title first so
// result pages stay stable while relevance is equal, everything else
// is newest-first.
func orderClause(filter model.PostFilter) string {
	if strings.TrimSpace(filter.Search) != "" {
		return "ORDER BY p.title ASC, p.created_at DESC"
	}
	return "ORDER BY p.created_at DESC"
}

func (r *postgresRepository) List(ctx context.Context, filter model.PostFilter, limit, offset int) ([]model.Post, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON p.author_id = u.id
		%s
		%s
		LIMIT $%d OFFSET $%d`,
		postColumns, whereClause, orderClause(filter), len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts query failed: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0, limit)
	for rows.Next() {
		var p model.Post
		if err := scanPost(rows, &p); err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts rows: %w", err)
	}

	return posts, nil
}

func (r *postgresRepository) Count(ctx context.Context, filter model.PostFilter) (int, error) {
	whereClause, args := buildWhereClause(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM posts p %s`, whereClause)

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id string) (*model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.id = $1`, postColumns)

	var p model.Post
	err := scanPost(r.pool.QueryRow(ctx, query, id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) FindBySlug(ctx context.Context, slug string) (*model.Post, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		JOIN users u ON p.author_id = u.id
		WHERE p.slug = $1`, postColumns)

	var p model.Post
	err := scanPost(r.pool.QueryRow(ctx, query, slug), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}
	return &p, nil
}

func (r *postgresRepository) Create(ctx context.Context, post *model.Post) error {
	if post.ID == "" {
		post.ID = utils.NewObjectID()
	}
	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts (id, title, slug, content, excerpt, published, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Content, post.Excerpt,
		post.Published, post.AuthorID, post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrSlugExists
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

// Update applies only the fields present in req and returns the updated
// row. The SET list is built dynamically so absent fields keep their
// stored values.
func (r *postgresRepository) Update(ctx context.Context, id string, req model.UpdatePostRequest) (*model.Post, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIndex := 1

	if req.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argIndex))
		args = append(args, *req.Title)
		argIndex++
	}
	if req.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argIndex))
		args = append(args, *req.Content)
		argIndex++
	}
	if req.Excerpt != nil {
		setClauses = append(setClauses, fmt.Sprintf("excerpt = $%d", argIndex))
		args = append(args, *req.Excerpt)
		argIndex++
	}
	if req.Published != nil {
		setClauses = append(setClauses, fmt.Sprintf("published = $%d", argIndex))
		args = append(args, *req.Published)
		argIndex++
	}

	if len(setClauses) == 0 {
		return nil, model.ErrNoUpdateFields
	}

	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", argIndex))
	args = append(args, time.Now().UTC())
	argIndex++

	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE posts SET %s
		WHERE id = $%d
		RETURNING id`, strings.Join(setClauses, ", "), argIndex)

	var updatedID string
	err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrPostNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}

	return r.FindByID(ctx, updatedID)
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func scanPost(row pgx.Row, p *model.Post) error {
	return row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.Published,
		&p.AuthorID, &p.CreatedAt, &p.UpdatedAt,
		&p.AuthorName, &p.AuthorEmail,
	)
}
