package model

import (
	"time"

	"blog-backend/internal/shared/utils"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Post is the domain entity. AuthorName/AuthorEmail are joined data,
// populated only when the query joins the users table.
type Post struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Slug      string    `json:"slug" db:"slug"`
	Content   string    `json:"content" db:"content"`
	Excerpt   *string   `json:"excerpt" db:"excerpt"`
	Published bool      `json:"published" db:"published"`
	AuthorID  string    `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Joined data
	AuthorName  string `json:"-" db:"author_name"`
	AuthorEmail string `json:"-" db:"author_email"`
}

// AuthorSummary is the author projection embedded in post responses.
type AuthorSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// PostResponse is the response payload for a single post.
type PostResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Slug      string         `json:"slug"`
	Content   string         `json:"content"`
	Excerpt   *string        `json:"excerpt,omitempty"`
	Published bool           `json:"published"`
	AuthorID  string         `json:"author_id"`
	Author    *AuthorSummary `json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type DeletePostResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ToResponse converts Post to PostResponse.
func (p *Post) ToResponse() *PostResponse {
	resp := &PostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Slug:      p.Slug,
		Content:   p.Content,
		Excerpt:   p.Excerpt,
		Published: p.Published,
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}

	if p.AuthorName != "" || p.AuthorEmail != "" {
		resp.Author = &AuthorSummary{
			ID:    p.AuthorID,
			Name:  p.AuthorName,
			Email: p.AuthorEmail,
		}
	}

	return resp
}

// CreatePostRequest is the payload for creating a post. The slug is
// chosen by the client and must be lowercase-kebab.
type CreatePostRequest struct {
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	Content   string  `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Published bool    `json:"published"`
}

func (r CreatePostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(3, 100)),
		validation.Field(&r.Slug, validation.Required, validation.Length(3, 100),
			validation.By(validateSlug)),
		validation.Field(&r.Content, validation.Required, validation.Length(10, 0)),
		validation.Field(&r.Excerpt, validation.Length(0, 200)),
	)
}

func validateSlug(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil // Required handles absence
	}
	if !utils.IsValidSlug(s) {
		return ErrInvalidSlug
	}
	return nil
}

// UpdatePostRequest is the partial-update payload. Every field is a
// pointer so absent and zero-valued fields can be told apart.
type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Content   *string `json:"content"`
	Excerpt   *string `json:"excerpt"`
	Published *bool   `json:"published"`
}

// HasUpdates reports whether at least one field was provided.
func (r UpdatePostRequest) HasUpdates() bool {
	return r.Title != nil || r.Content != nil || r.Excerpt != nil || r.Published != nil
}

func (r UpdatePostRequest) Validate() error {
	if !r.HasUpdates() {
		return ErrNoUpdateFields
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.By(updatableText(3, 100))),
		validation.Field(&r.Content, validation.By(updatableText(10, 0))),
		validation.Field(&r.Excerpt, validation.Length(0, 200)),
	)
}

// updatableText validates an optional string field that, once provided,
// must satisfy the same constraints as on create. Length alone would
// wave an empty string through and blank a required column.
func updatableText(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		s, provided := indirectString(value)
		if !provided {
			return nil
		}
		return validation.Validate(s, validation.Required, validation.Length(min, max))
	}
}

func indirectString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}

// ListPostsRequest carries the query parameters of a list request.
// Published is tri-state: nil means the parameter was absent.
type ListPostsRequest struct {
	Published          *bool
	AuthorID           string
	Search             string
	IncludeUnpublished bool
	Page               int
	Limit              int
}
