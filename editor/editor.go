// Package editor implements the operator's content-management flow:
// the post edit buffer with its dialog state machine, tag editing,
// validated saves, and comment moderation. Every operation is gated
// behind an active admin session.
package editor

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/models"
)

// PostStore is the slice of the remote content client the editor needs.
type PostStore interface {
	FindAll() ([]*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
	Add(post *models.Post) error
	Update(post *models.Post) error
	Delete(id uuid.UUID) error
}

// CommentStore covers comment moderation. The editor never creates or
// edits comments.
type CommentStore interface {
	FindByPost(postID uuid.UUID, ascending bool) ([]*models.Comment, error)
	Delete(id uuid.UUID) error
}

// SessionGate is the admin capability check.
type SessionGate interface {
	Active() bool
}

var (
	ErrSessionRequired = errs.NewUnauthorizedError("admin session required")
	ErrNotConfirmed    = errs.NewBadRequestError("deletion requires confirmation")
	ErrNoOpenBuffer    = errs.NewBadRequestError("no post is being edited")
)

// Buffer is the in-progress edit state for one post. A zero ID means
// the buffer will insert a new post on save.
type Buffer struct {
	ID            uuid.UUID `json:"id,omitempty"`
	Title         string    `json:"title"`
	TitleEN       string    `json:"title_en"`
	Summary       string    `json:"summary"`
	SummaryEN     string    `json:"summary_en"`
	Content       string    `json:"content"`
	ContentEN     string    `json:"content_en"`
	MainImage     string    `json:"main_image"`
	GalleryImages []string  `json:"gallery_images,omitempty"`
	Tags          []string  `json:"tags"`
}

// BufferFromPost seeds an edit buffer from an existing post.
func BufferFromPost(p *models.Post) Buffer {
	return Buffer{
		ID:            p.ID,
		Title:         p.Title,
		TitleEN:       p.TitleEN,
		Summary:       p.Summary,
		SummaryEN:     p.SummaryEN,
		Content:       p.Content,
		ContentEN:     p.ContentEN,
		MainImage:     p.MainImage,
		GalleryImages: append([]string(nil), p.GalleryImages...),
		Tags:          append([]string(nil), p.Tags...),
	}
}

type Editor struct {
	posts    PostStore
	comments CommentStore
	gate     SessionGate
	author   string
	logger   zerolog.Logger

	mu  sync.Mutex
	buf *Buffer // nil while the dialog is closed
}

// New creates an Editor. author is the operator identity stamped on
// newly inserted posts.
func New(posts PostStore, comments CommentStore, gate SessionGate, author string, logger zerolog.Logger) *Editor {
	return &Editor{
		posts:    posts,
		comments: comments,
		gate:     gate,
		author:   author,
		logger:   logger,
	}
}

// ListPosts returns all posts newest first. Failures (including a
// closed gate) surface as an empty list plus a logged diagnostic; the
// caller never sees an error.
func (e *Editor) ListPosts() []*models.Post {
	if !e.gate.Active() {
		e.logger.Warn().Msg("ListPosts refused: no active admin session")
		return nil
	}
	posts, err := e.posts.FindAll()
	if err != nil {
		e.logger.Error().Err(err).Msg("Failed to list posts")
		return nil
	}
	return posts
}

// Open transitions the dialog from closed to open: a populated buffer
// when existing is non-nil, an all-empty template otherwise. Remote
// state is never touched.
func (e *Editor) Open(existing *models.Post) error {
	if !e.gate.Active() {
		return ErrSessionRequired
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	var buf Buffer
	if existing != nil {
		buf = BufferFromPost(existing)
	}
	if buf.Tags == nil {
		buf.Tags = []string{}
	}
	e.buf = &buf
	return nil
}

// Cancel closes the dialog and discards the buffer.
func (e *Editor) Cancel() {
	e.mu.Lock()
	e.buf = nil
	e.mu.Unlock()
}

// IsOpen reports whether an edit buffer is active.
func (e *Editor) IsOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf != nil
}

// Buffer returns a copy of the open buffer.
func (e *Editor) Buffer() (Buffer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.buf == nil {
		return Buffer{}, false
	}
	buf := *e.buf
	buf.Tags = append([]string(nil), e.buf.Tags...)
	buf.GalleryImages = append([]string(nil), e.buf.GalleryImages...)
	return buf, true
}

// AddTag appends tag to the open buffer unless it is empty or already
// present (case-sensitive exact match). No-op otherwise.
func (e *Editor) AddTag(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.buf == nil || tag == "" {
		return
	}
	for _, t := range e.buf.Tags {
		if t == tag {
			return
		}
	}
	e.buf.Tags = append(e.buf.Tags, tag)
}

// RemoveTag removes tag from the open buffer by exact match.
func (e *Editor) RemoveTag(tag string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.buf == nil {
		return
	}
	kept := e.buf.Tags[:0]
	for _, t := range e.buf.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	e.buf.Tags = kept
}

// Save validates and persists buf. The primary-language title and
// content must be non-empty; otherwise the save is rejected locally and
// no remote call is issued. A buffer carrying an ID updates every field
// except the identifier and creation timestamp; a zero-ID buffer
// inserts with the author defaulted to the operator identity. The
// refreshed post is returned on success.
func (e *Editor) Save(buf Buffer) (*models.Post, error) {
	if !e.gate.Active() {
		return nil, ErrSessionRequired
	}
	if buf.Title == "" {
		return nil, errs.NewMissingRequiredFieldError("title")
	}
	if buf.Content == "" {
		return nil, errs.NewMissingRequiredFieldError("content")
	}

	post := models.Post{
		ID:            buf.ID,
		Title:         buf.Title,
		TitleEN:       buf.TitleEN,
		Summary:       buf.Summary,
		SummaryEN:     buf.SummaryEN,
		Content:       buf.Content,
		ContentEN:     buf.ContentEN,
		MainImage:     buf.MainImage,
		GalleryImages: buf.GalleryImages,
		Tags:          buf.Tags,
		Author:        e.author,
	}
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if buf.ID != uuid.Nil {
		if err := e.posts.Update(&post); err != nil {
			return nil, errs.NewDatabaseError("update", "post", err)
		}
		return e.reload(post.ID)
	}

	if err := e.posts.Add(&post); err != nil {
		return nil, errs.NewDatabaseError("create", "post", err)
	}
	return e.reload(post.ID)
}

func (e *Editor) reload(id uuid.UUID) (*models.Post, error) {
	post, err := e.posts.FindByID(id)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "post", err)
	}
	if post == nil {
		return nil, errs.NewNotFoundError("post not found after save")
	}
	return post, nil
}

// SaveOpen saves the open buffer. On success the dialog closes; on any
// failure it stays open with the buffer retained for retry.
func (e *Editor) SaveOpen() (*models.Post, error) {
	buf, ok := e.Buffer()
	if !ok {
		return nil, ErrNoOpenBuffer
	}
	post, err := e.Save(buf)
	if err != nil {
		return nil, err
	}
	e.Cancel()
	return post, nil
}

// DeletePost removes one post. The caller must have confirmed
// interactively. Comments belonging to the post are deliberately left
// in place: they stay readable under the deleted post's ID.
func (e *Editor) DeletePost(id uuid.UUID, confirmed bool) error {
	if !e.gate.Active() {
		return ErrSessionRequired
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := e.posts.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "post", err)
	}
	return nil
}

// ListComments returns the moderation view of a post's comments,
// newest first.
func (e *Editor) ListComments(postID uuid.UUID) ([]*models.Comment, error) {
	if !e.gate.Active() {
		return nil, ErrSessionRequired
	}
	comments, err := e.comments.FindByPost(postID, false)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "comments", err)
	}
	return comments, nil
}

// DeleteComment removes one comment after interactive confirmation.
func (e *Editor) DeleteComment(id uuid.UUID, confirmed bool) error {
	if !e.gate.Active() {
		return ErrSessionRequired
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if err := e.comments.Delete(id); err != nil {
		return errs.NewDatabaseError("delete", "comment", err)
	}
	return nil
}
