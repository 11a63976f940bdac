// Package archive is the public reading surface of the bilingual blog:
// post listing with auto-selection, per-post comment threads, and
// unauthenticated comment submission.
package archive

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/models"
)

// PostSource is the read-only slice of the remote content client the
// public reader needs.
type PostSource interface {
	FindAll() ([]*models.Post, error)
	FindByID(id uuid.UUID) (*models.Post, error)
}

// CommentSource covers reading and submitting comments.
type CommentSource interface {
	FindByPost(postID uuid.UUID, ascending bool) ([]*models.Comment, error)
	Add(comment *models.Comment) error
}

// Layout is decided once per reader from the client viewport.
type Layout int

const (
	// TwoPane shows list and detail side by side; loading the archive
	// auto-selects the newest post.
	TwoPane Layout = iota
	// SinglePane shows either the list or the detail view; selecting a
	// post switches to detail mode.
	SinglePane
)

// Mode is the single-pane view state.
type Mode int

const (
	ListMode Mode = iota
	DetailMode
)

// Draft holds the comment form state. Success clears only the content,
// keeping the username for repeat commenting; failure retains both for
// retry.
type Draft struct {
	Username string
	Content  string
}

var ErrSubmissionInFlight = errs.NewConflictError("a comment submission is already in flight")

type Reader struct {
	posts    PostSource
	comments CommentSource
	layout   Layout
	logger   zerolog.Logger

	mu         sync.Mutex
	selected   *models.Post
	thread     []*models.Comment
	mode       Mode
	draft      Draft
	submitting bool
}

func NewReader(posts PostSource, comments CommentSource, layout Layout, logger zerolog.Logger) *Reader {
	return &Reader{
		posts:    posts,
		comments: comments,
		layout:   layout,
		logger:   logger,
	}
}

// LoadPosts fetches all posts newest first. In a two-pane layout, when
// nothing is selected yet, the newest post is auto-selected (with its
// comment thread) as a side effect.
func (r *Reader) LoadPosts() ([]*models.Post, error) {
	posts, err := r.posts.FindAll()
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to fetch posts")
		return nil, errs.NewDatabaseError("find", "posts", err)
	}

	r.mu.Lock()
	noneSelected := r.selected == nil
	r.mu.Unlock()

	if noneSelected && r.layout == TwoPane && len(posts) > 0 {
		if err := r.Select(posts[0]); err != nil {
			// The list itself loaded; selection failure only costs the
			// initial thread fetch.
			r.logger.Error().Err(err).Msg("Auto-select failed")
		}
	}
	return posts, nil
}

// Select makes post the active one and fetches its comment thread
// fresh, oldest first. In a single-pane layout the view switches to
// detail mode.
func (r *Reader) Select(post *models.Post) error {
	if post == nil {
		return errs.NewBadRequestError("no post selected")
	}

	thread, err := r.comments.FindByPost(post.ID, true)
	if err != nil {
		return errs.NewDatabaseError("find", "comments", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.selected = post
	r.thread = thread
	if r.layout == SinglePane {
		r.mode = DetailMode
	}
	return nil
}

// Back returns a single-pane reader from detail to list mode. The
// selection is kept so reopening is cheap.
func (r *Reader) Back() {
	r.mu.Lock()
	r.mode = ListMode
	r.mu.Unlock()
}

// Selected returns the active post, or nil.
func (r *Reader) Selected() *models.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selected
}

// Thread returns the active post's comments, oldest first.
func (r *Reader) Thread() []*models.Comment {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*models.Comment, len(r.thread))
	copy(out, r.thread)
	return out
}

// Mode returns the current single-pane view mode.
func (r *Reader) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// CurrentDraft returns the comment form state.
func (r *Reader) CurrentDraft() Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draft
}

// SubmitComment validates and submits a comment for postID. Both
// fields are required; an empty one rejects locally with no remote
// call. While a submission is in flight further submissions are
// refused. On success the draft's content is cleared (username kept)
// and the thread for the active post is refreshed; on failure the
// draft is retained untouched. Never retried automatically.
func (r *Reader) SubmitComment(postID uuid.UUID, username, content string) error {
	if username == "" {
		return errs.NewMissingRequiredFieldError("username")
	}
	if content == "" {
		return errs.NewMissingRequiredFieldError("content")
	}

	r.mu.Lock()
	if r.submitting {
		r.mu.Unlock()
		return ErrSubmissionInFlight
	}
	r.submitting = true
	r.draft = Draft{Username: username, Content: content}
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.submitting = false
		r.mu.Unlock()
	}()

	comment := &models.Comment{
		PostID:   postID,
		Username: username,
		Content:  content,
	}
	if err := r.comments.Add(comment); err != nil {
		return errs.NewDatabaseError("create", "comment", err)
	}

	r.mu.Lock()
	r.draft.Content = ""
	refresh := r.selected != nil && r.selected.ID == postID
	r.mu.Unlock()

	if refresh {
		thread, err := r.comments.FindByPost(postID, true)
		if err != nil {
			r.logger.Error().Err(err).Msg("Failed to refresh comment thread")
			return nil
		}
		r.mu.Lock()
		r.thread = thread
		r.mu.Unlock()
	}
	return nil
}
