package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/models"
)

type fakePostStore struct {
	posts   map[uuid.UUID]*models.Post
	addErr  error
	calls   []string
	updated *models.Post
}

func newFakePostStore() *fakePostStore {
	return &fakePostStore{posts: make(map[uuid.UUID]*models.Post)}
}

func (f *fakePostStore) FindAll() ([]*models.Post, error) {
	f.calls = append(f.calls, "FindAll")
	out := make([]*models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePostStore) FindByID(id uuid.UUID) (*models.Post, error) {
	f.calls = append(f.calls, "FindByID")
	return f.posts[id], nil
}

func (f *fakePostStore) Add(post *models.Post) error {
	f.calls = append(f.calls, "Add")
	if f.addErr != nil {
		return f.addErr
	}
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.CreatedAt = time.Now()
	stored := *post
	f.posts[post.ID] = &stored
	return nil
}

func (f *fakePostStore) Update(post *models.Post) error {
	f.calls = append(f.calls, "Update")
	existing, ok := f.posts[post.ID]
	if !ok {
		return errors.New("record not found")
	}
	updated := *post
	updated.CreatedAt = existing.CreatedAt
	f.posts[post.ID] = &updated
	f.updated = &updated
	return nil
}

func (f *fakePostStore) Delete(id uuid.UUID) error {
	f.calls = append(f.calls, "Delete")
	delete(f.posts, id)
	return nil
}

type fakeCommentStore struct {
	comments map[uuid.UUID]*models.Comment
	deleted  []uuid.UUID
}

func newFakeCommentStore() *fakeCommentStore {
	return &fakeCommentStore{comments: make(map[uuid.UUID]*models.Comment)}
}

func (f *fakeCommentStore) FindByPost(postID uuid.UUID, ascending bool) ([]*models.Comment, error) {
	var out []*models.Comment
	for _, c := range f.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCommentStore) Delete(id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	delete(f.comments, id)
	return nil
}

type stubGate struct{ active bool }

func (s stubGate) Active() bool { return s.active }

func newTestEditor(posts PostStore, comments CommentStore, active bool) *Editor {
	return New(posts, comments, stubGate{active}, "operator", zerolog.Nop())
}

func TestOpenRequiresSession(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(newFakePostStore(), newFakeCommentStore(), false)
	err := ed.Open(nil)
	assert.ErrorIs(t, err, ErrSessionRequired)
	assert.False(t, ed.IsOpen())
}

func TestOpenTemplateBuffer(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(newFakePostStore(), newFakeCommentStore(), true)
	require.NoError(t, ed.Open(nil))

	buf, ok := ed.Buffer()
	require.True(t, ok)
	assert.Empty(t, buf.Title)
	assert.Equal(t, []string{}, buf.Tags)
	assert.Equal(t, uuid.Nil, buf.ID)
}

func TestOpenSeedsBufferFromPost(t *testing.T) {
	t.Parallel()

	post := &models.Post{
		ID:      uuid.New(),
		Title:   "Hola",
		TitleEN: "Hello",
		Content: "contenido",
		Tags:    []string{"golang"},
	}

	ed := newTestEditor(newFakePostStore(), newFakeCommentStore(), true)
	require.NoError(t, ed.Open(post))

	buf, ok := ed.Buffer()
	require.True(t, ok)
	assert.Equal(t, post.ID, buf.ID)
	assert.Equal(t, "Hola", buf.Title)
	assert.Equal(t, "Hello", buf.TitleEN)
	assert.Equal(t, []string{"golang"}, buf.Tags)
}

func TestAddTagDeduplicates(t *testing.T) {
	t.Parallel()

	ed := newTestEditor(newFakePostStore(), newFakeCommentStore(), true)
	require.NoError(t, ed.Open(nil))

	ed.AddTag("golang")
	ed.AddTag("golang")
	ed.AddTag("Golang") // case-sensitive: distinct
	ed.AddTag("")

	buf, _ := ed.Buffer()
	assert.Equal(t, []string{"golang", "Golang"}, buf.Tags)

	ed.RemoveTag("golang")
	buf, _ = ed.Buffer()
	assert.Equal(t, []string{"Golang"}, buf.Tags)
}

func TestSaveRejectsMissingFieldsLocally(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), true)

	_, err := ed.Save(Buffer{Content: "body"})
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	_, err = ed.Save(Buffer{Title: "titulo"})
	assert.True(t, errs.IsMissingRequiredFieldError(err))

	// Neither rejection reached the store.
	assert.Empty(t, posts.calls)
}

func TestSaveInsertsNewPostWithAuthor(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), true)

	saved, err := ed.Save(Buffer{Title: "titulo", Content: "cuerpo"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, "operator", saved.Author)
	assert.Equal(t, []string{}, []string(saved.Tags))
}

func TestSaveUpdatesExistingPost(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), true)

	original, err := ed.Save(Buffer{Title: "v1", Content: "cuerpo"})
	require.NoError(t, err)

	updated, err := ed.Save(Buffer{ID: original.ID, Title: "v2", Content: "cuerpo"})
	require.NoError(t, err)
	assert.Equal(t, original.ID, updated.ID)
	assert.Equal(t, "v2", updated.Title)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestSaveOpenClosesDialogOnSuccessOnly(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), true)
	require.NoError(t, ed.Open(nil))

	// Invalid buffer: dialog stays open for retry.
	_, err := ed.SaveOpen()
	require.Error(t, err)
	assert.True(t, ed.IsOpen())

	buf, _ := ed.Buffer()
	buf.Title = "titulo"
	buf.Content = "cuerpo"
	posts.addErr = errors.New("connection refused")

	// Remote failure: still open.
	_, err = ed.Save(buf)
	require.Error(t, err)
	assert.True(t, ed.IsOpen())

	// Editing an existing post end to end closes the dialog.
	posts.addErr = nil
	existing, err := ed.Save(Buffer{Title: "titulo", Content: "cuerpo"})
	require.NoError(t, err)

	require.NoError(t, ed.Open(existing))
	ed.AddTag("golang")
	saved, err := ed.SaveOpen()
	require.NoError(t, err)
	assert.False(t, ed.IsOpen())
	assert.Equal(t, []string{"golang"}, []string(saved.Tags))
}

func TestDeletePostRequiresConfirmation(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), true)

	saved, err := ed.Save(Buffer{Title: "titulo", Content: "cuerpo"})
	require.NoError(t, err)

	err = ed.DeletePost(saved.ID, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.NotContains(t, posts.calls, "Delete")

	require.NoError(t, ed.DeletePost(saved.ID, true))
	assert.Contains(t, posts.calls, "Delete")
}

func TestDeletePostLeavesCommentsInPlace(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	comments := newFakeCommentStore()
	ed := newTestEditor(posts, comments, true)

	saved, err := ed.Save(Buffer{Title: "titulo", Content: "cuerpo"})
	require.NoError(t, err)

	commentID := uuid.New()
	comments.comments[commentID] = &models.Comment{ID: commentID, PostID: saved.ID, Username: "ana", Content: "hola"}

	require.NoError(t, ed.DeletePost(saved.ID, true))

	// The orphaned comment survives under the deleted post's ID.
	assert.Empty(t, comments.deleted)
	remaining, err := comments.FindByPost(saved.ID, false)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteCommentRequiresConfirmation(t *testing.T) {
	t.Parallel()

	comments := newFakeCommentStore()
	ed := newTestEditor(newFakePostStore(), comments, true)

	commentID := uuid.New()
	comments.comments[commentID] = &models.Comment{ID: commentID}

	err := ed.DeleteComment(commentID, false)
	assert.ErrorIs(t, err, ErrNotConfirmed)

	require.NoError(t, ed.DeleteComment(commentID, true))
	assert.Equal(t, []uuid.UUID{commentID}, comments.deleted)
}

func TestOperationsRefusedWithoutSession(t *testing.T) {
	t.Parallel()

	posts := newFakePostStore()
	ed := newTestEditor(posts, newFakeCommentStore(), false)

	assert.Nil(t, ed.ListPosts())

	_, err := ed.Save(Buffer{Title: "t", Content: "c"})
	assert.ErrorIs(t, err, ErrSessionRequired)

	err = ed.DeletePost(uuid.New(), true)
	assert.ErrorIs(t, err, ErrSessionRequired)

	_, err = ed.ListComments(uuid.New())
	assert.ErrorIs(t, err, ErrSessionRequired)

	err = ed.DeleteComment(uuid.New(), true)
	assert.ErrorIs(t, err, ErrSessionRequired)

	assert.Empty(t, posts.calls)
}
