package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/archive"
	"github.com/aargomedo/astracore-backend/database"
	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/language"
	"github.com/aargomedo/astracore-backend/models"
	"github.com/aargomedo/astracore-backend/services"
)

type archiveHandler struct {
	responder   Responder
	logger      zerolog.Logger
	reader      *archive.Reader
	postRepo    *database.PostRepo
	commentRepo *database.CommentRepo
	language    *language.Preference
	baseURL     string
}

func newArchiveHandler(reader *archive.Reader, postRepo *database.PostRepo, commentRepo *database.CommentRepo, pref *language.Preference, baseURL string) archiveHandler {
	logger := log.With().Str("handlerName", "archiveHandler").Logger()

	return archiveHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		reader:      reader,
		postRepo:    postRepo,
		commentRepo: commentRepo,
		language:    pref,
		baseURL:     baseURL,
	}
}

// PostView is a post rendered for the active language, with the
// untranslated fields already resolved to their fallback.
type PostView struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Summary       string    `json:"summary"`
	Content       string    `json:"content,omitempty"`
	MainImage     string    `json:"main_image,omitempty"`
	GalleryImages []string  `json:"gallery_images,omitempty"`
	Tags          []string  `json:"tags"`
	Hashtags      []string  `json:"hashtags,omitempty"`
	Author        string    `json:"author"`
	CreatedAt     string    `json:"created_at"`
	Permalink     string    `json:"permalink,omitempty"`
}

// PostCollection is the archive listing. Content is omitted from list
// entries; the detail endpoint carries it.
type PostCollection struct {
	Posts    []PostView `json:"posts"`
	Total    int        `json:"total"`
	Language string     `json:"language"`
}

func (h archiveHandler) toView(post *models.Post, lang language.Lang, includeContent bool) PostView {
	view := PostView{
		ID:            post.ID,
		Title:         post.LocalizedTitle(string(lang)),
		Summary:       post.LocalizedSummary(string(lang)),
		MainImage:     post.MainImage,
		GalleryImages: post.GalleryImages,
		Tags:          post.Tags,
		Hashtags:      hashtagsForTags(post.Tags),
		Author:        post.Author,
		CreatedAt:     post.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Permalink:     services.BuildPostURL(h.baseURL, post.ID.String()),
	}
	if view.Tags == nil {
		view.Tags = []string{}
	}
	if includeContent {
		view.Content = post.LocalizedContent(string(lang))
	}
	return view
}

// getAllPosts lists the archive newest first, localized to the active
// language preference.
func (h archiveHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.reader.LoadPosts()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		lang := h.language.Get()
		views := make([]PostView, 0, len(posts))
		for _, post := range posts {
			views = append(views, h.toView(post, lang, false))
		}

		h.responder.WriteJSON(w, PostCollection{
			Posts:    views,
			Total:    len(views),
			Language: string(lang),
		})
	}
}

// getPost returns one post with its full content, and makes it the
// reader's active selection.
func (h archiveHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}
		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("post not found"))
			return
		}

		if err := h.reader.Select(post); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, h.toView(post, h.language.Get(), true))
	}
}

// CommentView mirrors the stored comment; comments are not translated.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	PostID    uuid.UUID `json:"post_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
}

func toCommentViews(comments []*models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		views = append(views, CommentView{
			ID:        c.ID,
			PostID:    c.PostID,
			Username:  c.Username,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return views
}

// getComments returns a post's thread oldest first.
func (h archiveHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.commentRepo.FindByPost(postID, true)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find comments", "comments", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"comments": toCommentViews(comments),
			"total":    len(comments),
		})
	}
}

type commentRequest struct {
	Username string `json:"username"`
	Content  string `json:"content"`
}

// submitComment accepts an unauthenticated comment on a post.
func (h archiveHandler) submitComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req commentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode comment request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("comment", err))
			return
		}

		if err := h.reader.SubmitComment(postID, req.Username, req.Content); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, map[string]string{
			"status":  "success",
			"message": "comment submitted",
		})
	}
}

// hashtagsForTags formats a post's tags as share-link hashtags,
// dropping tags that have no valid hashtag form.
func hashtagsForTags(tags []string) []string {
	var out []string
	for _, tag := range tags {
		if hashtag := services.FormatHashtag(tag); hashtag != "" {
			out = append(out, hashtag)
		}
	}
	return out
}

func parsePostID(r *http.Request) (uuid.UUID, error) {
	postIDStr := chi.URLParam(r, "postID")
	if postIDStr == "" {
		return uuid.Nil, errs.NewBadRequestError("missing postID")
	}

	postID, err := uuid.Parse(postIDStr)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("invalid postID")
	}
	return postID, nil
}
