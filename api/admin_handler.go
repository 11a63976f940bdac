package api

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/editor"
	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/session"
)

type adminHandler struct {
	responder Responder
	logger    zerolog.Logger
	editor    *editor.Editor
	gate      *session.Gate
	limiter   *session.LoginLimiter
}

func newAdminHandler(ed *editor.Editor, gate *session.Gate, limiter *session.LoginLimiter) adminHandler {
	logger := log.With().Str("handlerName", "adminHandler").Logger()

	return adminHandler{
		responder: NewResponder(logger),
		logger:    logger,
		editor:    ed,
		gate:      gate,
		limiter:   limiter,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login opens the admin gate. Attempts are rate limited per client
// address; a rejected attempt never reveals which field was wrong.
func (h adminHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		addr := clientAddr(r)
		if !h.limiter.Check(addr) {
			h.responder.WriteError(w, errs.NewApiErr(http.StatusTooManyRequests, "too many login attempts, try again later"))
			return
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if !h.gate.Login(req.Username, req.Password) {
			h.limiter.Record(addr)
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "admin session active",
		})
	}
}

// logout closes the gate. Always succeeds.
func (h adminHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.gate.Logout()
		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "admin session closed",
		})
	}
}

// createPost validates and inserts a new post through the edit buffer.
func (h adminHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var buf editor.Buffer
		if err := json.NewDecoder(r.Body).Decode(&buf); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}
		buf.ID = uuid.Nil

		post, err := h.editor.Save(buf)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONWithStatus(w, http.StatusCreated, post)
	}
}

// updatePost overwrites an existing post's editable fields.
func (h adminHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var buf editor.Buffer
		if err := json.NewDecoder(r.Body).Decode(&buf); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("post", err))
			return
		}
		buf.ID = postID

		post, err := h.editor.Save(buf)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deletePost removes a post. Requires confirm=true; comments on the
// post are left in place.
func (h adminHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		confirmed := r.URL.Query().Get("confirm") == "true"
		if err := h.editor.DeletePost(postID, confirmed); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}

// getComments lists a post's comments newest first for moderation.
func (h adminHandler) getComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parsePostID(r)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		comments, err := h.editor.ListComments(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"comments": toCommentViews(comments),
			"total":    len(comments),
		})
	}
}

// deleteComment removes one comment. Requires confirm=true.
func (h adminHandler) deleteComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commentIDStr := chi.URLParam(r, "commentID")
		if commentIDStr == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing commentID"))
			return
		}

		commentID, err := uuid.Parse(commentIDStr)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid commentID"))
			return
		}

		confirmed := r.URL.Query().Get("confirm") == "true"
		if err := h.editor.DeleteComment(commentID, confirmed); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "comment deleted successfully",
		})
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
