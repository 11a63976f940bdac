package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/errs"
	"github.com/aargomedo/astracore-backend/services"
)

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	relay     *services.FormRelay
}

func newContactHandler(relay *services.FormRelay) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		relay:     relay,
	}
}

// submitContact validates a contact submission and forwards it to the
// external form relay. Nothing is stored locally.
func (h contactHandler) submitContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission services.ContactSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode contact request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("contact", err))
			return
		}

		if submission.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if submission.Email == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		}
		if submission.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
			return
		}

		if err := h.relay.Send(submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "submission relayed",
		})
	}
}
