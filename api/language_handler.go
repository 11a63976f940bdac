package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/language"
)

type languageHandler struct {
	responder Responder
	logger    zerolog.Logger
	pref      *language.Preference
}

func newLanguageHandler(pref *language.Preference) languageHandler {
	logger := log.With().Str("handlerName", "languageHandler").Logger()

	return languageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		pref:      pref,
	}
}

func (h languageHandler) getLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.responder.WriteJSON(w, map[string]string{
			"language": string(h.pref.Get()),
		})
	}
}

// toggleLanguage flips ES<->EN, persists the choice, and returns the
// new value.
func (h languageHandler) toggleLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang, err := h.pref.Toggle()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"language": string(lang),
		})
	}
}
