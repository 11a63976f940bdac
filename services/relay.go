package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/aargomedo/astracore-backend/errs"
)

// ContactSubmission is the payload forwarded to the third-party form
// relay.
type ContactSubmission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FormRelay forwards contact submissions to a hosted relay endpoint.
// The relay is opaque: one POST, success iff the status is in the 2xx
// range, response body never parsed.
type FormRelay struct {
	endpoint string
	client   *http.Client
}

func NewFormRelay(endpoint string) *FormRelay {
	return &FormRelay{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Send fires the submission at the relay. Not retried: a failure is
// reported once and the caller decides what to show.
func (f *FormRelay) Send(submission ContactSubmission) error {
	jsonPayload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("failed to marshal contact submission: %w", err)
	}

	req, err := http.NewRequest("POST", f.endpoint, bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach form relay: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused; the body itself is not our
	// contract.
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errs.NewRelayError(resp.StatusCode)
	}

	log.Info().Int("status", resp.StatusCode).Msg("Contact submission relayed")
	return nil
}
