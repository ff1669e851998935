package chatsdk

import (
	"encoding/json"
	"net/http"
)

// envelope is the parsed shape of a raw HTTP response before it becomes a
// typed value or a classified error. Exactly one of the following holds
// per response:
//
//   - ok:        status 200 and the body decoded into the caller's target
//   - decodeErr: status 200 but the body was not well-formed
//   - apiErr:    status != 200 and the body decoded as an error envelope
//   - none:      status != 200 with no decodable error body
//
// The two malformed-body paths are intentionally asymmetric: a 200 with an
// unparseable body is a decode failure (protocol mismatch), while a non-200
// with an unparseable or absent body is an expected generic failure. Do not
// unify them.
type envelope struct {
	status    int
	ok        bool
	decodeErr error
	apiErr    *apiErrorBody
}

// parseEnvelope turns a raw status code and body into an envelope,
// decoding the success payload into out when the exchange succeeded.
// It never fails: decode problems are captured as data on the envelope.
func parseEnvelope(status int, body []byte, out any) envelope {
	if status == http.StatusOK {
		if err := json.Unmarshal(body, out); err != nil {
			return envelope{status: status, decodeErr: err}
		}
		return envelope{status: status, ok: true}
	}

	var apiErr apiErrorBody
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return envelope{status: status, apiErr: &apiErr}
	}

	// Empty or non-JSON bodies are expected on failure statuses.
	return envelope{status: status}
}
