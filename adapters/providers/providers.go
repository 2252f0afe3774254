// Package providers contains one VoiceSource per TTS engine: live clients
// for the hosted provider APIs and a static-file source for engines whose
// voice lists are pre-dumped to disk.
package providers

import (
	"net/http"
	"time"
)

// defaultFetchTimeout bounds every live voice-listing request. Provider
// outages must not hold an aggregate query open indefinitely.
const defaultFetchTimeout = 30 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: defaultFetchTimeout,
	}
}
