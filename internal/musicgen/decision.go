package musicgen

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/h2non/filetype"
)

// Kind is the outcome class of one remote attempt.
type Kind int

const (
	// Success means the response carries playable audio.
	Success Kind = iota
	// Retry means the backend is transiently unavailable; wait and try again.
	Retry
	// Fallback means the remote path is abandoned for this request.
	Fallback
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Retry:
		return "retry"
	case Fallback:
		return "fallback"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Decision is the classified result of one remote attempt.
type Decision struct {
	Kind   Kind
	Audio  []byte // set on Success
	Ext    string // file extension of Audio, without the dot
	Reason string // why the attempt did not succeed
}

// Decide classifies one attempt. It has no side effects.
//
//   - 200 with an audio body: Success
//   - 503 (model loading) or a timeout: Retry
//   - anything else: Fallback
func Decide(resp Response, err error) Decision {
	if err != nil {
		if isTimeout(err) {
			return Decision{Kind: Retry, Reason: fmt.Sprintf("timeout: %v", err)}
		}
		return Decision{Kind: Fallback, Reason: fmt.Sprintf("transport error: %v", err)}
	}

	switch resp.StatusCode {
	case http.StatusOK:
		kind, mErr := filetype.Audio(resp.Body)
		if mErr != nil || kind == filetype.Unknown {
			return Decision{Kind: Fallback, Reason: fmt.Sprintf("response is not audio (%d bytes)", len(resp.Body))}
		}
		return Decision{Kind: Success, Audio: resp.Body, Ext: kind.Extension}
	case http.StatusServiceUnavailable:
		return Decision{Kind: Retry, Reason: "service unavailable (model loading)"}
	default:
		return Decision{Kind: Fallback, Reason: fmt.Sprintf("status %d: %s", resp.StatusCode, snippet(resp.Body))}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// snippet trims an error body for logging.
func snippet(body []byte) string {
	const limit = 200
	if len(body) > limit {
		return string(body[:limit]) + "..."
	}
	return string(body)
}
