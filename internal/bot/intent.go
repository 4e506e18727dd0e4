package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Callback uniques understood by the quiz flow.
const (
	uniqueOption  = "quiz_opt"
	uniqueConfirm = "quiz_confirm"
	uniqueDetails = "quiz_details"
	uniqueRestart = "quiz_restart"
)

var errUnknownIntent = errors.New("unknown callback intent")

// Intent is a callback command decoded once at the transport boundary.
// The engine never sees callback strings.
type Intent interface{ isIntent() }

// ToggleIntent flips one option of the current question. Option is the
// canonical index, independent of display order.
type ToggleIntent struct{ Option int }

// ConfirmIntent submits the pending selection.
type ConfirmIntent struct{}

// DetailsIntent requests the wrong-answer breakdown.
type DetailsIntent struct{}

// RestartIntent clears the session and re-offers the sections.
type RestartIntent struct{}

func (ToggleIntent) isIntent()  {}
func (ConfirmIntent) isIntent() {}
func (DetailsIntent) isIntent() {}
func (RestartIntent) isIntent() {}

// DecodeIntent turns a callback unique and its payload into a typed
// intent.
func DecodeIntent(unique, data string) (Intent, error) {
	switch unique {
	case uniqueOption:
		idx, err := strconv.Atoi(strings.TrimSpace(data))
		if err != nil {
			return nil, fmt.Errorf("bad option payload %q: %w", data, err)
		}
		return ToggleIntent{Option: idx}, nil
	case uniqueConfirm:
		return ConfirmIntent{}, nil
	case uniqueDetails:
		return DetailsIntent{}, nil
	case uniqueRestart:
		return RestartIntent{}, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownIntent, unique)
}
