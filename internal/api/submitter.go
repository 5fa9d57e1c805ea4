package api

import (
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// Guard error codes for submissions rejected before leaving the client.
const (
	ErrCodeSubmissionInProgress = "SUBMISSION_IN_PROGRESS"
	ErrCodeDuplicateSubmission  = "DUPLICATE_SUBMISSION"
)

// SendFunc performs the actual outbound call for a debounced submission.
type SendFunc func(payload interface{}) Response

// Submitter serializes manual-log submissions: rapid repeated triggers
// within the debounce window collapse into the last one, a structurally
// identical payload right after a successful send is suppressed, and a
// second submission while one is in flight is rejected with a
// user-visible message rather than queued.
type Submitter struct {
	mu        sync.Mutex
	debounce  time.Duration
	send      SendFunc
	timer     *time.Timer
	pending   interface{}
	pendingFp string
	callbacks []func(Response)
	inFlight  bool
	lastSent  string
	closed    bool
}

// NewSubmitter creates a submitter with the given debounce window.
func NewSubmitter(debounce time.Duration, send SendFunc) *Submitter {
	return &Submitter{debounce: debounce, send: send}
}

// Submit schedules a payload. done is invoked exactly once with the
// outcome, which may be a local rejection that never went out.
func (s *Submitter) Submit(payload interface{}, done func(Response)) {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		done(failure("Submission cancelled", ErrCodeSubmissionInProgress))
		return
	}
	if s.inFlight {
		s.mu.Unlock()
		util.LogDebug("Rejecting submission: one is already in progress")
		done(failure("A submission is already in progress", ErrCodeSubmissionInProgress))
		return
	}

	fp := fingerprint(payload)
	if fp != "" && fp == s.lastSent {
		s.mu.Unlock()
		util.LogDebug("Suppressing duplicate submission")
		done(failure("This entry was already submitted", ErrCodeDuplicateSubmission))
		return
	}

	s.pending = payload
	s.pendingFp = fp
	s.callbacks = append(s.callbacks, done)

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, s.flush)
	s.mu.Unlock()
}

// flush sends the collapsed pending payload.
func (s *Submitter) flush() {
	s.mu.Lock()
	if s.closed || s.pending == nil {
		s.mu.Unlock()
		return
	}
	payload := s.pending
	fp := s.pendingFp
	callbacks := s.callbacks
	s.pending = nil
	s.pendingFp = ""
	s.callbacks = nil
	s.inFlight = true
	s.mu.Unlock()

	resp := s.send(payload)

	s.mu.Lock()
	s.inFlight = false
	if resp.Success {
		s.lastSent = fp
	}
	s.mu.Unlock()

	for _, done := range callbacks {
		done(resp)
	}
}

// Close discards any pending debounce and guard state. In-flight requests
// are not interrupted; their callbacks still fire.
func (s *Submitter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	if s.timer != nil {
		s.timer.Stop()
	}
	s.pending = nil
	s.callbacks = nil
}

// fingerprint derives a structural identity for duplicate suppression.
// Payloads that fail to marshal never match anything.
func fingerprint(payload interface{}) string {
	data, err := sonic.Marshal(payload)
	if err != nil {
		return ""
	}
	return string(data)
}
