package composer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Sefyu24/Componentcn/internal/logger"
)

// DefaultReplyDelay is the simulated round-trip latency of the assistant.
const DefaultReplyDelay = 1200 * time.Millisecond

// State is the composer's externally visible flags.
type State struct {
	Draft      string
	DragActive bool
	Submitting bool
}

// EventKind classifies a mutation for subscribers.
type EventKind int

const (
	// EventLogAppended fires after a message is appended to the log.
	EventLogAppended EventKind = iota
	// EventStagingChanged fires after attachments are added, removed or reset.
	EventStagingChanged
	// EventStateChanged fires after the draft, drag or submitting flag changes.
	EventStateChanged
)

func (k EventKind) String() string {
	switch k {
	case EventLogAppended:
		return "log-appended"
	case EventStagingChanged:
		return "staging-changed"
	case EventStateChanged:
		return "state-changed"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after each mutation.
type Event struct {
	Kind    EventKind
	Message *Message // Set for EventLogAppended
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	State       State
	Messages    []Message
	Attachments []Attachment
}

// Option configures a Composer.
type Option func(*Composer)

// WithReplier sets the assistant backend. Defaults to a SimulatedReplier with
// DefaultReplyDelay.
func WithReplier(r Replier) Option {
	return func(c *Composer) { c.replier = r }
}

// WithClock sets the time source used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Composer) { c.now = now }
}

// WithHandles sets the preview-handle store.
func WithHandles(store HandleStore) Option {
	return func(c *Composer) { c.handles = store }
}

// WithIDs sets the generator for message and attachment IDs.
func WithIDs(newID func() string) Option {
	return func(c *Composer) { c.newID = newID }
}

// Composer is the chat composer state machine. It is not safe for concurrent
// use; drive it from one goroutine.
type Composer struct {
	draft   string
	staging staging
	log     messageLog
	handles HandleStore
	drag    DragTracker

	submitting bool
	pending    *Pending
	seq        uint64

	replier Replier
	now     func() time.Time
	newID   func() string

	subscribers []func(Event)
	closed      bool
	logger      *slog.Logger
}

// New creates an idle composer with an empty log and staging area.
func New(opts ...Option) *Composer {
	c := &Composer{
		replier: SimulatedReplier{Delay: DefaultReplyDelay},
		now:     time.Now,
		newID:   uuid.NewString,
		logger:  logger.ComponentLogger("Composer"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.handles == nil {
		c.handles = NewHandleArena()
	}
	c.staging = staging{handles: c.handles, newID: c.newID}
	return c
}

// Subscribe registers fn to be called after every mutation. Callbacks run
// synchronously on the caller's goroutine.
func (c *Composer) Subscribe(fn func(Event)) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Composer) emit(ev Event) {
	for _, fn := range c.subscribers {
		fn(ev)
	}
}

// SetDraft replaces the unsent text.
func (c *Composer) SetDraft(text string) {
	if c.closed || text == c.draft {
		return
	}
	c.draft = text
	c.emit(Event{Kind: EventStateChanged})
}

// Draft returns the unsent text.
func (c *Composer) Draft() string {
	return c.draft
}

// Ingest stages image payloads from src in order, dropping anything that is
// not an image. Returns the accepted attachments.
func (c *Composer) Ingest(src Source, payloads ...Payload) []Attachment {
	if c.closed {
		return nil
	}
	added := c.staging.add(src, payloads)
	if skipped := len(payloads) - len(added); skipped > 0 {
		c.logger.Debug("skipped non-image payloads", "source", src, "count", skipped)
	}
	if len(added) == 0 {
		return nil
	}
	c.logger.Debug("staged attachments", "source", src, "count", len(added), "staged", c.staging.len())
	c.emit(Event{Kind: EventStagingChanged})
	return added
}

// Remove drops the staged attachment with id, revoking its handle. Absent ids
// are a no-op.
func (c *Composer) Remove(id string) bool {
	if c.closed || !c.staging.remove(id) {
		return false
	}
	c.logger.Debug("removed attachment", "id", id, "staged", c.staging.len())
	c.emit(Event{Kind: EventStagingChanged})
	return true
}

// Reset clears the draft and every staged attachment.
func (c *Composer) Reset() {
	if c.closed {
		return
	}
	c.resetInput()
}

func (c *Composer) resetInput() {
	hadDraft := c.draft != ""
	c.draft = ""
	if n := c.staging.reset(); n > 0 {
		c.logger.Debug("reset staging", "revoked", n)
		c.emit(Event{Kind: EventStagingChanged})
	}
	if hadDraft {
		c.emit(Event{Kind: EventStateChanged})
	}
}

// CanSubmit reports whether Submit would be accepted right now.
func (c *Composer) CanSubmit() bool {
	if c.closed || c.submitting {
		return false
	}
	return strings.TrimSpace(c.draft) != "" || c.staging.len() > 0
}

// Submit commits the draft and staged attachments as a user message and
// starts the assistant reply. It returns nil when there is nothing to send or
// a submission is already in flight.
func (c *Composer) Submit() *Pending {
	if c.closed {
		return nil
	}
	if c.submitting {
		c.logger.Debug("submit ignored, already submitting", "seq", c.seq)
		return nil
	}
	text := strings.TrimSpace(c.draft)
	if text == "" && c.staging.len() == 0 {
		return nil
	}

	msg := Message{
		ID:        c.newID(),
		Role:      RoleUser,
		Content:   text,
		CreatedAt: c.now(),
		Images:    c.staging.commit(),
	}
	c.log.append(msg)
	c.emit(Event{Kind: EventLogAppended, Message: &msg})

	c.resetInput()

	c.seq++
	ctx, cancel := context.WithCancel(context.Background())
	c.pending = &Pending{
		Seq:     c.seq,
		Text:    text,
		ctx:     ctx,
		cancel:  cancel,
		replier: c.replier,
	}
	c.submitting = true
	c.logger.Debug("submitted", "seq", c.seq, "chars", len(text), "images", len(msg.Images))
	c.emit(Event{Kind: EventStateChanged})
	return c.pending
}

// Complete applies the result of Pending.Await. Replies for a submission that
// is no longer pending are ignored. A failed reply returns the composer to
// idle without appending anything. Returns true if an assistant message was
// appended.
func (c *Composer) Complete(r Reply) bool {
	if c.closed || c.pending == nil || r.Seq != c.pending.Seq {
		c.logger.Debug("stale reply dropped", "seq", r.Seq)
		return false
	}
	c.pending.cancel()
	c.pending = nil
	c.submitting = false

	if r.Err != nil {
		c.logger.Warn("reply failed", "seq", r.Seq, "error", r.Err)
		c.emit(Event{Kind: EventStateChanged})
		return false
	}

	msg := Message{
		ID:        c.newID(),
		Role:      RoleAssistant,
		Content:   r.Content,
		CreatedAt: c.now(),
	}
	c.log.append(msg)
	c.logger.Debug("reply appended", "seq", r.Seq)
	c.emit(Event{Kind: EventLogAppended, Message: &msg})
	c.emit(Event{Kind: EventStateChanged})
	return true
}

// CancelPending aborts the in-flight reply and returns to idle. The user
// message already in the log stays. Returns false when nothing is pending.
func (c *Composer) CancelPending() bool {
	if c.pending == nil {
		return false
	}
	c.pending.cancel()
	c.logger.Debug("reply cancelled", "seq", c.pending.Seq)
	c.pending = nil
	c.submitting = false
	if !c.closed {
		c.emit(Event{Kind: EventStateChanged})
	}
	return true
}

// SetDropZone sets the outer region used for drag-leave containment checks.
func (c *Composer) SetDropZone(zone Region) {
	c.drag.SetZone(zone)
}

// DragEnter marks a drag active over target.
func (c *Composer) DragEnter(target Region) {
	if c.closed {
		return
	}
	if c.drag.Enter(target) {
		c.emit(Event{Kind: EventStateChanged})
	}
}

// DragLeave handles the pointer leaving a region for related. The flag only
// clears when related is outside the drop zone.
func (c *Composer) DragLeave(related Region) {
	if c.closed {
		return
	}
	if c.drag.Leave(related) {
		c.emit(Event{Kind: EventStateChanged})
	}
}

// Drop ends a drag and stages the dropped payloads. The drag flag is always
// cleared, even if nothing was accepted.
func (c *Composer) Drop(payloads ...Payload) []Attachment {
	if c.closed {
		return nil
	}
	if c.drag.Clear() {
		c.emit(Event{Kind: EventStateChanged})
	}
	return c.Ingest(SourceDrop, payloads...)
}

// Close tears the composer down: the pending reply is cancelled and every
// handle held by staging or history is revoked. Safe to call more than once.
func (c *Composer) Close() {
	if c.closed {
		return
	}
	c.CancelPending()
	staged := c.staging.reset()
	history := 0
	for _, h := range c.log.handles() {
		if c.handles.Revoke(h) {
			history++
		}
	}
	c.drag.Clear()
	c.draft = ""
	c.closed = true
	c.subscribers = nil
	c.logger.Debug("closed", "staged_revoked", staged, "history_revoked", history)
}

// Closed reports whether Close has been called.
func (c *Composer) Closed() bool {
	return c.closed
}

// State returns the current flags.
func (c *Composer) State() State {
	return State{
		Draft:      c.draft,
		DragActive: c.drag.Active(),
		Submitting: c.submitting,
	}
}

// Messages returns a copy of the log.
func (c *Composer) Messages() []Message {
	return c.log.snapshot()
}

// Attachments returns a copy of the staging area in arrival order.
func (c *Composer) Attachments() []Attachment {
	return c.staging.snapshot()
}

// Handles returns the handle store so renderers can resolve previews.
func (c *Composer) Handles() HandleStore {
	return c.handles
}

// Snapshot returns read-only copies of state, log and staging.
func (c *Composer) Snapshot() Snapshot {
	return Snapshot{
		State:       c.State(),
		Messages:    c.Messages(),
		Attachments: c.Attachments(),
	}
}

// Pending is an in-flight assistant reply. Await may run on any goroutine;
// its result goes back to the composer through Complete.
type Pending struct {
	Seq  uint64
	Text string // Trimmed user text the reply answers

	ctx     context.Context
	cancel  context.CancelFunc
	replier Replier
}

// Reply is the outcome of a Pending.
type Reply struct {
	Seq     uint64
	Content string
	Err     error
}

// Await blocks until the replier answers or the submission is cancelled.
func (p *Pending) Await() Reply {
	content, err := p.replier.Reply(p.ctx, p.Text)
	return Reply{Seq: p.Seq, Content: content, Err: err}
}

// Context returns the context cancelled by CancelPending and Close.
func (p *Pending) Context() context.Context {
	return p.ctx
}
