// Package composer implements the chat composer state machine behind the
// playground's chat tab.
//
// A Composer owns three pieces of state:
//
//   - the message log, an append-only ordered history of user and assistant
//     turns;
//   - the staging area, the attachments collected but not yet sent, each
//     holding exactly one revocable preview handle;
//   - the submission controller, which moves Idle -> Submitting -> Idle around
//     a deferred assistant reply.
//
// All mutation happens through Composer methods on a single goroutine (the
// Bubble Tea update loop). The only work that leaves that goroutine is
// Pending.Await, which blocks on the Replier and hands its result back through
// Complete.
//
// Preview handles come from a HandleArena. Committing staged attachments into a
// message allocates fresh message-owned handles before the staging handles are
// revoked, so history images stay resolvable after the composer resets.
package composer
