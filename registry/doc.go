/*
Package registry implements the pending-fetch registry: an ordered record of
simulated in-flight network calls that tests settle by hand.

Every intercepted dispatch appends an Entry keyed by the operation's declared
name and returns a Handle that stays pending until a test resolves or rejects
it. Identifiers are not unique — concurrent dispatches of one operation share
a name — so resolution calls disambiguate by deep equality over recorded
variables.

# Matching Rules

Resolve and Reject scan entries in insertion order:

  - No entry with the identifier: the call fails with ErrNoMatch. When
    variables were supplied, the error carries their serialized form and a
    unified diff against every pending candidate.
  - Several entries share the identifier and no variables were supplied: the
    call fails with ErrAmbiguousMatch rather than silently picking one.
  - Variables supplied: the first entry (insertion order) whose recorded
    variables are deeply equal is settled; everything else stays pending.
    Two fully identical pending entries settle oldest-first by policy.

# Settlement

A matched entry is removed from the registry and its handle settles exactly
once; a later attempt against the same identifier and variables fails with
ErrNoMatch because the entry is gone. Continuations registered on the handle
run when the registry drains its scheduler queue, which happens synchronously
at the end of every Resolve and Reject call.

# Sharing

Default returns the process-wide registry shared by every mocker that was not
given its own. Tests that must not observe each other's pending fetches pass
a private registry via Config instead.
*/
package registry
