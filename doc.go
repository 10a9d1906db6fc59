/*
Package querymock intercepts a data-fetching environment's network transport
so tests can deterministically resolve or reject in-flight queries, or write
payloads straight into the environment's cache. No real network, no server,
no timers: every fetch stays pending until the test settles it by hand.

Why use querymock?

  - Deterministic tests: dispatched fetches settle only when you say so, in
    the order you say so.
  - Inspectable state: IsLoading tells you a fetch for an operation is
    outstanding before you drive its resolution.
  - Cache seeding: DataWrite commits a payload without any fetch at all.

Quick start

	env := memory.New(memory.Config{})
	m, _ := querymock.New(querymock.Config{Environment: env})

	// Code under test dispatches a fetch through the environment.
	handle, _ := env.Execute(operation.Operation{Name: "UserQuery"}, nil, nil)

	// The test plays the server.
	_ = m.NetworkWrite(querymock.ResolveRequest{
	  Operation: operation.Operation{Name: "UserQuery"},
	  Payload:   querymock.Payload{Data: map[string]any{"user": "ada"}},
	})

	payload, err := handle.Result() // settled before NetworkWrite returned

Matching

Pending fetches are keyed by the operation's declared name alone. When two
dispatches of one operation are outstanding, resolution calls must supply
variables; the registry matches by deep equality over the recorded (stripped)
variables and fails loudly on ambiguity or on no match rather than guessing.

Environment variants

New checks the environment's capabilities rather than its concrete type.
Environments implementing environment.Mockable get a replacement network
installed exactly once, shared across every mocker wrapping them; anything
else is wrapped with a logged warning, and later network writes fail with
ErrNetworkNotMocked.
*/
package querymock
