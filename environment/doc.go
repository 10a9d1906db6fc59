/*
Package environment defines the contracts between the mocker and the
data-fetching environment it wraps.

Two interfaces split the environment surface. Environment is what any
variant provides: operation compilation and the commitPayload cache-write
entry point. Mockable adds the network-installation hook and marks the
supported variant: the mocker checks for it with a type assertion (a
capability check, not a concrete-type check) and only intercepts
environments that satisfy it. Wrapping anything else is allowed but leaves
the network unmocked.
*/
package environment
