/*
Package operation models named query and mutation references, their variable
mappings, and the compiled descriptors an environment uses for cache access.

Identifier derives the correlation key used by the pending-fetch registry. It
is the operation's declared name and nothing else, so concurrent dispatches of
the same operation collide on one identifier and must be told apart by their
variables.

StripUnused normalizes a variable mapping before it is recorded or matched.
Identity bookkeeping fields under "input" (client_mutation_id / actor_id in
either naming convention) are overwritten with the Absent marker instead of
being deleted, keeping the mapping's shape stable for deep-equality checks:

	vars := operation.Variables{
	  "input": map[string]any{"name": "x", "clientMutationId": "7"},
	}
	operation.StripUnused(vars)
	// vars["input"].(map[string]any)["clientMutationId"] == operation.Absent
*/
package operation
