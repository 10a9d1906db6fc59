/*
Package memory provides an in-memory environment implementing the full
mockable capability set, for tests that need a working cache and transport
seam without a real data-fetching framework.

Execute stands in for the fetch a component under test would issue; it routes
through whatever network the mocker installed and returns the pending handle.
Lookup reads back whatever was committed, directly or through resolution.

	env := memory.New(memory.Config{})
	m, _ := querymock.New(querymock.Config{Environment: env})
	handle, _ := env.Execute(operation.Operation{Name: "UserQuery"}, nil, nil)
	// drive m.NetworkWrite(...), then assert on handle.Result()
*/
package memory
