package memory_test

import (
	"errors"
	"testing"

	"github.com/querymock-project/querymock/environment"
	"github.com/querymock-project/querymock/environment/memory"
	"github.com/querymock-project/querymock/operation"
	"github.com/querymock-project/querymock/registry"
)

func TestExecuteWithoutNetwork(t *testing.T) {
	env := memory.New(memory.Config{})

	_, err := env.Execute(operation.Operation{Name: "Foo"}, nil, nil)
	if !errors.Is(err, memory.ErrNoNetwork) {
		t.Fatalf("expected ErrNoNetwork, got %v", err)
	}
}

func TestExecuteRoutesThroughNetwork(t *testing.T) {
	env := memory.New(memory.Config{})
	reg := registry.New(registry.Config{})

	env.SetNetwork(environment.NewNetwork(func(op operation.Operation, vars operation.Variables, cacheConfig any) *registry.Handle {
		entry := reg.Add(operation.Identifier(op), vars, cacheConfig, env.Compile(op, vars))
		return entry.Handle()
	}))

	handle, err := env.Execute(operation.Operation{Name: "Foo"}, operation.Variables{"a": 1}, "store-or-network")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if handle.Settled() {
		t.Error("expected a pending handle")
	}
	if !reg.IsLoading("Foo") {
		t.Error("expected the dispatch to be recorded")
	}
}

func TestCommitAndLookup(t *testing.T) {
	env := memory.New(memory.Config{})
	desc := env.Compile(operation.Operation{Name: "Foo", Kind: operation.Query}, operation.Variables{"a": 1})

	if _, ok := env.Lookup(desc); ok {
		t.Fatal("expected no record before commit")
	}

	env.CommitPayload(desc, map[string]any{"x": 1})

	data, ok := env.Lookup(desc)
	if !ok {
		t.Fatal("expected a record after commit")
	}
	if data["x"] != 1 {
		t.Errorf("expected committed data back, got %#v", data)
	}
	if env.Len() != 1 {
		t.Errorf("expected one record, got %d", env.Len())
	}

	// Same operation, different variables: a different record.
	other := env.Compile(operation.Operation{Name: "Foo", Kind: operation.Query}, operation.Variables{"a": 2})
	if _, ok := env.Lookup(other); ok {
		t.Error("expected variable-distinct descriptor to miss")
	}
}

func TestSeed(t *testing.T) {
	desc := operation.Descriptor{
		Operation: operation.Operation{Name: "Seeded", Kind: operation.Query},
		Variables: operation.Variables{"id": "1"},
	}
	env := memory.New(memory.Config{
		Seed: []memory.SeedRecord{{Descriptor: desc, Data: map[string]any{"x": 9}}},
	})

	data, ok := env.Lookup(desc)
	if !ok || data["x"] != 9 {
		t.Fatalf("expected seeded record, got %#v (ok=%v)", data, ok)
	}
}
