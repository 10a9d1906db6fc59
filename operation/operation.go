package operation

// Kind identifies what sort of operation a name refers to.
type Kind string

// Operation kinds understood by the data-fetching environment.
const (
	Query        Kind = "query"
	Mutation     Kind = "mutation"
	Subscription Kind = "subscription"
)

// Variables holds the argument mapping supplied with an operation invocation.
type Variables map[string]any

// Operation is a named, uncompiled unit of a query or mutation. It is the
// reference handed to a transport before the environment binds variables.
type Operation struct {
	// Name is the operation's declared name.
	Name string

	// Kind identifies the operation as a query, mutation, or subscription.
	Kind Kind
}

// Descriptor is the compiled, variable-bound form of an Operation, used to
// read from and write into an environment's cache.
type Descriptor struct {
	Operation Operation
	Variables Variables
}

// Identifier derives the string used to correlate a dispatched call with a
// later manual resolution. It is exactly the operation's declared name: two
// calls with the same name but different variables share one identifier and
// are told apart only by variable equality.
func Identifier(op Operation) string {
	return op.Name
}

// AbsentValue marks a variable field that was stripped for matching. The key
// stays present so the mapping keeps its shape; only the value is blanked.
type AbsentValue struct{}

// Absent is the marker StripUnused writes over stripped fields.
var Absent = AbsentValue{}

// String implements fmt.Stringer for log and diff output.
func (AbsentValue) String() string { return "<absent>" }

// MarshalJSON renders the marker as a recognizable placeholder string.
func (AbsentValue) MarshalJSON() ([]byte, error) { return []byte(`"<absent>"`), nil }

// strippedFields are identity and bookkeeping fields that carry no meaning
// for test matching. Both naming conventions appear in the wild.
var strippedFields = []string{
	"client_mutation_id",
	"actor_id",
	"clientMutationId",
	"actorId",
}

// StripUnused blanks bookkeeping fields nested under "input" that are not
// meaningful for variable equality. The mapping is mutated in place and the
// same reference is returned; fields are set to Absent rather than deleted so
// the shape stays stable. Variables without an "input" mapping pass through
// unchanged.
func StripUnused(vars Variables) Variables {
	if vars == nil {
		return vars
	}

	input, ok := inputMapping(vars["input"])
	if !ok {
		return vars
	}

	for _, field := range strippedFields {
		if _, present := input[field]; present {
			input[field] = Absent
		}
	}
	return vars
}

// inputMapping normalizes the two mapping types callers supply for "input".
func inputMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Variables:
		return m, true
	default:
		return nil, false
	}
}
