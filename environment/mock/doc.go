/*
Package mock provides scriptable environments for testing code that drives
the mocker itself.

Env records Compile and CommitPayload calls without implementing the
network-installation hook, so it doubles as the unsupported environment
variant. MockableEnv adds SetNetwork and counts installations.

# Basic Usage

	env := mock.NewMockable(mock.Config{})
	m, _ := querymock.New(querymock.Config{Environment: env})
	// env.Network is now the installed transport
	// env.Commits() lists cache writes performed through m

# Validating Commits

	env := mock.NewMockable(mock.Config{
	  CommitValidator: func(desc operation.Descriptor, data map[string]any) error {
	    // decode, assert, return
	    return nil
	  },
	})
	// failures accumulate in env.Failures
*/
package mock
