// Command users manages an in-memory directory of users from the command line.
// Every invocation starts from a fresh store, seeded unless users.seed is false.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-arrower/users"
	"github.com/go-arrower/users/cmd"
	usersinit "github.com/go-arrower/users/contexts/users/init"
)

func main() {
	ctx := context.Background()

	di, err := newApplication(ctx, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err = di.RootCmd.ExecuteContext(ctx)

	_ = di.Shutdown(ctx)

	if err != nil {
		os.Exit(1)
	}
}

// newApplication loads the configuration given by the --config flag in args
// and wires all Contexts into the returned Container.
func newApplication(ctx context.Context, args []string) (*users.Container, error) {
	conf, err := users.DefaultViper().Load(cmd.ConfigFile(args))
	if err != nil {
		return nil, err //nolint:wrapcheck // error is already prefixed
	}

	di, err := users.InitialiseDefaultDependencies(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("could not initialise dependencies: %w", err)
	}

	if _, err := usersinit.NewUsersContext(di); err != nil {
		return nil, fmt.Errorf("could not initialise users context: %w", err)
	}

	di.RootCmd.AddCommand(newStatusCmd(di))

	return di, nil
}
