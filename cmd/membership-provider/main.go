package main

import (
	"context"
	"os"

	"opencsg.com/github-team-membership/cmd/membership-provider/cmd"
)

func main() {
	command := cmd.RootCmd
	if err := command.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
