// Package main is regctl, an offline companion to the registration service.
// It runs the account-creation validator locally and lists the interest
// catalogue without needing a running server.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
