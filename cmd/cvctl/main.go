package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for different failure modes
const (
	ExitSuccess      = 0
	ExitBackendError = 1 // The backend rejected or failed a request
	ExitError        = 2 // Usage, configuration or local I/O error
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)

		var backendErr *BackendError
		if errors.As(err, &backendErr) {
			os.Exit(ExitBackendError)
		}
		os.Exit(ExitError)
	}
}
