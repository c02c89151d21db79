package main

import (
	"fmt"
	"os"

	"github.com/notesvc/notes-contract-tests/client"
	"github.com/notesvc/notes-contract-tests/notestests"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	fmt.Printf("Base: %s\n", params.baseURL)
	fmt.Println("Starting tests...")
	fmt.Println()

	api := notestests.NewNotesAPI(client.New(params.baseURL, nil))
	results, err := notestests.RunTestSuite(api, notestests.RunOptions{
		Filter:               params.filters.AsFilter,
		Out:                  os.Stdout,
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Test run aborted: %s\n", err)
		os.Exit(1)
	}

	results.Print(os.Stdout)
	if !results.OK() {
		os.Exit(1)
	}
}
