package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/notesvc/notes-contract-tests/framework"
)

const defaultBaseURL = "http://localhost:3000"

type commandParams struct {
	baseURL  string
	filters  framework.RegexFilters
	debug    bool
	debugAll bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "base", defaultBaseURL, "base URL of the notes service under test")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	return true
}
