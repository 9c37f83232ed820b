package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"go.uber.org/multierr"

	"github.com/reoring/lensmeta"
)

// errInvalid marks failures already reported to the user.
var errInvalid = errors.New("invalid input")

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
)

// fileError ties a failure to its input.
type fileError struct {
	name string
	err  error
}

func (e *fileError) Error() string { return e.name + ": " + e.err.Error() }

func (e *fileError) Unwrap() error { return e.err }

func printOK(name, what string) {
	fmt.Printf("%s %s %s\n", okColor.Sprint("ok"), name, what)
}

func printWarnings(name string, iss lensmeta.Issues) {
	for _, it := range iss {
		fmt.Fprintf(os.Stderr, "%s %s: %q: %s\n", warnColor.Sprint("warn"), name, it.Path.String(), it.Message)
	}
}

// report prints a failure and returns the error to aggregate.
func report(name string, err error) error {
	if iss, ok := lensmeta.AsIssues(err); ok {
		fmt.Printf("%s %s\n%s\n", failColor.Sprint("FAIL"), name, lensmeta.FormatIssues(iss))
		return &fileError{name: name, err: errInvalid}
	}
	fmt.Fprintf(os.Stderr, "%s %s: %v\n", failColor.Sprint("error"), name, err)
	return &fileError{name: name, err: err}
}

// summarize logs the per-file failures and returns them combined. Every
// failure has been printed by report already.
func summarize(err error) error {
	if errs := multierr.Errors(err); len(errs) > 0 {
		log.Infof("%d input(s) failed", len(errs))
	}
	return err
}
