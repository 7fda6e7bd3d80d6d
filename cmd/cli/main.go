// logtriage - Parallel Rule-Based Log Classifier
//
// logtriage is a batch tool that classifies structured log records with
// fixed keyword rules across a worker pool and reports throughput, accuracy,
// and resource metrics for the run.
package main

import (
	"os"

	"github.com/triagekit/logtriage/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
