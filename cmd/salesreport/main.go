// Command salesreport computes sales performance reports from dataset snapshots.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/sales-report-db/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
