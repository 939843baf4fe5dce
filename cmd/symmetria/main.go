// symmetria is an exact symmetry-test calculator for square contingency
// tables. Counts in via CSV, report out via stdout.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
