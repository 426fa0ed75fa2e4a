// Command lakefsctl inspects branches, tags and Open Table Format diffs of a
// lakeFS installation through the lakefs-go SDK.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
