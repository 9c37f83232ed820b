// Command lensmeta validates, canonicalizes, signs and documents metadata
// documents.
package main

import (
	"os"
)

func main() {
	if err := Run(); err != nil {
		os.Exit(1)
	}
}
