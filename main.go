// =============================================================================
// Usage Translator - Main Entry Point
// =============================================================================
//
// USAGE:
//   usagetranslator <path-to-csv-file> <path-to-mapping-json-file>
//   usagetranslator help
//   usagetranslator version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core translation logic (not for external import)
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/usagetranslator/cmd"
)

func main() {
	cmd.Execute()
}
