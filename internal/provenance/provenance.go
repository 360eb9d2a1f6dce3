// Package provenance produces the stamps appended to grids and written
// into exported colormap headers: which operation ran, at which library
// version, and when.
package provenance

import (
	"fmt"
	"time"
)

// Version is the library version recorded in provenance stamps.
const Version = "0.1.0"

// Stamp records the execution of an operation on a class, e.g.
// "microgrid.Grid.rotate v0.1.0 (2026-08-24 10:04:05+0000)".
// op may be empty for class-level stamps.
func Stamp(class, op string) string {
	now := time.Now().Format("2006-01-02 15:04:05-0700")
	name := class
	if op != "" {
		name = class + "." + op
	}
	return fmt.Sprintf("microgrid.%s v%s (%s)", name, Version, now)
}
