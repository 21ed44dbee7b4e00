// Package web carries the embedded single-page people editor.
package web

import "embed"

//go:embed static
var Static embed.FS
