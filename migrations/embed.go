// Package migrations holds the sqlite schema scripts, applied in file name order.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
