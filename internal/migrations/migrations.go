// Package migrations : SQL схема, встраиваемая в бинарник для goose
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
