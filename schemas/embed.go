// Package schemas embeds the JSON Schemas of the persisted records.
package schemas

import "embed"

// FS holds every *.schema.json file of this directory.
//
//go:embed *.schema.json
var FS embed.FS
