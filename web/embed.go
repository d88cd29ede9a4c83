// Package web embeds the static browser front end.
package web

import "embed"

//go:embed static
var StaticFS embed.FS
