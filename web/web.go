// Package web embeds the single-page admin console served by the API binary.
package web

import "embed"

//go:embed index.html app.js styles.css
var Assets embed.FS
