// Package server hosts the browser viewer and JSON API for a presentation
// session.
//
// The viewer is a server-rendered page: buttons post to action endpoints that
// redirect back, and the page refreshes itself while a slide is generating or
// an export runs. The same actions are available as JSON under /api/, guarded
// by an optional bearer token. Run holds a file lock so only one viewer serves
// a state directory at a time.
package server
