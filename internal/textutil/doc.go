// Package textutil provides filename sanitization helpers for exported files.
package textutil
