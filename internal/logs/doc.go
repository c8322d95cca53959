// Package logs reads the daily log files written by the logging package.
//
// Readers work in whole lines and report the byte offset after the last line
// they returned, so a caller can resume where it stopped. Follow polls for new
// lines until its context ends.
package logs
