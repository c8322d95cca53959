// Package slides holds generated slide content and the fixed-size deck of
// slots that caches it, one slot per lesson topic.
package slides
