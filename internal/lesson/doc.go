// Package lesson defines the fixed, ordered lesson outline that a presentation
// walks through.
//
// A Plan is immutable once loaded. The built-in outline covers an introductory
// C# object-oriented programming unit; LoadPlan reads a TOML file with the same
// shape to present a different lesson.
package lesson
