// Package session orchestrates one presentation run.
//
// A Session walks the lesson plan with Start, Advance, and Retreat, asks the
// generator for slide content when an unvisited slot comes into view, and
// exports the filled slots on request. Generation runs in the background;
// results are written into the slot they were requested for, whatever slide
// is on screen when they arrive. Automatic generation runs at most once per
// slot: a slot left empty by a failure stays empty until Generate is called
// for it explicitly.
//
// Export feedback is a transient status message that clears itself after the
// configured TTL; setting a newer message cancels the pending clear.
package session
