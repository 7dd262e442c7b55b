// Package receipt composes printable receipt documents for counter jobs.
//
// A Composer turns a priced job into a domain.Document, a flat list of
// sections the dispatcher replays against whatever sink is configured. All
// layout decisions live here: alignment, text doubling, blank spacing and
// the wording of every line. Sinks only execute.
package receipt
