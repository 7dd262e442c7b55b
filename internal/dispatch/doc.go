// Package dispatch replays composed receipt documents against a sink.
//
// The dispatcher owns the sink lifecycle for each job: open, render every
// section in order, cut, close. The sink is closed on every path once it has
// been opened, including mid-document failures, so the device is never left
// held across jobs.
package dispatch
