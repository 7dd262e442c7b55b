// Package workflow runs the service counter session: a menu loop that
// collects job details from the operator, composes a receipt and hands it to
// the dispatcher.
//
// The session is an explicit state machine. Each state runs one interaction
// and names its successor; the loop in Run steps until the terminated state.
// Bad numeric entries re-prompt indefinitely, a failed print is reported and
// drops back to the menu, and quitting ends the session cleanly.
package workflow
