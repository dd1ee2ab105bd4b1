// Package site holds the page behaviors of the marketing site as pure state transitions.
//
// Each behavior is a value type with methods of the form (state, input) -> state, so the browser glue and the
// terminal preview can share one definition of how the navbar hides, how filters pick items, and how the contact
// form validates.
package site
