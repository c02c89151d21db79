// Package notestests contains the Notes API contract tests themselves and their
// supporting resource client.
//
// Harness infrastructure that is not specific to the Notes domain, such as
// assertions, test patterns, and result aggregation, is in the lower-level
// framework package.
package notestests
