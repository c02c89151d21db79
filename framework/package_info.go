// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for testing different kinds of CRUD-style HTTP APIs.
//
// The general model is:
//
// 1. Every assertion produces a Result (a name plus a pass/fail outcome); Results
// accumulate in a Suite and are printed as they occur, then reprinted in a summary.
//
// 2. The assertion functions inspect a fully-read HTTP Response and never fail
// harder than a failed Result, even for malformed bodies. Parsed JSON is
// represented as ldvalue.Value so field presence and types can be checked
// dynamically.
//
// 3. Test patterns compose assertions into reusable checks for create/read/
// update/delete and paginated-list operations, parameterized over caller-supplied
// request functions.
//
// The domain-specific code that knows what is being tested is responsible for
// providing the request functions, the resource payloads, and the ordered
// scenario list built on top of the Suite.
package framework
