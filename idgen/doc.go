/*
Package idgen provides monotonically increasing string ids for tests that
need unique values on demand.

The package-level Next draws from a single process-wide counter, independent
of any registry or mocker instance. The counter wraps around after exhausting
the 64-bit range; this is documented behavior, not a bug — no test suite
plausibly draws 2^64 ids, and ids are only required to be distinct within a
test run, not globally.
*/
package idgen
