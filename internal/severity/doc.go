// Package severity holds the severity levels used by constream and the
// threshold that gates whether a stream emits on flush.
//
// A stream with minimum level M emits only while the threshold T satisfies
// T >= M. The threshold is an explicit object so independent sets of streams
// (and parallel tests) never interfere; Default returns the process-wide one.
package severity
