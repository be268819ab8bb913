// Package report groups normalized findings for presentation.
//
// Grouping is a deterministic single pass: hosts keep first-seen
// order, findings keep insertion order within each (host, severity)
// bucket, and severity sections always render in the fixed priority
// order finding.Ordered(). Writers consume a built Report; they never
// re-aggregate.
package report
