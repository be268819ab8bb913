// Package finding provides the normalized vulnerability finding types
// shared by the loader, grouper, and report writers.
//
// A Finding is one row of a scan export after severity normalization.
// Severity carries the fixed report category set together with its
// presentation order and colors, so writers never hard-code either.
package finding
