/*
Package stalagmite provides dense univariate polynomials over
arbitrary-precision integer coefficients under two competing internal
representations, together with a benchmark harness that compares them on
addition and repeated-summation workloads.

The core arithmetic lives in the zzpoly package, the harness in bench, and
the stalagmite command wraps the harness in a CLI.
*/
package stalagmite
