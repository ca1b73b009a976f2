// Package testutil provides shared test fixtures: a fluent goal handle
// builder, a scriptable lifecycle stub and a controllable fake clock. Test
// code only; never imported by production packages.
package testutil
