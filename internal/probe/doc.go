// Package probe implements the individual environment checks assembled
// into the `envcheck env` suite.
//
// Each constructor returns a checkup.Check whose Run function evaluates
// one capability of the workstation: interpreter version, CLI tools on
// PATH, numeric and plotting library sanity, sample asset decoding, and
// the optional container runtime. Probes are self-contained — every
// outcome, including a missing dependency, is converted into a verdict
// with a remediation hint rather than an error that would abort the run.
package probe
