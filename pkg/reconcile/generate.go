//go:generate gomarkdoc -e -f github -o README.md . --repository.url https://github.com/openchem/molmap --repository.default-branch master --repository.path /pkg/reconcile

// Package reconcile merges the partial conformer records produced by the
// extraction stages into one canonical record per conformer, detecting
// disagreements between stages and grading how usable the results are.
package reconcile
