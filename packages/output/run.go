package output

import "github.com/abdul-hamid-achik/envsync/packages/core/sample"

// Run describes one sample generation for reporting.
type Run struct {
	EnvFile    string
	SampleFile string
	DryRun     bool
	Result     *sample.Result
}
