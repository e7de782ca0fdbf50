package validate

import (
	"fmt"

	"teachreach/internal/diagnostic"
)

// findings accumulates diagnostics for one check, capping row findings
// and summarizing the overflow.
type findings struct {
	diagnostic.Diagnostics

	rowFindings int
	overflow    int
}

func (fs *findings) row(i int, code, message, column string) {
	if fs.rowFindings >= maxRowFindings {
		fs.overflow++
		return
	}

	fs.rowFindings++
	fs.AddError(code, message, column, i)
}

func (fs *findings) flush() {
	if fs.overflow > 0 {
		fs.AddError("more_findings", fmt.Sprintf("%d more findings not shown", fs.overflow), "", diagnostic.NoRow)
	}
}
