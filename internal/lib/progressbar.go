package lib

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// newOrganizeBar reports the bytes Organize has filed. A move completes a
// whole file at once; a copy advances as it writes.
func newOrganizeBar(w io.Writer, size int64, keep bool) *progressbar.ProgressBar {
	verb := "moving"
	if keep {
		verb = "copying"
	}
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(verb+":"),
		progressbar.OptionSetWidth(20), // Fit in an 80-column terminal.
		progressbar.OptionShowBytes(true),
		progressbar.OptionUseIECUnits(true),
		progressbar.OptionShowCount(), // Bytes filed so far.
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowTotalBytes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)
}
