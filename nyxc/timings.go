package nyxc

import (
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// PrintTimings writes one table row per stage that ran, then the total.
func PrintTimings(w io.Writer, stages []StageTiming) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"stage", "elapsed", "status"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	var total time.Duration
	for _, stage := range stages {
		status := "ok"
		if stage.Err != nil {
			status = "failed"
		}
		table.Append([]string{stage.Stage, stage.Elapsed.String(), status})
		total += stage.Elapsed
	}
	table.SetFooter([]string{"total", total.String(), ""})
	table.Render()
}
