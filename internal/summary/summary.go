// Package summary handles display of run results and skip reports
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/dwalters/treecat/internal/utils"
	"github.com/dwalters/treecat/internal/walker"
)

// DisplayResults logs the end results of a run.
func DisplayResults(logger utils.Logger, fileCount int64, duration time.Duration) {
	logger.Info("Concatenated %d files.", fileCount)
	logger.Info("Run complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints the skipped entries, sorted by path, to out.
func DisplaySkippedItems(logger utils.Logger, skippedItems []walker.SkippedItem, out io.Writer) {
	logger.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		logger.Info("No items were skipped.")
		logger.Info("--- End Skipped Items ---")
		return
	}

	// Sort for consistent output
	sorted := make([]walker.SkippedItem, len(skippedItems))
	copy(sorted, skippedItems)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})

	for _, item := range sorted {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR " // Pad for alignment
		}
		fmt.Fprintf(out, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50, // Max width for path column
			item.Path,
			item.Reason,
		)
	}
	logger.Info("--- End Skipped Items ---")
}
