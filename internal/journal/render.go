package journal

import (
	"strings"
	"time"

	"github.com/starford/journal/internal/models"
)

// fileState is what the writer learned about the week file before rendering.
type fileState struct {
	// New is true for a file created by this run, or an existing empty one.
	New      bool
	HasToday bool
}

// render builds every byte to add at the logical end of the file. Blocks are
// separated so that, written after a trimmed trailing newline, exactly one
// blank line precedes each header and none precedes a plain entry.
func render(st fileState, now, friday time.Time, e models.Entry) []byte {
	var b strings.Builder
	joinable := !st.New

	if st.New {
		b.WriteString(weekTitle(friday))
	}
	if st.New || !st.HasToday {
		joinable = false
		b.WriteString("\n\n")
		b.WriteString(DayHeader(now))
		b.WriteString(" - ")
		b.WriteString(now.Format(dayLayout))
		b.WriteString("\n")
	}
	if e.Header != "" {
		joinable = false
		b.WriteString("\n\n### ")
		b.WriteString(now.Format(timeLayout))
		b.WriteString(" - ")
		b.WriteString(e.Header)
		b.WriteString("\n")
	}
	if e.Message != "" {
		if e.Continuation && joinable {
			b.WriteString(" ")
		} else {
			b.WriteString("\n")
			if e.Timestamped {
				b.WriteString(now.Format(timeLayout))
				b.WriteString(" - ")
			}
		}
		b.WriteString(e.Message)
		b.WriteString("\n")
	}
	return []byte(b.String())
}
