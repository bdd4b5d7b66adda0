package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// Age renders how long ago the task was created, relative to now
func (t Task) Age(now time.Time) string {
	return humanize.RelTime(t.CreatedAt, now, "ago", "from now")
}

// Format renders the task as a two-line listing entry
func (t Task) Format(now time.Time) string {
	return fmt.Sprintf("%s  [Task ID: %d]  %s\n   Status: %s  |   Created: %s\n",
		t.Status.Icon(),
		t.ID,
		t.Description,
		strings.ToUpper(t.Status.String()),
		t.Age(now),
	)
}
