package meta

import (
	"fmt"
	"strings"
	"time"

	"github.com/patrick-morrison/swantides/pkg/timetricks"
)

const timeFmt = "3:04 PM"

// GoodTime represents a good time to be on the water.
type GoodTime struct {
	Time     time.Time     `json:"time"`
	Reasons  []string      `json:"reasons"`
	Duration time.Duration `json:"duration,omitempty"`
}

func (gt *GoodTime) String() string {
	return fmt.Sprintf("%s, %s",
		gt.prettyTime(),
		strings.Join(gt.Reasons, " and "))
}

func (gt *GoodTime) prettyTime() string {
	day := timetricks.Day(gt.Time)

	until := ""
	if gt.Duration != 0 {
		until = fmt.Sprintf(" until %s", gt.Time.Add(gt.Duration).Format(timeFmt))
	}

	return fmt.Sprintf("%s at %s%s",
		day,
		gt.Time.Format(timeFmt),
		until)
}

// TimeRange returns a time range for the goodtime, similar to the String
// form without the date.
func (gt *GoodTime) TimeRange() string {
	until := ""
	if gt.Duration != 0 {
		until = fmt.Sprintf(" until %s", gt.Time.Add(gt.Duration).Format(timeFmt))
	}
	return fmt.Sprintf("%s%s", gt.Time.Format(timeFmt), until)
}
