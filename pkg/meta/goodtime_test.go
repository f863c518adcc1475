package meta

import (
	"testing"
	"time"

	"github.com/patrick-morrison/swantides/pkg/timetricks"
)

func TestGoodTimeString(t *testing.T) {
	table := []struct {
		gt   GoodTime
		want string
	}{{
		gt: GoodTime{
			// seconds and nseconds should be unused
			Time:    time.Date(1999, time.January, 5, 5, 35, 20, 4, time.Local),
			Reasons: []string{"there is no seagrass wrack"},
		},
		want: "05/01 at 5:35 AM, there is no seagrass wrack",
	}, {
		gt: GoodTime{
			Time:    timetricks.SetClock(time.Now(), 16, 27),
			Reasons: []string{"the sun is up", "the flats are dry"},
		},
		want: "today at 4:27 PM, the sun is up and the flats are dry",
	}, {
		gt: GoodTime{
			Time:    timetricks.SetClock(time.Now().Add(24*time.Hour), 12, 55),
			Reasons: []string{"the sun is up", "the flats are dry", "it's lunch time"},
		},
		want: "tomorrow at 12:55 PM, the sun is up and the flats are dry and it's lunch time",
	}}

	for _, tc := range table {
		t.Run(tc.want, func(t *testing.T) {
			got := tc.gt.String()
			if got != tc.want {
				t.Errorf("got %q, wanted %q", got, tc.want)
			}
		})
	}
}
