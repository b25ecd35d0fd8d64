package parser

import (
	"fmt"
	"strings"
	"time"
)

// startTimeLayouts are tried in order. Timestamps carry no zone and are read
// as wall-clock times.
var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"1/2/2006 15:04",
}

// ParseStartTime parses a trip start timestamp
func ParseStartTime(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return time.Time{}, fmt.Errorf("empty start time")
	}

	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, input); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid start time '%s'. Use: yyyy-mm-dd hh:mm:ss", input)
}
