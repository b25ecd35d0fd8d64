package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/balkashynov/bikeshare/internal/engine"
)

var testCities = []Choice{
	{Name: "chicago", Aliases: []string{"chg"}},
	{Name: "new york city", Aliases: []string{"nyc"}},
	{Name: "washington", Aliases: []string{"wa"}},
}

func TestParseCity(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"chicago", "chicago"},
		{"  Chicago ", "chicago"},
		{"NYC", "new york city"},
		{"wa", "washington"},
		{"wash", "washington"},
		{"new", "new york city"},
		{"c", "chicago"},
	}
	for _, tt := range tests {
		got, err := ParseCity(tt.input, testCities)
		if err != nil {
			t.Errorf("ParseCity(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseCity(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseCityRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "boston", "ny city"} {
		if _, err := ParseCity(input, testCities); err == nil {
			t.Errorf("ParseCity(%q) should fail", input)
		}
	}
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		input string
		month int
		set   bool
	}{
		{"all", 0, false},
		{"January", 1, true},
		{"feb", 2, true},
		{"mar", 3, true},
		{"may", 5, true},
		{"jun", 6, true},
		{"jul", 7, true},
		{"12", 12, true},
	}
	for _, tt := range tests {
		sel, err := ParseMonth(tt.input)
		if err != nil {
			t.Errorf("ParseMonth(%q) failed: %v", tt.input, err)
			continue
		}
		month, set := sel.Value()
		if month != tt.month || set != tt.set {
			t.Errorf("ParseMonth(%q) = %d/%v, want %d/%v", tt.input, month, set, tt.month, tt.set)
		}
	}
}

func TestParseMonthRejectsAmbiguousPrefix(t *testing.T) {
	for _, input := range []string{"ju", "ma", "a", "0", "13", "smarch"} {
		if _, err := ParseMonth(input); err == nil {
			t.Errorf("ParseMonth(%q) should fail", input)
		}
	}

	_, err := ParseMonth("ju")
	if err == nil || !strings.Contains(err.Error(), "july or june") {
		t.Errorf("ambiguity error should name both candidates, got %v", err)
	}
}

func TestParseDayUsesMondayZero(t *testing.T) {
	tests := []struct {
		input string
		want  engine.Weekday
	}{
		{"monday", engine.Monday},
		{"tue", engine.Tuesday},
		{"w", engine.Wednesday},
		{"th", engine.Thursday},
		{"fri", engine.Friday},
		{"sat", engine.Saturday},
		{"Sunday", engine.Sunday},
	}
	for _, tt := range tests {
		sel, err := ParseDay(tt.input)
		if err != nil {
			t.Errorf("ParseDay(%q) failed: %v", tt.input, err)
			continue
		}
		day, set := sel.Value()
		if !set || day != tt.want {
			t.Errorf("ParseDay(%q) = %v/%v, want %v", tt.input, day, set, tt.want)
		}
	}

	sel, err := ParseDay("ALL")
	if err != nil {
		t.Fatalf("ParseDay(ALL) failed: %v", err)
	}
	if _, set := sel.Value(); set {
		t.Error("ParseDay(ALL) should not select a day")
	}
}

func TestParseDayRejects(t *testing.T) {
	for _, input := range []string{"t", "s", "1", "funday"} {
		if _, err := ParseDay(input); err == nil {
			t.Errorf("ParseDay(%q) should fail", input)
		}
	}
}

func TestParseStartTime(t *testing.T) {
	want := time.Date(2017, time.June, 23, 15, 9, 32, 0, time.UTC)
	for _, input := range []string{"2017-06-23 15:09:32", "2017-06-23T15:09:32", "06/23/2017 15:09:32"} {
		got, err := ParseStartTime(input)
		if err != nil {
			t.Errorf("ParseStartTime(%q) failed: %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("ParseStartTime(%q) = %v, want %v", input, got, want)
		}
	}

	for _, input := range []string{"", "yesterday", "2017-13-01 00:00:00"} {
		if _, err := ParseStartTime(input); err == nil {
			t.Errorf("ParseStartTime(%q) should fail", input)
		}
	}
}
