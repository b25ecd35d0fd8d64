package parser

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/balkashynov/bikeshare/internal/engine"
)

// AllKeyword selects every month or every day
const AllKeyword = "all"

// Choice is one accepted value plus the short forms that resolve to it
type Choice struct {
	Name    string
	Aliases []string
}

// Resolve matches user text against a fixed set of choices.
// Order: exact name, exact alias, then a name the input is a prefix of.
// A prefix shared by several names is rejected rather than guessed.
func Resolve(input string, choices []Choice) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("empty input")
	}

	for _, c := range choices {
		if strings.ToLower(c.Name) == input {
			return c.Name, nil
		}
	}
	for _, c := range choices {
		for _, alias := range c.Aliases {
			if strings.ToLower(alias) == input {
				return c.Name, nil
			}
		}
	}

	var matches []string
	for _, c := range choices {
		if strings.HasPrefix(strings.ToLower(c.Name), input) {
			matches = append(matches, c.Name)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("'%s' does not match any of: %s", input, strings.Join(names(choices), ", "))
	case 1:
		return matches[0], nil
	default:
		sort.Strings(matches)
		return "", fmt.Errorf("'%s' is ambiguous: could be %s", input, strings.Join(matches, " or "))
	}
}

// ParseCity resolves a city name, alias or unambiguous prefix
func ParseCity(input string, cities []Choice) (string, error) {
	city, err := Resolve(input, cities)
	if err != nil {
		return "", fmt.Errorf("invalid city: %w", err)
	}
	return city, nil
}

// ParseMonth accepts "all", a month name or prefix, or a month number 1-12
func ParseMonth(input string) (engine.MonthSelector, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	if n, err := strconv.Atoi(input); err == nil {
		if n < 1 || n > 12 {
			return engine.AnyMonth, fmt.Errorf("invalid month: %d is not between 1 and 12", n)
		}
		return engine.OnlyMonth(n), nil
	}

	name, err := Resolve(input, withAll(engine.MonthNames()))
	if err != nil {
		return engine.AnyMonth, fmt.Errorf("invalid month: %w", err)
	}
	if name == AllKeyword {
		return engine.AnyMonth, nil
	}
	return engine.OnlyMonth(indexOf(engine.MonthNames(), name) + 1), nil
}

// ParseDay accepts "all" or a day name or prefix. Day numbers are not
// accepted so no second weekday numbering can leak in from user input.
func ParseDay(input string) (engine.DaySelector, error) {
	name, err := Resolve(input, withAll(engine.DayNames()))
	if err != nil {
		return engine.AnyDay, fmt.Errorf("invalid day: %w", err)
	}
	if name == AllKeyword {
		return engine.AnyDay, nil
	}
	return engine.OnlyDay(engine.Weekday(indexOf(engine.DayNames(), name))), nil
}

func withAll(values []string) []Choice {
	choices := make([]Choice, 0, len(values)+1)
	choices = append(choices, Choice{Name: AllKeyword})
	for _, v := range values {
		choices = append(choices, Choice{Name: v})
	}
	return choices
}

func names(choices []Choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.Name
	}
	return out
}

func indexOf(values []string, v string) int {
	for i, s := range values {
		if s == v {
			return i
		}
	}
	return -1
}
