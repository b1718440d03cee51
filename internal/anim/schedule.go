package anim

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Span is a half-open frame range [Start, End).
type Span struct {
	Start int
	End   int
}

// Schedule scripts when the hold key is down in a headless run.
type Schedule []Span

// ParseSchedule parses "a:b,c:d". An empty string yields an empty schedule.
// "all" holds the key on every frame.
func ParseSchedule(s string) (Schedule, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if s == "all" {
		return Schedule{{Start: 0, End: -1}}, nil
	}

	var sched Schedule
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		lo, hi, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("anim: schedule %q: span %q has no ':'", s, part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(lo))
		if err != nil {
			return nil, fmt.Errorf("anim: schedule %q: %w", s, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return nil, fmt.Errorf("anim: schedule %q: %w", s, err)
		}
		if start < 0 || end < start {
			return nil, fmt.Errorf("anim: schedule %q: bad span %d:%d", s, start, end)
		}
		sched = append(sched, Span{Start: start, End: end})
	}
	sort.Slice(sched, func(i, j int) bool { return sched[i].Start < sched[j].Start })
	return sched, nil
}

// Running reports whether the key is held on frame.
// A span with End < 0 is open-ended.
func (s Schedule) Running(frame int) bool {
	for _, sp := range s {
		if frame < sp.Start {
			continue
		}
		if sp.End < 0 || frame < sp.End {
			return true
		}
	}
	return false
}
