package eventlog

import (
	"bufio"
	"os"
	"strings"

	"github.com/tidwall/gjson"
)

// Tail returns the last n parseable events from the log. Lines that are
// not valid JSON or miss the expected fields are skipped; a missing log
// file reads as empty history.
func Tail(path string, n int) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer func() { _ = f.Close() }()

	var events []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || !gjson.Valid(line) {
			continue
		}

		ts := gjson.Get(line, "timestamp")
		ok := gjson.Get(line, "overall_ok")
		status := gjson.Get(line, "status")
		if !ts.Exists() || !ok.Exists() {
			continue
		}

		ev := Event{
			Timestamp: ts.String(),
			OverallOK: ok.Bool(),
			Status:    make(map[string]bool),
		}
		status.ForEach(func(key, value gjson.Result) bool {
			ev.Status[key.String()] = value.Bool()
			return true
		})
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	if n > 0 && len(events) > n {
		events = events[len(events)-n:]
	}
	return events, nil
}
