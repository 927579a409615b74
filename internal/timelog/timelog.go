package timelog

import (
	"fmt"
	"strconv"
	"time"
)

// Header names the CSV columns in the order every row is written.
var Header = []string{"startTimestamp", "endTimestamp", "elapsedSeconds", "username"}

// Record is one timed run of the configured application.
type Record struct {
	StartedAt time.Time
	StoppedAt time.Time
	Duration  time.Duration
	Username  string
}

func NewRecord(startedAt, stoppedAt time.Time, username string) Record {
	return Record{
		StartedAt: startedAt,
		StoppedAt: stoppedAt,
		Duration:  stoppedAt.Sub(startedAt),
		Username:  username,
	}
}

// ElapsedSeconds truncates the duration to whole seconds.
func (r Record) ElapsedSeconds() int64 {
	return int64(r.Duration / time.Second)
}

// Fields renders the record as CSV columns: Unix epoch seconds for both
// timestamps, then elapsed whole seconds, then the username.
func (r Record) Fields() []string {
	return []string{
		strconv.FormatInt(r.StartedAt.Unix(), 10),
		strconv.FormatInt(r.StoppedAt.Unix(), 10),
		strconv.FormatInt(r.ElapsedSeconds(), 10),
		r.Username,
	}
}

// ParseRecord is the inverse of Fields. Sub-second precision is lost.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) != len(Header) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(Header), len(fields))
	}

	start, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", Header[0], fields[0], err)
	}
	end, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", Header[1], fields[1], err)
	}
	elapsed, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("invalid %s %q: %w", Header[2], fields[2], err)
	}

	return Record{
		StartedAt: time.Unix(start, 0),
		StoppedAt: time.Unix(end, 0),
		Duration:  time.Duration(elapsed) * time.Second,
		Username:  fields[3],
	}, nil
}
