// Copyright 2026 Stock Parfait

// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at

//     http://www.apache.org/licenses/LICENSE-2.0

// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package records defines the typed rows of the ActiveTick feed (bars, trades
// and quotes) and their parsers from the raw comma-separated lines.
package records

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/stockparfait/errors"
)

// Record is a typed row with a timestamp. It satisfies table.Row.
type Record interface {
	Time() time.Time
	CSV() []string     // value columns, without the timestamp
	Columns() []string // names of the value columns; valid on a zero value
}

// Loader is implemented by record pointers, e.g. *Bar.
type Loader[R any] interface {
	*R
	FromLine(line string) error
}

// ParseError is the failure of a line in a page.
type ParseError struct {
	Line int // 1-based
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParsePage parses all lines of a page. Any malformed line fails the whole
// page with a *ParseError.
func ParsePage[R any, P Loader[R]](page []string) ([]R, error) {
	res := make([]R, 0, len(page))
	for i, line := range page {
		var r R
		if err := P(&r).FromLine(line); err != nil {
			return nil, &ParseError{Line: i + 1, Err: err}
		}
		res = append(res, r)
	}
	return res, nil
}

const secondsFormat = "20060102150405"

// Display formats of record timestamps.
const (
	BarTimeFormat  = "2006-01-02 15:04:05"
	TickTimeFormat = "2006-01-02 15:04:05.000"
)

// ParseBarTime parses a bar timestamp YYYYMMDDHHMMSS.
func ParseBarTime(s string) (time.Time, error) {
	t, err := time.Parse(secondsFormat, s)
	if err != nil {
		return time.Time{}, errors.Annotate(err, "invalid bar time '%s'", s)
	}
	return t, nil
}

// ParseTickTime parses a tick timestamp YYYYMMDDHHMMSS followed by up to 6
// digits of the fractional second, e.g. 20200102093000123 is 09:30:00.123.
func ParseTickTime(s string) (time.Time, error) {
	if len(s) < len(secondsFormat) || len(s) > len(secondsFormat)+6 {
		return time.Time{}, errors.Reason("invalid tick time '%s'", s)
	}
	t, err := time.Parse(secondsFormat, s[:len(secondsFormat)])
	if err != nil {
		return time.Time{}, errors.Annotate(err, "invalid tick time '%s'", s)
	}
	frac := s[len(secondsFormat):]
	if frac == "" {
		return t, nil
	}
	for _, c := range frac {
		if c < '0' || c > '9' {
			return time.Time{}, errors.Reason("invalid fractional second in '%s'", s)
		}
	}
	ns, err := strconv.Atoi(frac + strings.Repeat("0", 9-len(frac)))
	if err != nil {
		return time.Time{}, errors.Annotate(err, "invalid fractional second in '%s'", s)
	}
	return t.Add(time.Duration(ns)), nil
}

// FormatTickTime formats a tick timestamp as YYYYMMDDHHMMSS followed by 3
// digits of milliseconds.
func FormatTickTime(t time.Time) string {
	return fmt.Sprintf("%s%03d", t.Format(secondsFormat), t.Nanosecond()/1e6)
}

// fields splits a line and checks the number of fields.
func fields(line string, n int) ([]string, error) {
	f := strings.Split(line, ",")
	if len(f) != n {
		return nil, errors.Reason("expected %d fields, received %d: '%s'",
			n, len(f), line)
	}
	for i := range f {
		f[i] = strings.TrimSpace(f[i])
	}
	return f, nil
}

func parseFloat(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Annotate(err, "%s should be a number: '%s'", name, s)
	}
	return v, nil
}

func parseInt64(s, name string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Annotate(err, "%s should be an integer: '%s'", name, s)
	}
	return v, nil
}

func parseInt(s, name string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Annotate(err, "%s should be an integer: '%s'", name, s)
	}
	return v, nil
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatInt(x int64) string {
	return strconv.FormatInt(x, 10)
}
