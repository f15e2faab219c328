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

package feed

import (
	"fmt"
	"time"
)

// TimeFormat is the timestamp format of query parameters and bar records.
const TimeFormat = "20060102150405"

// FormatTime in the wire format. Sub-second precision is dropped.
func FormatTime(t time.Time) string {
	return t.Format(TimeFormat)
}

// Window is the [Begin, End] time bound of a single query. It is a value type:
// the With* methods return a new Window.
type Window struct {
	Begin time.Time
	End   time.Time
}

// NewWindow creates a Window.
func NewWindow(begin, end time.Time) Window {
	return Window{Begin: begin, End: end}
}

// WithBegin returns a copy of the window with a new begin time.
func (w Window) WithBegin(begin time.Time) Window {
	return Window{Begin: begin, End: w.End}
}

// WithEnd returns a copy of the window with a new end time.
func (w Window) WithEnd(end time.Time) Window {
	return Window{Begin: w.Begin, End: end}
}

// Contains checks whether t is within the inclusive window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Begin) && !t.After(w.End)
}

func (w Window) String() string {
	return fmt.Sprintf("[%s, %s]", FormatTime(w.Begin), FormatTime(w.End))
}
