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

package table

import (
	"time"

	"golang.org/x/exp/slices"
)

// Timed is anything with a timestamp.
type Timed interface {
	Time() time.Time
}

// SortByTime sorts rows in place by ascending timestamp. Rows with equal
// timestamps keep their relative order.
func SortByTime[R Timed](rows []R) {
	slices.SortStableFunc(rows, func(a, b R) bool {
		return a.Time().Before(b.Time())
	})
}

// IsSorted checks that timestamps are non-decreasing.
func IsSorted[R Timed](rows []R) bool {
	for i := 1; i < len(rows); i++ {
		if rows[i].Time().Before(rows[i-1].Time()) {
			return false
		}
	}
	return true
}

// Unique drops the rows repeating the timestamp of the preceding row, keeping
// the first one. Rows must be sorted. The result reuses the input's storage.
func Unique[R Timed](rows []R) []R {
	if len(rows) == 0 {
		return rows
	}
	res := rows[:1]
	for _, r := range rows[1:] {
		if !r.Time().Equal(res[len(res)-1].Time()) {
			res = append(res, r)
		}
	}
	return res
}

// rangeSlice returns slice indices to extract an inclusive interval between
// start and end timestamps from sorted rows.
func rangeSlice[R Timed](rows []R, start, end time.Time) (s, e int) {
	if start.After(end) {
		return 0, 0
	}
	s = len(rows)
	e = len(rows)
	var startSet bool
	for i, r := range rows {
		t := r.Time()
		if !startSet && !start.After(t) {
			s = i
			startSet = true
		}
		if end.Before(t) {
			e = i
			break
		}
	}
	if s >= e {
		return 0, 0
	}
	return
}

// Range extracts the sub-slice of sorted rows within the inclusive time
// interval. It may return an empty slice, but never nil.
func Range[R Timed](rows []R, start, end time.Time) []R {
	s, e := rangeSlice(rows, start, end)
	if s == e {
		return []R{}
	}
	return rows[s:e]
}
