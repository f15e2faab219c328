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

package retrieve

import (
	"time"

	"github.com/stockparfait/activetick/records"
	"github.com/stockparfait/activetick/table"
)

// finalizeBars sorts the accumulated bars, keeps the first arrival of each
// timestamp and slices them to the inclusive [start, end] range.
func finalizeBars(bars []records.Bar, start, end time.Time) []records.Bar {
	table.SortByTime(bars)
	return table.Range(table.Unique(bars), start, end)
}

// finalizeTicks sorts the accumulated ticks in place. Ticks with equal
// timestamps stay in the arrival order.
func finalizeTicks[R records.Record](ticks []R) {
	table.SortByTime(ticks)
}
