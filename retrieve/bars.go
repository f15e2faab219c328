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
	"context"
	"time"

	"github.com/stockparfait/logging"

	"github.com/stockparfait/activetick/feed"
	"github.com/stockparfait/activetick/records"
)

// BarRequest specifies a bar retrieval. Zero Start is DefaultStart, zero End is
// Now(), zero Minutes is 1. Start and End are taken as wall clock times in
// their own location.
type BarRequest struct {
	Symbol  string
	Class   feed.AssetClass
	History feed.HistoryType
	Minutes int // bar length for intraday history
	Start   time.Time
	End     time.Time
}

func (r BarRequest) withDefaults() BarRequest {
	r.Start = wallClock(r.Start)
	r.End = wallClock(r.End)
	if r.Start.IsZero() {
		r.Start = DefaultStart
	}
	if r.End.IsZero() {
		r.End = Now()
	}
	if r.Minutes <= 0 {
		r.Minutes = 1
	}
	return r
}

// unit by which the next window end precedes the oldest bar.
func (r BarRequest) unit() time.Duration {
	switch r.History {
	case feed.HistoryIntraday:
		return time.Minute
	case feed.HistoryWeekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Bars retrieves the bars of the symbol in the inclusive [Start, End] range,
// newest pages first. The result has unique increasing timestamps. A nil
// Fetcher uses the feed client from the context.
func Bars(ctx context.Context, f feed.Fetcher, req BarRequest) (*Result[records.Bar], error) {
	f, err := fetcher(ctx, f)
	if err != nil {
		return nil, err
	}
	req = req.withDefaults()
	res := newResult[records.Bar](records.BarTimeFormat)
	symbol := feed.TransformSymbol(req.Symbol, req.Class)
	q := feed.NewBarQuery(symbol).History(req.History).Minutes(req.Minutes)
	unit := req.unit()

	w := feed.NewWindow(req.Start, req.End)
	logging.Infof(ctx, "retrieval %s: %s bars of %s in %s",
		res.ID, req.History, symbol, w)

	var oldest time.Time
	for {
		page, err := res.fetch(ctx, f, q.Window(w))
		if err != nil {
			return nil, err
		}
		bars, ok := parse[records.Bar](ctx, res, page)
		if !ok || len(bars) == 0 {
			break
		}
		res.Records = append(res.Records, bars...)
		for _, b := range bars {
			if oldest.IsZero() || b.Datetime.Before(oldest) {
				oldest = b.Datetime
			}
		}
		end := oldest.Add(-unit)
		if !end.After(req.Start) {
			break
		}
		if !end.Before(w.End) {
			logging.Warningf(ctx, "retrieval %s: no bars older than %s, stopping",
				res.ID, feed.FormatTime(w.End))
			break
		}
		begin := end.Add(-Lookback)
		if begin.Before(req.Start) {
			begin = req.Start
		}
		w = w.WithBegin(begin).WithEnd(end)
		logging.Debugf(ctx, "retrieval %s: next window %s", res.ID, w)
	}
	res.Records = finalizeBars(res.Records, req.Start, req.End)
	logging.Infof(ctx, "retrieval %s: %d bars in %d pages",
		res.ID, len(res.Records), res.Pages)
	return res, nil
}
