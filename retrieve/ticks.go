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

// TickRequest specifies a trade or quote retrieval. Both Start and End are
// required, and are taken as wall clock times in their own location.
type TickRequest struct {
	Symbol string
	Class  feed.AssetClass
	Start  time.Time
	End    time.Time
}

func (r TickRequest) normalized() TickRequest {
	r.Start = wallClock(r.Start)
	r.End = wallClock(r.End)
	return r
}

// Trades retrieves the trades of the symbol from Start through End, oldest
// pages first. Start must be before End, otherwise ErrInvalidWindow is
// returned and nothing is fetched. A nil Fetcher uses the feed client from the
// context.
func Trades(ctx context.Context, f feed.Fetcher, req TickRequest) (*Result[records.Trade], error) {
	req = req.normalized()
	if !req.Start.Before(req.End) {
		logging.Warningf(ctx, "trades of %s: start %s is not before end %s",
			req.Symbol, feed.FormatTime(req.Start), feed.FormatTime(req.End))
		return nil, ErrInvalidWindow
	}
	return ticks[records.Trade](ctx, f, "trades", feed.NewTradesQuery, req)
}

// Quotes retrieves the quotes of the symbol from Start through End, oldest
// pages first. Only Start equal to End is rejected with ErrInvalidWindow. A nil
// Fetcher uses the feed client from the context.
func Quotes(ctx context.Context, f feed.Fetcher, req TickRequest) (*Result[records.Quote], error) {
	req = req.normalized()
	if req.Start.Equal(req.End) {
		logging.Warningf(ctx, "quotes of %s: empty window at %s",
			req.Symbol, feed.FormatTime(req.Start))
		return nil, ErrInvalidWindow
	}
	return ticks[records.Quote](ctx, f, "quotes", feed.NewQuotesQuery, req)
}

// ticks is the forward paging loop shared by trades and quotes.
func ticks[R records.Record, P records.Loader[R]](
	ctx context.Context,
	f feed.Fetcher,
	kind string,
	newQuery func(symbol string) *feed.TickQuery,
	req TickRequest,
) (*Result[R], error) {
	f, err := fetcher(ctx, f)
	if err != nil {
		return nil, err
	}
	res := newResult[R](records.TickTimeFormat)
	symbol := feed.TransformSymbol(req.Symbol, req.Class)
	q := newQuery(symbol)

	w := feed.NewWindow(req.Start, req.End)
	logging.Infof(ctx, "retrieval %s: %s of %s in %s", res.ID, kind, symbol, w)

	var newest time.Time
	for {
		page, err := res.fetch(ctx, f, q.Window(w))
		if err != nil {
			return nil, err
		}
		if page.IsSentinel() {
			logging.Debugf(ctx, "retrieval %s: no data in %s", res.ID, w)
			break
		}
		recs, ok := parse[R, P](ctx, res, page)
		if !ok {
			break
		}
		for _, r := range recs {
			t := r.Time()
			// The window is sent at second resolution, so a follow-up page may
			// repeat ticks already received.
			if res.Pages > 1 && t.Before(w.Begin) {
				continue
			}
			res.Records = append(res.Records, r)
			if t.After(newest) {
				newest = t
			}
		}
		if len(page) < PageSize {
			break
		}
		begin := newest.Add(time.Millisecond)
		if !begin.After(w.Begin) {
			logging.Warningf(ctx, "retrieval %s: full page without newer ticks after %s, stopping",
				res.ID, w.Begin.Format(records.TickTimeFormat))
			break
		}
		w = w.WithBegin(begin)
		logging.Debugf(ctx, "retrieval %s: next window %s", res.ID, w)
	}
	finalizeTicks(res.Records)
	logging.Infof(ctx, "retrieval %s: %d %s in %d pages",
		res.ID, len(res.Records), kind, res.Pages)
	return res, nil
}
