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

// Package retrieve assembles complete time series from the bounded pages of
// the feed server.
//
// Bars are paged backward: each query window ends just before the oldest bar
// seen so far and looks back at most 100 days. Trades and quotes are paged
// forward: each window begins just after the newest tick seen so far, and
// paging stops on a page shorter than PageSize.
//
// A page which fails to parse ends the retrieval without an error. The data of
// the previous pages is kept, and the rejection is reported in
// Result.Rejected. Transport errors are returned as errors.
package retrieve

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/activetick/feed"
	"github.com/stockparfait/activetick/records"
	"github.com/stockparfait/activetick/table"
)

// PageSize is the maximum number of lines in a tick page. A shorter page is
// the last one.
const PageSize = 20000

// Lookback is the length of the bar query window.
const Lookback = 100 * 24 * time.Hour

// DefaultStart is the start of bar retrieval when none is given.
var DefaultStart = time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC)

// Now is the default end of bar retrieval. Timestamps are naive wall clock
// values, so the local wall clock time is returned in UTC.
var Now = func() time.Time {
	t := wallClock(time.Now())
	return t.Add(-time.Duration(t.Nanosecond()))
}

// wallClock returns the wall clock reading of t in UTC, which is how the feed
// timestamps are parsed. Zero time stays zero.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
		t.Second(), t.Nanosecond(), time.UTC)
}

// ErrInvalidWindow is returned for a tick request with an unusable window,
// before any page is fetched.
var ErrInvalidWindow = errors.Reason("invalid retrieval window")

// PageRejection describes the page which failed to parse and stopped the
// retrieval.
type PageRejection struct {
	Page int // 1-based
	Line int // 1-based line within the page
	Err  error
}

func (r *PageRejection) String() string {
	return fmt.Sprintf("page %d, line %d: %s", r.Page, r.Line, r.Err.Error())
}

// Result of a single retrieval.
type Result[R records.Record] struct {
	ID       uuid.UUID // logged with every message of the retrieval
	Records  []R       // finalized: sorted by time
	Pages    int       // number of pages fetched
	Rejected *PageRejection

	timeFormat string
}

func newResult[R records.Record](timeFormat string) *Result[R] {
	return &Result[R]{
		ID:         uuid.New(),
		Records:    []R{},
		timeFormat: timeFormat,
	}
}

// Table of the records, indexed by time.
func (r *Result[R]) Table() *table.Table {
	var zero R
	t := table.NewTimeTable(r.timeFormat, zero.Columns()...)
	table.AddRows(t, r.Records)
	return t
}

// fetch the next page and count it.
func (r *Result[R]) fetch(ctx context.Context, f feed.Fetcher, q feed.Query) (feed.Page, error) {
	r.Pages++
	page, err := f.FetchPage(ctx, q)
	if err != nil {
		return nil, errors.Annotate(err, "retrieval %s: failed to fetch page %d",
			r.ID, r.Pages)
	}
	logging.Infof(ctx, "retrieval %s: fetched page %d with %d lines: %s",
		r.ID, r.Pages, len(page), feed.QueryString(q))
	return page, nil
}

// reject records the parse failure of the current page.
func (r *Result[R]) reject(ctx context.Context, err error) {
	r.Rejected = &PageRejection{Page: r.Pages, Err: err}
	if pe, ok := err.(*records.ParseError); ok {
		r.Rejected.Line = pe.Line
		r.Rejected.Err = pe.Err
	}
	logging.Warningf(ctx, "retrieval %s: rejected %s", r.ID, r.Rejected)
}

// parse a page into records of type R. A nil result with ok=true is an empty
// or sentinel page; ok=false is a rejected page.
func parse[R records.Record, P records.Loader[R]](ctx context.Context, res *Result[R], page feed.Page) (recs []R, ok bool) {
	if len(page) == 0 || page.IsSentinel() {
		return nil, true
	}
	recs, err := records.ParsePage[R, P](page)
	if err != nil {
		res.reject(ctx, err)
		return nil, false
	}
	return recs, true
}

// fetcher resolves the Fetcher to use.
func fetcher(ctx context.Context, f feed.Fetcher) (feed.Fetcher, error) {
	if f != nil {
		return f, nil
	}
	if c := feed.GetClient(ctx); c != nil {
		return c, nil
	}
	return nil, errors.Reason("no fetcher given and no feed client in context")
}
