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

package feedsim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stockparfait/fetch"

	"github.com/stockparfait/activetick/feed"
	"github.com/stockparfait/activetick/records"

	. "github.com/smartystreets/goconvey/convey"
)

func TestFeedsim(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC) }
	sec := func(s, ms int) time.Time {
		return time.Date(2020, 1, 2, 9, 30, s, ms*int(time.Millisecond), time.UTC)
	}

	Convey("Server speaks the feed protocol", t, func() {
		sim := NewServer()
		srv := httptest.NewServer(sim.Handler())
		defer srv.Close()

		ctx := fetch.UseClient(context.Background(), srv.Client())
		client := feed.NewClient(srv.URL)

		for d := 2; d <= 6; d++ {
			sim.AddBars("AAPL", records.TestBar(day(d), 10, 11, 9, float64(d), 100))
		}
		sim.AddTrades("AAPL",
			records.Trade{Datetime: sec(1, 0), Price: 2, Size: 20, Exchange: "Q"},
			records.Trade{Datetime: sec(0, 250), Price: 1, Size: 10, Exchange: "Q"},
			records.Trade{Datetime: sec(2, 500), Price: 3, Size: 30, Exchange: "N"},
		)
		sim.AddQuotes("INDEX:SPX", records.Quote{
			Datetime: sec(0, 0), BidPrice: 99, AskPrice: 100, BidExchange: "P", AskExchange: "Q"})
		sim.SetOptionChain("AAPL", "OPTION:AAPL-1", "OPTION:AAPL-2")

		Convey("bars, the newest ones when limited", func() {
			sim.MaxBars = 2
			page, err := client.FetchPage(ctx, feed.NewBarQuery("AAPL").Window(
				feed.NewWindow(day(1), day(9))))
			So(err, ShouldBeNil)
			So(page, ShouldResemble, feed.Page{
				"20200105000000,10,11,9,5,100",
				"20200106000000,10,11,9,6,100",
			})
		})

		Convey("bars, inclusive window", func() {
			page, err := client.FetchPage(ctx, feed.NewBarQuery("AAPL").Window(
				feed.NewWindow(day(3), day(4))))
			So(err, ShouldBeNil)
			So(len(page), ShouldEqual, 2)
			bars, err := records.ParsePage[records.Bar](page)
			So(err, ShouldBeNil)
			So(bars[0].Datetime, ShouldEqual, day(3))
			So(bars[1].Close, ShouldEqual, 4.0)
		})

		Convey("bars of an unknown symbol", func() {
			page, err := client.FetchPage(ctx, feed.NewBarQuery("MSFT").Window(
				feed.NewWindow(day(1), day(9))))
			So(err, ShouldBeNil)
			So(len(page), ShouldEqual, 0)
		})

		Convey("trades, oldest first and limited", func() {
			sim.PageSize = 2
			page, err := client.FetchPage(ctx, feed.NewTradesQuery("AAPL").Window(
				feed.NewWindow(sec(0, 0), sec(59, 0))))
			So(err, ShouldBeNil)
			So(page, ShouldResemble, feed.Page{
				"0,20200102093000250,1,10,Q,0,0,0,0",
				"1,20200102093001000,2,20,Q,0,0,0,0",
			})
			trades, err := records.ParsePage[records.Trade](page)
			So(err, ShouldBeNil)
			So(trades[0].Datetime, ShouldEqual, sec(0, 250))
		})

		Convey("trades, window at second resolution", func() {
			page, err := client.FetchPage(ctx, feed.NewTradesQuery("AAPL").Window(
				feed.NewWindow(sec(0, 900), sec(2, 0))))
			So(err, ShouldBeNil)
			So(len(page), ShouldEqual, 3)
		})

		Convey("trades, sentinel on no data", func() {
			page, err := client.FetchPage(ctx, feed.NewTradesQuery("AAPL").Window(
				feed.NewWindow(sec(3, 0), sec(59, 0))))
			So(err, ShouldBeNil)
			So(page.IsSentinel(), ShouldBeTrue)
		})

		Convey("quotes", func() {
			page, err := client.FetchPage(ctx, feed.NewQuotesQuery("INDEX:SPX").Window(
				feed.NewWindow(sec(0, 0), sec(1, 0))))
			So(err, ShouldBeNil)
			So(page, ShouldResemble, feed.Page{"0,20200102093000000,99,100,0,0,P,Q,0"})
			quotes, err := records.ParsePage[records.Quote](page)
			So(err, ShouldBeNil)
			So(quotes[0].Spread(), ShouldEqual, 1.0)
		})

		Convey("option chain", func() {
			chain, err := feed.FetchOptionChain(ctx, client, "AAPL")
			So(err, ShouldBeNil)
			So(chain, ShouldResemble, []string{"OPTION:AAPL-1", "OPTION:AAPL-2"})
		})

		Convey("requests are recorded", func() {
			q := feed.NewTradesQuery("AAPL").Window(feed.NewWindow(sec(3, 0), sec(59, 0)))
			_, err := client.FetchPage(ctx, q)
			So(err, ShouldBeNil)
			So(sim.Requests(), ShouldResemble, []Request{{Path: "/tickData", Query: q.Values()}})
		})

		Convey("errors", func() {
			resp, err := srv.Client().Get(srv.URL + "/accountData")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)

			resp, err = srv.Client().Get(srv.URL + "/barData?symbol=A&beginTime=x&endTime=y")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

			resp, err = srv.Client().Get(srv.URL + "/tickData?symbol=A&beginTime=20200102093000&endTime=20200102093000&trades=1&quotes=1")
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)

			_, err = client.FetchPage(ctx, feed.NewOptionChainQuery(""))
			So(err, ShouldNotBeNil)
		})
	})
}
