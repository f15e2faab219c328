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

package stats

import (
	"math"
	"testing"
	"time"

	"github.com/stockparfait/testutil"

	"github.com/stockparfait/activetick/records"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	day := func(d int) time.Time { return time.Date(2020, 1, d, 0, 0, 0, 0, time.UTC) }

	Convey("Empty input yields a zero summary", t, func() {
		So(SummarizeBars(nil), ShouldResemble, Summary{})
		So(SummarizeTrades([]records.Trade{}), ShouldResemble, Summary{})
		So(SummarizeQuotes(nil), ShouldResemble, Summary{})
		So(Summary{}.CSV()[1], ShouldEqual, "")
	})

	Convey("SummarizeBars", t, func() {
		bars := []records.Bar{
			records.TestBar(day(2), 1, 1.5, 0.5, 1, 100),
			records.TestBar(day(3), 1, 2.5, 1, 2, 100),
			records.TestBar(day(6), 2, 3.5, 2, 3, 200),
			records.TestBar(day(7), 3, 4.5, 3, 4, 0),
			records.TestBar(day(8), 4, 5.5, 4, 5, 100),
		}
		s := SummarizeBars(bars)
		So(s.Count, ShouldEqual, 5)
		So(s.First, ShouldEqual, day(2))
		So(s.Last, ShouldEqual, day(8))
		So(s.Min, ShouldEqual, 0.5)
		So(s.Max, ShouldEqual, 5.5)
		So(s.Mean, ShouldEqual, 3.0)
		So(testutil.Round(s.StdDev, 5), ShouldEqual, testutil.Round(math.Sqrt(2.5), 5))
		So(s.Median, ShouldEqual, 3.0)
		So(s.Volume, ShouldEqual, 500)
		So(s.VWAP, ShouldEqual, 2.8) // (1+2+6+0+5)*100 / 500
		So(s.MeanSpread, ShouldEqual, 0.0)
	})

	Convey("SummarizeTrades", t, func() {
		trades := []records.Trade{
			{Datetime: day(2), Price: 10, Size: 1},
			{Datetime: day(2), Price: 12, Size: 3},
		}
		s := SummarizeTrades(trades)
		So(s.Count, ShouldEqual, 2)
		So(s.Min, ShouldEqual, 10.0)
		So(s.Max, ShouldEqual, 12.0)
		So(s.Mean, ShouldEqual, 11.0)
		So(s.VWAP, ShouldEqual, 11.5)
		So(s.Volume, ShouldEqual, 4)
		So(testutil.RoundSlice(
			[]float64{s.StdDev}, 5), ShouldResemble, []float64{testutil.Round(math.Sqrt2, 5)})

		Convey("single trade", func() {
			s := SummarizeTrades(trades[:1])
			So(s.StdDev, ShouldEqual, 0.0)
			So(s.Median, ShouldEqual, 10.0)
		})

		Convey("zero volume", func() {
			s := SummarizeTrades([]records.Trade{{Datetime: day(2), Price: 10}})
			So(s.VWAP, ShouldEqual, 0.0)
		})
	})

	Convey("SummarizeQuotes", t, func() {
		quotes := []records.Quote{
			{Datetime: day(2), BidPrice: 9, AskPrice: 11},
			{Datetime: day(3), BidPrice: 10, AskPrice: 11},
			{Datetime: day(4), BidPrice: 12, AskPrice: 13},
		}
		s := SummarizeQuotes(quotes)
		So(s.Count, ShouldEqual, 3)
		So(s.Min, ShouldEqual, 10.0)
		So(s.Max, ShouldEqual, 12.5)
		So(s.Median, ShouldEqual, 10.5)
		So(s.MeanSpread, ShouldEqual, 4.0/3.0)
		So(s.VWAP, ShouldEqual, 0.0)
		So(s.CSV(), ShouldResemble, []string{"3", "2020-01-02 00:00:00.000",
			"2020-01-04 00:00:00.000", "10.0000", "12.5000", "11.0000", "1.3229",
			"10.5000", "0", "0.0000", "1.3333"})
	})
}
