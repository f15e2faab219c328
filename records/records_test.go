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

package records

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRecords(t *testing.T) {
	t.Parallel()

	Convey("ParseTickTime", t, func() {
		tm, err := ParseTickTime("20200102093000")
		So(err, ShouldBeNil)
		So(tm, ShouldEqual, time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC))

		tm, err = ParseTickTime("20200102093000123")
		So(err, ShouldBeNil)
		So(tm, ShouldEqual, time.Date(2020, 1, 2, 9, 30, 0, 123000000, time.UTC))

		tm, err = ParseTickTime("202001020930001")
		So(err, ShouldBeNil)
		So(tm, ShouldEqual, time.Date(2020, 1, 2, 9, 30, 0, 100000000, time.UTC))

		tm, err = ParseTickTime("20200102093000123456")
		So(err, ShouldBeNil)
		So(tm, ShouldEqual, time.Date(2020, 1, 2, 9, 30, 0, 123456000, time.UTC))

		So(FormatTickTime(tm), ShouldEqual, "20200102093000123")
		tm, err = ParseTickTime(FormatTickTime(time.Date(2020, 1, 2, 9, 30, 5, 7000000, time.UTC)))
		So(err, ShouldBeNil)
		So(tm, ShouldEqual, time.Date(2020, 1, 2, 9, 30, 5, 7000000, time.UTC))

		_, err = ParseTickTime("202001020930001234567")
		So(err, ShouldNotBeNil)
		_, err = ParseTickTime("2020010209")
		So(err, ShouldNotBeNil)
		_, err = ParseTickTime("20200102093000x2")
		So(err, ShouldNotBeNil)
		_, err = ParseTickTime("20201302093000")
		So(err, ShouldNotBeNil)
	})

	Convey("Bar", t, func() {
		var b Bar
		So(b.FromLine("20200102000000,10.5, 11,10,10.75 ,1200"), ShouldBeNil)
		So(b, ShouldResemble, TestBar(
			time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), 10.5, 11, 10, 10.75, 1200))
		So(b.Time(), ShouldEqual, b.Datetime)
		So(b.CSV(), ShouldResemble, []string{"10.5", "11", "10", "10.75", "1200"})
		So(len(Bar{}.Columns()), ShouldEqual, len(b.CSV()))

		So(b.FromLine("20200102000000,10.5,11,10,10.75"), ShouldNotBeNil)
		So(b.FromLine("2020-01-02,10.5,11,10,10.75,1200"), ShouldNotBeNil)
		So(b.FromLine("20200102000000,10.5,11,10,10.75,1.5"), ShouldNotBeNil)
	})

	Convey("Trade", t, func() {
		var tr Trade
		So(tr.FromLine("7,20200102093000250,100.25,300,Q,0,12,0,37"), ShouldBeNil)
		So(tr, ShouldResemble, Trade{
			Datetime: time.Date(2020, 1, 2, 9, 30, 0, 250000000, time.UTC),
			Price:    100.25,
			Size:     300,
			Exchange: "Q",
			Cond2:    12,
			Cond4:    37,
		})
		So(tr.CSV(), ShouldResemble, []string{"100.25", "300", "Q", "0", "12", "0", "37"})
		So(len(Trade{}.Columns()), ShouldEqual, len(tr.CSV()))

		So(tr.FromLine("20200102093000250,100.25,300,Q,0,12,0,37"), ShouldNotBeNil)
		So(tr.FromLine("7,20200102093000250,100.25,300,Q,0,12,0,x"), ShouldNotBeNil)
	})

	Convey("Quote", t, func() {
		var q Quote
		So(q.FromLine("1,20200102093000,99.5,100,10,20,P,Q,1"), ShouldBeNil)
		So(q, ShouldResemble, Quote{
			Datetime:    time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC),
			BidPrice:    99.5,
			AskPrice:    100,
			BidSize:     10,
			AskSize:     20,
			BidExchange: "P",
			AskExchange: "Q",
			Cond:        1,
		})
		So(q.Spread(), ShouldEqual, 0.5)
		So(q.CSV(), ShouldResemble, []string{"99.5", "100", "10", "20", "P", "Q", "1"})
		So(len(Quote{}.Columns()), ShouldEqual, len(q.CSV()))

		So(q.FromLine("1,20200102093000,bid,100,10,20,P,Q,1"), ShouldNotBeNil)
	})

	Convey("ParsePage", t, func() {
		Convey("all lines parse", func() {
			bars, err := ParsePage[Bar]([]string{
				"20200102000000,1,2,0.5,1.5,100",
				"20200103000000,1.5,2.5,1,2,200",
			})
			So(err, ShouldBeNil)
			So(len(bars), ShouldEqual, 2)
			So(bars[1].Volume, ShouldEqual, 200)
		})

		Convey("empty page", func() {
			trades, err := ParsePage[Trade](nil)
			So(err, ShouldBeNil)
			So(len(trades), ShouldEqual, 0)
		})

		Convey("one bad line fails the page", func() {
			_, err := ParsePage[Trade]([]string{
				"1,20200102093000,100,1,Q,0,0,0,0",
				"2,20200102093001,abc,1,Q,0,0,0,0",
				"3,20200102093002,101,1,Q,0,0,0,0",
			})
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "line 2")
			So(err.Error(), ShouldContainSubstring, "price should be a number")
			pe, ok := err.(*ParseError)
			So(ok, ShouldBeTrue)
			So(pe.Line, ShouldEqual, 2)
		})

		Convey("sentinel is not a quote", func() {
			_, err := ParsePage[Quote]([]string{"0"})
			So(err, ShouldNotBeNil)
		})
	})
}
