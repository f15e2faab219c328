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

// Package stats computes summary statistics of retrieved series.
package stats

import (
	"sort"
	"strconv"
	"time"

	"github.com/stockparfait/iterator"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/stockparfait/activetick/records"
)

// Summary of a price series. Prices are closes for bars, trade prices for
// trades and mid prices for quotes.
type Summary struct {
	Count      int
	First      time.Time
	Last       time.Time
	Min        float64 // lowest low for bars
	Max        float64 // highest high for bars
	Mean       float64
	StdDev     float64 // sample standard deviation; 0 for less than 2 prices
	Median     float64
	Volume     int64
	VWAP       float64 // volume-weighted average price; 0 for quotes
	MeanSpread float64 // quotes only
}

// SummaryColumns are the column names of Summary.CSV().
var SummaryColumns = []string{"Count", "First", "Last", "Min", "Max", "Mean",
	"StdDev", "Median", "Volume", "VWAP", "MeanSpread"}

// CSV implements table.Row.
func (s Summary) CSV() []string {
	f := func(x float64) string { return strconv.FormatFloat(x, 'f', 4, 64) }
	t := func(x time.Time) string {
		if x.IsZero() {
			return ""
		}
		return x.Format(records.TickTimeFormat)
	}
	return []string{
		strconv.Itoa(s.Count),
		t(s.First),
		t(s.Last),
		f(s.Min),
		f(s.Max),
		f(s.Mean),
		f(s.StdDev),
		f(s.Median),
		strconv.FormatInt(s.Volume, 10),
		f(s.VWAP),
		f(s.MeanSpread),
	}
}

// column extracts a value from each row.
func column[R any](rows []R, value func(R) float64) []float64 {
	return iterator.Reduce[R, []float64](
		iterator.FromSlice(rows), make([]float64, 0, len(rows)),
		func(r R, acc []float64) []float64 { return append(acc, value(r)) })
}

// priceStats fills in the statistics of the prices, which must be non-empty.
func (s *Summary) priceStats(prices []float64) {
	s.Count = len(prices)
	s.Mean = stat.Mean(prices, nil)
	if len(prices) > 1 {
		s.StdDev = stat.StdDev(prices, nil)
	}
	sorted := make([]float64, len(prices))
	copy(sorted, prices)
	sort.Float64s(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

// volumeStats fills in the total volume and the volume-weighted average price.
func (s *Summary) volumeStats(prices, volumes []float64) {
	total := floats.Sum(volumes)
	s.Volume = int64(total)
	if total > 0 {
		s.VWAP = stat.Mean(prices, volumes)
	}
}

// SummarizeBars summarizes the bars sorted by time.
func SummarizeBars(bars []records.Bar) Summary {
	var s Summary
	if len(bars) == 0 {
		return s
	}
	closes := column(bars, func(b records.Bar) float64 { return b.Close })
	s.priceStats(closes)
	s.First = bars[0].Datetime
	s.Last = bars[len(bars)-1].Datetime
	s.Min = floats.Min(column(bars, func(b records.Bar) float64 { return b.Low }))
	s.Max = floats.Max(column(bars, func(b records.Bar) float64 { return b.High }))
	s.volumeStats(closes, column(bars, func(b records.Bar) float64 {
		return float64(b.Volume)
	}))
	return s
}

// SummarizeTrades summarizes the trades sorted by time.
func SummarizeTrades(trades []records.Trade) Summary {
	var s Summary
	if len(trades) == 0 {
		return s
	}
	prices := column(trades, func(t records.Trade) float64 { return t.Price })
	s.priceStats(prices)
	s.First = trades[0].Datetime
	s.Last = trades[len(trades)-1].Datetime
	s.Min = floats.Min(prices)
	s.Max = floats.Max(prices)
	s.volumeStats(prices, column(trades, func(t records.Trade) float64 {
		return float64(t.Size)
	}))
	return s
}

// SummarizeQuotes summarizes the mid prices and spreads of the quotes sorted by
// time.
func SummarizeQuotes(quotes []records.Quote) Summary {
	var s Summary
	if len(quotes) == 0 {
		return s
	}
	mids := column(quotes, func(q records.Quote) float64 {
		return (q.BidPrice + q.AskPrice) / 2
	})
	s.priceStats(mids)
	s.First = quotes[0].Datetime
	s.Last = quotes[len(quotes)-1].Datetime
	s.Min = floats.Min(mids)
	s.Max = floats.Max(mids)
	s.MeanSpread = stat.Mean(column(quotes, records.Quote.Spread), nil)
	return s
}
