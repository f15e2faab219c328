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
	"net/url"
	"strings"

	"github.com/stockparfait/errors"
)

// Query is a single bounded request to the feed server.
type Query interface {
	Path() string       // URL path, e.g. "/barData"
	Values() url.Values // a new object on every call
}

// QueryString renders the query as a path with the query string, for logging.
func QueryString(q Query) string {
	return q.Path() + "?" + q.Values().Encode()
}

// HistoryType is the bar periodicity selector.
type HistoryType int

// Values of HistoryType, as sent in the historyType parameter.
const (
	HistoryIntraday HistoryType = iota
	HistoryDaily
	HistoryWeekly
)

func (h HistoryType) String() string {
	switch h {
	case HistoryIntraday:
		return "intraday"
	case HistoryDaily:
		return "daily"
	case HistoryWeekly:
		return "weekly"
	}
	return fmt.Sprintf("<unknown history type %d>", int(h))
}

// ParseHistoryType is the inverse of HistoryType.String.
func ParseHistoryType(s string) (HistoryType, error) {
	switch strings.ToLower(s) {
	case "intraday":
		return HistoryIntraday, nil
	case "daily":
		return HistoryDaily, nil
	case "weekly":
		return HistoryWeekly, nil
	}
	return 0, errors.Reason("unknown history type: '%s'", s)
}

// BarQuery is a builder for a bar data query.
type BarQuery struct {
	symbol  string // in the vendor's symbology
	history HistoryType
	minutes int // intraday bar size, 1-60
	window  Window
}

var _ Query = &BarQuery{}

// NewBarQuery creates a query for daily bars of the symbol. The symbol must
// already be in the vendor's symbology, see TransformSymbol.
func NewBarQuery(symbol string) *BarQuery {
	return &BarQuery{symbol: symbol, history: HistoryDaily, minutes: 1}
}

// History sets the bar periodicity. This and other builder methods always
// return a copy of the query, leaving the original intact.
func (q *BarQuery) History(h HistoryType) *BarQuery {
	q2 := *q
	q2.history = h
	return &q2
}

// Minutes sets the size of intraday bars in minutes.
func (q *BarQuery) Minutes(k int) *BarQuery {
	q2 := *q
	q2.minutes = k
	return &q2
}

// Window sets the time bounds of the query.
func (q *BarQuery) Window(w Window) *BarQuery {
	q2 := *q
	q2.window = w
	return &q2
}

// GetWindow returns the current time bounds of the query.
func (q *BarQuery) GetWindow() Window { return q.window }

// Path implements Query.
func (q *BarQuery) Path() string { return "/barData" }

// Values implements Query.
func (q *BarQuery) Values() url.Values {
	v := make(url.Values)
	v.Set("symbol", q.symbol)
	v.Set("historyType", fmt.Sprintf("%d", int(q.history)))
	v.Set("intradayMinutes", fmt.Sprintf("%d", q.minutes))
	v.Set("beginTime", FormatTime(q.window.Begin))
	v.Set("endTime", FormatTime(q.window.End))
	return v
}

// TickQuery is a builder for trade or quote queries.
type TickQuery struct {
	symbol string
	trades bool
	quotes bool
	window Window
}

var _ Query = &TickQuery{}

// NewTradesQuery creates a query for trades of the symbol.
func NewTradesQuery(symbol string) *TickQuery {
	return &TickQuery{symbol: symbol, trades: true}
}

// NewQuotesQuery creates a query for quotes of the symbol.
func NewQuotesQuery(symbol string) *TickQuery {
	return &TickQuery{symbol: symbol, quotes: true}
}

// Window sets the time bounds of the query, leaving the original intact.
func (q *TickQuery) Window(w Window) *TickQuery {
	q2 := *q
	q2.window = w
	return &q2
}

// GetWindow returns the current time bounds of the query.
func (q *TickQuery) GetWindow() Window { return q.window }

// Path implements Query.
func (q *TickQuery) Path() string { return "/tickData" }

func boolParam(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// Values implements Query.
func (q *TickQuery) Values() url.Values {
	v := make(url.Values)
	v.Set("symbol", q.symbol)
	v.Set("trades", boolParam(q.trades))
	v.Set("quotes", boolParam(q.quotes))
	v.Set("beginTime", FormatTime(q.window.Begin))
	v.Set("endTime", FormatTime(q.window.End))
	return v
}

// OptionChainQuery requests the list of option symbols of an underlying.
type OptionChainQuery struct {
	symbol string
}

var _ Query = &OptionChainQuery{}

// NewOptionChainQuery creates an option chain query.
func NewOptionChainQuery(symbol string) *OptionChainQuery {
	return &OptionChainQuery{symbol: symbol}
}

// Path implements Query.
func (q *OptionChainQuery) Path() string { return "/optionChain" }

// Values implements Query.
func (q *OptionChainQuery) Values() url.Values {
	v := make(url.Values)
	v.Set("symbol", q.symbol)
	return v
}
