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

// Package feedsim is an in-memory server speaking the ActiveTick Feed HTTP
// protocol, for tests and local runs without the vendor's feed.
//
// Query windows are inclusive and have the resolution of one second: a tick at
// 09:30:00.250 is within a window beginning at 09:30:00.
package feedsim

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockparfait/errors"

	"github.com/stockparfait/activetick/feed"
	"github.com/stockparfait/activetick/records"
	"github.com/stockparfait/activetick/table"
)

// Request is a request received by the server.
type Request struct {
	Path  string
	Query url.Values
}

// Server holds the data by vendor symbol, e.g. "INDEX:SPX".
type Server struct {
	MaxBars  int // max. bars per page; 0 = unlimited
	PageSize int // max. ticks per page

	mu       sync.Mutex
	bars     map[string][]records.Bar
	trades   map[string][]records.Trade
	quotes   map[string][]records.Quote
	chains   map[string][]string
	requests []Request
	engine   *gin.Engine
}

// NewServer creates an empty Server with the feed's default tick page size.
func NewServer() *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		PageSize: 20000,
		bars:     make(map[string][]records.Bar),
		trades:   make(map[string][]records.Trade),
		quotes:   make(map[string][]records.Quote),
		chains:   make(map[string][]string),
		engine:   gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.record)
	s.engine.GET("/barData", s.handleBars)
	s.engine.GET("/tickData", s.handleTicks)
	s.engine.GET("/optionChain", s.handleOptionChain)
	return s
}

// Handler serving the feed protocol.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves the feed protocol at addr until failure.
func (s *Server) Run(addr string) error { return s.engine.Run(addr) }

// AddBars adds bars to the symbol's series.
func (s *Server) AddBars(symbol string, bars ...records.Bar) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bars[symbol] = append(s.bars[symbol], bars...)
	table.SortByTime(s.bars[symbol])
}

// AddTrades adds trades to the symbol's series.
func (s *Server) AddTrades(symbol string, trades ...records.Trade) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trades[symbol] = append(s.trades[symbol], trades...)
	table.SortByTime(s.trades[symbol])
}

// AddQuotes adds quotes to the symbol's series.
func (s *Server) AddQuotes(symbol string, quotes ...records.Quote) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quotes[symbol] = append(s.quotes[symbol], quotes...)
	table.SortByTime(s.quotes[symbol])
}

// SetOptionChain sets the option symbols of the underlying symbol.
func (s *Server) SetOptionChain(symbol string, options ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chains[symbol] = options
}

// Requests received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]Request, len(s.requests))
	copy(res, s.requests)
	return res
}

func (s *Server) record(c *gin.Context) {
	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Path:  c.Request.URL.Path,
		Query: c.Request.URL.Query(),
	})
	s.mu.Unlock()
	c.Next()
}

type windowParams struct {
	Symbol    string `form:"symbol" binding:"required"`
	BeginTime string `form:"beginTime" binding:"required"`
	EndTime   string `form:"endTime" binding:"required"`
}

func (p windowParams) window() (feed.Window, error) {
	b, err := time.Parse(feed.TimeFormat, p.BeginTime)
	if err != nil {
		return feed.Window{}, errors.Annotate(err, "invalid beginTime")
	}
	e, err := time.Parse(feed.TimeFormat, p.EndTime)
	if err != nil {
		return feed.Window{}, errors.Annotate(err, "invalid endTime")
	}
	return feed.NewWindow(b, e), nil
}

type barParams struct {
	windowParams
	HistoryType int `form:"historyType"`
	Minutes     int `form:"intradayMinutes"`
}

type tickParams struct {
	windowParams
	Trades int `form:"trades"`
	Quotes int `form:"quotes"`
}

// within returns the records of the sorted series with the timestamp truncated
// to seconds in the window.
func within[R table.Timed](series []R, w feed.Window) []R {
	return table.Range(series, w.Begin, w.End.Add(time.Second-time.Nanosecond))
}

func badRequest(c *gin.Context, err error) {
	c.String(http.StatusBadRequest, "%s\n", err.Error())
}

func (s *Server) handleBars(c *gin.Context) {
	var p barParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p.HistoryType < 0 || p.HistoryType > 2 {
		badRequest(c, errors.Reason("invalid historyType %d", p.HistoryType))
		return
	}
	w, err := p.window()
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	bars := within(s.bars[p.Symbol], w)
	if s.MaxBars > 0 && len(bars) > s.MaxBars {
		bars = bars[len(bars)-s.MaxBars:]
	}
	var b strings.Builder
	for _, bar := range bars {
		fmt.Fprintf(&b, "%s,%s\n", feed.FormatTime(bar.Datetime),
			strings.Join(bar.CSV(), ","))
	}
	c.String(http.StatusOK, "%s", b.String())
}

func tickLines[R records.Record](series []R, w feed.Window, limit int) string {
	ticks := within(series, w)
	if len(ticks) == 0 {
		return feed.Sentinel + "\n"
	}
	if limit > 0 && len(ticks) > limit {
		ticks = ticks[:limit]
	}
	var b strings.Builder
	for i, t := range ticks {
		fmt.Fprintf(&b, "%d,%s,%s\n", i, records.FormatTickTime(t.Time()),
			strings.Join(t.CSV(), ","))
	}
	return b.String()
}

func (s *Server) handleTicks(c *gin.Context) {
	var p tickParams
	if err := c.ShouldBindQuery(&p); err != nil {
		badRequest(c, err)
		return
	}
	if p.Trades+p.Quotes != 1 {
		badRequest(c, errors.Reason("exactly one of trades and quotes must be 1"))
		return
	}
	w, err := p.window()
	if err != nil {
		badRequest(c, err)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.Trades == 1 {
		c.String(http.StatusOK, "%s", tickLines(s.trades[p.Symbol], w, s.PageSize))
		return
	}
	c.String(http.StatusOK, "%s", tickLines(s.quotes[p.Symbol], w, s.PageSize))
}

func (s *Server) handleOptionChain(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		badRequest(c, errors.Reason("symbol is required"))
		return
	}
	s.mu.Lock()
	chain := s.chains[symbol]
	s.mu.Unlock()
	var b strings.Builder
	for _, o := range chain {
		b.WriteString(o + "\n")
	}
	if len(chain) > 0 {
		b.WriteString("END\n")
	}
	c.String(http.StatusOK, "%s", b.String())
}
