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
	"strconv"
	"time"

	"github.com/stockparfait/errors"
)

// Quote is a single top-of-book quote tick. The raw line is:
//
//	index,datetime,bid,ask,bidsize,asksize,bidexch,askexch,cond
type Quote struct {
	Datetime    time.Time
	BidPrice    float64
	AskPrice    float64
	BidSize     int64
	AskSize     int64
	BidExchange string
	AskExchange string
	Cond        int
}

var _ Record = Quote{}

// Time implements Record.
func (q Quote) Time() time.Time { return q.Datetime }

// Columns implements Record.
func (q Quote) Columns() []string {
	return []string{"BidPrice", "AskPrice", "BidSize", "AskSize",
		"BidExchange", "AskExchange", "Cond"}
}

// CSV implements Record.
func (q Quote) CSV() []string {
	return []string{
		formatFloat(q.BidPrice),
		formatFloat(q.AskPrice),
		formatInt(q.BidSize),
		formatInt(q.AskSize),
		q.BidExchange,
		q.AskExchange,
		strconv.Itoa(q.Cond),
	}
}

// Spread is the difference between the ask and the bid prices.
func (q Quote) Spread() float64 { return q.AskPrice - q.BidPrice }

// FromLine sets the value of Quote from a raw feed line.
func (q *Quote) FromLine(line string) error {
	f, err := fields(line, 9)
	if err != nil {
		return err
	}
	f = f[1:]
	if q.Datetime, err = ParseTickTime(f[0]); err != nil {
		return errors.Annotate(err, "datetime should be a tick time")
	}
	if q.BidPrice, err = parseFloat(f[1], "bid price"); err != nil {
		return err
	}
	if q.AskPrice, err = parseFloat(f[2], "ask price"); err != nil {
		return err
	}
	if q.BidSize, err = parseInt64(f[3], "bid size"); err != nil {
		return err
	}
	if q.AskSize, err = parseInt64(f[4], "ask size"); err != nil {
		return err
	}
	q.BidExchange = f[5]
	q.AskExchange = f[6]
	if q.Cond, err = parseInt(f[7], "cond"); err != nil {
		return err
	}
	return nil
}
