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
	"time"

	"github.com/stockparfait/errors"
)

// Bar is an OHLCV price bar. The raw line is:
//
//	YYYYMMDDHHMMSS,open,high,low,close,volume
type Bar struct {
	Datetime time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	Volume   int64
}

var _ Record = Bar{}

// Time implements Record.
func (b Bar) Time() time.Time { return b.Datetime }

// Columns implements Record.
func (b Bar) Columns() []string {
	return []string{"Open", "High", "Low", "Close", "Volume"}
}

// CSV implements Record.
func (b Bar) CSV() []string {
	return []string{
		formatFloat(b.Open),
		formatFloat(b.High),
		formatFloat(b.Low),
		formatFloat(b.Close),
		formatInt(b.Volume),
	}
}

// FromLine sets the value of Bar from a raw feed line.
func (b *Bar) FromLine(line string) error {
	f, err := fields(line, 6)
	if err != nil {
		return err
	}
	if b.Datetime, err = ParseBarTime(f[0]); err != nil {
		return errors.Annotate(err, "datetime should be a bar time")
	}
	if b.Open, err = parseFloat(f[1], "open"); err != nil {
		return err
	}
	if b.High, err = parseFloat(f[2], "high"); err != nil {
		return err
	}
	if b.Low, err = parseFloat(f[3], "low"); err != nil {
		return err
	}
	if b.Close, err = parseFloat(f[4], "close"); err != nil {
		return err
	}
	if b.Volume, err = parseInt64(f[5], "volume"); err != nil {
		return err
	}
	return nil
}

// TestBar creates a Bar for use in tests.
func TestBar(t time.Time, open, high, low, close float64, volume int64) Bar {
	return Bar{
		Datetime: t,
		Open:     open,
		High:     high,
		Low:      low,
		Close:    close,
		Volume:   volume,
	}
}
