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

// Trade is a single trade tick. The raw line has a leading index field which
// is ignored:
//
//	index,datetime,price,size,exchange,cond1,cond2,cond3,cond4
type Trade struct {
	Datetime time.Time
	Price    float64
	Size     int64
	Exchange string
	Cond1    int
	Cond2    int
	Cond3    int
	Cond4    int
}

var _ Record = Trade{}

// Time implements Record.
func (t Trade) Time() time.Time { return t.Datetime }

// Columns implements Record.
func (t Trade) Columns() []string {
	return []string{"Price", "Size", "Exchange", "Cond1", "Cond2", "Cond3", "Cond4"}
}

// CSV implements Record.
func (t Trade) CSV() []string {
	return []string{
		formatFloat(t.Price),
		formatInt(t.Size),
		t.Exchange,
		strconv.Itoa(t.Cond1),
		strconv.Itoa(t.Cond2),
		strconv.Itoa(t.Cond3),
		strconv.Itoa(t.Cond4),
	}
}

// FromLine sets the value of Trade from a raw feed line.
func (t *Trade) FromLine(line string) error {
	f, err := fields(line, 9)
	if err != nil {
		return err
	}
	f = f[1:]
	if t.Datetime, err = ParseTickTime(f[0]); err != nil {
		return errors.Annotate(err, "datetime should be a tick time")
	}
	if t.Price, err = parseFloat(f[1], "price"); err != nil {
		return err
	}
	if t.Size, err = parseInt64(f[2], "size"); err != nil {
		return err
	}
	t.Exchange = f[3]
	for i, c := range []*int{&t.Cond1, &t.Cond2, &t.Cond3, &t.Cond4} {
		if *c, err = parseInt(f[4+i], "cond"+strconv.Itoa(i+1)); err != nil {
			return err
		}
	}
	return nil
}
