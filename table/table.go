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

// Package table holds retrieval results as time-indexed tables, writes them as
// text or CSV, and implements the ordering and range operations of a result.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/stockparfait/errors"
)

// IndexColumn is the header of the timestamp column of a time-indexed table.
const IndexColumn = "Datetime"

// Row interface that a table row representation must implement.
type Row interface {
	CSV() []string // an encoding/csv compatible row representation
}

// TimedRow is a Row with a timestamp. In a time-indexed table the formatted
// timestamp is the first column, followed by CSV().
type TimedRow interface {
	Row
	Time() time.Time
}

// Table container.
//
// A typical use:
//
//	t := NewTimeTable("2006-01-02", "Open", "Close")
//	AddRows(t, bars)
//	err := t.WriteText(os.Stdout, Params{Rows: 10})
type Table struct {
	Header     []string // value columns, optional, may be nil
	Index      string   // timestamp column header; "" for a plain table
	TimeFormat string   // layout of the timestamp column
	Rows       []Row
}

// NewTable creates a plain Table with optional column headers. It is expected
// that, when present, the number of column headers is the same as the number
// of elements in each Row.
func NewTable(header ...string) *Table {
	return &Table{Header: header}
}

// NewTimeTable creates a time-indexed Table. All rows must implement TimedRow.
func NewTimeTable(timeFormat string, header ...string) *Table {
	return &Table{
		Header:     header,
		Index:      IndexColumn,
		TimeFormat: timeFormat,
	}
}

// AddRow adds one or more rows to the table.
func (t *Table) AddRow(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

// AddRows adds a slice of typed rows to the table.
func AddRows[R Row](t *Table, rows []R) {
	for _, r := range rows {
		t.Rows = append(t.Rows, r)
	}
}

func (t *Table) header() []string {
	if len(t.Header) == 0 {
		return nil
	}
	if t.Index == "" {
		return t.Header
	}
	return append([]string{t.Index}, t.Header...)
}

func (t *Table) cells(r Row) ([]string, error) {
	if t.Index == "" {
		return r.CSV(), nil
	}
	tr, ok := r.(TimedRow)
	if !ok {
		return nil, errors.Reason("row of type %T has no timestamp", r)
	}
	return append([]string{tr.Time().Format(t.TimeFormat)}, tr.CSV()...), nil
}

// Params are parameters for pretty-printing or CSV export of Table data.
type Params struct {
	Rows        int  // max. number of rows to write; 0 = unlimited (default)
	NoHeader    bool // whether to print the header, default - yes
	MaxColWidth int  // for WriteText only; 0 = unlimited, otherwise must be >= 4
}

// rows returns the cells of the rows to be written.
func (t *Table) rows(p Params) ([][]string, error) {
	n := len(t.Rows)
	if p.Rows > 0 && p.Rows < n {
		n = p.Rows
	}
	res := make([][]string, n)
	for i := 0; i < n; i++ {
		c, err := t.cells(t.Rows[i])
		if err != nil {
			return nil, errors.Annotate(err, "row %d", i)
		}
		res[i] = c
	}
	return res, nil
}

// WriteCSV writes the table to w in CSV format.
func (t *Table) WriteCSV(w io.Writer, p Params) error {
	rows, err := t.rows(p)
	if err != nil {
		return errors.Annotate(err, "failed to format rows")
	}
	cw := csv.NewWriter(w)
	if h := t.header(); !p.NoHeader && len(h) > 0 {
		if err := cw.Write(h); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
	}
	for _, r := range rows {
		if err := cw.Write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Annotate(err, "failed to flush written rows")
	}
	return nil
}

// WriteText writes the table as a text formatted for ease of reading.
func (t *Table) WriteText(w io.Writer, p Params) error {
	if p.MaxColWidth != 0 && p.MaxColWidth < 4 {
		return errors.Reason("MaxColWidth [%d] must be 0 or >= 4", p.MaxColWidth)
	}
	rows, err := t.rows(p)
	if err != nil {
		return errors.Annotate(err, "failed to format rows")
	}
	h := t.header()
	if p.NoHeader {
		h = nil
	}
	var widths []int
	update := func(row []string) error {
		if len(row) == 0 {
			return errors.Reason("row size = 0")
		}
		if widths == nil {
			widths = make([]int, len(row))
		}
		if len(row) != len(widths) {
			return errors.Reason("row size [%d] != expected size [%d]",
				len(row), len(widths))
		}
		for i, s := range row {
			l := len([]rune(s))
			if p.MaxColWidth > 0 && l > p.MaxColWidth {
				l = p.MaxColWidth
			}
			if widths[i] < l {
				widths[i] = l
			}
		}
		return nil
	}
	write := func(row []string) error {
		padded := make([]string, len(row))
		for i, s := range row {
			if r := []rune(s); len(r) > widths[i] {
				s = string(r[:widths[i]-2]) + ".."
			}
			padded[i] = fmt.Sprintf("%[2]*[1]s", s, widths[i])
		}
		_, err := fmt.Fprintf(w, "%s\n", strings.Join(padded, " | "))
		return err
	}

	if len(h) > 0 {
		if err := update(h); err != nil {
			return errors.Annotate(err, "failed to update header widths")
		}
	}
	for _, r := range rows {
		if err := update(r); err != nil {
			return errors.Annotate(err, "failed to update row widths")
		}
	}
	if len(h) > 0 {
		if err := write(h); err != nil {
			return errors.Annotate(err, "failed to write header")
		}
		sep := make([]string, len(widths))
		for i, n := range widths {
			sep[i] = strings.Repeat("-", n)
		}
		if err := write(sep); err != nil {
			return errors.Annotate(err, "failed to write header separator")
		}
	}
	for _, r := range rows {
		if err := write(r); err != nil {
			return errors.Annotate(err, "failed to write row")
		}
	}
	return nil
}
