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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"

	"github.com/stockparfait/activetick/feed"
	"github.com/stockparfait/activetick/retrieve"
	"github.com/stockparfait/activetick/stats"
	"github.com/stockparfait/activetick/table"

	toml "github.com/pelletier/go-toml/v2"
)

type Flags struct {
	ConfPath string // default: ~/.activetick/config.toml
	LogLevel logging.Level
	Kind     string // bars, trades, quotes or options
	Symbol   string // required
	Class    string // default: from config
	History  feed.HistoryType
	Minutes  int
	Start    time.Time
	End      time.Time
	CSV      bool // dump CSV format; default: text.
	Summary  bool // print summary statistics after the data
	Rows     int  // max. rows to print; 0 = all
}

var timeFormats = []string{"2006-01-02T15:04:05", "2006-01-02", feed.TimeFormat}

// parseTime accepts any of timeFormats. Empty string is zero time.
func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, f := range timeFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Reason("invalid time '%s', expected one of %v",
		s, timeFormats)
}

func parseFlags(args []string) (*Flags, error) {
	var flags Flags
	var history, start, end string
	fs := flag.NewFlagSet("activetick", flag.ExitOnError)
	fs.StringVar(&flags.ConfPath, "conf",
		filepath.Join(os.Getenv("HOME"), ".activetick", "config.toml"),
		"configuration file")
	flags.LogLevel = logging.Info
	fs.Var(&flags.LogLevel, "log-level", "Log level: debug, info, warning, error")
	fs.StringVar(&flags.Kind, "kind", "bars", "data to retrieve: bars, trades, quotes, options")
	fs.StringVar(&flags.Symbol, "symbol", "", "symbol (required)")
	fs.StringVar(&flags.Class, "class", "", "asset class: equity, index, currency, option; default: from config")
	fs.StringVar(&history, "history", "daily", "bar history: intraday, daily, weekly")
	fs.IntVar(&flags.Minutes, "minutes", 1, "intraday bar length in minutes")
	fs.StringVar(&start, "start", "", "start time, e.g. 2020-01-02 or 2020-01-02T09:30:00")
	fs.StringVar(&end, "end", "", "end time, e.g. 2020-01-02 or 2020-01-02T16:00:00")
	fs.BoolVar(&flags.CSV, "csv", false, "print table in CSV format; default: text")
	fs.BoolVar(&flags.Summary, "summary", false, "print summary statistics")
	fs.IntVar(&flags.Rows, "rows", 0, "max. number of rows to print; default: all")

	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}
	if flags.Symbol == "" {
		return nil, errors.Reason("missing required -symbol argument")
	}
	switch flags.Kind {
	case "bars", "trades", "quotes", "options":
	default:
		return nil, errors.Reason("unknown -kind '%s'", flags.Kind)
	}
	if flags.History, err = feed.ParseHistoryType(history); err != nil {
		return nil, errors.Annotate(err, "invalid -history")
	}
	if flags.Start, err = parseTime(start); err != nil {
		return nil, errors.Annotate(err, "invalid -start")
	}
	if flags.End, err = parseTime(end); err != nil {
		return nil, errors.Annotate(err, "invalid -end")
	}
	return &flags, nil
}

type Config struct {
	Host  string `toml:"host"`
	Port  int    `toml:"port"`
	Class string `toml:"class"` // default asset class
}

// parseConfig reads the TOML config file. A missing file yields the defaults.
func parseConfig(filePath string) (*Config, error) {
	c := Config{
		Host:  feed.DefaultHost,
		Port:  feed.DefaultPort,
		Class: string(feed.Equity),
	}
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &c, nil
		}
		return nil, errors.Annotate(err, "failed to open config file %s", filePath)
	}
	defer f.Close()

	d := toml.NewDecoder(f)
	if err := d.Decode(&c); err != nil {
		return nil, errors.Annotate(err, "failed to read config file %s", filePath)
	}
	return &c, nil
}

type optionRow string

func (o optionRow) CSV() []string { return []string{string(o)} }

// retrieveData returns the data table and its summary.
func retrieveData(ctx context.Context, flags *Flags, class feed.AssetClass) (*table.Table, table.Row, error) {
	switch flags.Kind {
	case "bars":
		res, err := retrieve.Bars(ctx, nil, retrieve.BarRequest{
			Symbol:  flags.Symbol,
			Class:   class,
			History: flags.History,
			Minutes: flags.Minutes,
			Start:   flags.Start,
			End:     flags.End,
		})
		if err != nil {
			return nil, nil, errors.Annotate(err, "failed to retrieve bars")
		}
		return res.Table(), stats.SummarizeBars(res.Records), nil
	case "trades":
		res, err := retrieve.Trades(ctx, nil, retrieve.TickRequest{
			Symbol: flags.Symbol, Class: class, Start: flags.Start, End: flags.End})
		if err != nil {
			return nil, nil, errors.Annotate(err, "failed to retrieve trades")
		}
		return res.Table(), stats.SummarizeTrades(res.Records), nil
	case "quotes":
		res, err := retrieve.Quotes(ctx, nil, retrieve.TickRequest{
			Symbol: flags.Symbol, Class: class, Start: flags.Start, End: flags.End})
		if err != nil {
			return nil, nil, errors.Annotate(err, "failed to retrieve quotes")
		}
		return res.Table(), stats.SummarizeQuotes(res.Records), nil
	}
	chain, err := feed.FetchOptionChain(ctx, feed.GetClient(ctx), flags.Symbol)
	if err != nil {
		return nil, nil, errors.Annotate(err, "failed to retrieve option chain")
	}
	tbl := table.NewTable("Option")
	for _, o := range chain {
		tbl.AddRow(optionRow(o))
	}
	return tbl, nil, nil
}

func writeTable(w io.Writer, tbl *table.Table, csv bool, p table.Params) error {
	if csv {
		if err := tbl.WriteCSV(w, p); err != nil {
			return errors.Annotate(err, "failed to print CSV")
		}
		return nil
	}
	if err := tbl.WriteText(w, p); err != nil {
		return errors.Annotate(err, "failed to print text")
	}
	return nil
}

func printData(ctx context.Context, flags *Flags, config *Config, w io.Writer) error {
	class := feed.ParseAssetClass(config.Class)
	if flags.Class != "" {
		class = feed.ParseAssetClass(flags.Class)
	}
	tbl, summary, err := retrieveData(ctx, flags, class)
	if err != nil {
		return err
	}
	if err := writeTable(w, tbl, flags.CSV, table.Params{Rows: flags.Rows}); err != nil {
		return err
	}
	if !flags.Summary || summary == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Annotate(err, "failed to print separator")
	}
	st := table.NewTable(stats.SummaryColumns...)
	st.AddRow(summary)
	return writeTable(w, st, flags.CSV, table.Params{})
}

func run(ctx context.Context, flags *Flags, w io.Writer) error {
	config, err := parseConfig(flags.ConfPath)
	if err != nil {
		return errors.Annotate(err, "failed to parse config")
	}
	ctx = feed.UseClient(ctx, feed.NewClientForAddress(config.Host, config.Port))
	return printData(ctx, flags, config, w)
}

func main() {
	ctx := context.Background()
	flags, err := parseFlags(os.Args[1:])
	if err != nil {
		ctx = logging.Use(ctx, logging.DefaultGoLogger(logging.Info))
		logging.Errorf(ctx, "failed to parse flags: %s", err.Error())
		os.Exit(1)
	}
	ctx = logging.Use(ctx, logging.DefaultGoLogger(flags.LogLevel))

	if err := run(ctx, flags, os.Stdout); err != nil {
		logging.Errorf(ctx, err.Error())
		os.Exit(1)
	}
}
