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
	"context"

	"github.com/stockparfait/errors"
	"github.com/stockparfait/logging"
)

// FetchOptionChain returns the option symbols of the underlying symbol. The
// server terminates the list with a non-symbol line, which is dropped.
func FetchOptionChain(ctx context.Context, f Fetcher, symbol string) ([]string, error) {
	page, err := f.FetchPage(ctx, NewOptionChainQuery(symbol))
	if err != nil {
		return nil, errors.Annotate(err, "failed to fetch option chain for %s", symbol)
	}
	if len(page) == 0 {
		return []string{}, nil
	}
	logging.Debugf(ctx, "option chain for %s: %d symbols", symbol, len(page)-1)
	return []string(page[:len(page)-1]), nil
}
