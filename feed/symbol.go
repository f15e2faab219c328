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
	"strings"
)

// AssetClass selects the symbology rule of TransformSymbol.
type AssetClass string

// Values of AssetClass. Any other value is treated as Option.
const (
	Equity   = AssetClass("equity")
	Index    = AssetClass("index")
	Currency = AssetClass("currency")
	Option   = AssetClass("option")
)

// ParseAssetClass converts a user-supplied string into an AssetClass. Unknown
// strings become Option, same as in TransformSymbol.
func ParseAssetClass(s string) AssetClass {
	switch c := AssetClass(strings.ToLower(s)); c {
	case Equity, Index, Currency:
		return c
	}
	return Option
}

// TransformSymbol converts a generic symbol into ActiveTick's symbology.
func TransformSymbol(symbol string, class AssetClass) string {
	switch class {
	case Equity:
		return strings.ReplaceAll(symbol, "/", "-")
	case Index:
		return "INDEX:" + symbol
	case Currency:
		return "CURRENCY:" + symbol
	}
	return "OPTION:" + strings.ReplaceAll(symbol, " ", "-")
}
