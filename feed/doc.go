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

// Package feed implements the request side of the ActiveTick Feed HTTP server
// protocol.
//
// The server answers plain GET requests with plain text: one record per line,
// comma-separated fields. Each request is bounded by a time window, and the
// server returns at most one page of data per request. Assembling complete
// time series from multiple pages is the job of the retrieve package; this
// package only knows how to encode a single query and fetch a single Page.
//
// Queries are immutable builders, similar to a table query: each builder
// method returns a modified copy, leaving the original intact.
//
// The Client implementing Fetcher over HTTP is injected into the context with
// UseClient, and the underlying http.Client (if any) with fetch.UseClient.
// Tests may implement Fetcher directly.
package feed
