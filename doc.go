// Package equity prices single equity-return cash flows, optionally
// adjusted for quanto currency risk.
//
// The core functionalities include:
//   - Market Data Handles: shared, re-pointable references to quotes, yield
//     curves and volatility surfaces, with change notification. Relinking a
//     handle, or mutating the quote it points to, invalidates every cached
//     result downstream.
//   - Equity Indexes: an underlying with a shared fixing history, a forecast
//     curve, an optional dividend curve and a spot quote. Past levels are
//     looked up, future levels are forecast as risk-neutral forwards.
//   - Cash Flows and Pricers: a cash flow pays the percentage return of its
//     index over a period; the attached pricer is either the plain
//     simple-return pricer or the quanto pricer, which applies the
//     drift correction for the covariance between the index and the FX rate.
//   - Market Files: a human-readable JSON format declaring the curves,
//     surfaces, quotes and fixings a valuation reads, with live quote
//     updates from HTTP feeds.
//
// Valuation is lazy: amounts are computed on read, cached, and recomputed
// only after a market data change. The package is not safe for concurrent
// use; a valuation pipeline runs under one evaluation context.
//
// This package serves as the foundational logic for the `eqp` command-line
// tool.
package equity
