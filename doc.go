// Package expenses provides the types and operations for a single-user
// wallet bookkeeping ledger. It is designed to be local-first and
// auditable: the whole state is one human-readable JSON document that can
// be hand-edited and version-controlled.
//
// The core functionalities include:
//   - Wallets: named balances, each held in one currency, with an ordered,
//     append-only log of expenses recorded against them.
//   - Currency Table: a static, injectable mapping of currency code to its
//     value relative to a base unit, behind a conversion interface so a
//     live-rate provider could replace it without touching callers.
//   - Reports: consolidated dashboards and per-wallet reports with balances
//     converted into a chosen display currency.
//   - Data Persistence: encoding and decoding the whole wallet collection
//     as a single document, with strict field validation on load and
//     all-or-nothing replacement on save.
//
// This package serves as the foundational logic for the `ews` command-line
// tool; every command maps one-to-one onto a ledger operation.
package expenses
