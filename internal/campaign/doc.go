// Package campaign groups the engine core for solo campaign play.
//
// The day loop is the unit of play: each in-game day advances the
// calendar, ticks cadence clocks, audits the adjudication log for clock
// movement, evaluates interaction rules, and rolls the gated engines.
// Everything feeding that loop lives in a subpackage: state holds the
// campaign aggregate, calendar the in-game dates, dice the audited
// rolls, and creative the request queue that carries work out to the
// narrator between days.
//
// Subpackages here must stay deterministic and storage-free so a saved
// campaign replays the same way everywhere; persistence lives in
// internal/storage and wiring in internal/cmd.
package campaign
