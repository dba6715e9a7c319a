// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package judging implements rounds, ippon votes, yo events and the display
status on top of the database.

	store := judging.NewStore(conn)
	session, err := store.ResetRound(ctx)
	voted, err := store.SubmitVote(ctx, 3)
	snap, err := store.Status(ctx)

# Rounds

Exactly one session is active at a time. ResetRound deactivates it and opens
the next round in a single transaction; votes and yo events stay attributed to
the session they were cast in.

# Votes

SubmitVote toggles: no row → voted → not voted → voted. The flip is a single
upsert, so the (session, judge) pair never has more than one row.

# Status

Status reads the active session, all judges and that session's votes. A
round is an ippon once IpponQuorum judges have voted.

# Yo events

RecordYo appends unconditionally. LatestYo looks across every session, not
just the active one.

# Errors

Failures wrap ErrValidation (bad judge number), ErrNotFound (no active
session, unknown judge) or ErrConflict (a second active session slipped in
during a reset); check them with errors.Is. Anything else is a store failure.
*/
package judging
