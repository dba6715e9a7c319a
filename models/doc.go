// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

JSON field names follow the display client: camelCase for API payloads,
snake_case for judge rows embedded in the status response.

# Request Types

  - JudgeActionRequest: judgeNumber (used by vote and yo)

# Response Types

  - SuccessResponse: success
  - ResetResponse: success, roundNumber
  - YoResponse: success, timestamp
  - StatusResponse: sessionId, roundNumber, judges, votes, voteCount, isIppon, timestamp
  - LatestYoResponse: hasYo, judgeNumber, judgeName, timestamp
  - ErrorResponse: error

All timestamps in responses are Unix milliseconds.

# Domain Types

  - Judge: one of the five judge seats
  - Session: one judging round
  - Vote: a judge's ippon state within a session
  - YoEvent: one attention signal, joined with its judge

# Constants

	MinJudgeNumber = 1
	MaxJudgeNumber = 5
	IpponQuorum    = 3
*/
package models
