package models

import "time"

// Judge number bounds and the ippon quorum
const (
	MinJudgeNumber = 1
	MaxJudgeNumber = 5
	IpponQuorum    = 3
)

// Request types

type JudgeActionRequest struct {
	JudgeNumber int `json:"judgeNumber"`
}

// Response types

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ResetResponse struct {
	Success     bool `json:"success"`
	RoundNumber int  `json:"roundNumber"`
}

type YoResponse struct {
	Success   bool  `json:"success"`
	Timestamp int64 `json:"timestamp"` // Unix milliseconds
}

// judge_number -> voted; judges without a vote row are absent
type StatusResponse struct {
	SessionID   int64        `json:"sessionId"`
	RoundNumber int          `json:"roundNumber"`
	Judges      []Judge      `json:"judges"`
	Votes       map[int]bool `json:"votes"`
	VoteCount   int          `json:"voteCount"`
	IsIppon     bool         `json:"isIppon"`
	Timestamp   int64        `json:"timestamp"`
}

type LatestYoResponse struct {
	HasYo       bool   `json:"hasYo"`
	JudgeNumber int    `json:"judgeNumber,omitempty"`
	JudgeName   string `json:"judgeName,omitempty"`
	Timestamp   int64  `json:"timestamp,omitempty"`
}

// Domain types

type Judge struct {
	ID          int64  `json:"id"`
	JudgeNumber int    `json:"judge_number"`
	Name        string `json:"name"`
}

type Session struct {
	ID          int64     `json:"id"`
	RoundNumber int       `json:"round_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vote struct {
	SessionID   int64     `json:"session_id"`
	JudgeID     int64     `json:"judge_id"`
	JudgeNumber int       `json:"judge_number"`
	Voted       bool      `json:"voted"`
	VotedAt     time.Time `json:"voted_at"`
}

type YoEvent struct {
	ID          int64     `json:"id"`
	SessionID   int64     `json:"session_id"`
	JudgeNumber int       `json:"judge_number"`
	JudgeName   string    `json:"judge_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error string `json:"error"`
}
