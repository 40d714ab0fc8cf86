// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Job is an open position listed on the public job board.
type Job struct {
	ID           string    `bson:"id" json:"id"`
	Title        string    `bson:"title" json:"title"`
	Company      string    `bson:"company" json:"company"`
	Location     string    `bson:"location" json:"location"`
	JobType      string    `bson:"job_type" json:"job_type"`
	Description  string    `bson:"description" json:"description"`
	Requirements []string  `bson:"requirements" json:"requirements"`
	ApplyURL     string    `bson:"apply_url" json:"apply_url"`
	IsActive     bool      `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
