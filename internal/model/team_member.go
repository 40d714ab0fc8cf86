// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// TeamMember is a member of the organizing team. ImageURL is set through the
// admin image-upload flow.
type TeamMember struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Role        string    `bson:"role" json:"role"`
	Year        string    `bson:"year" json:"year"`
	Department  string    `bson:"department" json:"department"`
	Bio         string    `bson:"bio" json:"bio"`
	ImageURL    string    `bson:"image_url,omitempty" json:"image_url,omitempty"`
	LinkedinURL string    `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	GithubURL   string    `bson:"github_url,omitempty" json:"github_url,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
