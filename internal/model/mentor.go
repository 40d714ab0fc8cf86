// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import "time"

// Mentor is a community mentor profile.
type Mentor struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Expertise   string    `bson:"expertise" json:"expertise"`
	Company     string    `bson:"company" json:"company"`
	Bio         string    `bson:"bio" json:"bio"`
	LinkedinURL string    `bson:"linkedin_url,omitempty" json:"linkedin_url,omitempty"`
	IsActive    bool      `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
