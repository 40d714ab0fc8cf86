// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the content entities stored in the platform's
// document collections.
package model

// Collection names.
const (
	CollectionContacts    = "contacts"
	CollectionEvents      = "events"
	CollectionJobs        = "jobs"
	CollectionMentors     = "mentors"
	CollectionTeamMembers = "team_members"
	CollectionEventLog    = "event_log"
)

// Entity defaults applied at creation time.
const (
	DefaultFormType  = "general"
	DefaultEventType = "workshop"
)
