// Copyright (c) 2025-2026 OSCode
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactSubmission is a message sent through the public contact form.
// Submissions are immutable after creation and carry no app-assigned id;
// admin operations address them by the store-assigned identity.
type ContactSubmission struct {
	StoreID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	FormType  string             `bson:"form_type" json:"form_type"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
