// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Qualification is the three-level categorical summary of a lead score.
type Qualification string

const (
	QualificationCold Qualification = "Cold"
	QualificationWarm Qualification = "Warm"
	QualificationHot  Qualification = "Hot"
)

// Lead statuses.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
	LeadStatusConverted = "converted"
	LeadStatusLost      = "lost"
)

type Workspace struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type User struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Role struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Permission struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Lead is the central CRM record. Score and Qualification are only written by
// the scoring engine, never directly by API mutations.
type Lead struct {
	ID          string  `db:"id" json:"id"`
	WorkspaceID string  `db:"workspace_id" json:"workspace_id"`
	OwnerID     string  `db:"owner_id" json:"owner_id"`
	CompanyID   *string `db:"company_id" json:"company_id,omitempty"`
	ContactID   *string `db:"contact_id" json:"contact_id,omitempty"`

	Name        string `db:"name" json:"name"`
	Email       string `db:"email" json:"email"`
	Phone       string `db:"phone" json:"phone"`
	CompanyName string `db:"company_name" json:"company_name"`
	Website     string `db:"website" json:"website"`
	Notes       string `db:"notes" json:"notes"`
	Status      string `db:"status" json:"status"`
	Source      string `db:"source" json:"source"`

	Score         int           `db:"score" json:"score"`
	Qualification Qualification `db:"qualification" json:"qualification"`

	Tags       []string   `db:"tags" json:"tags"`
	Properties Properties `db:"properties" json:"properties"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Properties is a typed key-value bag for lead attributes that don't warrant
// a column. Recognized keys: "linkedin_url", "industry", "timezone".
type Properties map[string]string

type Contact struct {
	ID          string    `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	CompanyID   *string   `db:"company_id" json:"company_id,omitempty"`
	Name        string    `db:"name" json:"name"`
	Email       string    `db:"email" json:"email"`
	Phone       string    `db:"phone" json:"phone"`
	Title       string    `db:"title" json:"title"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Company struct {
	ID          string    `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name" json:"name"`
	Website     string    `db:"website" json:"website"`
	Industry    string    `db:"industry" json:"industry"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type ProspectList struct {
	ID          string    `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Campaign statuses.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusScheduled = "scheduled"
	CampaignStatusSent      = "sent"
)

type EmailCampaign struct {
	ID          string     `db:"id" json:"id"`
	WorkspaceID string     `db:"workspace_id" json:"workspace_id"`
	Name        string     `db:"name" json:"name"`
	Subject     string     `db:"subject" json:"subject"`
	Body        string     `db:"body" json:"body"`
	Status      string     `db:"status" json:"status"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

type ActivityLog struct {
	ID          string    `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	UserID      string    `db:"user_id" json:"user_id"`
	EntityType  string    `db:"entity_type" json:"entity_type"`
	EntityID    string    `db:"entity_id" json:"entity_id"`
	Action      string    `db:"action" json:"action"`
	Detail      string    `db:"detail" json:"detail"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// MailConfiguration stores per-workspace outbound mail settings. Transport is
// handled by the dispatch worker, this service only stores the settings.
type MailConfiguration struct {
	ID          string    `db:"id" json:"id"`
	WorkspaceID string    `db:"workspace_id" json:"workspace_id"`
	FromName    string    `db:"from_name" json:"from_name"`
	FromEmail   string    `db:"from_email" json:"from_email"`
	Host        string    `db:"host" json:"host"`
	Port        int       `db:"port" json:"port"`
	Username    string    `db:"username" json:"username"`
	Encryption  string    `db:"encryption" json:"encryption"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
