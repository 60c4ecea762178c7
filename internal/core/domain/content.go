package domain

import (
	"errors"
	"time"
)

var ErrProjectNotFound = errors.New("project not found")
var ErrSkillNotFound = errors.New("skill not found")
var ErrCertificateNotFound = errors.New("certificate not found")
var ErrEducationNotFound = errors.New("education entry not found")
var ErrExperienceNotFound = errors.New("experience entry not found")
var ErrImageNotFound = errors.New("site image not found")
var ErrResumeNotFound = errors.New("no resume uploaded")
var ErrDuplicateMessage = errors.New("message already submitted")

// Project is a portfolio entry shown on the public projects page.
type Project struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	Link        string `json:"link,omitempty" bson:"link,omitempty"`
}

// Skill is a named competency with an optional logo image.
type Skill struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Certificate is a certification shown on the public certificates page.
type Certificate struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Title string `json:"title" bson:"title"`
	Image string `json:"image,omitempty" bson:"image,omitempty"`
}

// Education is a timeline entry on the about page. Order controls the
// position within the timeline, lowest first.
type Education struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Degree      string `json:"degree" bson:"degree"`
	Institution string `json:"institution" bson:"institution"`
	StartDate   string `json:"start_date" bson:"start_date"` // free-form, e.g. "2018"
	EndDate     string `json:"end_date" bson:"end_date"`     // e.g. "2022" or "Present"
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Order       int    `json:"order" bson:"order"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
}

// Experience is a work-history timeline entry on the about page.
type Experience struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Position    string `json:"position" bson:"position"`
	Company     string `json:"company" bson:"company"`
	StartDate   string `json:"start_date" bson:"start_date"`
	EndDate     string `json:"end_date" bson:"end_date"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Order       int    `json:"order" bson:"order"`
}

// Message is a visitor submission from the public contact form.
type Message struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Body       string    `json:"body" bson:"body"`
	ReceivedAt time.Time `json:"received_at" bson:"received_at"`
}

// SiteImage is an image bound to a named slot ("profile", "home_hero", …).
// Slot names are unique; uploading to an occupied slot replaces the file.
type SiteImage struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Filename   string    `json:"filename" bson:"filename"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// Resume records the most recently uploaded resume file.
type Resume struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	Filename   string    `json:"filename" bson:"filename"`
	UploadedAt time.Time `json:"uploaded_at" bson:"uploaded_at"`
}

// ContactInfo is the singleton record rendered on the contact page.
type ContactInfo struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Email       string `json:"email" bson:"email"`
	Phone       string `json:"phone,omitempty" bson:"phone,omitempty"`
	Location    string `json:"location,omitempty" bson:"location,omitempty"`
	MapEmbedURL string `json:"map_embed_url,omitempty" bson:"map_embed_url,omitempty"`
}
