package model

import (
	"time"
)

const (
	RoleStudent   = "student"
	RoleRecruiter = "recruiter"
)

// Profile is the nested, user-editable part of the account. Resume
// fields hold URLs only; uploads are handled outside this service.
type Profile struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	ProfilePhoto       string   `json:"profilePhoto,omitempty"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resumeOriginalName,omitempty"`
}

type User struct {
	ID             string    `json:"id"`
	Fullname       string    `json:"fullname"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phoneNumber"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	Profile        Profile   `json:"profile"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
