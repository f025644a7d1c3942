package model

import (
	"time"
)

type Job struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Salary       int       `json:"salary"`
	Location     string    `json:"location"`
	JobType      string    `json:"jobType"`
	Positions    int       `json:"position"`
	CompanyName  string    `json:"companyName"`
	CreatedByID  string    `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
