package models

import "time"

// Home dashboard shows the N most recent records of each resource
const HomeLimit = 5

// Domain types

type StudyMaterial struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"file_size"`
	SizeHuman   string    `json:"file_size_human,omitempty"` // derived at list time
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	UploadedAgo string    `json:"uploaded_ago,omitempty"` // derived at list time
	CreatedAt   time.Time `json:"created_at"`
}

type Survey struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SurveyOption struct {
	ID       string `json:"id"`
	SurveyID string `json:"survey_id"`
	Text     string `json:"text"`
	Votes    int    `json:"votes"`
}

type SurveyWithOptions struct {
	Survey  Survey         `json:"survey"`
	Options []SurveyOption `json:"options"`
}

type Question struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	AskedBy   string    `json:"asked_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Answer struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	Text       string    `json:"text"`
	RepliedBy  string    `json:"replied_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type QuestionWithAnswers struct {
	Question Question `json:"question"`
	Answers  []Answer `json:"answers"`
}

type TechNews struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	PostedBy  string    `json:"posted_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Announcement struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	PostedBy  string    `json:"posted_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Response types
//
// Every list response carries the popped one-shot flash message from the
// preceding redirect, if there was one.

type MaterialListResponse struct {
	Message   string          `json:"message,omitempty"`
	Materials []StudyMaterial `json:"materials"`
}

type SurveyListResponse struct {
	Message string              `json:"message,omitempty"`
	Surveys []SurveyWithOptions `json:"surveys"`
}

type QAListResponse struct {
	Message   string                `json:"message,omitempty"`
	Questions []QuestionWithAnswers `json:"questions"`
}

type NewsListResponse struct {
	Message string     `json:"message,omitempty"`
	News    []TechNews `json:"news"`
}

type AnnouncementListResponse struct {
	Message       string         `json:"message,omitempty"`
	Announcements []Announcement `json:"announcements"`
}

type HomeResponse struct {
	Materials     []StudyMaterial       `json:"materials"`
	Surveys       []SurveyWithOptions   `json:"surveys"`
	Questions     []QuestionWithAnswers `json:"questions"`
	News          []TechNews            `json:"news"`
	Announcements []Announcement        `json:"announcements"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
