package model

import "time"

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
	RiskCrisis   RiskLevel = "crisis"
)

type ReportStatus string

const (
	ReportOpen     ReportStatus = "open"
	ReportReviewed ReportStatus = "reviewed"
	ReportClosed   ReportStatus = "closed"
)

type ReportSource string

const (
	ReportFromCounsellor ReportSource = "counsellor"
	ReportFromSystem     ReportSource = "system"
)

// Report is a case note about a student, written by a counsellor or raised automatically
type Report struct {
	ID           string       `json:"id" bson:"_id"`
	StudentID    string       `json:"studentId" bson:"studentId"`
	CounsellorID string       `json:"counsellorId,omitempty" bson:"counsellorId,omitempty"`
	College      string       `json:"college" bson:"college"`
	SessionID    string       `json:"sessionId,omitempty" bson:"sessionId,omitempty"`
	AssessmentID string       `json:"assessmentId,omitempty" bson:"assessmentId,omitempty"`
	Summary      string       `json:"summary" bson:"summary"`
	RiskLevel    RiskLevel    `json:"riskLevel" bson:"riskLevel"`
	Status       ReportStatus `json:"status" bson:"status"`
	Source       ReportSource `json:"source" bson:"source"`
	CreatedAt    time.Time    `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt" bson:"updatedAt"`
}

// CreateReportRequest is the body for POST /v1/reports
type CreateReportRequest struct {
	StudentID string    `json:"studentId"`
	SessionID string    `json:"sessionId"`
	Summary   string    `json:"summary"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// UpdateReportStatusRequest is the body for PUT /v1/reports/{id}/status
type UpdateReportStatusRequest struct {
	Status ReportStatus `json:"status"`
}
