package model

// RiskEntry is one student on a college risk board
type RiskEntry struct {
	StudentID     string `json:"studentId"`
	CombinedScore int    `json:"combinedScore"`
	Rank          int    `json:"rank"`
}

type StudentDashboard struct {
	Role             Role          `json:"role"`
	LastAssessment   *Assessment   `json:"lastAssessment,omitempty"`
	History          []*Assessment `json:"history"`
	UpcomingSessions []*Session    `json:"upcomingSessions"`
	Recommendations  []string      `json:"recommendations"`
}

type CounsellorDashboard struct {
	Role          Role        `json:"role"`
	OpenReports   []*Report   `json:"openReports"`
	AtRisk        []RiskEntry `json:"atRisk"`
	TodaySessions []*Session  `json:"todaySessions"`
	Students      []*User     `json:"students"`
}

type CollegeDashboard struct {
	Role                 Role                 `json:"role"`
	College              string               `json:"college"`
	ActiveStudents       int                  `json:"activeStudents"`
	AssessmentCount      int                  `json:"assessmentCount"`
	AverageWellness      float64              `json:"averageWellness"`
	PHQ9Distribution     map[Severity]int     `json:"phq9Distribution"`
	GAD7Distribution     map[Severity]int     `json:"gad7Distribution"`
	ReportsByStatus      map[ReportStatus]int `json:"reportsByStatus"`
	PersonalityBreakdown map[Personality]int  `json:"personalityBreakdown"`
}

type AdminDashboard struct {
	Role             Role            `json:"role"`
	UsersByRole      map[Role]int    `json:"usersByRole"`
	TotalAssessments int             `json:"totalAssessments"`
	Feedback         FeedbackSummary `json:"feedback"`
}
