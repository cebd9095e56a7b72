package service

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"mindcare/internal/model"
	"mindcare/internal/repository"
)

// CrisisNotifier records a system report for an at-risk student and alerts
// the counsellors of their college
type CrisisNotifier struct {
	reports     repository.ReportRepo
	broadcaster Broadcaster
	now         func() time.Time
}

func NewCrisisNotifier(reports repository.ReportRepo) *CrisisNotifier {
	return &CrisisNotifier{
		reports:     reports,
		broadcaster: noopBroadcaster{},
		now:         time.Now,
	}
}

// SetBroadcaster sets the realtime broadcaster (set after hub is created)
func (n *CrisisNotifier) SetBroadcaster(b Broadcaster) {
	n.broadcaster = b
}

// Raise stores the report and pushes a crisis_alert. The alert is sent even
// if the report could not be stored.
func (n *CrisisNotifier) Raise(ctx context.Context, studentID, college, reason, assessmentID string) (*model.Report, error) {
	report := &model.Report{
		StudentID:    studentID,
		College:      college,
		AssessmentID: assessmentID,
		Summary:      reason,
		RiskLevel:    model.RiskCrisis,
		Status:       model.ReportOpen,
		Source:       model.ReportFromSystem,
	}
	err := n.reports.Create(ctx, report)

	alert := model.CrisisAlert{
		StudentID: studentID,
		College:   college,
		Reason:    reason,
		RaisedAt:  n.now(),
	}
	if err == nil {
		alert.ReportID = report.ID
	}
	n.broadcaster.BroadcastToCounsellors(college, model.EventCrisisAlert, alert)

	log.WithFields(log.Fields{
		"student_id": studentID,
		"college":    college,
		"reason":     reason,
	}).Warn("crisis alert raised")

	if err != nil {
		return nil, err
	}
	return report, nil
}
