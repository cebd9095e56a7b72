package service

import (
	"context"
	"errors"
	"testing"

	"mindcare/internal/model"
	"mindcare/internal/scoring"
	"mindcare/internal/service/servicetest"
)

func submit(t *testing.T, e *testEnv, u *model.User, phq9, gad7 int) *model.AssessmentSubmitResponse {
	t.Helper()
	resp, err := e.assessments.Submit(context.Background(), claimsFor(u), &model.AssessmentResponse{
		PHQ9Answers: model.RepeatAnswer(phq9, model.PHQ9Items),
		GAD7Answers: model.RepeatAnswer(gad7, model.GAD7Items),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	return resp
}

func TestSubmit_StoresCachesAndRanks(t *testing.T) {
	e := newTestEnv()
	resp := submit(t, e, student, 1, 1)

	a := resp.Assessment
	if a.UserID != student.ID || a.College != testCollege {
		t.Errorf("assessment owner = %s/%s", a.UserID, a.College)
	}
	if a.Result.PHQ9Score != 9 || a.Result.GAD7Score != 7 {
		t.Errorf("scores = %d/%d", a.Result.PHQ9Score, a.Result.GAD7Score)
	}
	if !a.Result.CompletedAt.Equal(testNow) {
		t.Errorf("completedAt = %v", a.Result.CompletedAt)
	}
	if len(e.assessRepo.Items) != 1 {
		t.Fatalf("stored %d assessments", len(e.assessRepo.Items))
	}
	if e.last.Last[student.ID] != a {
		t.Error("last assessment not cached")
	}
	if got := e.risk.Scores[testCollege][student.ID]; got != 16 {
		t.Errorf("risk score = %d, want 16", got)
	}
	if e.dashCache.Invalidations != 1 {
		t.Errorf("dashboard invalidations = %d", e.dashCache.Invalidations)
	}
	if len(resp.Recommendations) == 0 {
		t.Error("no recommendations")
	}
	if len(e.reportRepo.Reports) != 0 || len(e.hub.Events) != 0 {
		t.Error("non-crisis result raised an alert")
	}
}

func TestSubmit_CrisisRaisesReportAndAlert(t *testing.T) {
	e := newTestEnv()
	resp := submit(t, e, student, 3, 3)

	if resp.Assessment.Result.AIPersonality != model.PersonalityCrisis {
		t.Fatalf("personality = %s", resp.Assessment.Result.AIPersonality)
	}
	if len(e.reportRepo.Reports) != 1 {
		t.Fatalf("reports = %d", len(e.reportRepo.Reports))
	}
	rep := e.reportRepo.Reports[0]
	if rep.Source != model.ReportFromSystem || rep.RiskLevel != model.RiskCrisis || rep.AssessmentID != resp.Assessment.ID {
		t.Errorf("report = %+v", rep)
	}

	alerts := e.hub.OfType(model.EventCrisisAlert)
	if len(alerts) != 1 || alerts[0].To != "college:"+testCollege {
		t.Fatalf("alerts = %+v", alerts)
	}
	alert := alerts[0].Payload.(model.CrisisAlert)
	if alert.StudentID != student.ID || alert.ReportID != rep.ID {
		t.Errorf("alert = %+v", alert)
	}
}

func TestSubmit_IncompleteIsNotStored(t *testing.T) {
	e := newTestEnv()
	answers := model.RepeatAnswer(1, model.PHQ9Items)
	answers[4] = nil

	_, err := e.assessments.Submit(context.Background(), claimsFor(student), &model.AssessmentResponse{
		PHQ9Answers: answers,
		GAD7Answers: model.RepeatAnswer(1, model.GAD7Items),
	})
	if !errors.Is(err, scoring.ErrIncompleteAssessment) {
		t.Fatalf("err = %v", err)
	}
	if len(e.assessRepo.Items) != 0 || len(e.last.Last) != 0 {
		t.Error("incomplete assessment was persisted")
	}
}

func TestSubmit_StudentsOnly(t *testing.T) {
	e := newTestEnv()
	_, err := e.assessments.Submit(context.Background(), claimsFor(coun), &model.AssessmentResponse{
		PHQ9Answers: model.RepeatAnswer(0, model.PHQ9Items),
		GAD7Answers: model.RepeatAnswer(0, model.GAD7Items),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("err = %v", err)
	}
}

func TestLatest_FallsBackToStoreAndRefillsCache(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	submit(t, e, student, 0, 0)
	second := submit(t, e, student, 2, 2)
	delete(e.last.Last, student.ID)

	got, err := e.assessments.Latest(ctx, student.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || got.ID != second.Assessment.ID {
		t.Fatalf("latest = %+v", got)
	}
	if e.last.Last[student.ID] == nil {
		t.Error("cache not refilled")
	}

	none, err := e.assessments.Latest(ctx, peer.ID)
	if err != nil || none != nil {
		t.Errorf("Latest(no assessments) = %v, %v", none, err)
	}
}

func TestLatestFor_Visibility(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	submit(t, e, student, 1, 1)

	tests := []struct {
		name  string
		actor *model.User
		want  error
	}{
		{"self", student, nil},
		{"counsellor same college", coun, nil},
		{"admin", admin, nil},
		{"other student", peer, ErrForbidden},
		{"counsellor elsewhere", outsider, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.assessments.LatestFor(ctx, claimsFor(tt.actor), student.ID)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := e.assessments.LatestFor(ctx, claimsFor(peer), peer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("no assessment err = %v", err)
	}
}

func TestRiskBoard_ScopedToCollege(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	submit(t, e, student, 2, 2)
	submit(t, e, peer, 1, 0)

	top, err := e.assessments.RiskBoard(ctx, claimsFor(coun), "Hilltop College", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 2 || top[0].StudentID != student.ID || top[0].Rank != 1 {
		t.Errorf("top = %+v", top)
	}

	if _, err := e.assessments.RiskBoard(ctx, claimsFor(student), "", 10); !errors.Is(err, ErrForbidden) {
		t.Errorf("student err = %v", err)
	}
}

// brokenLastCache fails every write but still serves and drops old entries
type brokenLastCache struct {
	*servicetest.AssessmentCache
}

func (brokenLastCache) SetLast(context.Context, *model.Assessment) error {
	return errors.New("redis: connection refused")
}

func TestSubmit_FailedCacheWriteDropsStaleEntry(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	last := brokenLastCache{servicetest.NewAssessmentCache()}
	last.Last[student.ID] = &model.Assessment{
		ID:     "old",
		UserID: student.ID,
		Result: model.AssessmentResult{AIPersonality: model.PersonalityEncouraging},
	}
	svc := NewAssessmentService(scoring.NewScorer(fixedClock), e.assessRepo, e.users, last, e.risk, e.dashCache, NewCrisisNotifier(e.reportRepo))

	resp, err := svc.Submit(ctx, claimsFor(student), &model.AssessmentResponse{
		PHQ9Answers: model.RepeatAnswer(3, model.PHQ9Items),
		GAD7Answers: model.RepeatAnswer(3, model.GAD7Items),
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, ok := last.Last[student.ID]; ok {
		t.Error("stale cached assessment survived a failed write")
	}

	got, err := svc.Latest(ctx, student.ID)
	if err != nil || got == nil || got.ID != resp.Assessment.ID || got.Result.AIPersonality != model.PersonalityCrisis {
		t.Errorf("Latest = %+v, %v", got, err)
	}
}
