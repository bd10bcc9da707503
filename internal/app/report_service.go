package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Samrat25/HireX/internal/common"
	"github.com/Samrat25/HireX/internal/domain/candidate"
)

type ReportService struct {
	candidates candidate.Repository
}

func NewReportService(candidates candidate.Repository) *ReportService {
	return &ReportService{candidates: candidates}
}

// Generate replaces any prior report on the candidate and resets the sent
// flag.
func (s *ReportService) Generate(ctx context.Context, candidateID common.UUID) (*candidate.Report, error) {
	c, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	overall := OverallScore(*c)
	strengths := c.Skills
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}

	report := &candidate.Report{
		ID:              common.NewUUID(),
		CandidateID:     candidateID,
		OverallScore:    overall,
		Strengths:       strengths,
		Recommendation:  recommendationFor(overall),
		Feedback:        feedbackFor(*c, overall),
		GeneratedAt:     time.Now().UTC(),
		SentToCandidate: false,
	}

	c.Report = report
	if _, err := s.candidates.Update(ctx, *c); err != nil {
		return nil, err
	}
	return report, nil
}

// Send only flips the flag; no delivery happens.
func (s *ReportService) Send(ctx context.Context, candidateID common.UUID) error {
	c, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		return err
	}
	if c.Report == nil {
		return common.NewError(common.CodeNotFound, "report not found", nil)
	}
	c.Report.SentToCandidate = true
	_, err = s.candidates.Update(ctx, *c)
	return err
}

func recommendationFor(overall int) string {
	switch {
	case overall >= 85:
		return "Highly Recommended"
	case overall >= 75:
		return "Recommended"
	default:
		return "Consider with reservations"
	}
}

func feedbackFor(c candidate.Candidate, overall int) string {
	quality := "adequate"
	switch {
	case overall >= 85:
		quality = "exceptional"
	case overall >= 75:
		quality = "strong"
	}
	return fmt.Sprintf("Based on comprehensive AI assessment, %s demonstrates %s qualifications for the %s role.", c.Name, quality, c.Position)
}
