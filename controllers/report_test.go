package controllers

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/hybridcredit/credit-risk-frontend/data"
)

func TestReport(t *testing.T) {
	t.Parallel()

	result := &data.PredictionResult{Class: data.RiskLow}

	session := newTestSession(t)
	session.LastResultFunc = func() *data.PredictionResult {
		return result
	}

	fixed := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	generator := newTestReportGenerator(t)
	generator.TextFunc = func(r *data.PredictionResult, now time.Time) (string, error) {
		if r != result {
			t.Errorf("Incorrect result passed to Text")
		}
		if !now.Equal(fixed) {
			t.Errorf("Incorrect timestamp; expected %s, was %s", fixed, now)
		}
		return "contenido", nil
	}
	var savedName string
	generator.WriteArtifactFunc = func(ctx context.Context, name, content string) error {
		savedName = name
		return nil
	}

	c := &Report{
		Generator: generator,
		Session:   session,
		Now: func() time.Time {
			return fixed
		},
	}
	content, err := c.handle(context.Background())
	if err != nil {
		t.Errorf("Unexpected error: %s", err)
		return
	}
	if string(content) != "contenido" {
		t.Errorf("Incorrect content; was %q", content)
	}
	if savedName != "reporte_riesgo.txt" {
		t.Errorf("Incorrect artifact name; was %q", savedName)
	}
}

func TestReport_ArtifactFailureSwallowed(t *testing.T) {
	t.Parallel()

	session := newTestSession(t)
	session.LastResultFunc = func() *data.PredictionResult {
		return &data.PredictionResult{Class: data.RiskLow}
	}

	generator := newTestReportGenerator(t)
	generator.TextFunc = func(r *data.PredictionResult, now time.Time) (string, error) {
		return "contenido", nil
	}
	generator.WriteArtifactFunc = func(ctx context.Context, name, content string) error {
		return errors.New("disk full")
	}

	c := &Report{Generator: generator, Session: session}
	content, err := c.handle(context.Background())
	if err != nil {
		t.Errorf("Artifact failure should not fail the download: %s", err)
		return
	}
	if string(content) != "contenido" {
		t.Errorf("Incorrect content; was %q", content)
	}
}

func TestReport_NoPriorResult(t *testing.T) {
	t.Parallel()

	session := newTestSession(t)
	session.LastResultFunc = func() *data.PredictionResult {
		return nil
	}

	generator := newTestReportGenerator(t)
	generator.TextFunc = func(r *data.PredictionResult, now time.Time) (string, error) {
		if r != nil {
			t.Errorf("Expected nil result passed to Text")
		}
		return "", &data.PreconditionError{Action: "generating a report"}
	}

	c := &Report{Generator: generator, Session: session}
	content, err := c.handle(context.Background())
	if content != nil {
		t.Errorf("Expected nil content, got content")
	}
	if _, ok := err.(*data.PreconditionError); !ok {
		t.Errorf("Expected PreconditionError, was %T: %v", err, err)
	}
}
