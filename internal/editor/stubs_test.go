package editor

import (
	"context"
	"sync"

	"github.com/lucasvieira/iepdesk/internal/domain"
	"github.com/lucasvieira/iepdesk/internal/intelligence"
)

// stubGenerate implements intelligence.GenerateService. When block is
// non-nil each call waits on it before returning, which lets tests hold
// an action in flight.
type stubGenerate struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
	block chan struct{}
}

func (g *stubGenerate) generate() (string, error) {
	g.mu.Lock()
	g.calls++
	block, text, err := g.block, g.text, g.err
	g.mu.Unlock()
	if block != nil {
		<-block
	}
	return text, err
}

func (g *stubGenerate) GenerateField(context.Context, intelligence.FormSnapshot, string) (string, error) {
	return g.generate()
}

func (g *stubGenerate) RefineText(context.Context, intelligence.FormSnapshot, string, string, string) (string, error) {
	return g.generate()
}

func (g *stubGenerate) GenerateFullPlan(context.Context, intelligence.FormSnapshot) (string, error) {
	return g.generate()
}

func (g *stubGenerate) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type stubCritique struct {
	critique *domain.GoalCritique
	err      error
	calls    int
}

func (c *stubCritique) CritiqueGoal(context.Context, string) (*domain.GoalCritique, error) {
	c.calls++
	return c.critique, c.err
}

type stubSuggest struct {
	activities []domain.Activity
	err        error
	calls      int
	lastReq    intelligence.SuggestRequest
}

func (s *stubSuggest) SuggestActivities(_ context.Context, req intelligence.SuggestRequest) ([]domain.Activity, error) {
	s.calls++
	s.lastReq = req
	return s.activities, s.err
}

type stubAnalyze struct {
	analysis *domain.PlanAnalysis
	err      error
}

func (a *stubAnalyze) AnalyzePlan(context.Context, intelligence.FormSnapshot) (*domain.PlanAnalysis, error) {
	return a.analysis, a.err
}
