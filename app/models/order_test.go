package models_test

import (
	"testing"
	"time"

	"github.com/shashiranjanraj/homegrown/app/models"
)

func TestReturnEligibleWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	o := models.Order{CreatedAt: now.AddDate(0, 0, -10), Status: models.OrderDelivered}

	if !o.ReturnEligibleAt(now) {
		t.Error("order placed 10 days ago should be return eligible")
	}
}

func TestReturnEligibleAfterWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	o := models.Order{CreatedAt: now.AddDate(0, 0, -15), Status: models.OrderDelivered}

	if o.ReturnEligibleAt(now) {
		t.Error("order placed 15 days ago should not be return eligible")
	}
}

func TestReturnEligibleAtBoundary(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	o := models.Order{CreatedAt: now.Add(-models.ReturnWindow)}

	if !o.ReturnEligibleAt(now) {
		t.Error("order placed exactly 14 days ago should still be eligible")
	}
	if o.ReturnEligibleAt(now.Add(time.Second)) {
		t.Error("one second past the window should no longer be eligible")
	}
}

func TestReturnEligibilityIgnoresStatus(t *testing.T) {
	now := time.Now()
	statuses := []string{
		models.OrderPlaced, models.OrderProcessing, models.OrderShipped,
		models.OrderDelivered, models.OrderCancelled,
	}
	for _, s := range statuses {
		o := models.Order{CreatedAt: now.AddDate(0, 0, -5), Status: s}
		if !o.ReturnEligibleAt(now) {
			t.Errorf("status %s should not affect return eligibility", s)
		}
	}
}
