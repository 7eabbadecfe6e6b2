package validator

import (
	"testing"
	"time"

	"github.com/nlamendino/dealday/internal/models"
)

func validDeal() models.Deal {
	return models.Deal{
		ID:            1,
		Title:         "Cuffie Bluetooth Premium",
		Category:      "elettronica",
		OriginalPrice: 379.99,
		DiscountPrice: 265.99,
		Discount:      30,
		Rating:        4.5,
		Reviews:       812,
		Description:   "Offerta del giorno.",
		Image:         "https://images.unsplash.com/photo-1505740420928?w=300",
		AddedAt:       time.Now(),
	}
}

func TestValidateStruct_ValidDeal(t *testing.T) {
	v := New()
	if err := v.ValidateStruct(validDeal()); err != nil {
		t.Errorf("Expected valid deal to pass, got: %v", err)
	}
}

func TestValidateStruct_Violations(t *testing.T) {
	v := New()

	tests := []struct {
		name   string
		mutate func(*models.Deal)
	}{
		{"discount below bound", func(d *models.Deal) { d.Discount = 5 }},
		{"discount above bound", func(d *models.Deal) { d.Discount = 70 }},
		{"rating above band", func(d *models.Deal) { d.Rating = 5.0 }},
		{"rating below band", func(d *models.Deal) { d.Rating = 2.0 }},
		{"discount price above original", func(d *models.Deal) { d.DiscountPrice = d.OriginalPrice + 1 }},
		{"zero price", func(d *models.Deal) { d.DiscountPrice = 0 }},
		{"missing title", func(d *models.Deal) { d.Title = "" }},
		{"bad image url", func(d *models.Deal) { d.Image = "not-a-url" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deal := validDeal()
			tt.mutate(&deal)
			if err := v.ValidateStruct(deal); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestValidateBatch(t *testing.T) {
	v := New()

	good := []models.Deal{validDeal(), validDeal()}
	if err := ValidateBatch(v, good); err != nil {
		t.Errorf("Expected valid batch to pass, got: %v", err)
	}

	bad := validDeal()
	bad.Discount = 99
	mixed := []models.Deal{validDeal(), bad}
	if err := ValidateBatch(v, mixed); err == nil {
		t.Error("Expected batch with invalid record to fail")
	}
}
