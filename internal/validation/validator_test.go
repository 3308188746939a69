// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package validation

import (
	"strings"
	"testing"
)

type titleRequest struct {
	Movie string `json:"movie" validate:"required,max=20,movietitle"`
}

type criteriaRequest struct {
	Genres    []string `json:"genres" validate:"max=3,dive,max=10"`
	Languages []string `json:"languages" validate:"dive,langcode"`
	MinYear   *int     `json:"minYear" validate:"omitempty,gte=1800,lte=3000"`
}

func intPtr(v int) *int { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	if v1, v2 := GetValidator(), GetValidator(); v1 == nil || v1 != v2 {
		t.Error("GetValidator() should return one shared instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{"valid title", &titleRequest{Movie: "Heat"}, "", ""},
		{"missing title", &titleRequest{}, "movie", "required"},
		{"blank title", &titleRequest{Movie: "   "}, "movie", "movietitle"},
		{"control character", &titleRequest{Movie: "Heat\x00"}, "movie", "movietitle"},
		{"long title", &titleRequest{Movie: strings.Repeat("a", 21)}, "movie", "max"},
		{"valid criteria", &criteriaRequest{Genres: []string{"Drama"}, Languages: []string{"en", "pt-BR"}, MinYear: intPtr(1990)}, "", ""},
		{"empty criteria", &criteriaRequest{}, "", ""},
		{"too many genres", &criteriaRequest{Genres: []string{"a", "b", "c", "d"}}, "genres", "max"},
		{"bad language", &criteriaRequest{Languages: []string{"english"}}, "languages[0]", "langcode"},
		{"year too small", &criteriaRequest{MinYear: intPtr(1200)}, "minYear", "gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if verr != nil {
					t.Fatalf("ValidateStruct() = %v, want nil", verr)
				}
				return
			}
			if verr == nil {
				t.Fatal("ValidateStruct() = nil, want error")
			}
			got := verr.Errors()[0]
			if got.Field() != tt.wantField || got.Tag() != tt.wantTag {
				t.Errorf("failure = %s/%s, want %s/%s", got.Field(), got.Tag(), tt.wantField, tt.wantTag)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&titleRequest{}).ToAPIError()
	if single.Code != CodeValidationError || single.Message != "movie is required" {
		t.Errorf("single = %+v", single)
	}
	if single.Details["field"] != "movie" {
		t.Errorf("details = %v", single.Details)
	}

	multi := ValidateStruct(&criteriaRequest{
		Genres:  []string{"a", "b", "c", "d"},
		MinYear: intPtr(1),
	}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("details = %v", multi.Details)
	}
	if !strings.Contains(multi.Message, "genres must be at most 3 items") ||
		!strings.Contains(multi.Message, "minYear must be greater than or equal to 1800") {
		t.Errorf("message = %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty = %+v", empty)
	}
}

func TestTranslateMinMaxUnits(t *testing.T) {
	verr := ValidateStruct(&titleRequest{Movie: strings.Repeat("x", 30)})
	if verr == nil || verr.Error() != "movie must be at most 20 characters" {
		t.Errorf("Error() = %v", verr)
	}
}
