package verify

import "testing"

func TestCheck_ValidSportsCertificate(t *testing.T) {
	text := "This certifies participation in the Inter-College Sports Tournament. " +
		"Approved by the Sports Coordinator. Official signature attached."

	result := Check(text)
	if !result.Valid {
		t.Fatalf("expected valid, got %+v", result)
	}
	if result.Category != "sports" {
		t.Errorf("Category = %q, want sports", result.Category)
	}
	if result.Message != "Valid Sports activity detected" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestCheck_InsufficientEvidence(t *testing.T) {
	result := Check("hello world")
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if result.Category != "" {
		t.Errorf("Category = %q, want empty", result.Category)
	}
	if result.Message != "Insufficient evidence of valid extracurricular activity" {
		t.Errorf("Message = %q", result.Message)
	}
}

func TestCheck_RepetitionCountsOnce(t *testing.T) {
	// five repetitions of one keyword still score 1, below the threshold
	result := Check("sports sports sports sports sports")
	if result.Valid {
		t.Fatalf("repeated single keyword must not pass the gate: %+v", result)
	}
}

func TestCheck_ThresholdBoundary(t *testing.T) {
	// exactly three distinct keyword hits pass
	result := Check("sports tournament coordinator")
	if !result.Valid {
		t.Fatalf("three distinct hits should be valid: %+v", result)
	}
	if result.Category != "sports" {
		t.Errorf("Category = %q, want sports", result.Category)
	}

	// two hits do not
	if r := Check("sports tournament"); r.Valid {
		t.Fatalf("two hits should be invalid: %+v", r)
	}
}

func TestCheck_TieBreakCanonicalOrder(t *testing.T) {
	// technical and cultural both score 1; technical comes first in
	// canonical order and must win deterministically
	result := Check("hackathon dance coordinator approved")
	if !result.Valid {
		t.Fatalf("expected valid, got %+v", result)
	}
	if result.Category != "technical" {
		t.Errorf("Category = %q, want technical (canonical tie-break)", result.Category)
	}
}

func TestCheck_CaseInsensitive(t *testing.T) {
	result := Check("SPORTS TOURNAMENT COORDINATOR SIGNATURE")
	if !result.Valid {
		t.Fatalf("uppercase input should still match: %+v", result)
	}
	if result.Category != "sports" {
		t.Errorf("Category = %q, want sports", result.Category)
	}
}

func TestCheck_OCRErrorDiagnosticScoresInvalid(t *testing.T) {
	result := Check("OCR Error: pdf render failed: exit status 1")
	if result.Valid {
		t.Fatalf("diagnostic text must score as insufficient evidence: %+v", result)
	}
}

func TestCheck_VerificationKeywordsAloneCanPass(t *testing.T) {
	// administrative terms count toward the total even without activity hits
	result := Check("authorized by the head of department, signature and stamp affixed")
	if !result.Valid {
		t.Fatalf("expected valid from administrative keywords alone: %+v", result)
	}
	// no category scored, tie at zero resolves to the first canonical category
	if result.Category != "sports" {
		t.Errorf("Category = %q, want sports (zero-tie canonical order)", result.Category)
	}
}
