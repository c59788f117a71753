package routes

import "testing"

func TestPageURLRelative(t *testing.T) {
	resolver := NewResolver("")

	url, err := resolver.PageURL("validation")
	if err != nil {
		t.Fatalf("PageURL: %v", err)
	}
	if url != "/patterns/validation" {
		t.Fatalf("expected /patterns/validation, got %q", url)
	}
}

func TestPageURLWithBaseURL(t *testing.T) {
	resolver := NewResolver("https://docs.example.com/")

	url, err := resolver.PageURL("errors")
	if err != nil {
		t.Fatalf("PageURL: %v", err)
	}
	if url != "https://docs.example.com/patterns/errors" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestPageURLNilResolver(t *testing.T) {
	var resolver *Resolver
	if _, err := resolver.PageURL("validation"); err == nil {
		t.Fatal("expected error for nil resolver")
	}
}
