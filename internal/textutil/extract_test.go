package textutil

import "testing"

func TestExtractStringArray_PlainArray(t *testing.T) {
	got, err := ExtractStringArray(`["infosys stock", "tech stocks today"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "infosys stock" || got[1] != "tech stocks today" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestExtractStringArray_SurroundingProse(t *testing.T) {
	in := "Sure! Here are the queries you asked for:\n[\"ai chips\", \"openai news\"]\nLet me know if you need more."
	got, err := ExtractStringArray(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "ai chips" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestExtractStringArray_MarkdownFence(t *testing.T) {
	in := "```json\n[\"cricket scores\", \"australia squad\"]\n```"
	got, err := ExtractStringArray(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[1] != "australia squad" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestExtractStringArray_NoArray(t *testing.T) {
	if _, err := ExtractStringArray("I cannot generate queries right now."); err == nil {
		t.Fatal("expected error for prose without array")
	}
}

func TestExtractStringArray_MalformedArray(t *testing.T) {
	if _, err := ExtractStringArray(`[not, valid, json]`); err == nil {
		t.Fatal("expected error for malformed array")
	}
}

func TestExtractStringArray_EmptyAndBlankEntries(t *testing.T) {
	if _, err := ExtractStringArray(`[]`); err == nil {
		t.Fatal("expected error for empty array")
	}
	if _, err := ExtractStringArray(`["", "  "]`); err == nil {
		t.Fatal("expected error when all entries are blank")
	}
}

func TestExtractStringArray_TrimsEntries(t *testing.T) {
	got, err := ExtractStringArray(`[" spaced out ", "ok"]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0] != "spaced out" {
		t.Errorf("expected trimmed entry, got %q", got[0])
	}
}
