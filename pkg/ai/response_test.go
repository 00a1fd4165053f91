package ai

import (
	"testing"
)

func TestStripCodeFence(t *testing.T) {
	inner := `{"itinerary":[{"day":1}],"transportation":"metro"}`
	inputs := []string{
		inner,
		"```json\n" + inner + "\n```",
		"```\n" + inner + "\n```",
		"  \n```json" + inner + "```  \n",
	}
	for _, in := range inputs {
		if got := StripCodeFence(in); got != inner {
			t.Fatalf("StripCodeFence(%q) = %q", in, got)
		}
	}
}

func TestParseReplySameDocumentForEveryWrapping(t *testing.T) {
	inner := "{\n  \"itinerary\": [],\n  \"cultural_tips\": \"tip\"\n}"
	var want string
	for i, in := range []string{inner, "```json\n" + inner + "\n```", "```\n" + inner + "\n```"} {
		doc, err := parseReply(in)
		if err != nil {
			t.Fatalf("parse %d: %v", i, err)
		}
		if i == 0 {
			want = string(doc)
			continue
		}
		if string(doc) != want {
			t.Fatalf("wrapping %d gave %s, want %s", i, doc, want)
		}
	}
	if want != `{"itinerary":[],"cultural_tips":"tip"}` {
		t.Fatalf("unexpected compacted doc %s", want)
	}
}

func TestParseReplyRejectsInvalid(t *testing.T) {
	for _, in := range []string{"", "```json\n```", "Sure! Here is your plan.", `{"itinerary": [`} {
		if _, err := parseReply(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestParseReplyAcceptsOffSchemaJSON(t *testing.T) {
	doc, err := parseReply(`["day one", "day two"]`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if string(doc) != `["day one","day two"]` {
		t.Fatalf("unexpected doc %s", doc)
	}
}
