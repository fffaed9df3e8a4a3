package widget

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Snider/Quotebox/pkg/quote"
)

func TestRender_Good(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, NewPage(InitialState(), "/new-quote")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	for _, id := range append([]string{RegionBox}, Regions...) {
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Errorf("expected region %q in page", id)
		}
	}
	if !strings.Contains(out, "Langston Hughes") {
		t.Error("expected default author in page")
	}
	if !strings.Contains(out, "New Quote") {
		t.Error("expected idle control label")
	}
	if !strings.Contains(out, `action="/new-quote"`) {
		t.Error("expected form action")
	}
}

func TestRender_Processing(t *testing.T) {
	var buf bytes.Buffer
	st := InitialState()
	st.Processing = true
	if err := Render(&buf, NewPage(st, "/new-quote")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Processing...") || !strings.Contains(out, "disabled") {
		t.Error("expected busy control")
	}
}

func TestRender_Ugly(t *testing.T) {
	var buf bytes.Buffer
	st := InitialState()
	st.Quote = quote.Quote{Text: `<script>alert("x")</script>`, Author: "a & b"}
	if err := Render(&buf, NewPage(st, "/new-quote")); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, `<script>alert`) {
		t.Error("expected quote text to be escaped")
	}
	if !strings.Contains(out, "a &amp; b") {
		t.Error("expected author to be escaped")
	}
}
