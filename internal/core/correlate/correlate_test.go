package correlate

import (
	"strings"
	"testing"

	perr "incstats/internal/platform/errors"
)

// Round trip must hold for anything a reporter can type.
func TestEncodeDecode_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "plain ascii", in: "server down"},
		{name: "empty", in: ""},
		{name: "contains delimiter", in: "db-primary-failover"},
		{name: "leading delimiter", in: "-starts-with-dash"},
		{name: "non ascii", in: "café outage über bad"},
		{name: "emoji", in: "prod is on fire \U0001F525"},
		{name: "control chars", in: "line1\nline2\ttabbed"},
		{name: "long text", in: strings.Repeat("incident ", 100)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode(Encode(tc.in))
			if err != nil {
				t.Fatalf("Decode(Encode(%q)) err = %v", tc.in, err)
			}
			if got != tc.in {
				t.Fatalf("Decode(Encode(%q)) = %q", tc.in, got)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, token := range []string{"!!!", "a", "====", "not base64 at all"} {
		if _, err := Decode(token); err == nil {
			t.Fatalf("Decode(%q) expected error", token)
		} else if !perr.IsCode(err, perr.ErrorCodeCodec) {
			t.Fatalf("Decode(%q) err code = %v, want codec", token, perr.CodeOf(err))
		}
	}
}

func TestActionID_RoundTrip(t *testing.T) {
	texts := []string{
		"simple",
		"has-a-dash",
		"--double--",
		"",
	}
	for _, text := range texts {
		id := ActionID(text)
		if !strings.HasPrefix(id, Prefix+"-") {
			t.Fatalf("ActionID(%q) = %q, missing prefix", text, id)
		}
		prefix, token, err := SplitActionID(id)
		if err != nil {
			t.Fatalf("SplitActionID(%q) err = %v", id, err)
		}
		if prefix != Prefix {
			t.Fatalf("SplitActionID(%q) prefix = %q", id, prefix)
		}
		got, err := Decode(token)
		if err != nil {
			t.Fatalf("Decode token from %q err = %v", id, err)
		}
		if got != text {
			t.Fatalf("round trip via action id: got %q want %q", got, text)
		}
	}
}

// The boundary split must take the first delimiter only; a token is never
// cut in half even if the id somehow carries extra dashes.
func TestSplitActionID_FirstDelimiterOnly(t *testing.T) {
	prefix, token, err := SplitActionID("category_select-abc-def")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if prefix != "category_select" || token != "abc-def" {
		t.Fatalf("got prefix=%q token=%q", prefix, token)
	}
}

func TestSplitActionID_NoDelimiter(t *testing.T) {
	if _, _, err := SplitActionID("category_select"); err == nil {
		t.Fatal("expected error for id without token")
	}
}

func TestTextFromActionID(t *testing.T) {
	text := "api-gateway 500s"
	got, err := TextFromActionID(ActionID(text))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got != text {
		t.Fatalf("got %q want %q", got, text)
	}
}
