package domain

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected Kind
	}{
		{
			name:     "absolute https url",
			url:      "https://example.com",
			expected: KindAbsolute,
		},
		{
			name:     "absolute url with path and query",
			url:      "https://docs.example.com/guide?lang=en",
			expected: KindAbsolute,
		},
		{
			name:     "absolute http url",
			url:      "http://example.com/",
			expected: KindAbsolute,
		},
		{
			name:     "opaque scheme url",
			url:      "mailto:editor@example.com",
			expected: KindAbsolute,
		},
		{
			name:     "scheme without host",
			url:      "https://",
			expected: KindInvalid,
		},
		{
			name:     "relative path",
			url:      "/node/1",
			expected: KindRelativeUserInput,
		},
		{
			name:     "query only",
			url:      "?page=2",
			expected: KindRelativeUserInput,
		},
		{
			name:     "fragment only",
			url:      "#section",
			expected: KindRelativeUserInput,
		},
		{
			name:     "front route token",
			url:      "<front>",
			expected: KindNamedRoute,
		},
		{
			name:     "nolink route token",
			url:      "<nolink>",
			expected: KindNamedRoute,
		},
		{
			name:     "uppercase route token rejected",
			url:      "<Front>",
			expected: KindInvalid,
		},
		{
			name:     "unclosed route token rejected",
			url:      "<front",
			expected: KindInvalid,
		},
		{
			name:     "plain words",
			url:      "not a url",
			expected: KindInvalid,
		},
		{
			name:     "bare hostname without scheme or slash",
			url:      "example.com",
			expected: KindInvalid,
		},
		{
			name:     "empty string",
			url:      "",
			expected: KindInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.url); got != tt.expected {
				t.Errorf("Classify(%q) = %v, want %v", tt.url, got, tt.expected)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name         string
		url          string
		expectedKind TargetKind
		expectedVal  string
	}{
		{
			name:         "external uri kept as-is",
			url:          "https://docs.example.com",
			expectedKind: TargetExternal,
			expectedVal:  "https://docs.example.com",
		},
		{
			name:         "route token stripped of brackets",
			url:          "<front>",
			expectedKind: TargetRoute,
			expectedVal:  "front",
		},
		{
			name:         "user input path kept literal",
			url:          "/about?tab=history#team",
			expectedKind: TargetUserPath,
			expectedVal:  "/about?tab=history#team",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := Resolve(tt.url)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.url, err)
			}
			if target.Kind != tt.expectedKind {
				t.Errorf("Kind = %v, want %v", target.Kind, tt.expectedKind)
			}
			if target.Value != tt.expectedVal {
				t.Errorf("Value = %q, want %q", target.Value, tt.expectedVal)
			}
		})
	}
}

func TestResolveInvalid(t *testing.T) {
	_, err := Resolve("not a url")
	if err == nil {
		t.Fatal("Resolve() with invalid url should return error")
	}
	if !errors.Is(err, ErrUnresolvable) {
		t.Errorf("error = %v, want ErrUnresolvable", err)
	}
}

// TestValidatedAlwaysResolves checks the round-trip guarantee: any url that
// passes classification must resolve, so edit-time acceptance can never
// produce a render-time failure.
func TestValidatedAlwaysResolves(t *testing.T) {
	urls := []string{
		"https://example.com",
		"http://example.com/a/b",
		"mailto:editor@example.com",
		"/node/1",
		"?q=links",
		"#footer",
		"<front>",
		"<nolink>",
	}

	for _, u := range urls {
		if Classify(u) == KindInvalid {
			t.Errorf("Classify(%q) = invalid, expected acceptable", u)
			continue
		}
		if _, err := Resolve(u); err != nil {
			t.Errorf("Resolve(%q) failed after acceptance: %v", u, err)
		}
	}
}

func TestAbsent(t *testing.T) {
	if !Absent("") {
		t.Error("Absent(\"\") = false, want true")
	}
	if Absent("x") {
		t.Error("Absent(\"x\") = true, want false")
	}
}
