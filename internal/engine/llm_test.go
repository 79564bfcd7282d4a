package engine

import "testing"

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"plain fence", "```\ntext\n```", "text"},
		{"no fence", `{"a":1}`, `{"a":1}`},
		{"surrounding whitespace", "  ```json\n{}\n```  ", "{}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.in); got != tt.want {
				t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractJSONValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"object in prose", `Here is the result: {"score": 7} hope it helps`, `{"score": 7}`},
		{"array in prose", `Sure! [1, 2, 3] done.`, `[1, 2, 3]`},
		{"array of objects in prose", `Here you go: [{"question":"a"},{"question":"b"}] good luck!`, `[{"question":"a"},{"question":"b"}]`},
		{"object before array", `Note {"a":[1,2]} end`, `{"a":[1,2]}`},
		{"object preferred over array", `{"items": [1, 2]}`, `{"items": [1, 2]}`},
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"nothing", "no structured data here", ""},
		{"unbalanced", "only an opening {", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSONValue(tt.in); got != tt.want {
				t.Errorf("ExtractJSONValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("job_search", "go", "berlin")
	b := CacheKey("job_search", "go", "berlin")
	if a != b {
		t.Errorf("same parts produced different keys: %q vs %q", a, b)
	}

	c := CacheKey("job_search", "go", "munich")
	if a == c {
		t.Error("different parts produced the same key")
	}

	if len(a) == 0 || a[:3] != "gc:" {
		t.Errorf("key %q missing namespace prefix", a)
	}
}
