package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type payload struct {
	GameID int `json:"game_id"`
	Rest   int `json:"rest"`
}

func TestWriteDerived_CreatesDirsAndPrettyPrints(t *testing.T) {
	st := NewJSONStore(t.TempDir())

	err := st.WriteDerived("summary/rest/game_rest.json", payload{GameID: 3, Rest: 2}, true)
	if err != nil {
		t.Fatalf("WriteDerived error: %v", err)
	}

	b, err := os.ReadFile(st.Path("summary/rest/game_rest.json"))
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	content := string(b)
	if !strings.Contains(content, `"game_id": 3`) {
		t.Errorf("pretty output missing indented key, got %q", content)
	}
	if !strings.HasSuffix(content, "\n") {
		t.Error("output should end with a newline")
	}
}

func TestWriteDerived_Compact(t *testing.T) {
	st := NewJSONStore(t.TempDir())

	if err := st.WriteDerived("out.json", payload{GameID: 1, Rest: 0}, false); err != nil {
		t.Fatalf("WriteDerived error: %v", err)
	}

	b, _ := st.ReadRaw("out.json")
	if got := strings.TrimSpace(string(b)); got != `{"game_id":1,"rest":0}` {
		t.Errorf("compact output = %q", got)
	}
}

func TestExistsAndReadRaw(t *testing.T) {
	st := NewJSONStore(t.TempDir())

	if st.Exists("missing.json") {
		t.Error("Exists = true for missing file")
	}
	if _, err := st.ReadRaw("missing.json"); err == nil {
		t.Error("ReadRaw should error for missing file")
	}

	if err := st.WriteDerived("a/b.json", payload{}, false); err != nil {
		t.Fatal(err)
	}
	if !st.Exists("a/b.json") {
		t.Error("Exists = false after write")
	}
}

func TestPath(t *testing.T) {
	st := NewJSONStore("data/derived")
	want := filepath.Join("data", "derived", "x", "y.json")
	if got := st.Path("x/y.json"); got != want {
		t.Errorf("Path = %q, want %q", got, want)
	}
}
