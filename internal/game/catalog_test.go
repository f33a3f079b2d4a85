package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCatalogDefaults(t *testing.T) {
	catalog, err := LoadCatalog("")
	if err != nil {
		t.Fatalf("load defaults: %v", err)
	}
	if !strings.Contains(catalog.Help.Text, "내정보") {
		t.Fatalf("help text should list commands:\n%s", catalog.Help.Text)
	}
	if catalog.Adventure.Prompt != "난이도를 선택해주세요." {
		t.Fatalf("unexpected adventure prompt: %q", catalog.Adventure.Prompt)
	}
	if !strings.Contains(catalog.Enhance.Success, "강화 성공") {
		t.Fatalf("unexpected enhance success message: %q", catalog.Enhance.Success)
	}
	if catalog.Attendance.Repeat == "" || catalog.Unknown.Text == "" {
		t.Fatal("embedded catalog has empty messages")
	}
}

func TestLoadCatalogOverrideKeepsUntouchedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "messages.toml")
	override := "[adventure]\nprompt = \"난이도?\"\n"
	if err := os.WriteFile(path, []byte(override), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("load override: %v", err)
	}
	if catalog.Adventure.Prompt != "난이도?" {
		t.Fatalf("override not applied: %q", catalog.Adventure.Prompt)
	}
	if catalog.Adventure.Reprompt != "난이도를 버튼으로 선택해주세요." {
		t.Fatalf("sibling key lost its default: %q", catalog.Adventure.Reprompt)
	}
	if !strings.Contains(catalog.Help.Text, "내정보") {
		t.Fatal("unrelated section lost its default")
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for a missing override file")
	}
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	got := render("골드 {gold} / {missing}", map[string]string{"gold": "120"})
	if got != "골드 120 / {missing}" {
		t.Fatalf("render = %q", got)
	}
	if render("변화 없음", nil) != "변화 없음" {
		t.Fatal("render without vars must return the template unchanged")
	}
}
