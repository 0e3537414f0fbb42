package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"displayinfo/internal/domain"
	"displayinfo/internal/render"
	"displayinfo/internal/services/display"
	"displayinfo/internal/services/size"
)

func sample(t *testing.T) domain.DisplayInfo {
	t.Helper()
	info, err := display.Build(domain.Snapshot{WidthPixels: 1080, HeightPixels: 1920, XDpi: 440, YDpi: 440, Density: 2.75})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return info
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]render.Format{"text": render.FormatText, "JSON": render.FormatJSON, " yaml ": render.FormatYAML} {
		got, err := render.ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := render.ParseFormat("xml"); err == nil {
		t.Fatal("expected error for xml")
	}
}

func TestDisplayInfo_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	if err := render.DisplayInfo(&buf, render.FormatText, sample(t)); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"pixels:         1080 x 1920", "diagonal:       5.0\"", "density:        xxhdpi", "category:       phone", "sw390dp"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
}

func TestDisplayInfo_JSONAndYAMLDecodeBack(t *testing.T) {
	info := sample(t)

	var js bytes.Buffer
	if err := render.DisplayInfo(&js, render.FormatJSON, info); err != nil {
		t.Fatalf("json: %v", err)
	}
	var fromJSON domain.DisplayInfo
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if fromJSON != info {
		t.Fatal("json output does not decode to the same value")
	}

	var ys bytes.Buffer
	if err := render.DisplayInfo(&ys, render.FormatYAML, info); err != nil {
		t.Fatalf("yaml: %v", err)
	}
	var fromYAML domain.DisplayInfo
	if err := yaml.Unmarshal(ys.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if fromYAML != info {
		t.Fatal("yaml output does not decode to the same value")
	}
}

func TestStyled_ContainsValues(t *testing.T) {
	out := render.Styled(sample(t))
	for _, want := range []string{"Display", "xxhdpi", "phone", "sw390dp"} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in styled output", want)
		}
	}
}

func TestSizeClass_Text(t *testing.T) {
	sc, err := size.Classify(2048, 1536, 264, 264)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	var buf bytes.Buffer
	if err := render.SizeClass(&buf, render.FormatText, sc); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "9.7\"") || !strings.Contains(buf.String(), "tablet") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestSizeClass_JSONAndYAMLAgree(t *testing.T) {
	sc, err := size.Classify(1080, 1920, 440, 440)
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}

	var js, ys bytes.Buffer
	if err := render.SizeClass(&js, render.FormatJSON, sc); err != nil {
		t.Fatalf("json: %v", err)
	}
	if err := render.SizeClass(&ys, render.FormatYAML, sc); err != nil {
		t.Fatalf("yaml: %v", err)
	}

	var fromJSON, fromYAML map[string]any
	if err := json.Unmarshal(js.Bytes(), &fromJSON); err != nil {
		t.Fatalf("decode json: %v", err)
	}
	if err := yaml.Unmarshal(ys.Bytes(), &fromYAML); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	for _, m := range []map[string]any{fromJSON, fromYAML} {
		if m["diagonal"] != "5.0" || m["category"] != "phone" {
			t.Fatalf("diagonal/category = %v/%v, want 5.0/phone", m["diagonal"], m["category"])
		}
	}
	if fromJSON["diagonal_inch"] != fromYAML["diagonal_inch"] {
		t.Fatalf("diagonal_inch differs: %v vs %v", fromJSON["diagonal_inch"], fromYAML["diagonal_inch"])
	}
}
