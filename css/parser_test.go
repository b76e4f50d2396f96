package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"dtc/css"
)

const sampleCSS = `
@charset "utf-8";
@import url("base.css");

:root {
  --brand-primary: #0d6efd;
  --shadow-sm: 0 1px 2px rgba(0, 0, 0, .05) !important;
}

/* buttons */
.btn, .btn-primary {
  color: #FFF;
  background-color: var(--brand-primary);
  border: 1px solid #0d6efd;
  padding: 8px 16px !important;
}

@font-face {
  font-family: "Inter";
  src: url(inter.woff2);
}

@keyframes spin {
  from { transform: rotate(0deg); }
  to { transform: rotate(360deg); }
}

@media (min-width: 768px) {
  .container { max-width: 720px; }
  @supports (display: grid) {
    .grid { gap: 1rem; }
  }
}

h1 {}
`

func TestParser_Rules(t *testing.T) {
	p := css.NewParser(zaptest.NewLogger(t))
	sheet := p.Parse([]byte(sampleCSS), "sample.css")

	if len(sheet.Rules) != 4 {
		for _, r := range sheet.Rules {
			t.Logf("rule %q media %q", r.Selector(), r.Media)
		}
		t.Fatalf("expected 4 rules, got %d", len(sheet.Rules))
	}

	root := sheet.Rules[0]
	if root.Selector() != ":root" {
		t.Errorf("first selector = %q, want :root", root.Selector())
	}
	brand, ok := root.GetProperty("--brand-primary")
	if !ok || !brand.Custom || brand.Value != "#0d6efd" {
		t.Errorf("unexpected custom property %+v", brand)
	}
	shadow, _ := root.GetProperty("--shadow-sm")
	if !shadow.Important || shadow.Value != "0 1px 2px rgba(0, 0, 0, .05)" {
		t.Errorf("unexpected custom property %+v", shadow)
	}

	btn := sheet.Rules[1]
	if len(btn.Selectors) != 2 || btn.Selectors[1] != ".btn-primary" {
		t.Errorf("selectors = %v", btn.Selectors)
	}
	if c, _ := btn.GetProperty("color"); c.Value != "#FFF" {
		t.Errorf("color = %q", c.Value)
	}
	if b, _ := btn.GetProperty("border"); b.Value != "1px solid #0d6efd" {
		t.Errorf("border = %q", b.Value)
	}
	pad, _ := btn.GetProperty("padding")
	if !pad.Important || pad.Value != "8px 16px" {
		t.Errorf("padding = %+v", pad)
	}
	if btn.SourceLine < 10 {
		t.Errorf("source line = %d, expected rule position", btn.SourceLine)
	}

	if got := sheet.Rules[2].Media; got != "(min-width:768px)" && got != "(min-width: 768px)" {
		t.Errorf("media = %q", got)
	}
	grid := sheet.Rules[3]
	if !strings.Contains(grid.Media, "@supports") || !strings.HasPrefix(grid.Media, sheet.Rules[2].Media) {
		t.Errorf("nested media = %q", grid.Media)
	}
}

func TestParser_Malformed(t *testing.T) {
	sheet := css.NewParser(zap.NewNop()).Parse([]byte(`a { color red; margin: 0 } b { color: blue }`))

	var found bool
	for _, r := range sheet.Rules {
		if r.Selector() == "b" {
			found = true
			if c, _ := r.GetProperty("color"); c.Value != "blue" {
				t.Errorf("b color = %q", c.Value)
			}
		}
	}
	if !found {
		t.Error("parser did not recover after malformed declaration")
	}
}

func TestStylesheet_String(t *testing.T) {
	sheet := css.NewParser(nil).Parse([]byte(`.a{color:red!important;--x: 1px} @media print{.b{margin:0}}`))
	out := sheet.String()

	for _, want := range []string{".a {", "color: red !important;", "--x: 1px;", "@media print {", "  .b {"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
