package web_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/country-app/pkg/web"
)

var viewFS = fstest.MapFS{
	"views/home.html":    {Data: []byte(`<h1>Home</h1><a href="{{ index .Links "firstview" }}">first</a>`)},
	"views/layout.html":  {Data: []byte(`<section class="layout"><nav>Countries</nav><main><router-view></router-view></main></section>`)},
	"views/outer.html":   {Data: []byte(`<router-view></router-view><footer>outer</footer>`)},
	"views/panel.html":   {Data: []byte(`<ul>{{ range .Data }}<li>{{ . }}</li>{{ end }}</ul>`)},
	"views/first.html":   {Data: []byte(`<p>First {{ .Route }} at {{ .Path }}</p>`)},
	"views/double.html":  {Data: []byte(`<router-view></router-view><div><router-view></router-view></div>`)},
	"views/broken.html":  {Data: []byte(`<p>{{ .Route </p>`)},
	"views/escaped.html": {Data: []byte(`<p>{{ .Route }}</p>`)},
}

var viewDefs = []web.ViewDef{
	{Name: "HomeView", Template: "home.html"},
	{Name: "CountryLayout", Template: "layout.html"},
	{Name: "Outer", Template: "outer.html"},
	{Name: "PanelCountries", Template: "panel.html"},
	{Name: "FirstView", Template: "first.html"},
	{Name: "Escaped", Template: "escaped.html"},
}

func mustViews(t *testing.T) *web.ViewSet {
	t.Helper()
	vs, err := web.NewViewSet(viewFS, "views", viewDefs)
	if err != nil {
		t.Fatalf("NewViewSet() error = %v", err)
	}
	return vs
}

func TestNewViewSet(t *testing.T) {
	vs := mustViews(t)

	want := []string{"CountryLayout", "Escaped", "FirstView", "HomeView", "Outer", "PanelCountries"}
	if diff := cmp.Diff(want, vs.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestViewSet_Slots(t *testing.T) {
	vs := mustViews(t)

	tests := []struct {
		ref      string
		wantView bool
		wantSlot bool
	}{
		{"HomeView", true, false},
		{"CountryLayout", true, true},
		{"Outer", true, true},
		{"PanelCountries", true, false},
		{"Missing", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			if got := vs.HasView(tt.ref); got != tt.wantView {
				t.Errorf("HasView(%q) = %v, want %v", tt.ref, got, tt.wantView)
			}
			if got := vs.HasSlot(tt.ref); got != tt.wantSlot {
				t.Errorf("HasSlot(%q) = %v, want %v", tt.ref, got, tt.wantSlot)
			}
		})
	}
}

func TestNewViewSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		defs []web.ViewDef
		want error
	}{
		{
			name: "missing file",
			dir:  "views",
			defs: []web.ViewDef{{Name: "Missing", Template: "missing.html"}},
		},
		{
			name: "template syntax",
			dir:  "views",
			defs: []web.ViewDef{{Name: "Broken", Template: "broken.html"}},
		},
		{
			name: "duplicate name",
			dir:  "views",
			defs: []web.ViewDef{
				{Name: "HomeView", Template: "home.html"},
				{Name: "HomeView", Template: "first.html"},
			},
			want: web.ErrDuplicateView,
		},
		{
			name: "multiple slots",
			dir:  "views",
			defs: []web.ViewDef{{Name: "Double", Template: "double.html"}},
			want: web.ErrMultipleSlots,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := web.NewViewSet(viewFS, tt.dir, tt.defs)
			if err == nil {
				t.Fatal("NewViewSet() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("NewViewSet() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestViewSet_Render(t *testing.T) {
	vs := mustViews(t)

	var buf bytes.Buffer
	err := vs.Render(&buf, "Escaped", web.ViewData{Route: "<script>"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := buf.String(), "<p>&lt;script&gt;</p>"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}

	if err := vs.Render(&buf, "Missing", web.ViewData{}); !errors.Is(err, web.ErrViewNotFound) {
		t.Errorf("Render(Missing) error = %v, want ErrViewNotFound", err)
	}
}
