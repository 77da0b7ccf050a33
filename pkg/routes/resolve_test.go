package routes_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JaimeStill/country-app/pkg/routes"
)

func matchedNames(m routes.Match) []string {
	names := make([]string, len(m.Matched))
	for i, e := range m.Matched {
		names[i] = e.Name
	}
	return names
}

func TestTable_Resolve(t *testing.T) {
	table := mustTable(t, countryRoutes(), routes.WithViews(views))

	tests := []struct {
		location string
		wantPath string
		want     []string
	}{
		{"/", "/", []string{"home"}},
		{"", "/", []string{"home"}},
		{"/CountryApp", "/CountryApp", []string{"countryApp", "countryAppDefault"}},
		{"/CountryApp/", "/CountryApp", []string{"countryApp", "countryAppDefault"}},
		{"/CountryApp/firstview", "/CountryApp/firstview", []string{"countryApp", "firstview"}},
		{"/CountryApp/secondview", "/CountryApp/secondview", []string{"countryApp", "secondview"}},
		{"/countryapp/FirstView", "/countryapp/FirstView", []string{"countryApp", "firstview"}},
		{"/CountryApp/firstview?tab=2", "/CountryApp/firstview", []string{"countryApp", "firstview"}},
		{"/CountryApp/secondview#top", "/CountryApp/secondview", []string{"countryApp", "secondview"}},
	}

	for _, tt := range tests {
		t.Run(tt.location, func(t *testing.T) {
			m, err := table.Resolve(tt.location)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.location, err)
			}
			if m.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", m.Path, tt.wantPath)
			}
			if diff := cmp.Diff(tt.want, matchedNames(m)); diff != "" {
				t.Errorf("matched chain mismatch (-want +got):\n%s", diff)
			}
			if m.Name() != tt.want[len(tt.want)-1] {
				t.Errorf("Name() = %q, want %q", m.Name(), tt.want[len(tt.want)-1])
			}
		})
	}
}

func TestTable_Resolve_NoMatch(t *testing.T) {
	table := mustTable(t, countryRoutes())

	for _, location := range []string{"/unknown", "/CountryApp/thirdview", "/CountryApp/firstview/extra", "/home"} {
		t.Run(location, func(t *testing.T) {
			m, err := table.Resolve(location)
			if !errors.Is(err, routes.ErrNoMatch) {
				t.Errorf("Resolve(%q) error = %v, want ErrNoMatch", location, err)
			}
			if len(m.Matched) != 0 {
				t.Errorf("Resolve(%q) matched %v", location, matchedNames(m))
			}
		})
	}

	err := table.Walk(func(e routes.Entry) error {
		if e.Path == "/unknown" {
			t.Errorf("entry %q declares /unknown", e.Name)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestTable_Resolve_CaseSensitive(t *testing.T) {
	table := mustTable(t, countryRoutes(), routes.CaseSensitive())

	if _, err := table.Resolve("/countryapp"); !errors.Is(err, routes.ErrNoMatch) {
		t.Errorf("Resolve(/countryapp) error = %v, want ErrNoMatch", err)
	}
	if _, err := table.Resolve("/CountryApp"); err != nil {
		t.Errorf("Resolve(/CountryApp) error = %v", err)
	}
}

func TestTable_Resolve_DeclarationOrder(t *testing.T) {
	table := mustTable(t, []routes.Route{
		{Path: "/country/:code", Name: "country", View: "FirstView"},
		{Path: "/country/all", Name: "all", View: "SecondView"},
	})

	m, err := table.Resolve("/country/all")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "country" {
		t.Errorf("Name() = %q, want first declared route", m.Name())
	}
	if m.Params["code"] != "all" {
		t.Errorf("Params[code] = %q, want all", m.Params["code"])
	}
}

func TestTable_Resolve_Params(t *testing.T) {
	table := mustTable(t, []routes.Route{
		{
			Path: "/country/:code", Name: "country", View: "CountryLayout",
			Children: []routes.Route{
				{Path: "", Name: "countrySummary", View: "FirstView"},
				{Path: "city/:city", Name: "city", View: "SecondView"},
			},
		},
	})

	m, err := table.Resolve("/country/pe/city/Lima%20Centro")
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]string{"code": "pe", "city": "Lima Centro"}
	if diff := cmp.Diff(want, m.Params); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}

	m, err = table.Resolve("/country/pe")
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "countrySummary" {
		t.Errorf("Name() = %q, want countrySummary", m.Name())
	}
	if diff := cmp.Diff(map[string]string{"code": "pe"}, m.Params); diff != "" {
		t.Errorf("Params mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Resolve_LayoutWithoutDefault(t *testing.T) {
	table := mustTable(t, []routes.Route{
		{
			Path: "/CountryApp", Name: "countryApp", View: "CountryLayout",
			Children: []routes.Route{
				{Path: "firstview", Name: "firstview", View: "FirstView"},
			},
		},
	})

	m, err := table.Resolve("/CountryApp")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"countryApp"}, matchedNames(m)); diff != "" {
		t.Errorf("matched chain mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_Href(t *testing.T) {
	table := mustTable(t, countryRoutes())

	tests := []struct {
		name string
		want string
	}{
		{"home", "/"},
		{"countryApp", "/CountryApp"},
		{"countryAppDefault", "/CountryApp"},
		{"firstview", "/CountryApp/firstview"},
		{"secondview", "/CountryApp/secondview"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.Href(tt.name, nil)
			if err != nil {
				t.Fatalf("Href(%q) error = %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Href(%q) = %q, want %q", tt.name, got, tt.want)
			}

			m, err := table.Resolve(got)
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", got, err)
			}
			if m.Route().Path != tt.want {
				t.Errorf("Resolve(Href(%q)).Path = %q, want %q", tt.name, m.Route().Path, tt.want)
			}
		})
	}
}

func TestTable_Href_Errors(t *testing.T) {
	table := mustTable(t, []routes.Route{
		{Path: "/country/:code", Name: "country", View: "FirstView"},
	})

	if _, err := table.Href("missing", nil); !errors.Is(err, routes.ErrUnknownRoute) {
		t.Errorf("Href(missing) error = %v, want ErrUnknownRoute", err)
	}
	if _, err := table.Href("country", nil); !errors.Is(err, routes.ErrMissingParam) {
		t.Errorf("Href(country) error = %v, want ErrMissingParam", err)
	}

	got, err := table.Href("country", map[string]string{"code": "new zealand"})
	if err != nil {
		t.Fatal(err)
	}
	if got != "/country/new%20zealand" {
		t.Errorf("Href(country) = %q, want /country/new%%20zealand", got)
	}

	if !table.HasParams("country") {
		t.Error("HasParams(country) = false, want true")
	}
}
