package app

import "github.com/JaimeStill/country-app/pkg/routes"

// routeTable declares the application's navigable locations. Children of
// countryApp render inside CountryLayout's slot; the empty path is the panel
// shown at /CountryApp itself.
func routeTable() []routes.Route {
	return []routes.Route{
		{
			Path: "/",
			Name: "home",
			View: "HomeView",
		},
		{
			Path: "/CountryApp",
			Name: "countryApp",
			View: "CountryLayout",
			Children: []routes.Route{
				{
					Path: "",
					Name: "countryAppDefault",
					View: "PanelCountries",
				},
				{
					Path: "firstview",
					Name: "firstview",
					View: "FirstView",
				},
				{
					Path: "secondview",
					Name: "secondview",
					View: "SecondView",
				},
			},
		},
	}
}

// BuildRouteTable builds and validates the application route table. View
// references are checked against views, so a dangling reference or a layout
// without a slot fails here rather than on first navigation.
func BuildRouteTable(views routes.ViewSource, opts ...routes.Option) (*routes.Table, error) {
	opts = append(opts, routes.WithViews(views))
	return routes.New(routeTable(), opts...)
}
