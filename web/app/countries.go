package app

// Country is a row in the countries panel.
type Country struct {
	Name    string
	Capital string
	Region  string
}

var countries = []Country{
	{Name: "Argentina", Capital: "Buenos Aires", Region: "Americas"},
	{Name: "Canada", Capital: "Ottawa", Region: "Americas"},
	{Name: "Japan", Capital: "Tokyo", Region: "Asia"},
	{Name: "Kenya", Capital: "Nairobi", Region: "Africa"},
	{Name: "Peru", Capital: "Lima", Region: "Americas"},
	{Name: "Spain", Capital: "Madrid", Region: "Europe"},
}
