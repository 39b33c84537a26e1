package project

// sampleProjects is the catalog used when no file is given.
var sampleProjects = []Project{
	{ID: "berlin-wedding", Name: "Kiezküche", City: "Berlin", Region: "Berlin",
		Description: "A community kitchen that cooks with surplus food from local markets.",
		Link:        "https://example.org/projects/berlin-wedding"},
	{ID: "hamburg-altona", Name: "Reparaturcafé", City: "Hamburg", Region: "Hamburg",
		Description: "Volunteers fix bikes, toasters and radios once a week.",
		Link:        "https://example.org/projects/hamburg-altona"},
	{ID: "leipzig-west", Name: "Nachbarschaftsgarten", City: "Leipzig", Region: "Sachsen",
		Description: "A shared garden on a former parking lot, run by the neighbourhood.",
		Link:        "https://example.org/projects/leipzig-west"},
	{ID: "koeln-ehrenfeld", Name: "Lesepaten", City: "Köln", Region: "Nordrhein-Westfalen",
		Description: "Reading mentors for primary school children.",
		Link:        "https://example.org/projects/koeln-ehrenfeld"},
	{ID: "muenchen-giesing", Name: "Werkstatt für alle", City: "München", Region: "Bayern",
		Description: "An open workshop with tools, machines and weekly courses.",
		Link:        "https://example.org/projects/muenchen-giesing"},
	{ID: "dresden-neustadt", Name: "Stadtteilradio", City: "Dresden", Region: "Sachsen",
		Description: "A neighbourhood radio station produced by residents.",
		Link:        "https://example.org/projects/dresden-neustadt"},
	{ID: "bremen-vegesack", Name: "Hafenwerkstatt", City: "Bremen", Region: "Bremen",
		Description: "Youth boat building in an old harbour shed.",
		Link:        "https://example.org/projects/bremen-vegesack"},
	{ID: "freiburg-vauban", Name: "Energiegenossenschaft", City: "Freiburg", Region: "Baden-Württemberg",
		Description: "Residents co-own the solar panels on their school roofs.",
		Link:        "https://example.org/projects/freiburg-vauban"},
	{ID: "erfurt-nord", Name: "Begegnungscafé", City: "Erfurt", Region: "Thüringen",
		Description: "A weekly café where newcomers and long-time residents meet.",
		Link:        "https://example.org/projects/erfurt-nord"},
	{ID: "kiel-gaarden", Name: "Tauschregal", City: "Kiel", Region: "Schleswig-Holstein",
		Description: "Give-and-take shelves in five stairwells and counting.",
		Link:        "https://example.org/projects/kiel-gaarden"},
}

// Sample returns the built-in example catalog.
func Sample() *Catalog {
	c, err := New(sampleProjects)
	if err != nil {
		panic("project: invalid sample catalog: " + err.Error())
	}
	return c
}
