package locale

var german = &Set{
	Code: "de",

	FirstNamesFemale: []string{
		"Anna", "Charlotte", "Clara", "Elisabeth", "Ella", "Emilia",
		"Emma", "Frieda", "Greta", "Hannah", "Helena", "Ida", "Johanna",
		"Katharina", "Lea", "Lena", "Leonie", "Luisa", "Marie", "Mia",
		"Mila", "Nele", "Paula", "Sophie",
	},
	FirstNamesMale: []string{
		"Alexander", "Anton", "Benjamin", "David", "Elias", "Emil",
		"Felix", "Finn", "Henri", "Jakob", "Jonas", "Julian", "Karl",
		"Leon", "Lukas", "Maximilian", "Moritz", "Niklas", "Noah",
		"Oskar", "Paul", "Philipp", "Simon", "Theo",
	},
	LastNames: []string{
		"Bauer", "Becker", "Braun", "Fischer", "Hartmann", "Hoffmann",
		"Klein", "Koch", "Krüger", "Lange", "Meyer", "Müller", "Neumann",
		"Richter", "Schäfer", "Schmid", "Schmidt", "Schneider",
		"Schröder", "Schulz", "Schwarz", "Wagner", "Werner", "Wolf",
	},

	PhoneFormats: []string{
		"0### ######",
		"+49 ### ######",
		"0##### #####",
	},

	Cities: []string{
		"Berlin", "Bonn", "Bremen", "Dortmund", "Dresden", "Düsseldorf",
		"Essen", "Frankfurt", "Freiburg", "Hamburg", "Hannover", "Kiel",
		"Köln", "Leipzig", "Mainz", "München", "Münster", "Nürnberg",
		"Stuttgart", "Wiesbaden",
	},
	Streets: []string{
		"Bahnhofstraße", "Bergstraße", "Birkenweg", "Blumenstraße",
		"Brunnenweg", "Dorfstraße", "Gartenstraße", "Goethestraße",
		"Hauptstraße", "Kirchgasse", "Lindenallee", "Marktplatz",
		"Mozartstraße", "Mühlenweg", "Schillerstraße", "Schulstraße",
		"Waldweg", "Wiesenweg",
	},
	StreetFormats:  []string{"{street} {building}"},
	AddressFormats: []string{"{street}, {zip} {city}"},
	ZipFormats:     []string{"#####"},
	Countries: []string{
		"Belgien", "Dänemark", "Deutschland", "Frankreich", "Irland",
		"Italien", "Japan", "Kanada", "Marokko", "Niederlande",
		"Norwegen", "Österreich", "Polen", "Schweden", "Schweiz",
		"Spanien", "Vereinigte Staaten",
	},

	FreeEmailDomains: []string{"gmail.com", "web.de", "gmx.de", "t-online.de"},
	TLDs:             []string{"de", "com", "net", "org"},
}
