package locale

var english = &Set{
	Code: "en",

	FirstNamesFemale: []string{
		"Alice", "Amelia", "Ava", "Charlotte", "Chloe", "Eleanor", "Ella",
		"Emily", "Emma", "Evelyn", "Grace", "Hannah", "Harper", "Isabella",
		"Lily", "Lucy", "Mia", "Nora", "Olivia", "Ruby", "Scarlett",
		"Sophia", "Violet", "Zoe",
	},
	FirstNamesMale: []string{
		"Alexander", "Arthur", "Benjamin", "Charles", "Daniel", "Edward",
		"Elijah", "Ethan", "George", "Henry", "Jack", "James", "Liam",
		"Logan", "Lucas", "Mason", "Noah", "Oliver", "Oscar", "Samuel",
		"Sebastian", "Theodore", "Thomas", "William",
	},
	LastNames: []string{
		"Anderson", "Brown", "Carter", "Clark", "Davis", "Evans", "Garcia",
		"Hall", "Harris", "Jackson", "Johnson", "Jones", "Lewis", "Martin",
		"Miller", "Moore", "Robinson", "Smith", "Taylor", "Thompson",
		"Walker", "White", "Williams", "Wilson", "Wright", "Young",
	},

	PhoneFormats: []string{
		"(###) ###-####",
		"###-###-####",
		"+1 ### ### ####",
		"1-###-###-####",
	},

	Cities: []string{
		"Austin", "Boston", "Bristol", "Chicago", "Dallas", "Denver",
		"Leeds", "Liverpool", "London", "Manchester", "Melbourne",
		"New York", "Phoenix", "Portland", "San Diego", "Seattle",
		"Sydney", "Toronto", "Vancouver", "Wellington",
	},
	Streets: []string{
		"Cedar Lane", "Church Street", "Elm Street", "High Street",
		"Hill Road", "King Street", "Lake Drive", "Main Street",
		"Maple Avenue", "Mill Lane", "Oak Avenue", "Park Avenue",
		"Pine Street", "Queen Street", "Station Road", "Victoria Road",
		"Washington Street", "Willow Court",
	},
	StreetFormats:  []string{"{building} {street}"},
	AddressFormats: []string{"{street}, {city} {zip}"},
	ZipFormats:     []string{"#####", "#####-####"},
	Countries: []string{
		"Australia", "Canada", "France", "Germany", "Ireland", "Italy",
		"Japan", "Morocco", "Netherlands", "New Zealand", "Norway",
		"Portugal", "Spain", "Sweden", "Switzerland", "United Kingdom",
		"United States",
	},

	FreeEmailDomains: []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com"},
	TLDs:             []string{"com", "net", "org", "io", "co"},
}
