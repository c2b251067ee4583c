package locale

var french = &Set{
	Code: "fr",

	FirstNamesFemale: []string{
		"Alice", "Camille", "Charlotte", "Chloé", "Claire", "Élise",
		"Emma", "Inès", "Jade", "Jeanne", "Julia", "Léa", "Lina",
		"Louise", "Lucie", "Manon", "Margaux", "Marie", "Mathilde",
		"Pauline", "Rose", "Sarah", "Sophie", "Zoé",
	},
	FirstNamesMale: []string{
		"Adam", "Alexandre", "Antoine", "Arthur", "Baptiste", "Clément",
		"Émile", "Gabriel", "Hugo", "Jules", "Léo", "Louis", "Lucas",
		"Marius", "Mathis", "Maxime", "Nathan", "Nicolas", "Paul",
		"Pierre", "Raphaël", "Théo", "Thomas", "Victor",
	},
	LastNames: []string{
		"Bernard", "Bonnet", "Dubois", "Dupont", "Durand", "Fontaine",
		"Fournier", "Garcia", "Girard", "Lambert", "Laurent", "Lefebvre",
		"Leroy", "Martin", "Mercier", "Michel", "Moreau", "Morel",
		"Petit", "Richard", "Robert", "Roux", "Simon", "Thomas",
	},

	PhoneFormats: []string{
		"0# ## ## ## ##",
		"+33 # ## ## ## ##",
		"0### ## ## ##",
	},

	Cities: []string{
		"Bordeaux", "Brest", "Dijon", "Grenoble", "Le Havre", "Lille",
		"Lyon", "Marseille", "Montpellier", "Nantes", "Nice", "Nîmes",
		"Paris", "Reims", "Rennes", "Rouen", "Strasbourg", "Toulon",
		"Toulouse", "Tours",
	},
	Streets: []string{
		"avenue de la République", "avenue des Champs-Élysées",
		"avenue Victor Hugo", "boulevard Saint-Germain",
		"boulevard Voltaire", "place de la Mairie", "rue de la Gare",
		"rue de la Paix", "rue des Écoles", "rue des Lilas",
		"rue du Commerce", "rue du Moulin", "rue Nationale",
		"rue Pasteur", "rue Saint-Honoré", "rue Victor Hugo",
	},
	StreetFormats:  []string{"{building} {street}"},
	AddressFormats: []string{"{street}, {zip} {city}"},
	ZipFormats:     []string{"#####"},
	Countries: []string{
		"Allemagne", "Belgique", "Canada", "Espagne", "États-Unis",
		"France", "Irlande", "Italie", "Japon", "Luxembourg", "Maroc",
		"Norvège", "Pays-Bas", "Portugal", "Royaume-Uni", "Suède",
		"Suisse",
	},

	FreeEmailDomains: []string{"gmail.com", "orange.fr", "free.fr", "laposte.net"},
	TLDs:             []string{"fr", "com", "net", "org"},
}
