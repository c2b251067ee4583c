package locale

var spanish = &Set{
	Code: "es",

	FirstNamesFemale: []string{
		"Adriana", "Alba", "Ana", "Carla", "Carmen", "Claudia", "Daniela",
		"Elena", "Emma", "Isabel", "Julia", "Laura", "Lucía", "Marina",
		"María", "Marta", "Noa", "Olivia", "Paula", "Rocío", "Sara",
		"Sofía", "Valeria", "Vega",
	},
	FirstNamesMale: []string{
		"Adrián", "Alejandro", "Álvaro", "Antonio", "Carlos", "Daniel",
		"David", "Diego", "Enzo", "Francisco", "Hugo", "Iván", "Javier",
		"Jorge", "José", "Juan", "Leo", "Lucas", "Manuel", "Marco",
		"Mario", "Martín", "Miguel", "Pablo",
	},
	LastNames: []string{
		"Alonso", "Blanco", "Castro", "Díaz", "Fernández", "García",
		"Gil", "Gómez", "González", "Gutiérrez", "Hernández", "Jiménez",
		"López", "Martín", "Martínez", "Moreno", "Muñoz", "Navarro",
		"Ortega", "Pérez", "Romero", "Ruiz", "Sánchez", "Serrano",
	},

	PhoneFormats: []string{
		"### ## ## ##",
		"+34 ### ### ###",
		"6## ### ###",
	},

	Cities: []string{
		"Alicante", "Barcelona", "Bilbao", "Córdoba", "Gijón", "Granada",
		"Las Palmas", "Madrid", "Málaga", "Murcia", "Oviedo", "Palma",
		"Salamanca", "San Sebastián", "Santander", "Sevilla", "Toledo",
		"Valencia", "Valladolid", "Zaragoza",
	},
	Streets: []string{
		"avenida de América", "avenida de la Constitución",
		"calle de Alcalá", "calle de la Luna", "calle del Carmen",
		"calle del Sol", "calle Mayor", "calle Nueva", "calle Real",
		"camino de Santiago", "gran vía", "paseo de Gracia",
		"paseo del Prado", "plaza de España", "plaza Mayor",
		"ronda de Toledo",
	},
	StreetFormats:  []string{"{street} {building}"},
	AddressFormats: []string{"{street}, {zip} {city}"},
	ZipFormats:     []string{"#####"},
	Countries: []string{
		"Alemania", "Argentina", "Bélgica", "Canadá", "Chile", "Colombia",
		"España", "Estados Unidos", "Francia", "Irlanda", "Italia",
		"Japón", "Marruecos", "México", "Países Bajos", "Portugal",
		"Reino Unido",
	},

	FreeEmailDomains: []string{"gmail.com", "hotmail.es", "yahoo.es", "outlook.es"},
	TLDs:             []string{"es", "com", "net", "org"},
}
