package names

import "golang.org/x/text/language"

// Corpus is a curated list of names for one locale.
type Corpus struct {
	Tag        language.Tag
	FirstNames []string
	LastNames  []string
}

// Spanish holds common given names and surnames in Spain.
var Spanish = Corpus{
	Tag: language.MustParse("es-ES"),
	FirstNames: []string{
		"Adrián", "Alba", "Alejandro", "Alejandra", "Álvaro", "Ana", "Andrea",
		"Ángel", "Antonio", "Beatriz", "Carla", "Carlos", "Carmen", "Claudia",
		"Cristina", "Daniel", "David", "Diego", "Elena", "Eva", "Francisco",
		"Gabriel", "Hugo", "Irene", "Isabel", "Iván", "Javier", "Jesús",
		"Jorge", "José", "Juan", "Julia", "Laura", "Lucía", "Luis", "Manuel",
		"Marcos", "María", "Mario", "Marta", "Martina", "Miguel", "Nerea",
		"Noelia", "Pablo", "Paula", "Pedro", "Rafael", "Raquel", "Rocío",
		"Rubén", "Sara", "Sergio", "Sofía", "Teresa", "Valeria", "Víctor",
	},
	LastNames: []string{
		"Alonso", "Álvarez", "Blanco", "Castillo", "Castro", "Cortés", "Delgado",
		"Díaz", "Domínguez", "Fernández", "Gallego", "García", "Garrido", "Gil",
		"Gómez", "González", "Gutiérrez", "Hernández", "Iglesias", "Jiménez",
		"López", "Lozano", "Marín", "Martín", "Martínez", "Medina", "Molina",
		"Morales", "Moreno", "Muñoz", "Navarro", "Núñez", "Ortega", "Ortiz",
		"Pérez", "Ramírez", "Ramos", "Romero", "Rubio", "Ruiz", "Sánchez",
		"Santos", "Sanz", "Serrano", "Suárez", "Torres", "Vázquez",
	},
}

// Valencian holds given names and surnames common in the Valencian
// Community.
var Valencian = Corpus{
	Tag: language.MustParse("ca-ES"),
	FirstNames: []string{
		"Agustí", "Aina", "Amparo", "Andreu", "Anna", "Berta", "Carles",
		"Empar", "Enric", "Ester", "Ferran", "Gemma", "Guillem", "Helena",
		"Jaume", "Joan", "Joanet", "Jordi", "Josep", "Júlia", "Laia", "Lluís",
		"Marc", "Maria", "Marta", "Mercè", "Miquel", "Neus", "Núria", "Pau",
		"Pere", "Pilar", "Quique", "Roser", "Sílvia", "Toni", "Vicent",
		"Xavier",
	},
	LastNames: []string{
		"Alemany", "Aparici", "Bataller", "Boix", "Cabanes", "Climent",
		"Escrivà", "Ferrer", "Fuster", "Llorens", "Martí", "Mas", "Miralles",
		"Mompó", "Monfort", "Orts", "Pastor", "Peris", "Pla", "Puig", "Ribes",
		"Roig", "Sanchis", "Soler", "Tormo", "Vidal", "Vives",
	},
}
