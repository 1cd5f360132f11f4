package categorizer

// builtinCategories lists the built-in categories in detection order. The
// order matters: detection returns the first category that matches, so the
// table is kept as an ordered slice rather than a map.
var builtinCategories = []string{
	"Alimentación",
	"Transporte",
	"Entretenimiento",
	"Salud",
	"Educación",
	"Ropa",
	"Hogar",
	"Servicios",
	"Mascotas",
	"Belleza",
}

// builtinKeywords maps each built-in category to its seed keywords:
// variations, synonyms and common merchants.
var builtinKeywords = map[string][]string{
	"Alimentación": {
		"almuerzo", "desayuno", "cena", "comida", "restaurant", "restaurante",
		"pizza", "hamburguesa", "sushi", "empanada", "sandwich", "café", "te",
		"supermercado", "verduras", "frutas", "carne", "pollo", "pescado",
		"pan", "leche", "huevos", "arroz", "pasta", "fideos", "cocina",
		"delivery", "pedidos", "uber eats", "rappi", "dominos", "mcdonalds",
		"kfc", "subway", "starbucks", "dunkin", "burger king", "taco bell",
		"mercado", "feria", "carnicería", "panadería", "pastelería",
	},
	"Transporte": {
		"uber", "taxi", "metro", "bus", "micro", "colectivo", "bencina",
		"gasolina", "combustible", "peaje", "estacionamiento", "parking",
		"mecánico", "taller", "neumáticos", "ruedas", "aceite", "revisión",
		"permiso", "circulación", "seguro auto", "auto", "coche", "vehículo",
		"viaje", "pasaje", "boleto", "ticket", "transporte público",
	},
	"Entretenimiento": {
		"cine", "película", "teatro", "concierto", "show", "espectáculo",
		"bar", "pub", "discoteca", "club", "fiesta", "cumpleaños",
		"netflix", "spotify", "disney", "amazon prime", "hbo", "streaming",
		"videojuegos", "juegos", "playstation", "xbox", "nintendo",
		"parque", "diversiones", "bowling", "karaoke", "escape room",
		"museo", "exposición", "evento", "festival", "carrete",
	},
	"Salud": {
		"médico", "doctor", "dentista", "hospital", "clínica", "consulta",
		"medicamentos", "remedios", "farmacia", "pastillas", "jarabe",
		"vitaminas", "suplementos", "examen", "análisis", "radiografía",
		"ecografía", "resonancia", "operación", "cirugía", "terapia",
		"psicólogo", "psiquiatra", "kinesiólogo", "nutricionista",
		"oftalmólogo", "dermatólogo", "ginecólogo", "pediatra",
	},
	"Educación": {
		"colegio", "escuela", "universidad", "instituto", "curso", "clase",
		"matrícula", "mensualidad", "libros", "cuadernos", "útiles",
		"materiales", "uniforme", "mochila", "calculadora", "computador",
		"laptop", "tablet", "software", "licencia", "certificación",
		"capacitación", "seminario", "taller", "diplomado", "maestría",
	},
	"Ropa": {
		"ropa", "camisa", "pantalón", "vestido", "falda", "blusa",
		"zapatos", "zapatillas", "botas", "sandalias", "calcetines",
		"ropa interior", "sostén", "calzoncillos", "chaqueta", "abrigo",
		"polera", "jeans", "shorts", "pijama", "traje", "corbata",
		"tienda", "mall", "centro comercial", "boutique", "outlet",
	},
	"Hogar": {
		"casa", "hogar", "muebles", "decoración", "electrodomésticos",
		"refrigerador", "lavadora", "secadora", "microondas", "horno",
		"aspiradora", "plancha", "televisor", "sofá", "cama", "mesa",
		"silla", "escritorio", "lámpara", "cortinas", "alfombra",
		"pintura", "herramientas", "ferretería", "jardín", "plantas",
		"limpieza", "detergente", "jabón", "shampoo", "papel higiénico",
	},
	"Servicios": {
		"luz", "agua", "gas", "internet", "teléfono", "cable", "tv",
		"electricidad", "cuenta", "factura", "servicio", "mantención",
		"reparación", "técnico", "instalación", "wifi", "fibra óptica",
	},
	"Mascotas": {
		"perro", "gato", "mascota", "veterinario", "vacuna", "alimento",
		"comida para perro", "comida para gato", "collar", "correa",
		"juguete", "cama para mascota", "arena", "shampoo para mascota",
	},
	"Belleza": {
		"peluquería", "salón", "corte", "peinado", "tinte", "manicure",
		"pedicure", "spa", "masaje", "facial", "depilación", "maquillaje",
		"perfume", "crema", "loción", "cosmético", "belleza",
	},
}
