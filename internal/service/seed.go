package service

import "github.com/recetario/backend/internal/models"

// sampleRecipes is the fixed example dataset inserted by the one-time seed.
func sampleRecipes() []models.Recipe {
	return []models.Recipe{
		{
			Title:       "Pasta Carbonara Clásica",
			Description: "Una deliciosa pasta italiana con una salsa cremosa de huevo y panceta",
			Category:    "Pasta",
			Difficulty:  "Media",
			Image:       "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=800",
			Ingredients: []models.Ingredient{
				{Name: "espagueti", Quantity: 400, Unit: "gramos"},
				{Name: "panceta o guanciale", Quantity: 200, Unit: "gramos"},
				{Name: "huevos", Quantity: 4, Unit: "unidades"},
				{Name: "queso parmesano rallado", Quantity: 100, Unit: "gramos"},
				{Name: "pimienta negra", Quantity: 1, Unit: "pizca"},
				{Name: "sal", Quantity: 1, Unit: "pizca"},
			},
			Instructions: []string{
				"Cocina la pasta en agua con sal hasta que esté al dente",
				"Corta la panceta en cubos pequeños y cocínala hasta que esté crujiente",
				"Bate los huevos con el queso parmesano y pimienta",
				"Escurre la pasta y mézclala con la panceta",
				"Retira del fuego y agrega la mezcla de huevo, mezclando rápidamente",
				"Sirve inmediatamente con más queso y pimienta",
			},
			PrepTime: "10 min",
			CookTime: "20 min",
			Servings: 4,
			Chef:     "Mario Rossi",
		},
		{
			Title:       "Ensalada César con Pollo",
			Description: "Fresca ensalada romana con pollo a la parrilla y aderezo César casero",
			Category:    "Ensaladas",
			Difficulty:  "Fácil",
			Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=800",
			Ingredients: []models.Ingredient{
				{Name: "pechugas de pollo", Quantity: 2, Unit: "unidades"},
				{Name: "lechuga romana grande", Quantity: 1, Unit: "unidades"},
				{Name: "queso parmesano", Quantity: 100, Unit: "gramos"},
				{Name: "crutones", Quantity: 1, Unit: "tazas"},
				{Name: "mayonesa", Quantity: 3, Unit: "cucharadas"},
				{Name: "diente de ajo", Quantity: 1, Unit: "unidades"},
				{Name: "jugo de limón", Quantity: 0.5, Unit: "unidades"},
				{Name: "anchoas (opcional)", Quantity: 2, Unit: "unidades"},
			},
			Instructions: []string{
				"Sazona y cocina el pollo a la parrilla hasta que esté dorado",
				"Corta el pollo en tiras",
				"Lava y corta la lechuga",
				"Prepara el aderezo mezclando mayonesa, ajo, limón y anchoas",
				"Mezcla la lechuga con el aderezo",
				"Agrega el pollo, parmesano y crutones",
			},
			PrepTime: "15 min",
			CookTime: "15 min",
			Servings: 4,
			Chef:     "Laura García",
		},
		{
			Title:       "Brownie de Chocolate",
			Description: "Postre decadente de chocolate con textura perfecta, crujiente por fuera y suave por dentro",
			Category:    "Postres",
			Difficulty:  "Fácil",
			Image:       "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=800",
			Ingredients: []models.Ingredient{
				{Name: "chocolate negro", Quantity: 200, Unit: "gramos"},
				{Name: "mantequilla", Quantity: 150, Unit: "gramos"},
				{Name: "huevos", Quantity: 3, Unit: "unidades"},
				{Name: "azúcar", Quantity: 200, Unit: "gramos"},
				{Name: "harina", Quantity: 100, Unit: "gramos"},
				{Name: "extracto de vainilla", Quantity: 1, Unit: "cucharaditas"},
				{Name: "sal", Quantity: 1, Unit: "pizca"},
			},
			Instructions: []string{
				"Precalienta el horno a 180°C",
				"Derrite el chocolate con la mantequilla a baño maría",
				"Bate los huevos con el azúcar hasta que estén espumosos",
				"Agrega el chocolate derretido y mezcla",
				"Incorpora la harina, vainilla y sal",
				"Vierte en un molde engrasado y hornea por 25-30 minutos",
			},
			PrepTime: "15 min",
			CookTime: "30 min",
			Servings: 8,
			Chef:     "Carlos Martínez",
		},
		{
			Title:       "Estofado de Carne",
			Description: "Guiso tradicional con carne tierna y vegetales en salsa rica",
			Category:    "Guisos",
			Difficulty:  "Media",
			Image:       "https://images.unsplash.com/photo-1574484284002-952d92456975?w=800",
			Ingredients: []models.Ingredient{
				{Name: "carne para guisar", Quantity: 1, Unit: "kg"},
				{Name: "zanahorias", Quantity: 3, Unit: "unidades"},
				{Name: "cebollas", Quantity: 2, Unit: "unidades"},
				{Name: "papas", Quantity: 3, Unit: "unidades"},
				{Name: "tomates", Quantity: 2, Unit: "unidades"},
				{Name: "dientes de ajo", Quantity: 2, Unit: "unidades"},
				{Name: "caldo de carne", Quantity: 1, Unit: "litros"},
				{Name: "aceite de oliva", Quantity: 2, Unit: "cucharadas"},
				{Name: "sal, pimienta y hierbas", Quantity: 1, Unit: "pizca"},
			},
			Instructions: []string{
				"Sella la carne en una olla con aceite caliente",
				"Retira la carne y sofríe la cebolla y el ajo",
				"Agrega los tomates picados y cocina por 5 minutos",
				"Devuelve la carne a la olla",
				"Agrega el caldo y hierve a fuego lento por 1 hora",
				"Añade las zanahorias y papas, cocina 30 minutos más",
			},
			PrepTime: "20 min",
			CookTime: "90 min",
			Servings: 6,
		},
		{
			Title:       "Sopa de Tomate Casera",
			Description: "Reconfortante sopa de tomate con albahaca fresca",
			Category:    "Sopas",
			Difficulty:  "Fácil",
			Image:       "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=800",
			Ingredients: []models.Ingredient{
				{Name: "tomates maduros", Quantity: 1, Unit: "kg"},
				{Name: "cebolla", Quantity: 1, Unit: "unidades"},
				{Name: "dientes de ajo", Quantity: 2, Unit: "unidades"},
				{Name: "caldo de vegetales", Quantity: 500, Unit: "ml"},
				{Name: "albahaca fresca", Quantity: 2, Unit: "cucharadas"},
				{Name: "aceite de oliva", Quantity: 2, Unit: "cucharadas"},
				{Name: "sal y pimienta", Quantity: 1, Unit: "pizca"},
				{Name: "crema para servir (opcional)", Quantity: 2, Unit: "cucharadas"},
			},
			Instructions: []string{
				"Sofríe la cebolla y el ajo en aceite de oliva",
				"Agrega los tomates picados y cocina por 10 minutos",
				"Añade el caldo y hierve por 20 minutos",
				"Licúa la sopa hasta obtener textura suave",
				"Sazona con sal, pimienta y albahaca",
				"Sirve caliente con un toque de crema",
			},
			PrepTime: "10 min",
			CookTime: "30 min",
			Servings: 4,
			Chef:     "Ana López",
		},
		{
			Title:       "Filete a la Parrilla",
			Description: "Jugoso filete de res con vegetales asados",
			Category:    "Carnes",
			Difficulty:  "Media",
			Image:       "https://images.unsplash.com/photo-1504973960431-1c467e159aa4?w=800",
			Ingredients: []models.Ingredient{
				{Name: "filetes de res (200g cada uno)", Quantity: 4, Unit: "unidades"},
				{Name: "pimientos", Quantity: 2, Unit: "unidades"},
				{Name: "calabacines", Quantity: 2, Unit: "unidades"},
				{Name: "aceite de oliva", Quantity: 2, Unit: "cucharadas"},
				{Name: "sal gruesa", Quantity: 1, Unit: "pizca"},
				{Name: "pimienta negra", Quantity: 1, Unit: "pizca"},
				{Name: "romero fresco", Quantity: 1, Unit: "cucharadas"},
				{Name: "mantequilla", Quantity: 50, Unit: "gramos"},
			},
			Instructions: []string{
				"Saca los filetes del refrigerador 30 minutos antes",
				"Sazona los filetes con sal gruesa y pimienta",
				"Calienta la parrilla a fuego alto",
				"Cocina los filetes 4 minutos por lado para término medio",
				"Deja reposar 5 minutos antes de servir",
				"Asa los vegetales cortados hasta que estén tiernos",
			},
			PrepTime: "15 min",
			CookTime: "15 min",
			Servings: 4,
			Chef:     "Roberto Fernández",
		},
	}
}
