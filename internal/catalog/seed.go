package catalog

import "pygextintores/internal/domain"

func stockOf(n int) *int { return &n }

// Seed returns the bundled catalog used whenever no persisted product list
// exists. Prices are whole Chilean pesos.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID: "1", Slug: "extintor-abc-1kg-premium", Name: "Extintor ABC 1kg Premium",
			Price: 34990, Type: "ABC", Capacity: "1kg", Stock: stockOf(18),
			ShortDesc: "Ideal para cocinas y espacios compactos con certificación vigente.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "Polvo químico seco ABC"},
				{Label: "Alcance", Value: "2-3 metros"},
				{Label: "Certificación", Value: "ISO 9001 / NCh"},
				{Label: "Recarga", Value: "Incluida por 1 año"},
			},
		},
		{
			ID: "2", Slug: "extintor-abc-2kg-pro", Name: "Extintor ABC 2kg Pro",
			Price: 45990, Type: "ABC", Capacity: "2kg", Stock: stockOf(10),
			ShortDesc: "Respuesta rápida para oficinas, vehículos y bodegas pequeñas.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "Polvo químico seco ABC"},
				{Label: "Alcance", Value: "3-4 metros"},
				{Label: "Presión", Value: "15 bar"},
				{Label: "Garantía", Value: "12 meses"},
			},
		},
		{
			ID: "3", Slug: "extintor-abc-6kg-industrial", Name: "Extintor ABC 6kg Industrial",
			Price: 78990, Type: "ABC", Capacity: "6kg", Stock: stockOf(7),
			ShortDesc: "Cobertura avanzada para plantas y áreas industriales.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "PQS multipropósito"},
				{Label: "Descarga", Value: "18 segundos"},
				{Label: "Presión", Value: "18 bar"},
				{Label: "Incluye", Value: "Soporte de pared"},
			},
		},
		{
			ID: "4", Slug: "extintor-co2-2kg-elite", Name: "Extintor CO2 2kg Elite",
			Price: 99990, Type: "CO2", Capacity: "2kg", Stock: stockOf(5),
			ShortDesc: "Recomendado para salas eléctricas y equipos sensibles.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "CO2 limpio"},
				{Label: "Uso", Value: "Equipos eléctricos"},
				{Label: "Boquilla", Value: "Difusor antiestático"},
				{Label: "Certificación", Value: "NCh 2056"},
			},
		},
		{
			ID: "5", Slug: "extintor-co2-5kg-corporativo", Name: "Extintor CO2 5kg Corporativo",
			Price: 159990, Type: "CO2", Capacity: "5kg", Stock: stockOf(4),
			ShortDesc: "Diseñado para data centers y áreas críticas.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "CO2 limpio"},
				{Label: "Descarga", Value: "25 segundos"},
				{Label: "Aplicación", Value: "Sala técnica"},
				{Label: "Incluye", Value: "Soporte metálico premium"},
			},
		},
		{
			ID: "6", Slug: "kit-accesorios-premium", Name: "Kit Accesorios Premium",
			Price: 24990, Type: "ABC", Capacity: "Accesorios", Stock: stockOf(22),
			ShortDesc: "Soporte, señalética y checklist de inspección incluidos.",
			Specs: []domain.ProductSpec{
				{Label: "Contenido", Value: "Soporte + señalética + manual"},
				{Label: "Uso", Value: "Todo tipo de extintores"},
				{Label: "Material", Value: "Acero tratado"},
				{Label: "Garantía", Value: "6 meses"},
			},
		},
		{
			ID: "7", Slug: "extintor-abc-4kg-residencial", Name: "Extintor ABC 4kg Residencial",
			Price: 62990, Type: "ABC", Capacity: "4kg", Stock: stockOf(12),
			ShortDesc: "Balance perfecto entre cobertura y facilidad de uso.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "PQS multipropósito"},
				{Label: "Alcance", Value: "4-5 metros"},
				{Label: "Uso", Value: "Hogar y comercio"},
				{Label: "Incluye", Value: "Soporte premium"},
			},
		},
		{
			ID: "8", Slug: "extintor-co2-10kg-industrial", Name: "Extintor CO2 10kg Industrial",
			Price: 249990, Type: "CO2", Capacity: "10kg", Stock: stockOf(2),
			ShortDesc: "Potencia máxima para industrias y bodegas de alto riesgo.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "CO2 limpio"},
				{Label: "Aplicación", Value: "Industrias y bodegas"},
				{Label: "Cilindro", Value: "Acero reforzado"},
				{Label: "Certificación", Value: "NCh 1430"},
			},
		},
		{
			ID: "9", Slug: "senaletica-premium-pack", Name: "Pack Señalética Premium",
			Price: 18990, Type: "ABC", Capacity: "Señalética", Stock: stockOf(30),
			ShortDesc: "Pack de señaléticas fotoluminiscentes para rutas de evacuación.",
			Specs: []domain.ProductSpec{
				{Label: "Material", Value: "PVC fotoluminiscente"},
				{Label: "Uso", Value: "Interior/Exterior"},
				{Label: "Incluye", Value: "6 señales clave"},
				{Label: "Norma", Value: "NCh 2114"},
			},
		},
		{
			ID: "10", Slug: "extintor-abc-9kg-comercial", Name: "Extintor ABC 9kg Comercial",
			Price: 109990, Type: "ABC", Capacity: "9kg", Stock: stockOf(6),
			ShortDesc: "Cobertura extendida para supermercados y comercios amplios.",
			Specs: []domain.ProductSpec{
				{Label: "Agente", Value: "PQS multipropósito"},
				{Label: "Descarga", Value: "20 segundos"},
				{Label: "Certificación", Value: "NCh 1431"},
				{Label: "Incluye", Value: "Soporte y sello de seguridad"},
			},
		},
	}
}
