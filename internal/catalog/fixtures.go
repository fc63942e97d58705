package catalog

// Embedded storefront corpus. Loaded once at process start and never
// mutated; the Postgres source in pgsource.go can replace it at boot.

var categories = []Category{
	{
		ID: "drawing", Name: "Рисование", Icon: "pencil",
		Subcategories: []Subcategory{
			{ID: "paints", Name: "Краски"},
			{ID: "pencils", Name: "Карандаши"},
			{ID: "markers", Name: "Маркеры"},
			{ID: "brushes", Name: "Кисти"},
			{ID: "canvas", Name: "Холсты"},
			{ID: "paper", Name: "Бумага"},
		},
	},
	{
		ID: "sewing", Name: "Шитье", Icon: "scissors",
		Subcategories: []Subcategory{
			{ID: "fabrics", Name: "Ткани"},
			{ID: "threads", Name: "Нитки"},
			{ID: "needles", Name: "Иглы"},
			{ID: "accessories", Name: "Аксессуары"},
		},
	},
	{
		ID: "knitting", Name: "Вязание", Icon: "spool",
		Subcategories: []Subcategory{
			{ID: "yarn", Name: "Пряжа"},
			{ID: "hooks", Name: "Крючки"},
			{ID: "needles", Name: "Спицы"},
			{ID: "accessories", Name: "Аксессуары"},
		},
	},
	{
		ID: "scrapbooking", Name: "Скрапбукинг", Icon: "book-open",
		Subcategories: []Subcategory{
			{ID: "paper", Name: "Бумага"},
			{ID: "embellishments", Name: "Украшения"},
			{ID: "tools", Name: "Инструменты"},
			{ID: "albums", Name: "Альбомы"},
		},
	},
	{
		ID: "sculpting", Name: "Лепка", Icon: "hand-metal",
		Subcategories: []Subcategory{
			{ID: "clay", Name: "Глина"},
			{ID: "tools", Name: "Инструменты"},
			{ID: "accessories", Name: "Аксессуары"},
		},
	},
	{
		ID: "decorating", Name: "Декорирование", Icon: "sparkles",
		Subcategories: []Subcategory{
			{ID: "paints", Name: "Краски"},
			{ID: "glitter", Name: "Блестки"},
			{ID: "stickers", Name: "Наклейки"},
			{ID: "ribbons", Name: "Ленты"},
		},
	},
	{
		ID: "kids", Name: "Детское творчество", Icon: "baby",
		Subcategories: []Subcategory{
			{ID: "sets", Name: "Наборы"},
			{ID: "modeling", Name: "Лепка"},
			{ID: "drawing", Name: "Рисование"},
			{ID: "applique", Name: "Аппликация"},
		},
	},
}

var products = []Product{
	{
		ID:          1,
		Name:        `Набор акварельных красок "Сонет", 24 цвета`,
		Price:       1250,
		OldPrice:    1500,
		Description: `Профессиональные акварельные краски "Сонет" в кюветах. Идеально подходят для художников любого уровня. В наборе 24 насыщенных цвета, которые легко смешиваются между собой.`,
		Images:      []string{"/static/products/1/1.webp", "/static/products/1/2.webp"},
		Category:    "drawing",
		Subcategory: "paints",
		Brand:       "Сонет",
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 128,
		Attributes: map[string]any{
			"type":       "Акварель",
			"colorCount": 24,
			"format":     "Кюветы",
			"packaging":  "Металлическая коробка",
			"weight":     250,
		},
		IsPopular: true,
		Discount:  15,
	},
	{
		ID:          2,
		Name:        "Профессиональные цветные карандаши Faber-Castell, 48 цветов",
		Price:       2900,
		OldPrice:    3200,
		Description: "Высококачественные цветные карандаши от немецкого бренда Faber-Castell. Набор из 48 ярких цветов в металлической коробке. Мягкие, но прочные грифели, легко наносятся на бумагу.",
		Images:      []string{"/static/products/2/1.jpg", "/static/products/2/2.jpg"},
		Category:    "drawing",
		Subcategory: "pencils",
		Brand:       "Faber-Castell",
		InStock:     true,
		Rating:      4.9,
		ReviewCount: 203,
		Attributes: map[string]any{
			"type":       "Цветные карандаши",
			"colorCount": 48,
			"hardness":   "Средняя",
			"material":   "Дерево",
			"packaging":  "Металлическая коробка",
		},
		IsPopular: true,
	},
	{
		ID:          3,
		Name:        `Набор акриловых красок "Ладога", 12 цветов`,
		Price:       890,
		Description: `Набор акриловых красок "Ладога" от российского производителя. В набор входит 12 тюбиков по 46 мл. Краски имеют яркие, насыщенные цвета и хорошо ложатся на различные поверхности.`,
		Images:      []string{"/static/products/3/1.jpg"},
		Category:    "drawing",
		Subcategory: "paints",
		Brand:       "Ладога",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 87,
		Attributes: map[string]any{
			"type":       "Акрил",
			"colorCount": 12,
			"volume":     "46 мл",
		},
	},
	{
		ID:          4,
		Name:        "Набор профессиональных кистей для акварели, 7 шт",
		Price:       1350,
		Description: "Набор профессиональных кистей из натурального ворса колонка. Идеально подходит для работы с акварелью, гуашью и тушью. В наборе 7 кистей разных размеров с удобными ручками.",
		Images:      []string{"/static/products/4/1.jpg"},
		Category:    "drawing",
		Subcategory: "brushes",
		Brand:       "Roubloff",
		InStock:     true,
		Rating:      4.8,
		ReviewCount: 64,
		Attributes: map[string]any{
			"material": "Колонок",
			"count":    7,
		},
	},
	{
		ID:          5,
		Name:        `Хлопковая ткань "Цветочные мотивы", 2м`,
		Price:       750,
		Description: "Натуральная хлопковая ткань с ярким цветочным принтом. Идеально подходит для пошива летней одежды, декоративных элементов интерьера и игрушек.",
		Images:      []string{"/static/products/5/1.jpg"},
		Category:    "sewing",
		Subcategory: "fabrics",
		Brand:       "Модные ткани",
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 42,
		Attributes: map[string]any{
			"material": "Хлопок 100%",
			"length":   "2 м",
		},
	},
	{
		ID:          6,
		Name:        `Набор швейных ниток "Радуга", 20 цветов`,
		Price:       520,
		Description: "Набор швейных ниток различных цветов для ручного и машинного шитья. В комплекте 20 катушек разных оттенков. Нитки прочные и не выцветают при стирке.",
		Images:      []string{"/static/products/6/1.jpg"},
		Category:    "sewing",
		Subcategory: "threads",
		Brand:       "Gamma",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 78,
		Attributes: map[string]any{
			"count":    20,
			"material": "Полиэстер",
		},
	},
	{
		ID:          7,
		Name:        `Набор пряжи для вязания "Мериносовая шерсть", 5 мотков`,
		Price:       1800,
		OldPrice:    2100,
		Description: "Мягкая пряжа из мериносовой шерсти высшего качества. Идеально подходит для вязания теплых свитеров, шапок, шарфов и других зимних аксессуаров. В наборе 5 мотков.",
		Images:      []string{"/static/products/7/1.webp"},
		Category:    "knitting",
		Subcategory: "yarn",
		Brand:       "Пехорка",
		InStock:     true,
		Rating:      4.9,
		ReviewCount: 112,
		Attributes: map[string]any{
			"material": "Меринос 100%",
			"count":    5,
		},
		IsPopular: true,
		Discount:  14,
	},
	{
		ID:          8,
		Name:        `Набор полимерной глины "Фимо", 10 цветов`,
		Price:       1200,
		Description: "Набор полимерной глины FIMO от немецкого производителя Staedtler. В комплекте 10 брикетов разных цветов по 57 г. Глина пластичная, легко разминается и хорошо держит форму.",
		Images:      []string{"/static/products/8/1.jpg"},
		Category:    "sculpting",
		Subcategory: "clay",
		Brand:       "FIMO",
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 95,
		Attributes: map[string]any{
			"colorCount": 10,
			"weight":     "57 г/брикет",
		},
		IsNew: true,
	},
	{
		ID:          9,
		Name:        `Набор для скрапбукинга "Винтаж"`,
		Price:       1450,
		Description: "Набор для создания скрапбукинг-альбомов и открыток в винтажном стиле. В комплекте декоративная бумага, высечки, наклейки, чипборд, ленты и кружево.",
		Images:      []string{"/static/products/9/1.jpg"},
		Category:    "scrapbooking",
		Subcategory: "sets",
		Brand:       "ScrapBerry's",
		InStock:     true,
		Rating:      4.8,
		ReviewCount: 67,
		Attributes: map[string]any{
			"style": "Винтаж",
		},
		IsNew: true,
	},
	{
		ID:          10,
		Name:        `Детский набор для творчества "Мир динозавров"`,
		Price:       890,
		OldPrice:    990,
		Description: "Яркий набор для детского творчества на тему динозавров. В комплекте все необходимое для создания аппликаций, рисования и лепки: цветная бумага, картон, пластилин и краски.",
		Images:      []string{"/static/products/10/1.jpg"},
		Category:    "kids",
		Subcategory: "sets",
		Brand:       "Луч",
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 83,
		Attributes: map[string]any{
			"age": "5+",
		},
		Discount: 10,
	},
	{
		ID:          11,
		Name:        "Холст на подрамнике, грунтованный, 40х50 см",
		Price:       580,
		Description: "Готовый грунтованный холст на деревянном подрамнике. Идеально подходит для работы маслом, акрилом и другими художественными красками. Размер 40х50 см, средняя зернистость.",
		Images:      []string{"/static/products/11/1.jpg"},
		Category:    "drawing",
		Subcategory: "canvas",
		Brand:       "Малевичъ",
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 45,
		Attributes: map[string]any{
			"size":     "40х50 см",
			"material": "Хлопок",
		},
	},
	{
		ID:          12,
		Name:        "Набор маркеров для скетчинга, 48 цветов",
		Price:       2950,
		OldPrice:    3300,
		Description: "Профессиональные двусторонние маркеры для скетчинга, иллюстрации и дизайна. В наборе 48 маркеров разных цветов. Спиртовая основа, не размывается водой.",
		Images:      []string{"/static/products/12/1.jpg"},
		Category:    "drawing",
		Subcategory: "markers",
		Brand:       "Touch",
		InStock:     true,
		Rating:      4.9,
		ReviewCount: 132,
		Attributes: map[string]any{
			"colorCount": 48,
			"base":       "Спиртовая",
		},
		IsPopular: true,
		Discount:  10,
	},
	{
		ID:          13,
		Name:        "Набор спиц для вязания, 11 размеров",
		Price:       1200,
		Description: "Полный набор круговых спиц для вязания. В комплекте 11 пар спиц разных размеров от 2,5 мм до 8 мм. Спицы изготовлены из прочного алюминия.",
		Images:      []string{"/static/products/13/1.jpg"},
		Category:    "knitting",
		Subcategory: "needles",
		Brand:       "KnitPro",
		InStock:     true,
		Rating:      4.8,
		ReviewCount: 76,
		Attributes: map[string]any{
			"count":    11,
			"material": "Алюминий",
		},
	},
	{
		ID:          14,
		Name:        `Декоративные ленты "Праздник", набор 10 шт`,
		Price:       650,
		Description: "Набор декоративных атласных лент разных цветов и ширины. Идеально подходит для скрапбукинга, упаковки подарков, шитья и других видов рукоделия.",
		Images:      []string{"/static/products/14/1.jpg"},
		Category:    "decorating",
		Subcategory: "ribbons",
		Brand:       "Gamma",
		InStock:     true,
		Rating:      4.6,
		ReviewCount: 54,
		Attributes: map[string]any{
			"count":    10,
			"material": "Атлас",
		},
	},
	{
		ID:          15,
		Name:        "Набор инструментов для лепки, 14 предметов",
		Price:       780,
		Description: "Профессиональный набор инструментов для работы с глиной, полимерной глиной, пластилином и другими материалами для лепки. В комплекте 14 инструментов разной формы.",
		Images:      []string{"/static/products/15/1.jpg"},
		Category:    "sculpting",
		Subcategory: "tools",
		Brand:       "Fimo",
		InStock:     true,
		Rating:      4.7,
		ReviewCount: 38,
		Attributes: map[string]any{
			"count": 14,
		},
	},
	{
		ID:          16,
		Name:        "Набор декоративных блесток, 24 цвета",
		Price:       550,
		Description: "Набор мелких декоративных блесток разных цветов для скрапбукинга, декорирования, изготовления открыток и других творческих проектов. В комплекте 24 баночки.",
		Images:      []string{"/static/products/16/1.webp"},
		Category:    "decorating",
		Subcategory: "glitter",
		Brand:       "Craft&Clay",
		InStock:     true,
		Rating:      4.5,
		ReviewCount: 63,
		Attributes: map[string]any{
			"count":  24,
			"type":   "Мелкие блестки",
			"volume": "5 мл/баночка",
		},
		IsNew: true,
	},
}
