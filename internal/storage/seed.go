package storage

import "quickbite/internal/domain"

// DefaultCatalog returns the built-in reference dataset. A real deployment
// would replace this seed with a fetch from a backend service.
func DefaultCatalog() *Catalog {
	return NewCatalog(seedRestaurants, seedCategories, seedDishes, seedAddresses, seedPaymentMethods)
}

var seedCategories = []domain.Category{
	{ID: "1", Name: "Пицца", Emoji: "🍕"},
	{ID: "2", Name: "Бургеры", Emoji: "🍔"},
	{ID: "3", Name: "Суши", Emoji: "🍣"},
	{ID: "4", Name: "Паста", Emoji: "🍝"},
	{ID: "5", Name: "Десерты", Emoji: "🍰"},
	{ID: "6", Name: "Напитки", Emoji: "🥤"},
	{ID: "7", Name: "Салаты", Emoji: "🥗"},
	{ID: "8", Name: "Супы", Emoji: "🍲"},
}

var seedRestaurants = []domain.Restaurant{
	{
		ID:           "1",
		Name:         "Bella Italia",
		Image:        "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=800",
		Rating:       4.8,
		DeliveryTime: "25-35 мин",
		DeliveryFee:  150,
		MinOrder:     500,
		CuisineType:  []string{"Итальянская", "Пицца", "Паста"},
		Promoted:     true,
		Promo:        &domain.RestaurantPromo{Code: "ITALY20", Discount: 20},
	},
	{
		ID:           "2",
		Name:         "Sushi Master",
		Image:        "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=800",
		Rating:       4.9,
		DeliveryTime: "30-40 мин",
		DeliveryFee:  200,
		MinOrder:     800,
		CuisineType:  []string{"Японская", "Суши"},
		Promoted:     true,
	},
	{
		ID:           "3",
		Name:         "Burger House",
		Image:        "https://images.unsplash.com/photo-1550547660-d9450f859349?w=800",
		Rating:       4.7,
		DeliveryTime: "20-30 мин",
		DeliveryFee:  100,
		MinOrder:     400,
		CuisineType:  []string{"Американская", "Бургеры"},
		Promo:        &domain.RestaurantPromo{Code: "BURGER15", Discount: 15},
	},
	{
		ID:           "4",
		Name:         "Green Garden",
		Image:        "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?w=800",
		Rating:       4.6,
		DeliveryTime: "15-25 мин",
		DeliveryFee:  120,
		MinOrder:     350,
		CuisineType:  []string{"Здоровое питание", "Салаты"},
	},
}

var pizzaSizes = []domain.DishSize{
	{ID: "s1", Name: "Маленькая 25см", Price: 0},
	{ID: "s2", Name: "Средняя 30см", Price: 200},
	{ID: "s3", Name: "Большая 35см", Price: 350},
}

var seedDishes = []domain.Dish{
	{
		ID:           "1",
		RestaurantID: "1",
		Name:         "Маргарита",
		Description:  "Классическая пицца с томатами и моцареллой",
		Ingredients:  "Томаты, моцарелла, базилик, оливковое масло",
		Image:        "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=800",
		Price:        550,
		Category:     "Пицца",
		Popular:      true,
		Sizes:        pizzaSizes,
		Options: []domain.DishOption{
			{ID: "o1", Name: "Дополнительный сыр", Price: 100},
			{ID: "o2", Name: "Грибы", Price: 80},
			{ID: "o3", Name: "Оливки", Price: 70},
		},
	},
	{
		ID:           "2",
		RestaurantID: "1",
		Name:         "Пепперони",
		Description:  "Острая пицца с колбасой пепперони",
		Ingredients:  "Колбаса пепперони, моцарелла, томатный соус, орегано",
		Image:        "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=800",
		Price:        650,
		Category:     "Пицца",
		Popular:      true,
		Sizes:        pizzaSizes,
	},
	{
		ID:           "3",
		RestaurantID: "1",
		Name:         "Карбонара",
		Description:  "Классическая паста с беконом и сливочным соусом",
		Ingredients:  "Спагетти, бекон, яйцо, пармезан, сливки",
		Image:        "https://images.unsplash.com/photo-1612874742237-6526221588e3?w=800",
		Price:        480,
		Category:     "Паста",
		Popular:      true,
	},
	{
		ID:           "4",
		RestaurantID: "1",
		Name:         "Капрезе",
		Description:  "Свежий салат с томатами и моцареллой",
		Ingredients:  "Томаты, моцарелла, базилик, бальзамический уксус",
		Image:        "https://images.unsplash.com/photo-1592417817098-8fd3d9eb14a5?w=800",
		Price:        380,
		Category:     "Салаты",
	},
	{
		ID:           "5",
		RestaurantID: "1",
		Name:         "Тирамису",
		Description:  "Классический итальянский десерт",
		Ingredients:  "Маскарпоне, кофе, савоярди, какао",
		Image:        "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=800",
		Price:        320,
		Category:     "Десерты",
	},
	{
		ID:           "6",
		RestaurantID: "2",
		Name:         "Филадельфия",
		Description:  "Ролл с лососем и сливочным сыром",
		Ingredients:  "Лосось, сливочный сыр, огурец, рис, нори",
		Image:        "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=800",
		Price:        480,
		Category:     "Роллы",
		Popular:      true,
	},
	{
		ID:           "7",
		RestaurantID: "2",
		Name:         "Калифорния",
		Description:  "Классический ролл с крабом и авокадо",
		Ingredients:  "Краб, авокадо, огурец, икра тобико, рис",
		Image:        "https://images.unsplash.com/photo-1617196034796-73dfa7b1fd56?w=800",
		Price:        420,
		Category:     "Роллы",
	},
	{
		ID:           "8",
		RestaurantID: "2",
		Name:         "Сет \"Ассорти\"",
		Description:  "Набор из популярных роллов",
		Ingredients:  "32 шт: Филадельфия, Калифорния, Унаги",
		Image:        "https://images.unsplash.com/photo-1611143669185-af224c5e3252?w=800",
		Price:        1450,
		Category:     "Сеты",
		Popular:      true,
	},
}

var seedAddresses = []domain.Address{
	{
		ID:           "a1",
		Label:        "Дом",
		Street:       "ул. Ленина",
		Building:     "25",
		Apartment:    "42",
		Floor:        "5",
		Instructions: "Домофон работает, позвоните за 5 минут",
	},
	{
		ID:           "a2",
		Label:        "Работа",
		Street:       "пр. Мира",
		Building:     "100",
		Apartment:    "офис 305",
		Floor:        "3",
		Instructions: "Вход со двора, синяя дверь",
	},
}

var seedPaymentMethods = []domain.PaymentMethod{
	{ID: "p1", Type: "card", Label: "Карта **** 4242", Last4: "4242", Icon: "💳"},
	{ID: "p2", Type: "cash", Label: "Наличные", Icon: "💵"},
	{ID: "p3", Type: "apple_pay", Label: "Apple Pay", Icon: ""},
}
