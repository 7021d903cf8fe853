package content

type Attraction struct {
	Name        string
	Description string
	Address     string
	Emoji       string
}

type Restaurant struct {
	Name      string
	Cuisine   string
	Address   string
	Specialty string
	Emoji     string
}

type Hotel struct {
	Name     string
	Stars    string
	Address  string
	Features string
	Price    string
	Emoji    string
}

type Shop struct {
	Name     string
	Kind     string
	Address  string
	Features string
	Emoji    string
}

var Attractions = []Attraction{
	{
		Name:        "Памятник Ленину (Голова Ленина)",
		Description: "Самая большая голова Ленина в мире - визитная карточка города",
		Address:     "пл. Советов",
		Emoji:       "🗿",
	},
	{
		Name:        "Этнографический музей народов Забайкалья",
		Description: "Музей под открытым небом с традиционными бурятскими жилищами",
		Address:     "пос. Верхняя Берёзовка, 17Б",
		Emoji:       "🏕️",
	},
	{
		Name:        "Иволгинский дацан",
		Description: "Центр буддизма в России, резиденция Пандито Хамбо-ламы",
		Address:     "с. Верхняя Иволга (40 км от города)",
		Emoji:       "🕌",
	},
	{
		Name:        "Театр оперы и балета",
		Description: "Красивейшее здание в национальном стиле",
		Address:     "ул. Ленина, 51",
		Emoji:       "🎭",
	},
	{
		Name:        "Площадь Революции",
		Description: "Исторический центр города с фонтанами и сквером",
		Address:     "пл. Революции",
		Emoji:       "🏛️",
	},
	{
		Name:        "Свято-Одигитриевский собор",
		Description: "Первый каменный храм в Забайкалье",
		Address:     "ул. Ленина, 2",
		Emoji:       "⛪",
	},
}

var Restaurants = []Restaurant{
	{
		Name:      `Ресторан "Бурятия"`,
		Cuisine:   "Бурятская, русская",
		Address:   "ул. Ербанова, 7",
		Specialty: "Позы, буузы, бухлер",
		Emoji:     "🍖",
	},
	{
		Name:      `Кафе "Баатар"`,
		Cuisine:   "Бурятская, азиатская",
		Address:   "пр. 50-летия Октября, 33",
		Specialty: "Традиционные бурятские блюда",
		Emoji:     "🥟",
	},
	{
		Name:      `Ресторан "Медведь"`,
		Cuisine:   "Европейская, русская",
		Address:   "ул. Ленина, 46",
		Specialty: "Блюда из дичи и рыбы Байкала",
		Emoji:     "🐟",
	},
	{
		Name:      `Чайная "Юрта"`,
		Cuisine:   "Бурятская, чайная церемония",
		Address:   "ул. Борсоева, 15",
		Specialty: "Бурятский чай с молоком",
		Emoji:     "🍵",
	},
	{
		Name:      `Ресторан "Саган Морин"`,
		Cuisine:   "Бурятская, монгольская",
		Address:   "ул. Революции 1905 года, 44",
		Specialty: "Блюда в аутентичной атмосфере",
		Emoji:     "🏇",
	},
}

var Hotels = []Hotel{
	{
		Name:     `Гостиница "Бурятия"`,
		Stars:    "⭐⭐⭐⭐",
		Address:  "ул. Ербанова, 12",
		Features: "Бассейн, ресторан, Wi-Fi",
		Price:    "от 3500 руб/ночь",
		Emoji:    "🏨",
	},
	{
		Name:     `Отель "Мэрген"`,
		Stars:    "⭐⭐⭐",
		Address:  "ул. Гагарина, 25",
		Features: "SPA, парковка, завтрак включен",
		Price:    "от 2800 руб/ночь",
		Emoji:    "🛌",
	},
	{
		Name:     `Гостиница "Сагаан Морин"`,
		Stars:    "⭐⭐⭐⭐",
		Address:  "ул. Борсоева, 18",
		Features: "Бизнес-центр, конференц-зал",
		Price:    "от 3200 руб/ночь",
		Emoji:    "💼",
	},
	{
		Name:     `Мини-отель "Байкал Плаза"`,
		Stars:    "⭐⭐⭐",
		Address:  "пр. 50-летия Октября, 29",
		Features: "Центр города, вид на город",
		Price:    "от 2200 руб/ночь",
		Emoji:    "🌆",
	},
}

var Shops = []Shop{
	{
		Name:     `ТЦ "Форум"`,
		Kind:     "Крупнейший торговый центр",
		Address:  "ул. Ербанова, 3",
		Features: "200+ магазинов, фудкорт, кинотеатр",
		Emoji:    "🏬",
	},
	{
		Name:     `ТРЦ "Пионер"`,
		Kind:     "Торгово-развлекательный центр",
		Address:  "ул. Революции 1905 года, 33",
		Features: "Магазины, кафе, развлечения",
		Emoji:    "🎯",
	},
	{
		Name:     `Рынок "Центральный"`,
		Kind:     "Продуктовый рынок",
		Address:  "ул. Каландаришвили, 39",
		Features: "Свежие продукты, сувениры",
		Emoji:    "🛒",
	},
	{
		Name:     `Сувенирная лавка "Байкальские дары"`,
		Kind:     "Сувениры",
		Address:  "ул. Ленина, 27",
		Features: "Бурятские сувениры, чай, кедровые орехи",
		Emoji:    "🎁",
	},
}
