package content

const Welcome = `🏙️ Добро пожаловать в бот-гид по Улан-Удэ!

Я расскажу тебе всё о столице солнечной Бурятии:

• 🌤️ Текущая погода и прогноз
• 🏛️ Главные достопримечательности
• 🍽️ Лучшие рестораны и кафе
• 🏨 Где остановиться
• 🛍️ Магазины и ТЦ
• ℹ️ Интересные факты о городе

Выбери, что хочешь узнать!`

const Help = `🏙️ *Бот-гид по Улан-Удэ - Справка*

*Доступные команды:*
/start - Главное меню
/info - Эта справка

*Я могу рассказать о:*
• 🌤️ Текущей погоде в Улан-Удэ
• 📅 Прогнозе погоды на 3 дня
• 🏛️ Главных достопримечательностях
• 🍽️ Лучших ресторанах и кафе
• 🏨 Гостиницах и отелях
• 🛍️ Магазинах и ТЦ
• ℹ️ Интересных фактах о городе

*Просто используй кнопки меню!*`

const OffTopic = `🏙️ Привет! Я бот-гид по Улан-Удэ.

Я специализируюсь только на столице Бурятии. Используй кнопки меню или команду /start чтобы узнать всё об этом замечательном городе!

*Интересные факты об Улан-Удэ:*
• Город основан в 1666 году
• Здесь находится самая большая голова Ленина в мире
• Столица буддизма в России
• Более 260 солнечных дней в году`

const MenuPrompt = "Что ещё хочешь узнать об Улан-Удэ?"

const About = `🏙️ *Улан-Удэ - столица Бурятии*

*Основная информация:*
• 📍 Расположение: Восточная Сибирь, в 100 км от Байкала
• 👥 Население: ~437,000 человек
• 🗓️ Основан: 1666 год
• 🌆 Статус: Столица Республики Бурятия

*Интересные факты:*
• 🗿 Имеет самую большую скульптуру головы Ленина в мире
• 🕌 Крупный центр буддизма в России
• 🌍 Единственный город, где представлены 3 мировые религии: православие, буддизм и ислам
• 🏔️ Расположен в долине рек Селенга и Уда

*Климат:*
• ❄️ Резко континентальный климат
• 🌡️ Средняя температура января: -25°C
• 🌡️ Средняя температура июля: +20°C
• ☀️ Более 260 солнечных дней в году

*Культура:*
• 🎭 Известен Театром оперы и балета
• 🥟 Родина знаменитых бурятских поз (бууз)
• 🎪 Центр бурятской национальной культуры

*Туризм:*
• 🚗 Ворота к озеру Байкал
• 🏕️ Богатая этнографическая культура
• 🍖 Уникальная бурятская кухня
• 🛕 Буддийские дацаны и монастыри`

// Keywords that route free text back to the menu.
var CityKeywords = []string{"улан", "улан-удэ", "уланудэ", "бурятия", "погода"}
