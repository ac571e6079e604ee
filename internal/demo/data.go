package demo

// Genres is the fixed genre vocabulary used for users and books.
var Genres = []string{
	"Фантастика",
	"Фэнтези",
	"Детектив",
	"Роман",
	"Проза",
	"Научно-популярная",
	"История",
	"Приключения",
	"Ужасы",
	"Биография",
	"Психология",
	"Бизнес",
	"Научная фантастика",
	"Драма",
	"Комедия",
	"Триллер",
	"Исторический роман",
	"Поэзия",
	"Классика",
	"Современная литература",
}

// Duplicates are part of the data set.
var bookCovers = []string{
	"https://images.pexels.com/photos/5834/nature-grass-leaf-green.jpg",
	"https://images.pexels.com/photos/3747165/pexels-photo-3747165.jpeg",
	"https://images.pexels.com/photos/4065891/pexels-photo-4065891.jpeg",
	"https://images.pexels.com/photos/2228559/pexels-photo-2228559.jpeg",
	"https://images.pexels.com/photos/6373307/pexels-photo-6373307.jpeg",
	"https://images.pexels.com/photos/5834/nature-grass-leaf-green.jpg",
	"https://images.pexels.com/photos/1765033/pexels-photo-1765033.jpeg",
	"https://images.pexels.com/photos/1831744/pexels-photo-1831744.jpeg",
	"https://images.pexels.com/photos/1072179/pexels-photo-1072179.jpeg",
	"https://images.pexels.com/photos/1666816/pexels-photo-1666816.jpeg",
	"https://images.pexels.com/photos/2097616/pexels-photo-2097616.jpeg",
	"https://images.pexels.com/photos/736843/pexels-photo-736843.jpeg",
	"https://images.pexels.com/photos/1831744/pexels-photo-1831744.jpeg",
	"https://images.pexels.com/photos/1122650/pexels-photo-1122650.jpeg",
	"https://images.pexels.com/photos/3747479/pexels-photo-3747479.jpeg",
	"https://images.pexels.com/photos/3747480/pexels-photo-3747480.jpeg",
	"https://images.pexels.com/photos/7129701/pexels-photo-7129701.jpeg",
	"https://images.pexels.com/photos/5273634/pexels-photo-5273634.jpeg",
	"https://images.pexels.com/photos/19256460/pexels-photo-19256460/free-photo-of-abstract-painting.jpeg",
	"https://images.pexels.com/photos/3747477/pexels-photo-3747477.jpeg",
}

var bookTitles = []string{
	"Тайна забытого города",
	"Лунный свет",
	"Шепот звёзд",
	"Дороги судьбы",
	"Расколотое небо",
	"Хранители времени",
	"Алые паруса надежды",
	"Тень прошлого",
	"Загадка семи ключей",
	"Пепел империи",
	"Морской волк",
	"Голос в темноте",
	"Северное сияние",
	"Зеркальный лабиринт",
	"Вечность в одном мгновении",
	"Серебряная нить",
	"Жемчужина в песке",
	"Последнее королевство",
	"Дневник путешественника",
	"Эхо забытых слов",
	"Хроники будущего",
	"Затерянный мир",
	"Песнь ветра",
	"Тайны старого замка",
	"Золотой компас",
	"Время мечтать",
	"Сердце океана",
	"Путь героя",
	"Магия звёзд",
	"Легенды древних",
}

var authors = []string{
	"Анна Петрова",
	"Сергей Иванов",
	"Мария Соколова",
	"Александр Волков",
	"Екатерина Смирнова",
	"Павел Николаев",
	"Татьяна Морозова",
	"Михаил Кузнецов",
	"Ольга Васильева",
	"Дмитрий Новиков",
	"Елена Морозова",
	"Игорь Соловьев",
	"Наталья Королева",
	"Андрей Белов",
	"Светлана Орлова",
}

const loremText = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. " +
	"Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris nisi ut aliquip ex ea commodo consequat. " +
	"Duis aute irure dolor in reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla pariatur. " +
	"Excepteur sint occaecat cupidatat non proident, sunt in culpa qui officia deserunt mollit anim id est laborum. " +
	"Sed ut perspiciatis unde omnis iste natus error sit voluptatem accusantium doloremque laudantium, totam rem aperiam, " +
	"eaque ipsa quae ab illo inventore veritatis et quasi architecto beatae vitae dicta sunt explicabo. " +
	"Nemo enim ipsam voluptatem quia voluptas sit aspernatur aut odit aut fugit, sed quia consequuntur magni dolores eos qui " +
	"ratione voluptatem sequi nesciunt. Neque porro quisquam est, qui dolorem ipsum quia dolor sit amet, consectetur, adipisci velit, " +
	"sed quia non numquam eius modi tempora incidunt ut labore et dolore magnam aliquam quaerat voluptatem. " +
	"Ut enim ad minima veniam, quis nostrum exercitationem ullam corporis suscipit laboriosam, nisi ut aliquid ex ea commodi consequatur? " +
	"Quis autem vel eum iure reprehenderit qui in ea voluptate velit esse quam nihil molestiae consequatur, " +
	"vel illum qui dolorem eum fugiat quo voluptas nulla pariatur?"

type commenter struct {
	id   int
	name string
}

var commenters = []commenter{
	{id: 1, name: "Администратор"},
	{id: 2, name: "Анна Смирнова"},
	{id: 3, name: "Иван Петров"},
}
