package plpl

var femaleFirstNames = []string{
	"Anna", "Maria", "Katarzyna", "Małgorzata", "Agnieszka", "Barbara", "Ewa", "Krystyna",
	"Elżbieta", "Zofia", "Joanna", "Teresa", "Magdalena", "Monika", "Danuta", "Jadwiga",
	"Aleksandra", "Natalia", "Irena", "Beata", "Dorota", "Halina", "Karolina", "Janina",
	"Marta", "Julia", "Alicja", "Jolanta", "Grażyna", "Iwona", "Paulina", "Justyna",
	"Bożena", "Urszula", "Renata", "Sylwia", "Agata", "Hanna", "Wiktoria", "Helena",
	"Patrycja", "Izabela", "Emilia", "Weronika", "Anita", "Lena", "Oliwia", "Zuzanna",
	"Gabriela", "Kinga",
}

var maleFirstNames = []string{
	"Piotr", "Krzysztof", "Andrzej", "Tomasz", "Paweł", "Jan", "Michał", "Marcin",
	"Stanisław", "Jakub", "Adam", "Marek", "Łukasz", "Grzegorz", "Mateusz", "Wojciech",
	"Mariusz", "Dariusz", "Zbigniew", "Jerzy", "Maciej", "Józef", "Ryszard", "Tadeusz",
	"Dawid", "Kamil", "Robert", "Rafał", "Jacek", "Kacper", "Bartosz", "Szymon",
	"Sebastian", "Janusz", "Kazimierz", "Filip", "Mikołaj", "Przemysław", "Artur", "Daniel",
	"Wiktor", "Antoni", "Igor", "Hubert", "Oskar", "Karol", "Patryk", "Damian",
	"Henryk", "Wiesław",
}

// lastNames は男性形と女性形の組です。
var lastNames = []struct {
	male   string
	female string
}{
	{"Nowak", "Nowak"}, {"Kowalski", "Kowalska"}, {"Wiśniewski", "Wiśniewska"},
	{"Wójcik", "Wójcik"}, {"Kowalczyk", "Kowalczyk"}, {"Kamiński", "Kamińska"},
	{"Lewandowski", "Lewandowska"}, {"Zieliński", "Zielińska"}, {"Szymański", "Szymańska"},
	{"Woźniak", "Woźniak"}, {"Dąbrowski", "Dąbrowska"}, {"Kozłowski", "Kozłowska"},
	{"Jankowski", "Jankowska"}, {"Mazur", "Mazur"}, {"Wojciechowski", "Wojciechowska"},
	{"Kwiatkowski", "Kwiatkowska"}, {"Krawczyk", "Krawczyk"}, {"Kaczmarek", "Kaczmarek"},
	{"Piotrowski", "Piotrowska"}, {"Grabowski", "Grabowska"}, {"Zając", "Zając"},
	{"Pawłowski", "Pawłowska"}, {"Michalski", "Michalska"}, {"Król", "Król"},
	{"Wieczorek", "Wieczorek"}, {"Jabłoński", "Jabłońska"}, {"Wróbel", "Wróbel"},
	{"Nowakowski", "Nowakowska"}, {"Majewski", "Majewska"}, {"Olszewski", "Olszewska"},
	{"Stępień", "Stępień"}, {"Malinowski", "Malinowska"}, {"Jaworski", "Jaworska"},
	{"Adamczyk", "Adamczyk"}, {"Dudek", "Dudek"}, {"Nowicki", "Nowicka"},
	{"Pawlak", "Pawlak"}, {"Górski", "Górska"}, {"Witkowski", "Witkowska"},
	{"Walczak", "Walczak"}, {"Sikora", "Sikora"}, {"Baran", "Baran"},
	{"Rutkowski", "Rutkowska"}, {"Michalak", "Michalak"}, {"Szewczyk", "Szewczyk"},
	{"Ostrowski", "Ostrowska"}, {"Tomaszewski", "Tomaszewska"}, {"Pietrzak", "Pietrzak"},
	{"Marciniak", "Marciniak"}, {"Wróblewski", "Wróblewska"},
}

var cities = []string{
	"Warszawa", "Kraków", "Łódź", "Wrocław", "Poznań", "Gdańsk", "Szczecin", "Bydgoszcz",
	"Lublin", "Białystok", "Katowice", "Gdynia", "Częstochowa", "Radom", "Toruń", "Sosnowiec",
	"Rzeszów", "Kielce", "Gliwice", "Olsztyn", "Zabrze", "Bielsko-Biała", "Bytom", "Zielona Góra",
	"Rybnik", "Ruda Śląska", "Opole", "Tychy", "Gorzów Wielkopolski", "Elbląg", "Płock", "Wałbrzych",
	"Włocławek", "Tarnów", "Chorzów", "Koszalin", "Kalisz", "Legnica", "Grudziądz", "Jaworzno",
}

var streetPrefixes = []string{"ul.", "al.", "pl.", "os."}

var streetNames = []string{
	"Polna", "Leśna", "Słoneczna", "Krótka", "Szkolna", "Ogrodowa", "Lipowa", "Brzozowa",
	"Łąkowa", "Kwiatowa", "Sosnowa", "Kościelna", "Akacjowa", "Parkowa", "Zielona", "Kolejowa",
	"Sportowa", "Dębowa", "Kasztanowa", "Spacerowa", "Mickiewicza", "Kopernika", "Słowackiego",
	"Sienkiewicza", "Piłsudskiego", "Kościuszki", "Chopina", "Wyszyńskiego", "Reymonta", "Żeromskiego",
	"Konopnickiej", "Prusa", "Matejki", "Orzeszkowej", "Jana Pawła II", "Długa", "Wiejska",
	"Graniczna", "Topolowa", "Klonowa",
}

var countries = []string{
	"Polska", "Niemcy", "Czechy", "Słowacja", "Litwa", "Ukraina", "Białoruś", "Francja",
	"Hiszpania", "Portugalia", "Włochy", "Austria", "Szwajcaria", "Holandia", "Belgia", "Dania",
	"Szwecja", "Norwegia", "Finlandia", "Estonia", "Łotwa", "Węgry", "Rumunia", "Bułgaria",
	"Grecja", "Chorwacja", "Słowenia", "Irlandia", "Wielka Brytania", "Islandia", "Kanada",
	"Stany Zjednoczone", "Meksyk", "Brazylia", "Argentyna", "Chile", "Japonia", "Chiny",
	"Indie", "Australia", "Nowa Zelandia", "Egipt", "Maroko", "Kenia", "Turcja", "Gruzja",
}

var jobs = []string{
	"Księgowy", "Kierownik projektu", "Programista", "Analityk danych", "Specjalista ds. kadr",
	"Handlowiec", "Magazynier", "Kierowca", "Inżynier budowy", "Architekt", "Lekarz", "Pielęgniarka",
	"Nauczyciel", "Farmaceuta", "Elektryk", "Hydraulik", "Mechanik samochodowy", "Kucharz",
	"Kelner", "Recepcjonista", "Asystent biura", "Specjalista ds. marketingu", "Grafik",
	"Tester oprogramowania", "Administrator systemów", "Doradca klienta", "Prawnik", "Radca prawny",
	"Logistyk", "Technik laboratorium", "Operator maszyn", "Spawacz", "Stolarz", "Ogrodnik",
	"Fizjoterapeuta", "Dietetyk", "Tłumacz", "Dziennikarz", "Kontroler jakości", "Audytor",
}

var emailDomains = []string{
	"wp.pl", "onet.pl", "interia.pl", "o2.pl", "gmail.com", "op.pl", "gazeta.pl", "tlen.pl",
}

// emailWords は e-mail とログインのローカル部に使う語です。
var emailWords = []string{
	"kot", "pies", "lis", "wilk", "sowa", "jez", "bober", "orzel", "sokol", "kruk",
	"dab", "buk", "lipa", "sosna", "brzoza", "klon", "jodla", "wierzba", "modrzew", "olcha",
	"rzeka", "gora", "morze", "las", "pole", "laka", "jezioro", "zatoka", "wyspa", "dolina",
	"slonce", "ksiezyc", "gwiazda", "chmura", "deszcz", "wiatr", "burza", "mgla", "snieg", "tecza",
}
