package catalog

// City is a top-level node in the three-level location table
// (city → district → neighborhood) used by real-estate listings.
type City struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Districts []District `json:"districts"`
}

// District is the middle level; its neighborhoods are plain display strings.
type District struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Neighborhoods []string `json:"neighborhoods"`
}

// Cities is the static location reference table. Order is the display order.
var Cities = []City{
	{
		ID:   "istanbul",
		Name: "İstanbul",
		Districts: []District{
			{ID: "kadikoy", Name: "Kadıköy", Neighborhoods: []string{
				"Acıbadem", "Bostancı", "Caddebostan", "Erenköy", "Fenerbahçe",
				"Göztepe", "Kozyatağı", "Moda", "Suadiye", "Feneryolu",
			}},
			{ID: "besiktas", Name: "Beşiktaş", Neighborhoods: []string{
				"Arnavutköy", "Bebek", "Etiler", "Levent", "Nişantaşı", "Ortaköy", "Ulus", "Yıldız",
			}},
			{ID: "sisli", Name: "Şişli", Neighborhoods: []string{
				"Bomonti", "Esentepe", "Fulya", "Gayrettepe", "Mecidiyeköy", "Osmanbey", "Şişli Merkez",
			}},
			{ID: "uskudar", Name: "Üsküdar", Neighborhoods: []string{
				"Acıbadem", "Altunizade", "Beylerbeyi", "Çengelköy", "Kısıklı", "Kuzguncuk", "Validebağ",
			}},
			{ID: "bakirkoy", Name: "Bakırköy", Neighborhoods: []string{
				"Ataköy", "Bahçelievler", "Florya", "Yeşilköy", "Yeşilyurt",
			}},
			{ID: "sariyer", Name: "Sarıyer", Neighborhoods: []string{
				"Emirgan", "İstinye", "Rumeli Kavağı", "Tarabya", "Yeniköy", "Zekeriyaköy",
			}},
			{ID: "maltepe", Name: "Maltepe", Neighborhoods: []string{
				"Altayçeşme", "Bağlarbaşı", "Cevizli", "Fındıklı", "İdealtepe",
			}},
			{ID: "kartal", Name: "Kartal", Neighborhoods: []string{
				"Cevizli", "Esentepe", "Kordonboyu", "Soğanlık", "Yakacık",
			}},
		},
	},
	{
		ID:   "ankara",
		Name: "Ankara",
		Districts: []District{
			{ID: "cankaya", Name: "Çankaya", Neighborhoods: []string{
				"Bahçelievler", "Balgat", "Çayyolu", "Kavaklıdere", "Kızılay", "Oran", "Ümitköy",
			}},
			{ID: "kecioren", Name: "Keçiören", Neighborhoods: []string{
				"Aktepe", "Bağlum", "Etlik", "Kalaba", "Ovacık",
			}},
			{ID: "yenimahalle", Name: "Yenimahalle", Neighborhoods: []string{
				"Batıkent", "Demetevler", "Ergazi", "Ostim", "Şentepe",
			}},
			{ID: "mamak", Name: "Mamak", Neighborhoods: []string{
				"Akdere", "Ege", "Şafak", "Tuzluçayır",
			}},
			{ID: "etimesgut", Name: "Etimesgut", Neighborhoods: []string{
				"Eryaman", "Güzelkent", "Şehit Osman Avcı", "Tunahan",
			}},
		},
	},
	{
		ID:   "izmir",
		Name: "İzmir",
		Districts: []District{
			{ID: "konak", Name: "Konak", Neighborhoods: []string{
				"Alsancak", "Basmane", "Göztepe", "Hatay", "Kahramanlar", "Konak Merkez",
			}},
			{ID: "bornova", Name: "Bornova", Neighborhoods: []string{
				"Erzene", "Evka", "Kazımdirik", "Merkez", "Yamanlar",
			}},
			{ID: "karsiyaka", Name: "Karşıyaka", Neighborhoods: []string{
				"Bostanlı", "Çarşı", "Mavişehir", "Nergiz", "Yamanlar",
			}},
			{ID: "buca", Name: "Buca", Neighborhoods: []string{
				"Adatepe", "Kozağaç", "Kuruçeşme", "Merkez", "Yaylacık",
			}},
			{ID: "balcova", Name: "Balçova", Neighborhoods: []string{
				"Ege Mahallesi", "Onur Mahallesi", "Teleferik", "Yeşiltepe",
			}},
		},
	},
	{
		ID:   "antalya",
		Name: "Antalya",
		Districts: []District{
			{ID: "muratpasa", Name: "Muratpaşa", Neighborhoods: []string{
				"Fener", "Güzeloba", "Kılınçarslan", "Lara", "Meltem", "Sinan",
			}},
			{ID: "kepez", Name: "Kepez", Neighborhoods: []string{
				"Düden", "Emek", "Gündoğdu", "Kepez Merkez", "Varsak",
			}},
			{ID: "konyaalti", Name: "Konyaaltı", Neighborhoods: []string{
				"Arapsuyu", "Hurma", "Liman", "Sarısu", "Uncalı",
			}},
			{ID: "alanya", Name: "Alanya", Neighborhoods: []string{
				"Cikcilli", "Mahmutlar", "Oba", "Saray", "Tosmur",
			}},
		},
	},
	{
		ID:   "bursa",
		Name: "Bursa",
		Districts: []District{
			{ID: "nilufer", Name: "Nilüfer", Neighborhoods: []string{
				"Ataevler", "Beşevler", "Ertuğrul", "Görükle", "Özlüce",
			}},
			{ID: "osmangazi", Name: "Osmangazi", Neighborhoods: []string{
				"Demirtaş", "Hürriyet", "Panayır", "Soğanlı", "Yunuseli",
			}},
			{ID: "yildirim", Name: "Yıldırım", Neighborhoods: []string{
				"Arabayatağı", "Esenevler", "Millet", "Yıldırım Merkez",
			}},
		},
	},
	{
		ID:   "adana",
		Name: "Adana",
		Districts: []District{
			{ID: "seyhan", Name: "Seyhan", Neighborhoods: []string{
				"Çınarlı", "Döşeme", "Güzelyalı", "Reşatbey", "Ziyapaşa",
			}},
			{ID: "yuregir", Name: "Yüreğir", Neighborhoods: []string{
				"Köprülü", "Sarıçam", "Yüreğir Merkez",
			}},
			{ID: "cukurova", Name: "Çukurova", Neighborhoods: []string{
				"Balcalı", "Çukurova Merkez", "Yurt",
			}},
		},
	},
	{
		ID:   "gaziantep",
		Name: "Gaziantep",
		Districts: []District{
			{ID: "sahinbey", Name: "Şahinbey", Neighborhoods: []string{
				"Bey", "Güneykent", "İbrahimli", "Karataş", "Şahinbey Merkez",
			}},
			{ID: "sehitkamil", Name: "Şehitkamil", Neighborhoods: []string{
				"Akdere", "Güneşli", "Karacaahmet", "Şehitkamil Merkez",
			}},
		},
	},
	{
		ID:   "konya",
		Name: "Konya",
		Districts: []District{
			{ID: "selcuklu", Name: "Selçuklu", Neighborhoods: []string{
				"Binkonut", "Buhara", "Horozluhan", "Sancak", "Yazır",
			}},
			{ID: "meram", Name: "Meram", Neighborhoods: []string{
				"Aydınlıkevler", "Durunday", "Lalebahçe", "Meram Merkez",
			}},
			{ID: "karatay", Name: "Karatay", Neighborhoods: []string{
				"Alaaddin", "Karatay Merkez", "Parsana",
			}},
		},
	},
}

// Property form enumerations.

type PropertyType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var PropertyTypes = []PropertyType{
	{ID: "apartment", Name: "Daire"},
	{ID: "villa", Name: "Villa"},
	{ID: "residence", Name: "Rezidans"},
	{ID: "office", Name: "İşyeri"},
	{ID: "land", Name: "Arsa"},
	{ID: "building", Name: "Bina"},
	{ID: "farm", Name: "Çiftlik"},
	{ID: "commercial", Name: "Ticari"},
}

var RoomCounts = []string{"1+0", "1+1", "2+1", "3+1", "4+1", "5+1", "6+1", "7+1", "8+1", "9+1", "10+"}

var BuildingAges = []string{"0 (Yeni)", "1-5", "6-10", "11-15", "16-20", "21-25", "26-30", "31+"}

var HeatingTypes = []string{
	"Doğalgaz (Kombi)", "Merkezi", "Klima", "Soba",
	"Yerden Isıtma", "Elektrikli Radyatör", "Güneş Enerjisi",
}
