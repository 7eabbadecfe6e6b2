// Package catalog holds the static seed data every generated batch is
// built from: the product list, per-category image pools, article
// topics, news seeds and video seeds. It is read-only at runtime.
package catalog

// Product is a seed descriptor for deal generation.
type Product struct {
	Name      string
	Category  string
	BasePrice float64
}

// DefaultCategory is used whenever a category has no dedicated image
// pool or description template.
const DefaultCategory = "elettronica"

// Products is the fixed seed pool for deal batches.
var Products = []Product{
	{Name: "Cuffie Bluetooth Premium ANC Sony WH-1000XM5", Category: "elettronica", BasePrice: 379.99},
	{Name: "Robot Aspirapolvere iRobot Roomba j7+", Category: "casa", BasePrice: 799.99},
	{Name: "Apple Watch Series 9 45mm GPS", Category: "sport", BasePrice: 429.99},
	{Name: "Frullatore Vitamix A3500i Ascent", Category: "casa", BasePrice: 749.99},
	{Name: "Zaino Fotografico Peak Design Everyday 30L", Category: "moda", BasePrice: 299.99},
	{Name: "eReader Kindle Oasis 10 generazione", Category: "libri", BasePrice: 249.99},
	{Name: "Smart TV LG OLED evo 55\" 4K", Category: "elettronica", BasePrice: 1299.99},
	{Name: "Tablet Samsung Galaxy Tab S9 128GB", Category: "elettronica", BasePrice: 899.99},
	{Name: "Macchina per Caffè De'Longhi Magnifica S", Category: "casa", BasePrice: 329.99},
	{Name: "Friggitrice ad Aria Philips Airfryer XXL", Category: "casa", BasePrice: 249.99},
	{Name: "Scarpe Running Nike Air Zoom Pegasus 40", Category: "sport", BasePrice: 129.99},
	{Name: "Bicicletta Elettrica Pieghevole FIIDO D11", Category: "sport", BasePrice: 999.99},
	{Name: "Smartband Fitness Xiaomi Smart Band 8", Category: "sport", BasePrice: 39.99},
	{Name: "Giacca Impermeabile The North Face Quest", Category: "moda", BasePrice: 119.99},
	{Name: "Occhiali da Sole Ray-Ban Aviator Classic", Category: "moda", BasePrice: 169.99},
	{Name: "Borsa Messenger in Pelle Piquadro Blue Square", Category: "moda", BasePrice: 259.99},
	{Name: "Lampada Smart Philips Hue Go", Category: "casa", BasePrice: 89.99},
	{Name: "Console Nintendo Switch OLED", Category: "elettronica", BasePrice: 349.99},
	{Name: "Tastiera Meccanica Logitech MX Mechanical", Category: "elettronica", BasePrice: 179.99},
	{Name: "Enciclopedia del Vino Slow Food Editore", Category: "libri", BasePrice: 59.99},
	{Name: "Corso Completo di Fotografia National Geographic", Category: "libri", BasePrice: 79.99},
	{Name: "Atlante dei Luoghi Letterari Edizione Illustrata", Category: "libri", BasePrice: 45.99},
}

// imagePools maps each category to a fixed pool of product image URLs.
var imagePools = map[string][]string{
	"elettronica": {
		"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1593642632823-8f785ba67e45?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1498049794561-7780e7231661?w=300&h=300&fit=crop",
	},
	"casa": {
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1556911220-bff31c812dba?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1570222094114-d054a0be6070?w=300&h=300&fit=crop",
	},
	"sport": {
		"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=300&h=300&fit=crop",
	},
	"moda": {
		"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1483985988355-763728e1935b?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1445205170230-053b83016050?w=300&h=300&fit=crop",
	},
	"libri": {
		"https://images.unsplash.com/photo-1507842217343-583f20270319?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1512820790803-83ca734da794?w=300&h=300&fit=crop",
		"https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=300&h=300&fit=crop",
	},
}

// ImagePool returns the image URL pool for a category. Unknown
// categories fall back to the default category's pool.
func ImagePool(category string) []string {
	if pool, ok := imagePools[category]; ok {
		return pool
	}
	return imagePools[DefaultCategory]
}

// descriptionTemplates provides the templated deal description per
// category, used when no enrichment capability is configured. The
// single %s placeholder receives the product name.
var descriptionTemplates = map[string]string{
	"elettronica": "Tecnologia al miglior prezzo: %s con sconto esclusivo per oggi.",
	"casa":        "Rendi la tua casa migliore: %s in offerta a tempo limitato.",
	"sport":       "Allenati al top: %s al prezzo più basso degli ultimi mesi.",
	"moda":        "Stile senza compromessi: %s in saldo solo per oggi.",
	"libri":       "Da non perdere per i lettori: %s a un prezzo speciale.",
}

// DescriptionTemplate returns the deal description template for a
// category, falling back to the default category's template.
func DescriptionTemplate(category string) string {
	if tpl, ok := descriptionTemplates[category]; ok {
		return tpl
	}
	return descriptionTemplates[DefaultCategory]
}

// ArticleSeed is a topic descriptor for article generation.
type ArticleSeed struct {
	Topic    string
	Category string
}

// ArticleSeeds is the fixed topic pool for article batches.
var ArticleSeeds = []ArticleSeed{
	{Topic: "I Migliori Gadget Tecnologici del Momento", Category: "elettronica"},
	{Topic: "Come Arredare Casa Spendendo Poco", Category: "casa"},
	{Topic: "Guida all'Acquisto: Smartwatch per lo Sport", Category: "sport"},
	{Topic: "Tendenze Moda della Stagione", Category: "moda"},
	{Topic: "Dieci Libri da Leggere Assolutamente", Category: "libri"},
	{Topic: "Risparmiare con le Offerte Lampo: Trucchi e Consigli", Category: "elettronica"},
	{Topic: "Piccoli Elettrodomestici che Cambiano la Cucina", Category: "casa"},
	{Topic: "Attrezzatura Essenziale per Correre d'Inverno", Category: "sport"},
}

// NewsSeed is a headline descriptor for news generation.
type NewsSeed struct {
	Title    string
	Category string
	Icon     string
}

// NewsSeeds is the fixed headline pool for news batches.
var NewsSeeds = []NewsSeed{
	{Title: "Settimana di sconti: ribassi fino al 70% su centinaia di prodotti", Category: "elettronica", Icon: "🔥"},
	{Title: "Spedizione gratuita per tutto il weekend senza minimo d'ordine", Category: "casa", Icon: "📦"},
	{Title: "Nuova gamma di smart TV OLED in arrivo a prezzi mai visti", Category: "elettronica", Icon: "📺"},
	{Title: "Ritorno in offerta dei wearable più venduti dell'anno", Category: "sport", Icon: "⌚"},
	{Title: "Saldi di stagione: la moda firmata parte da 19,99€", Category: "moda", Icon: "🛍️"},
	{Title: "Promozione lettura: tre ebook al prezzo di due", Category: "libri", Icon: "📚"},
	{Title: "Coupon esclusivi per i membri della newsletter", Category: "elettronica", Icon: "🎯"},
	{Title: "Flash sale di mezzanotte: 12 ore di prezzi shock", Category: "casa", Icon: "⚡"},
}

// Authors is the byline pool for news items.
var Authors = []string{
	"Marco Bianchi",
	"Giulia Ferrari",
	"Luca Colombo",
	"Sara Ricci",
	"Alessandro Greco",
}

// VideoSeed is a descriptor for video review generation.
type VideoSeed struct {
	Product  string
	Youtuber string
	Channel  string
	Category string
}

// VideoSeeds is the fixed pool for video batches.
var VideoSeeds = []VideoSeed{
	{Product: "Sony WH-1000XM5", Youtuber: "Andrea Galeazzi", Channel: "andreagaleazzi.com", Category: "elettronica"},
	{Product: "iRobot Roomba j7+", Youtuber: "Matteo Valenza", Channel: "TechCasa", Category: "casa"},
	{Product: "Apple Watch Series 9", Youtuber: "Riccardo Palombo", Channel: "Riccardo Palombo", Category: "sport"},
	{Product: "Kindle Oasis", Youtuber: "Elisa De Marco", Channel: "LibriDigitali", Category: "libri"},
	{Product: "Nintendo Switch OLED", Youtuber: "Francesco Fabbri", Channel: "PlayerOne IT", Category: "elettronica"},
	{Product: "Philips Airfryer XXL", Youtuber: "Chiara Mele", Channel: "CucinaSmart", Category: "casa"},
	{Product: "Nike Pegasus 40", Youtuber: "Davide Romano", Channel: "RunLab Italia", Category: "sport"},
	{Product: "Ray-Ban Aviator", Youtuber: "Martina Conti", Channel: "StyleNote", Category: "moda"},
}
